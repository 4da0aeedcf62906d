// Package kernel provides the shared domain primitives of the lab order service.
//
// The package includes:
//   - UUID: the identifier value object used by orders and users
//
// Identifiers coming from clients are parsed with UUIDFromString; a parse failure is
// how use cases detect a malformed identifier before any storage lookup.
package kernel

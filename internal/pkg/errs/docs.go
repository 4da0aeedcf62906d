// Package errs provides the closed error taxonomy of the lab order service.
//
// Every use case reports failures as an *Error carrying one Kind from a fixed set:
//   - InvalidInput: bad payload shape or a violated business rule
//   - NotFound: a referenced entity does not exist
//   - Conflict: a uniqueness or concurrent-update violation
//   - Unauthorized: a failed credential check
//   - Unprocessable: a well-formed but semantically invalid identifier or reference
//   - CreateFailed, GetFailed, ListFailed, UpdateFailed, LoginFailed: internal fallback
//     kinds used only when a collaborator fails unexpectedly
//
// Each kind follows the same pattern:
//   - A sentinel error variable (e.g., ErrNotFound) reachable through errors.Is
//   - A constructor returning *Error
//   - Error() formatting and Unwrap() returning the sentinel
//
// Transport adapters dispatch on Kind, so adding a kind means adding it to Kinds()
// and to the adapter's status table.
package errs

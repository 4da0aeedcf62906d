package kernel

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates a zero-value (nil) UUID.
var ErrUUIDIsNotConstructed = errors.New("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// ErrInvalidUUIDFormat is wrapped by UUIDFromString when the input is not a UUID.
var ErrInvalidUUIDFormat = errors.New("invalid UUID format")

// UUID is the identifier value object used by every entity of the service.
// It wraps github.com/google/uuid; the zero value is invalid.
//
// Example:
//
//	id, err := kernel.UUIDFromString(c.Param("id"))
//	if err != nil {
//	    // malformed identifier, reject before touching storage
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) UUID.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the textual form of a UUID.
// Accepted forms are the ones github.com/google/uuid accepts (canonical, braced, urn, no hyphens).
// The nil UUID is rejected.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("%w: %w", ErrInvalidUUIDFormat, err)
	}

	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// UUIDFromBytes creates a UUID from its 16-byte representation.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("%w: %w", ErrInvalidUUIDFormat, err)
	}

	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}
	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying github.com/google/uuid value.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual compares two UUIDs by value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

package ports

import (
	"errors"

	"laborders/internal/core/domain/model/kernel"
)

// ErrInvalidToken is returned by VerifyToken for malformed, tampered or expired tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches hash. A mismatch is not an error.
	Verify(hash, password string) (bool, error)
}

// TokenIssuer issues and verifies bearer tokens bound to a user id.
type TokenIssuer interface {
	Issue(userID kernel.UUID) (string, error)
	Verify(token string) (kernel.UUID, error)
}

// Package user holds the account entity that owns orders and authenticates requests.
package user

import (
	"errors"
	"strings"
	"time"

	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User bypassed NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// User is an account. The password is only ever held as a hash.
type User struct {
	id           kernel.UUID
	email        string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewUser creates a user with a normalized (trimmed, lowercase) email.
func NewUser(id kernel.UUID, email, passwordHash string) (*User, error) {
	now := time.Now().UTC()
	return build(id, email, passwordHash, now, now)
}

// RestoreUser rebuilds a user loaded from storage.
func RestoreUser(id kernel.UUID, email, passwordHash string, createdAt, updatedAt time.Time) (*User, error) {
	return build(id, email, passwordHash, createdAt, updatedAt)
}

func build(id kernel.UUID, email, passwordHash string, createdAt, updatedAt time.Time) (*User, error) {
	u := &User{createdAt: createdAt, updatedAt: updatedAt, isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}
	return u, nil
}

// NormalizeEmail is the canonical form used for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return errs.NewInvalidInputError("email is invalid")
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewInvalidInputError("password hash must not be empty")
	}
	u.passwordHash = hash
	return nil
}

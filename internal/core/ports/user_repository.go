package ports

import (
	"context"

	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
// Lookups return nil and no error when the user does not exist.
type UserRepository interface {
	Create(ctx context.Context, aggregate *user.User) error
	GetByID(ctx context.Context, id kernel.UUID) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

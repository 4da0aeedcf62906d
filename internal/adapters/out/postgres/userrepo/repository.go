package userrepo

import (
	"context"
	"errors"

	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/core/domain/model/user"
	"laborders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM.
// The *gorm.DB must be opened with TranslateError so unique violations surface
// as gorm.ErrDuplicatedKey.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Create inserts a user. A duplicate email is reported as a Conflict.
func (r *GormUserRepository) Create(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("email already registered")
		}
		return err
	}
	return nil
}

// GetByID returns nil and no error when the user does not exist.
func (r *GormUserRepository) GetByID(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, "id = ?", id.Bytes())
}

// GetByEmail matches the normalized email and returns nil when absent.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.first(ctx, "email = ?", user.NormalizeEmail(email))
}

func (r *GormUserRepository) first(ctx context.Context, query string, args ...any) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil //nolint:nilnil // absence is not an error for lookups
		}
		return nil, err
	}
	return ToDomain(dto)
}

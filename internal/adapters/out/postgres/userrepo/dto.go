// Package userrepo persists user accounts with GORM.
package userrepo

import (
	"time"

	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is the users table row. Email is unique and stored normalized.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"size:320;not null;uniqueIndex"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides GORM's default naming.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Bytes(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

// ToDomain rebuilds a user from its row.
func ToDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return user.RestoreUser(id, dto.Email, dto.PasswordHash, dto.CreatedAt.UTC(), dto.UpdatedAt.UTC())
}

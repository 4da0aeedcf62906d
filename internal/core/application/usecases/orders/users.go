package orders

import (
	"context"
	"fmt"

	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/core/domain/model/user"
	"laborders/internal/core/ports"
	"laborders/internal/pkg/errs"
)

const userNotFound = "user not found"

func findUser(ctx context.Context, users ports.UserRepository, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewNotFoundError(userNotFound)
	}

	found, err := users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if found == nil {
		return nil, errs.NewNotFoundError(userNotFound)
	}
	return found, nil
}

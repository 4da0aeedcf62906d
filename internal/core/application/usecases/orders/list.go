package orders

import (
	"context"
	"fmt"

	"laborders/internal/core/application/usecase"
	"laborders/internal/core/domain/model/order"
	"laborders/internal/core/ports"
)

// ListOrdersHandler pages through the caller's ACTIVE orders, newest first.
type ListOrdersHandler struct {
	users  ports.UserRepository
	orders ports.OrderRepository
}

func NewListOrdersHandler(users ports.UserRepository, orders ports.OrderRepository) ListOrdersHandler {
	return ListOrdersHandler{users: users, orders: orders}
}

func (h ListOrdersHandler) Handle(ctx context.Context, identity usecase.Identity, input ListInput) (ports.OrderPage, error) {
	owner, err := findUser(ctx, h.users, identity.UserID)
	if err != nil {
		return ports.OrderPage{}, err
	}

	input = input.Normalize()
	filter := ports.OrderFilter{
		OwnerID: owner.ID(),
		Page:    input.Page,
		PerPage: input.PerPage,
	}
	if state, parseErr := order.ParseState(input.State); parseErr == nil {
		filter.State = &state
	}

	page, err := h.orders.List(ctx, filter)
	if err != nil {
		return ports.OrderPage{}, fmt.Errorf("list orders: %w", err)
	}
	return page, nil
}

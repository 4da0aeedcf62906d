package orders

import (
	"context"
	"fmt"

	"laborders/internal/core/application/usecase"
	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/core/domain/model/order"
	"laborders/internal/core/ports"
	"laborders/internal/pkg/errs"
)

const (
	invalidOrderID = "invalid order id"
	orderNotFound  = "order not found"
)

// GetInput is empty: the order is addressed by Identity.ResourceID.
type GetInput struct{}

// GetOrderHandler loads one order by id, whatever its status.
type GetOrderHandler struct {
	orders ports.OrderRepository
}

func NewGetOrderHandler(orders ports.OrderRepository) GetOrderHandler {
	return GetOrderHandler{orders: orders}
}

func (h GetOrderHandler) Handle(ctx context.Context, identity usecase.Identity, _ GetInput) (*order.Order, error) {
	id, err := parseOrderID(identity.ResourceID)
	if err != nil {
		return nil, err
	}

	return loadOrder(ctx, h.orders, id)
}

func parseOrderID(raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewUnprocessableError(invalidOrderID)
	}
	return id, nil
}

func loadOrder(ctx context.Context, orders ports.OrderRepository, id kernel.UUID) (*order.Order, error) {
	found, err := orders.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	if found == nil {
		return nil, errs.NewNotFoundError(orderNotFound)
	}
	return found, nil
}

package ports

import (
	"context"
	"errors"

	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/core/domain/model/order"
)

// ErrStaleState is returned by UpdateState when the stored state no longer matches
// the expected one, meaning a concurrent request changed the order first.
var ErrStaleState = errors.New("order state changed concurrently")

// OrderFilter selects the orders returned by List.
// Only ACTIVE orders of OwnerID are ever listed.
type OrderFilter struct {
	OwnerID kernel.UUID
	// State is optional; nil lists every state.
	State   *order.State
	Page    int
	PerPage int
}

// OrderPage is one page of orders, newest first.
type OrderPage struct {
	Orders       []*order.Order
	TotalRecords int64
	Page         int
	PerPage      int
}

// TotalPages is ceil(TotalRecords / PerPage).
func (p OrderPage) TotalPages() int {
	if p.PerPage <= 0 {
		return 0
	}
	return int((p.TotalRecords + int64(p.PerPage) - 1) / int64(p.PerPage))
}

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Create persists a new order with its services and returns the stored order,
	// with the owner's email resolved.
	Create(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Get retrieves an order by identifier regardless of its status.
	// Returns nil and no error when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List returns a page of ACTIVE orders matching the filter.
	List(ctx context.Context, filter OrderFilter) (OrderPage, error)

	// UpdateState atomically moves the order from one state to another.
	// Returns ErrStaleState if the stored state is no longer from.
	UpdateState(ctx context.Context, id kernel.UUID, from, to order.State) (*order.Order, error)
}

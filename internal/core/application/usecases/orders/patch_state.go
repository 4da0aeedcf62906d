package orders

import (
	"context"
	"errors"
	"fmt"

	"laborders/internal/core/application/usecase"
	"laborders/internal/core/domain/model/order"
	"laborders/internal/core/ports"
	"laborders/internal/pkg/errs"
)

// PatchStateHandler moves an order one step along CREATED -> ANALYSIS -> COMPLETED.
type PatchStateHandler struct {
	orders ports.OrderRepository
}

func NewPatchStateHandler(orders ports.OrderRepository) PatchStateHandler {
	return PatchStateHandler{orders: orders}
}

// Handle validates the id, loads the order, checks the transition and,
// only when the order advances, performs a single conditional update.
// Requesting the current state returns the stored order without writing.
func (h PatchStateHandler) Handle(ctx context.Context, identity usecase.Identity, input PatchStateInput) (*order.Order, error) {
	id, err := parseOrderID(identity.ResourceID)
	if err != nil {
		return nil, err
	}

	requested, err := order.ParseState(input.State)
	if err != nil {
		return nil, err
	}

	current, err := loadOrder(ctx, h.orders, id)
	if err != nil {
		return nil, err
	}

	if current.IsDeleted() {
		return nil, errs.NewUnprocessableError("order is deleted and its state cannot change")
	}

	outcome, err := order.CheckTransition(current.State(), requested)
	if outcome.IsRejected() {
		return nil, err
	}
	if outcome == order.TransitionNoOp {
		return current, nil
	}

	updated, err := h.orders.UpdateState(ctx, id, current.State(), requested)
	if errors.Is(err, ports.ErrStaleState) {
		return nil, errs.NewConflictError("order state was changed by another request, reload it and try again")
	}
	if err != nil {
		return nil, fmt.Errorf("update order %s state: %w", id, err)
	}
	return updated, nil
}

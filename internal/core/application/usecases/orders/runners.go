package orders

import (
	"log/slog"

	"laborders/internal/core/application/usecase"
	"laborders/internal/core/domain/model/order"
	"laborders/internal/core/ports"
	"laborders/internal/pkg/errs"
)

// Runners bundles the order use cases for inbound adapters.
type Runners struct {
	Create     *usecase.Runner[CreateInput, *order.Order]
	Get        *usecase.Runner[GetInput, *order.Order]
	List       *usecase.Runner[ListInput, ports.OrderPage]
	PatchState *usecase.Runner[PatchStateInput, *order.Order]
}

// NewRunners wires every order use case with its schema and fallback.
func NewRunners(
	uowFactory ports.UnitOfWorkFactory,
	users ports.UserRepository,
	orders ports.OrderRepository,
	logger *slog.Logger,
) (Runners, error) {
	create, err := usecase.NewRunner(usecase.Config[CreateInput, *order.Order]{
		Name:          "orders.create",
		Schema:        CreateSchema(),
		FallbackKind:  errs.CreateFailed,
		FallbackLabel: "failed to create order",
		Action:        NewCreateOrderHandler(uowFactory).Handle,
		Logger:        logger,
	})
	if err != nil {
		return Runners{}, err
	}

	get, err := usecase.NewRunner(usecase.Config[GetInput, *order.Order]{
		Name:          "orders.get",
		FallbackKind:  errs.GetFailed,
		FallbackLabel: "failed to get order",
		Action:        NewGetOrderHandler(orders).Handle,
		Logger:        logger,
	})
	if err != nil {
		return Runners{}, err
	}

	list, err := usecase.NewRunner(usecase.Config[ListInput, ports.OrderPage]{
		Name:          "orders.list",
		FallbackKind:  errs.ListFailed,
		FallbackLabel: "failed to list orders",
		Action:        NewListOrdersHandler(users, orders).Handle,
		Logger:        logger,
	})
	if err != nil {
		return Runners{}, err
	}

	patchState, err := usecase.NewRunner(usecase.Config[PatchStateInput, *order.Order]{
		Name:          "orders.patch_state",
		Schema:        PatchStateSchema(),
		FallbackKind:  errs.UpdateFailed,
		FallbackLabel: "failed to update order state",
		Action:        NewPatchStateHandler(orders).Handle,
		Logger:        logger,
	})
	if err != nil {
		return Runners{}, err
	}

	return Runners{Create: create, Get: get, List: list, PatchState: patchState}, nil
}

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

// CreateOrderHandler registers a new order for the calling user.
// The owner lookup and the insert share one transaction.
type CreateOrderHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewCreateOrderHandler(uowFactory ports.UnitOfWorkFactory) CreateOrderHandler {
	return CreateOrderHandler{uowFactory: uowFactory}
}

// Handle checks the total value, resolves the owner and stores the order.
func (h CreateOrderHandler) Handle(ctx context.Context, identity usecase.Identity, input CreateInput) (*order.Order, error) {
	var total float64
	for _, svc := range input.Services {
		total += svc.Value
	}
	if total <= 0 {
		return nil, errs.NewInvalidInputError("total value of services must be greater than 0")
	}

	services, err := toServices(input.Services)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := findUser(ctx, uow.UserRepository(), identity.UserID)
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		order.Owner{ID: owner.ID(), Email: owner.Email()},
		input.Lab,
		input.Patient,
		input.Customer,
		services,
	)
	if err != nil {
		return nil, err
	}

	stored, err := uow.OrderRepository().Create(ctx, aggregate)
	if err != nil {
		return nil, fmt.Errorf("store order: %w", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	return stored, nil
}

func toServices(inputs []ServiceInput) ([]order.Service, error) {
	services := make([]order.Service, 0, len(inputs))
	for _, in := range inputs {
		status, err := order.ParseServiceStatus(in.Status)
		if err != nil {
			return nil, err
		}
		svc, err := order.NewService(in.Name, in.Value, status)
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	return services, nil
}

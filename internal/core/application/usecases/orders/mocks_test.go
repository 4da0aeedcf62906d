package orders_test

import (
	"context"
	"time"

	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/core/domain/model/order"
	"laborders/internal/core/domain/model/user"
	"laborders/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Create(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	if echo, ok := args.Get(0).(func(*order.Order) *order.Order); ok {
		return echo(o), args.Error(1)
	}
	stored, _ := args.Get(0).(*order.Order)
	return stored, args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	found, _ := args.Get(0).(*order.Order)
	return found, args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, filter ports.OrderFilter) (ports.OrderPage, error) {
	args := m.Called(ctx, filter)
	page, _ := args.Get(0).(ports.OrderPage)
	return page, args.Error(1)
}

func (m *MockOrderRepository) UpdateState(ctx context.Context, id kernel.UUID, from, to order.State) (*order.Order, error) {
	args := m.Called(ctx, id, from, to)
	updated, _ := args.Get(0).(*order.Order)
	return updated, args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	found, _ := args.Get(0).(*user.User)
	return found, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	found, _ := args.Get(0).(*user.User)
	return found, args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() ports.UnitOfWork {
	args := m.Called()
	return args.Get(0).(ports.UnitOfWork)
}

func newUser() *user.User {
	u, err := user.NewUser(kernel.NewUUID(), "owner@lab.com", "hash")
	if err != nil {
		panic(err)
	}
	return u
}

func newOrder(owner *user.User, state order.State, status order.Status) *order.Order {
	svc, err := order.NewService("Hemogram", 30, order.Pending)
	if err != nil {
		panic(err)
	}
	o, err := order.RestoreOrder(order.Snapshot{
		ID:        kernel.NewUUID(),
		Owner:     order.Owner{ID: owner.ID(), Email: owner.Email()},
		Lab:       "Lab Central",
		Patient:   "Ana Souza",
		Customer:  "Clinica Norte",
		State:     state,
		Status:    status,
		Services:  []order.Service{svc},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		panic(err)
	}
	return o
}

func withState(o *order.Order, state order.State) *order.Order {
	restored, err := order.RestoreOrder(order.Snapshot{
		ID:        o.ID(),
		Owner:     o.Owner(),
		Lab:       o.Lab(),
		Patient:   o.Patient(),
		Customer:  o.Customer(),
		State:     state,
		Status:    o.Status(),
		Services:  o.Services(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		panic(err)
	}
	return restored
}

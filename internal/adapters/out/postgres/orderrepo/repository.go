package orderrepo

import (
	"context"
	"errors"
	"time"

	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/core/domain/model/order"
	"laborders/internal/core/ports"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create inserts the order and its services, then reloads it with the owner's email.
func (r *GormOrderRepository) Create(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit("User").Create(&dto).Error; err != nil {
		return nil, err
	}

	stored, err := r.Get(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return stored, nil
}

// Get retrieves an order by ID. Returns nil and no error when it does not exist.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withRelations(ctx).First(&dto, "orders.id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil //nolint:nilnil // absence is not an error for lookups
		}
		return nil, err
	}

	return toDomain(dto)
}

// List returns a page of the owner's ACTIVE orders, newest first.
func (r *GormOrderRepository) List(ctx context.Context, filter ports.OrderFilter) (ports.OrderPage, error) {
	if err := filter.OwnerID.Validate(); err != nil {
		return ports.OrderPage{}, err
	}

	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Where("orders.user_id = ? AND orders.status = ?", filter.OwnerID.Bytes(), order.Active.String())
		if filter.State != nil {
			db = db.Where("orders.state = ?", filter.State.String())
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Scopes(scope).Count(&total).Error; err != nil {
		return ports.OrderPage{}, err
	}

	var dtos []OrderDTO
	if err := r.withRelations(ctx).
		Scopes(scope).
		Order("orders.created_at DESC").
		Order("orders.id").
		Offset((filter.Page - 1) * filter.PerPage).
		Limit(filter.PerPage).
		Find(&dtos).Error; err != nil {
		return ports.OrderPage{}, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return ports.OrderPage{}, err
		}
		orders = append(orders, o)
	}

	return ports.OrderPage{
		Orders:       orders,
		TotalRecords: total,
		Page:         filter.Page,
		PerPage:      filter.PerPage,
	}, nil
}

// UpdateState moves the order from one state to another with a single conditional
// UPDATE. When no row matches (the state changed meanwhile, or the order vanished)
// it returns ports.ErrStaleState.
func (r *GormOrderRepository) UpdateState(ctx context.Context, id kernel.UUID, from, to order.State) (*order.Order, error) {
	if err := errors.Join(id.Validate(), from.Validate(), to.Validate()); err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND state = ?", id.Bytes(), from.String()).
		Updates(map[string]any{
			"state":      to.String(),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrStaleState
	}

	updated, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ports.ErrStaleState
	}
	return updated, nil
}

func (r *GormOrderRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Joins("User").
		Preload("Services", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_services.position")
		})
}

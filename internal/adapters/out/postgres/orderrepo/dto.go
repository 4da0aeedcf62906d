// Package orderrepo maps order aggregates to the orders and order_services tables.
package orderrepo

import (
	"time"

	"laborders/internal/adapters/out/postgres/userrepo"
	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the orders table row. State and Status hold their wire names
// so raw read-side queries can filter on them directly.
type OrderDTO struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID         `gorm:"type:uuid;not null;index;index:idx_orders_owner_state_status,priority:1"`
	User      userrepo.UserDTO  `gorm:"foreignKey:UserID"`
	Lab       string            `gorm:"not null"`
	Patient   string            `gorm:"not null"`
	Customer  string            `gorm:"not null"`
	State     string            `gorm:"size:16;not null;index;index:idx_orders_owner_state_status,priority:2"`
	Status    string            `gorm:"size:16;not null;index;index:idx_orders_owner_state_status,priority:3"`
	Services  []OrderServiceDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time         `gorm:"index"`
	UpdatedAt time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderServiceDTO is one service row. Position keeps the request order.
type OrderServiceDTO struct {
	ID       uint      `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Position int       `gorm:"not null"`
	Name     string    `gorm:"not null"`
	Value    float64   `gorm:"not null"`
	Status   string    `gorm:"size:16;not null"`
}

// TableName specifies the database table name for order services.
func (OrderServiceDTO) TableName() string {
	return "order_services"
}

func fromDomain(o *order.Order) OrderDTO {
	services := make([]OrderServiceDTO, 0, len(o.Services()))
	for i, svc := range o.Services() {
		services = append(services, OrderServiceDTO{
			OrderID:  o.ID().Bytes(),
			Position: i,
			Name:     svc.Name(),
			Value:    svc.Value(),
			Status:   svc.Status().String(),
		})
	}

	return OrderDTO{
		ID:        o.ID().Bytes(),
		UserID:    o.Owner().ID.Bytes(),
		Lab:       o.Lab(),
		Patient:   o.Patient(),
		Customer:  o.Customer(),
		State:     o.State().String(),
		Status:    o.Status().String(),
		Services:  services,
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

// toDomain rebuilds the aggregate; dto.User must be preloaded for the owner email.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	state, err := order.ParseState(dto.State)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	services := make([]order.Service, 0, len(dto.Services))
	for _, s := range dto.Services {
		serviceStatus, parseErr := order.ParseServiceStatus(s.Status)
		if parseErr != nil {
			return nil, parseErr
		}
		svc, svcErr := order.NewService(s.Name, s.Value, serviceStatus)
		if svcErr != nil {
			return nil, svcErr
		}
		services = append(services, svc)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:        id,
		Owner:     order.Owner{ID: ownerID, Email: dto.User.Email},
		Lab:       dto.Lab,
		Patient:   dto.Patient,
		Customer:  dto.Customer,
		State:     state,
		Status:    status,
		Services:  services,
		CreatedAt: dto.CreatedAt.UTC(),
		UpdatedAt: dto.UpdatedAt.UTC(),
	})
}

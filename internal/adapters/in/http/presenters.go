package http

import (
	"time"

	"laborders/internal/core/application/usecases/users"
	"laborders/internal/core/domain/model/order"
	"laborders/internal/core/domain/model/user"
	"laborders/internal/core/ports"
)

type UserJSON struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type OwnerJSON struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type ServiceJSON struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Status string  `json:"status"`
}

type OrderJSON struct {
	ID        string        `json:"id"`
	Lab       string        `json:"lab"`
	Patient   string        `json:"patient"`
	Customer  string        `json:"customer"`
	State     string        `json:"state"`
	Status    string        `json:"status"`
	Services  []ServiceJSON `json:"services"`
	User      OwnerJSON     `json:"user"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type PageJSON struct {
	Data         []OrderJSON `json:"data"`
	TotalRecords int64       `json:"totalRecords"`
	TotalPages   int         `json:"totalPages"`
	PerPage      int         `json:"perPage"`
	CurrentPage  int         `json:"currentPage"`
}

type SessionJSON struct {
	User  UserJSON `json:"user"`
	Token string   `json:"token"`
}

func presentUser(u *user.User) *UserJSON {
	if u == nil {
		return nil
	}
	return &UserJSON{
		ID:        u.ID().String(),
		Email:     u.Email(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func presentSession(s users.Session) *SessionJSON {
	u := presentUser(s.User)
	if u == nil {
		return nil
	}
	return &SessionJSON{User: *u, Token: s.Token}
}

func presentOrder(o *order.Order) *OrderJSON {
	if o == nil {
		return nil
	}

	services := make([]ServiceJSON, 0, len(o.Services()))
	for _, s := range o.Services() {
		services = append(services, ServiceJSON{Name: s.Name(), Value: s.Value(), Status: s.Status().String()})
	}

	owner := o.Owner()
	return &OrderJSON{
		ID:        o.ID().String(),
		Lab:       o.Lab(),
		Patient:   o.Patient(),
		Customer:  o.Customer(),
		State:     o.State().String(),
		Status:    o.Status().String(),
		Services:  services,
		User:      OwnerJSON{ID: owner.ID.String(), Email: owner.Email},
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

func presentPage(p ports.OrderPage) PageJSON {
	data := make([]OrderJSON, 0, len(p.Orders))
	for _, o := range p.Orders {
		if presented := presentOrder(o); presented != nil {
			data = append(data, *presented)
		}
	}
	return PageJSON{
		Data:         data,
		TotalRecords: p.TotalRecords,
		TotalPages:   p.TotalPages(),
		PerPage:      p.PerPage,
		CurrentPage:  p.Page,
	}
}

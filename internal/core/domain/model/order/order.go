package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Owner identifies the user who created an order.
type Owner struct {
	ID    kernel.UUID
	Email string
}

// Order is the aggregate root of a lab request: the patient, the lab that
// runs the analyses, the paying customer and the list of requested services.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owner
//   - Lab, patient and customer are not blank
//   - Holds at least one service and the total value is greater than 0
//   - State only changes through the transitions allowed by CheckTransition
type Order struct {
	id        kernel.UUID
	owner     Owner
	lab       string
	patient   string
	customer  string
	state     State
	status    Status
	services  []Service
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates an order in state Created with status Active.
//
// Example:
//
//	svc, _ := order.NewService("Hemogram", 25, order.Pending)
//	o, err := order.NewOrder(kernel.NewUUID(), owner, "Lab Central", "Ana Souza", "Clinica Norte", []order.Service{svc})
func NewOrder(id kernel.UUID, owner Owner, lab, patient, customer string, services []Service) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		state:         Created,
		status:        Active,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwner(owner),
		o.setParties(lab, patient, customer),
		o.setServices(services),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Snapshot carries every field of a persisted order.
type Snapshot struct {
	ID        kernel.UUID
	Owner     Owner
	Lab       string
	Patient   string
	Customer  string
	State     State
	Status    Status
	Services  []Service
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RestoreOrder rebuilds an order loaded from storage.
// Business rules on creation (such as the positive total) are not re-checked;
// identity, enums and services are.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		lab:           s.Lab,
		patient:       s.Patient,
		customer:      s.Customer,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}

	var serviceErrs []error
	for _, svc := range s.Services {
		serviceErrs = append(serviceErrs, svc.Validate())
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setOwner(s.Owner),
		s.State.Validate(),
		s.Status.Validate(),
		errors.Join(serviceErrs...),
	); err != nil {
		return nil, err
	}

	o.state = s.State
	o.status = s.Status
	o.services = append([]Service(nil), s.Services...)
	return o, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Owner() Owner {
	return o.owner
}

func (o *Order) Lab() string {
	return o.lab
}

func (o *Order) Patient() string {
	return o.patient
}

func (o *Order) Customer() string {
	return o.customer
}

func (o *Order) State() State {
	return o.state
}

func (o *Order) Status() Status {
	return o.status
}

// Services returns a copy of the order's services.
func (o *Order) Services() []Service {
	return append([]Service(nil), o.services...)
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsDeleted reports whether the order was soft-deleted.
func (o *Order) IsDeleted() bool {
	return o.status == Deleted
}

// TotalValue is the sum of the service values.
func (o *Order) TotalValue() float64 {
	return TotalValue(o.services)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwner(owner Owner) error {
	if err := owner.ID.Validate(); err != nil {
		return fmt.Errorf("owner: %w", err)
	}
	o.owner = owner
	return nil
}

func (o *Order) setParties(lab, patient, customer string) error {
	var problems []error
	for _, field := range []struct {
		name  string
		value string
		dst   *string
	}{
		{"lab", lab, &o.lab},
		{"patient", patient, &o.patient},
		{"customer", customer, &o.customer},
	} {
		v := strings.TrimSpace(field.value)
		if v == "" {
			problems = append(problems, errs.NewInvalidInputError(field.name+" must not be empty"))
			continue
		}
		*field.dst = v
	}
	return errors.Join(problems...)
}

func (o *Order) setServices(services []Service) error {
	if len(services) == 0 {
		return errs.NewInvalidInputError("order must have at least one service")
	}
	for _, svc := range services {
		if err := svc.Validate(); err != nil {
			return err
		}
	}
	if total := TotalValue(services); total <= 0 {
		return errs.NewInvalidInputError(fmt.Sprintf("total value of services must be greater than 0, got %v", total))
	}
	o.services = append([]Service(nil), services...)
	return nil
}

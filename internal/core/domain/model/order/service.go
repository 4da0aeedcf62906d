package order

import (
	"errors"
	"fmt"
	"strings"

	"laborders/internal/pkg/errs"
	"laborders/internal/pkg/guard"
)

// ErrServiceIsNotConstructed is returned for a Service that bypassed NewService.
var ErrServiceIsNotConstructed = errors.New("Service must be created via NewService constructor")

// ServiceStatus tracks a single lab service inside an order.
type ServiceStatus int

const (
	UnknownServiceStatus ServiceStatus = iota
	Pending
	Done
)

func getServiceStatusStrings() map[ServiceStatus]string {
	//nolint:exhaustive // UnknownServiceStatus is intentionally excluded as it's invalid
	return map[ServiceStatus]string{
		Pending: "PENDING",
		Done:    "DONE",
	}
}

// ParseServiceStatus converts "PENDING" or "DONE" into a ServiceStatus.
// An empty string yields Pending, the default for new services.
func ParseServiceStatus(s string) (ServiceStatus, error) {
	if s == "" {
		return Pending, nil
	}
	for status, name := range getServiceStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return UnknownServiceStatus, errs.NewInvalidInputError(fmt.Sprintf("service status %q is invalid", s))
}

func (s ServiceStatus) String() string {
	if str, ok := getServiceStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Service is a value object: one billable analysis requested in an order.
type Service struct {
	name   string
	value  float64
	status ServiceStatus
	guard  guard.ConstructorGuard
}

// NewService validates and creates a Service.
// The name must not be blank and the value must be at least 1.
func NewService(name string, value float64, status ServiceStatus) (Service, error) {
	name = strings.TrimSpace(name)

	var problems []error
	if name == "" {
		problems = append(problems, errs.NewInvalidInputError("service name must not be empty"))
	}
	if value < 1 {
		problems = append(problems, errs.NewInvalidInputError(fmt.Sprintf("service value %v must be at least 1", value)))
	}
	if _, ok := getServiceStatusStrings()[status]; !ok {
		problems = append(problems, errs.NewInvalidInputError(fmt.Sprintf("service status is invalid: %d", status)))
	}
	if err := errors.Join(problems...); err != nil {
		return Service{}, err
	}

	return Service{
		name:   name,
		value:  value,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (s Service) Name() string {
	return s.name
}

func (s Service) Value() float64 {
	return s.value
}

func (s Service) Status() ServiceStatus {
	return s.status
}

// Validate ensures the service was created via NewService.
func (s Service) Validate() error {
	return s.guard.Validate(ErrServiceIsNotConstructed)
}

// TotalValue sums the values of services.
func TotalValue(services []Service) float64 {
	var total float64
	for _, s := range services {
		total += s.value
	}
	return total
}

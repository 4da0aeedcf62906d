package order

import (
	"fmt"

	"laborders/internal/pkg/errs"
)

// Status is the soft-delete flag of an order. It is orthogonal to State.
type Status int

const (
	UnknownStatus Status = iota
	Active
	Deleted
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Active:  "ACTIVE",
		Deleted: "DELETED",
	}
}

// ParseStatus converts "ACTIVE" or "DELETED" into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewInvalidInputError(fmt.Sprintf("status %q is invalid", s))
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate returns an InvalidInput error for values other than Active and Deleted.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewInvalidInputError(fmt.Sprintf("status is invalid: %d is not a valid status", s))
	}
	return nil
}

package errs

import (
	"errors"
	"fmt"
	"strings"
)

// FieldViolation describes one failed constraint on an input field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the value every use case returns on failure.
// It is immutable once constructed; accessors return copies.
type Error struct {
	kind       Kind
	message    string
	label      string
	violations []FieldViolation
	cause      error
}

func newError(kind Kind, message string) *Error {
	return &Error{kind: kind, message: sanitize(message)}
}

// NewInvalidInputError creates an InvalidInput error with optional field violations.
func NewInvalidInputError(message string, violations ...FieldViolation) *Error {
	err := newError(InvalidInput, message)
	if len(violations) > 0 {
		err.violations = append([]FieldViolation(nil), violations...)
	}
	return err
}

// NewNotFoundError creates a NotFound error.
func NewNotFoundError(message string) *Error {
	return newError(NotFound, message)
}

// NewConflictError creates a Conflict error.
func NewConflictError(message string) *Error {
	return newError(Conflict, message)
}

// NewUnauthorizedError creates an Unauthorized error.
func NewUnauthorizedError(message string) *Error {
	return newError(Unauthorized, message)
}

// NewUnprocessableError creates an Unprocessable error.
func NewUnprocessableError(message string) *Error {
	return newError(Unprocessable, message)
}

// NewFaultError wraps an unexpected collaborator failure into an internal kind.
// The message is "label: cause"; PublicMessage only exposes the label.
// A non-internal kind is coerced to UpdateFailed so faults never masquerade as client errors.
func NewFaultError(kind Kind, label string, cause error) *Error {
	if !kind.IsInternal() {
		kind = UpdateFailed
	}

	message := label
	if cause != nil {
		message = label + ": " + cause.Error()
	}

	err := newError(kind, message)
	err.label = sanitize(label)
	err.cause = cause
	return err
}

// As finds the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) && target != nil {
		return target, true
	}
	return nil, false
}

// Kind returns the discriminant.
func (e *Error) Kind() Kind {
	return e.kind
}

// Message returns the full message, including fault detail for internal kinds.
func (e *Error) Message() string {
	return e.message
}

// PublicMessage returns the message safe to send to clients.
func (e *Error) PublicMessage() string {
	if e.kind.IsInternal() && e.label != "" {
		return e.label
	}
	return e.message
}

// Violations returns a copy of the field violations, if any.
func (e *Error) Violations() []FieldViolation {
	if len(e.violations) == 0 {
		return nil
	}
	return append([]FieldViolation(nil), e.violations...)
}

// Cause returns the wrapped fault for internal kinds.
func (e *Error) Cause() error {
	return e.cause
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.sentinel(), e.label, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.sentinel(), e.message)
}

// Unwrap returns the kind's sentinel so errors.Is(err, ErrNotFound) works.
func (e *Error) Unwrap() error {
	return e.sentinel()
}

func (e *Error) sentinel() error {
	if s := e.kind.Sentinel(); s != nil {
		return s
	}
	return errors.New("unknown error")
}

func sanitize(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "\n", " ")), " ")
}

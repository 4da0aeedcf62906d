package usecase

import (
	"laborders/internal/pkg/errs"
)

// Result is the outcome of one use case execution: exactly one of a value or an *errs.Error.
type Result[T any] struct {
	value T
	err   *errs.Error
}

// Success wraps a value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure wraps an error. A nil error, or one whose kind is outside the
// taxonomy, is turned into an internal fault.
func Failure[T any](err *errs.Error) Result[T] {
	switch {
	case err == nil:
		err = errs.NewFaultError(errs.UpdateFailed, "unknown failure", nil)
	case !err.Kind().IsValid():
		err = errs.NewFaultError(errs.UpdateFailed, "unknown failure", err)
	}
	return Result[T]{err: err}
}

func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// Value returns the success value, or the zero value on failure.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure, or nil on success.
func (r Result[T]) Err() *errs.Error {
	return r.err
}

// MapResult transforms a success value and passes a failure through untouched.
func MapResult[T, R any](r Result[T], fn func(T) R) Result[R] {
	if r.err != nil {
		return Result[R]{err: r.err}
	}
	return Success(fn(r.value))
}

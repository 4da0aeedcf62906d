// Package guard provides ConstructorGuard, a marker that lets value objects detect
// whether they were built through their constructor or used as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in structs whose zero value is not usable.
//
// Example:
//
//	type Runner struct {
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRunner() Runner { return Runner{guard: guard.NewConstructorGuard()} }
//
//	func (r Runner) Validate() error { return r.guard.Validate(ErrRunnerIsNotConstructed) }
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}

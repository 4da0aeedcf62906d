package order

import (
	"fmt"
	"strings"

	"laborders/internal/pkg/errs"
)

// TransitionOutcome is the verdict of CheckTransition.
type TransitionOutcome int

const (
	// TransitionInvalid means one of the states is outside the lifecycle.
	TransitionInvalid TransitionOutcome = iota

	// TransitionNoOp means the requested state equals the current one.
	// Callers must skip the write and return the order unchanged.
	TransitionNoOp

	// TransitionAdvance means the requested state is exactly the next one.
	TransitionAdvance

	// TransitionRegression means the requested state precedes the current one.
	TransitionRegression

	// TransitionSkip means the requested state is more than one step ahead.
	TransitionSkip
)

func (o TransitionOutcome) String() string {
	switch o {
	case TransitionNoOp:
		return "NoOp"
	case TransitionAdvance:
		return "Advance"
	case TransitionRegression:
		return "Regression"
	case TransitionSkip:
		return "Skip"
	case TransitionInvalid:
		return "Invalid"
	}
	return "Invalid"
}

// IsRejected reports whether the outcome forbids the transition.
func (o TransitionOutcome) IsRejected() bool {
	return o != TransitionNoOp && o != TransitionAdvance
}

// CheckTransition validates moving an order from current to requested.
//
// Returns:
//   - (TransitionNoOp, nil) when requested == current
//   - (TransitionAdvance, nil) when requested is the next state
//   - (TransitionRegression, InvalidInput) when requested precedes current
//   - (TransitionSkip, InvalidInput) when requested is more than one step ahead
//   - (TransitionInvalid, InvalidInput) when either state is outside the lifecycle
//
// Example:
//
//	outcome, err := order.CheckTransition(order.Created, order.Analysis)
//	// outcome == order.TransitionAdvance, err == nil
func CheckTransition(current, requested State) (TransitionOutcome, error) {
	if err := current.Validate(); err != nil {
		return TransitionInvalid, err
	}
	if err := requested.Validate(); err != nil {
		return TransitionInvalid, err
	}

	currentIndex := current.index()
	requestedIndex := requested.index()

	switch {
	case requestedIndex == currentIndex:
		return TransitionNoOp, nil
	case current.IsTerminal(), requestedIndex < currentIndex:
		return TransitionRegression, errs.NewInvalidInputError(
			fmt.Sprintf("moving backwards is not allowed, follow the order: %s", lifecycle()),
		)
	case requestedIndex > currentIndex+1:
		return TransitionSkip, errs.NewInvalidInputError(
			fmt.Sprintf("skipping steps is not allowed, follow the order: %s", lifecycle()),
		)
	default:
		return TransitionAdvance, nil
	}
}

func lifecycle() string {
	return strings.Join(StateNames(), " -> ")
}

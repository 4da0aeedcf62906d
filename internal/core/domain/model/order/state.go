package order

import (
	"fmt"
	"strings"

	"laborders/internal/pkg/errs"
)

// State is the lifecycle stage of an order.
// It is a strict total order with no cycles:
//
//	Created ──> Analysis ──> Completed
//
// Completed is terminal.
type State int

const (
	// UnknownState is the zero value and never a valid state.
	UnknownState State = iota

	// Created is the initial state of every new order.
	Created

	// Analysis means the lab is processing the order's services.
	Analysis

	// Completed is the final state; no transition leaves it.
	Completed
)

// stateFlow is the ordered lifecycle. Transitions are evaluated by index.
var stateFlow = []State{Created, Analysis, Completed}

func getStateStrings() map[State]string {
	//nolint:exhaustive // UnknownState is intentionally excluded as it's invalid
	return map[State]string{
		Created:   "CREATED",
		Analysis:  "ANALYSIS",
		Completed: "COMPLETED",
	}
}

// States returns the lifecycle in order.
func States() []State {
	return append([]State(nil), stateFlow...)
}

// ParseState converts a wire name ("CREATED", "ANALYSIS", "COMPLETED") into a State.
// Matching is case-sensitive.
func ParseState(s string) (State, error) {
	for state, name := range getStateStrings() {
		if name == s {
			return state, nil
		}
	}
	return UnknownState, errs.NewInvalidInputError(
		fmt.Sprintf("state must be one of: %s", strings.Join(StateNames(), ", ")),
	)
}

// StateNames returns the wire names in lifecycle order.
func StateNames() []string {
	names := make([]string, 0, len(stateFlow))
	for _, s := range stateFlow {
		names = append(names, s.String())
	}
	return names
}

// String returns the wire name, or "UNKNOWN" for invalid values.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate returns an InvalidInput error for values outside the lifecycle.
func (s State) Validate() error {
	if _, ok := getStateStrings()[s]; !ok {
		return errs.NewInvalidInputError(fmt.Sprintf("state is invalid: %d is not a valid state", s))
	}
	return nil
}

// IsTerminal reports whether no transition can leave s.
func (s State) IsTerminal() bool {
	return s == Completed
}

func (s State) index() int {
	for i, candidate := range stateFlow {
		if candidate == s {
			return i
		}
	}
	return -1
}

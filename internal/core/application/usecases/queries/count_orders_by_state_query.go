// Package queries holds read-side queries that go straight to the database
// and bypass the aggregates.
package queries

import (
	"errors"

	"laborders/internal/core/domain/model/order"
	"laborders/internal/pkg/guard"
)

var (
	ErrCountOrdersByStateQueryIsNotConstructed = errors.New(
		"CountOrdersByStateQuery must be created via NewCountOrdersByStateQuery constructor",
	)
)

// CountOrdersByStateQuery counts ACTIVE orders per lifecycle state.
//
// Example:
//
//	query := NewCountOrdersByStateQuery()
//	handler := NewCountOrdersByStateQueryHandler(db)
//
//	counts, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("count orders: %w", err)
//	}
//	for _, c := range counts {
//	    fmt.Printf("%s: %d\n", c.State, c.Count)
//	}
type CountOrdersByStateQuery struct {
	guard guard.ConstructorGuard
}

// NewCountOrdersByStateQuery creates the parameterless query.
func NewCountOrdersByStateQuery() CountOrdersByStateQuery {
	return CountOrdersByStateQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CountOrdersByStateQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersByStateQueryIsNotConstructed)
}

// CountOrdersByStateQueryResponse is the number of ACTIVE orders in one state.
type CountOrdersByStateQueryResponse struct {
	State order.State
	Count int64
}

package queries

import (
	"context"
	"fmt"

	"laborders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// CountOrdersByStateQueryHandler runs CountOrdersByStateQuery against the orders table.
type CountOrdersByStateQueryHandler struct {
	db *gorm.DB
}

// NewCountOrdersByStateQueryHandler creates a handler bound to db.
func NewCountOrdersByStateQueryHandler(db *gorm.DB) CountOrdersByStateQueryHandler {
	return CountOrdersByStateQueryHandler{db: db}
}

// Handle returns one entry per lifecycle state, in lifecycle order.
// States without orders are reported with a zero count.
func (h CountOrdersByStateQueryHandler) Handle(
	ctx context.Context,
	query CountOrdersByStateQuery,
) ([]CountOrdersByStateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			state,
			COUNT(*)
		FROM orders
		WHERE status = ?
		GROUP BY state
	`, order.Active.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[order.State]int64)
	for rows.Next() {
		var name string
		var count int64
		if err = rows.Scan(&name, &count); err != nil {
			return nil, err
		}

		state, parseErr := order.ParseState(name)
		if parseErr != nil {
			return nil, fmt.Errorf("unexpected state %q in orders table: %w", name, parseErr)
		}
		counts[state] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	states := order.States()
	response := make([]CountOrdersByStateQueryResponse, 0, len(states))
	for _, state := range states {
		response = append(response, CountOrdersByStateQueryResponse{State: state, Count: counts[state]})
	}
	return response, nil
}

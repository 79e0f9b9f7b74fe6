// Package queries contains read-side operations of the CQRS split. Query
// handlers bypass the aggregates and repositories entirely and read
// projection rows straight from the database.
package queries

import (
	"errors"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves order summaries for the board view, optionally
// filtered by status and capped by a limit.
//
// Example:
//
//	query, _ := NewGetOrdersQuery("open", 50)
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type GetOrdersQuery struct {
	status order.Status // empty means all statuses
	limit  int          // non-positive means no limit

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for order summaries. An empty status
// means no status filter; a non-positive limit means no limit.
func NewGetOrdersQuery(status string, limit int) (GetOrdersQuery, error) {
	q := GetOrdersQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}

	if status != "" {
		s, err := order.NewStatus(status)
		if err != nil {
			return GetOrdersQuery{}, err
		}
		q.status = s
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter, empty when unset.
func (q GetOrdersQuery) Status() order.Status {
	return q.status
}

// Limit returns the row cap, non-positive when unset.
func (q GetOrdersQuery) Limit() int {
	return q.limit
}

// GetOrdersQueryResponse is one row of the order board: identity, status,
// and the money rollup the till displays.
type GetOrdersQueryResponse struct {
	ID              kernel.UUID
	TableIdentifier string
	Status          order.Status
	ItemCount       int
	Subtotal        kernel.Money
	ExtrasTotal     kernel.Money
	Discount        kernel.Money
	Total           kernel.Money
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

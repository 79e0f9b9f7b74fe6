package queries

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var ErrGetActiveProductsQueryIsNotConstructed = errors.New(
	"GetActiveProductsQuery must be created via NewGetActiveProductsQuery constructor",
)

// GetActiveProductsQuery retrieves the orderable part of the catalog, the
// list a till screen shows when building an order.
type GetActiveProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveProductsQuery creates a parameterless query for active products.
func NewGetActiveProductsQuery() GetActiveProductsQuery {
	return GetActiveProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveProductsQueryIsNotConstructed)
}

// GetActiveProductsQueryResponse is one orderable catalog entry.
type GetActiveProductsQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       kernel.Money
}

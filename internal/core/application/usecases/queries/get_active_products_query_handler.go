package queries

import (
	"context"

	"pos/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveProductsQueryHandler reads the orderable catalog from the database.
type GetActiveProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveProductsQueryHandler creates a handler for catalog queries.
func NewGetActiveProductsQueryHandler(db *gorm.DB) GetActiveProductsQueryHandler {
	return GetActiveProductsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by name for stable menus.
func (h GetActiveProductsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveProductsQuery,
) ([]GetActiveProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price_cents
		FROM products
		WHERE is_active
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]GetActiveProductsQueryResponse, 0)
	for rows.Next() {
		var resp GetActiveProductsQueryResponse
		var id uuid.UUID
		var priceCents int64

		if err = rows.Scan(&id, &resp.Name, &resp.Description, &priceCents); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = productID
		resp.Price = kernel.MoneyFromCents(priceCents)

		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

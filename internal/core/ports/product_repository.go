package ports

import (
	"context"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the product catalog.
type ProductRepository interface {
	// Add persists a new catalog entry.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing catalog entry.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAllActive retrieves the products currently orderable.
	GetAllActive(ctx context.Context) ([]*product.Product, error)
}

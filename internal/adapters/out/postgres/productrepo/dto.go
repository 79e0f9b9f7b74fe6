// Package productrepo provides data transfer objects and mapping functions
// for catalog persistence.
package productrepo

import (
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO is the products table row.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"index"`
	Description string
	PriceCents  int64
	CostCents   int64
	IsActive    bool `gorm:"index"`
}

// TableName specifies the database table name for catalog rows.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		PriceCents:  aggregate.Price().Cents(),
		CostCents:   aggregate.Cost().Cents(),
		IsActive:    aggregate.IsActive(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Description,
		kernel.MoneyFromCents(dto.PriceCents), kernel.MoneyFromCents(dto.CostCents), dto.IsActive)
}

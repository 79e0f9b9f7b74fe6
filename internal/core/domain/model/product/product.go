package product

import (
	"errors"
	"strings"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

// Domain errors for the product catalog.
var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")
	// ErrNameIsTooShort is returned when a product name has fewer than three
	// characters.
	ErrNameIsTooShort = errs.NewValueIsInvalidError("product name must be at least 3 characters")
	// ErrPriceBelowCost is returned when a product would be sold below its
	// cost price.
	ErrPriceBelowCost = errs.NewValueIsInvalidError("price must not be below cost")
)

// Product is a catalog entry: what can be put on an order and at what price.
// The sale price is not allowed to drop below the cost price; deactivating a
// product hides it from new orders without touching orders that already
// reference it.
type Product struct {
	id          kernel.UUID
	name        string
	description string
	price       kernel.Money
	cost        kernel.Money
	isActive    bool

	guard guard.ConstructorGuard
}

// NewProduct creates an active catalog entry.
func NewProduct(id kernel.UUID, name, description string, price, cost kernel.Money) (*Product, error) {
	p := &Product{
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPricing(price, cost),
	); err != nil {
		return nil, err
	}

	p.description = description
	return p, nil
}

// RestoreProduct reconstructs a product from persisted state.
func RestoreProduct(id kernel.UUID, name, description string, price, cost kernel.Money, isActive bool) (*Product, error) {
	p, err := NewProduct(id, name, description, price, cost)
	if err != nil {
		return nil, err
	}

	p.isActive = isActive
	return p, nil
}

// Validate ensures the Product instance was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || p.guard.Validate(ErrProductIsNotConstructed) != nil {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the free-form description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the sale price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Cost returns the cost price.
func (p *Product) Cost() kernel.Money {
	return p.cost
}

// IsActive reports whether the product may be added to new orders.
func (p *Product) IsActive() bool {
	return p.isActive
}

// Rename changes the display name, keeping the minimum-length rule.
func (p *Product) Rename(name string) error {
	return p.setName(name)
}

// ChangeDescription replaces the free-form description.
func (p *Product) ChangeDescription(description string) {
	p.description = description
}

// ChangePrice updates the sale price, which must still cover the cost.
func (p *Product) ChangePrice(price kernel.Money) error {
	return p.setPricing(price, p.cost)
}

// ChangeCost updates the cost price. The current sale price must still
// cover it.
func (p *Product) ChangeCost(cost kernel.Money) error {
	return p.setPricing(p.price, cost)
}

// Activate makes the product orderable again.
func (p *Product) Activate() {
	p.isActive = true
}

// Deactivate hides the product from new orders.
func (p *Product) Deactivate() {
	p.isActive = false
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if len(strings.TrimSpace(name)) < 3 {
		return ErrNameIsTooShort
	}
	p.name = name
	return nil
}

func (p *Product) setPricing(price, cost kernel.Money) error {
	if price.LessThan(cost) {
		return ErrPriceBelowCost
	}
	p.price = price
	p.cost = cost
	return nil
}

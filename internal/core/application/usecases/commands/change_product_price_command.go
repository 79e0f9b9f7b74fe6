package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var ErrChangeProductPriceCommandIsNotConstructed = errors.New(
	"ChangeProductPriceCommand must be created via NewChangeProductPriceCommand constructor",
)

// ChangeProductPriceCommand represents a request to reprice a catalog entry.
// Orders that already carry the product keep their captured unit price.
type ChangeProductPriceCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	price     kernel.Money

	guard guard.ConstructorGuard
}

// NewChangeProductPriceCommand creates a command to change a product's sale
// price. The price-covers-cost rule is enforced by the aggregate, which knows
// the current cost.
func NewChangeProductPriceCommand(productID kernel.UUID, price kernel.Money) (ChangeProductPriceCommand, error) {
	cmd := ChangeProductPriceCommand{
		price: price,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setProductID(productID); err != nil {
		return ChangeProductPriceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeProductPriceCommand) Validate() error {
	return c.guard.Validate(ErrChangeProductPriceCommandIsNotConstructed)
}

// ProductID returns the product to reprice.
func (c ChangeProductPriceCommand) ProductID() kernel.UUID {
	return c.productID
}

// Price returns the new sale price.
func (c ChangeProductPriceCommand) Price() kernel.Money {
	return c.price
}

func (c *ChangeProductPriceCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

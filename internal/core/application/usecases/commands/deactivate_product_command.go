package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var ErrDeactivateProductCommandIsNotConstructed = errors.New(
	"DeactivateProductCommand must be created via NewDeactivateProductCommand constructor",
)

// DeactivateProductCommand represents a request to hide a product from new
// orders. Existing orders keep their captured prices.
type DeactivateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivateProductCommand creates a command to deactivate a product.
func NewDeactivateProductCommand(productID kernel.UUID) (DeactivateProductCommand, error) {
	cmd := DeactivateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setProductID(productID); err != nil {
		return DeactivateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeactivateProductCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateProductCommandIsNotConstructed)
}

// ProductID returns the product to deactivate.
func (c DeactivateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *DeactivateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

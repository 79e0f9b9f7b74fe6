package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/guard"
)

var ErrRemoveOrderDiscountCommandIsNotConstructed = errors.New(
	"RemoveOrderDiscountCommand must be created via NewRemoveOrderDiscountCommand constructor",
)

// RemoveOrderDiscountCommand represents a request to clear an order's discount.
type RemoveOrderDiscountCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOrderDiscountCommand creates a command to clear a discount.
func NewRemoveOrderDiscountCommand(orderID kernel.UUID) (RemoveOrderDiscountCommand, error) {
	cmd := RemoveOrderDiscountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return RemoveOrderDiscountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderDiscountCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderDiscountCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c RemoveOrderDiscountCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RemoveOrderDiscountCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var ErrRemoveOrderItemCommandIsNotConstructed = errors.New(
	"RemoveOrderItemCommand must be created via NewRemoveOrderItemCommand constructor",
)

// RemoveOrderItemCommand represents a request to take a product off an order.
type RemoveOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID string

	guard guard.ConstructorGuard
}

// NewRemoveOrderItemCommand creates a command to remove an item.
func NewRemoveOrderItemCommand(orderID kernel.UUID, productID string) (RemoveOrderItemCommand, error) {
	cmd := RemoveOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
	); err != nil {
		return RemoveOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderItemCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c RemoveOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the product to remove.
func (c RemoveOrderItemCommand) ProductID() string {
	return c.productID
}

func (c *RemoveOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveOrderItemCommand) setProductID(productID string) error {
	if productID == "" {
		return order.ErrProductIDIsRequired
	}

	c.productID = productID
	return nil
}

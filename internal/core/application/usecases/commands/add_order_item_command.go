package commands

import (
	"errors"
	"fmt"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var ErrAddOrderItemCommandIsNotConstructed = errors.New(
	"AddOrderItemCommand must be created via NewAddOrderItemCommand constructor",
)

// AddOrderItemCommand represents a request to put a product on an open order.
type AddOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID string
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddOrderItemCommand creates a command to add an item to an order.
func NewAddOrderItemCommand(orderID kernel.UUID, productID string, quantity int) (AddOrderItemCommand, error) {
	cmd := AddOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderItemCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c AddOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the product to add.
func (c AddOrderItemCommand) ProductID() string {
	return c.productID
}

// Quantity returns the number of units to add.
func (c AddOrderItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderItemCommand) setProductID(productID string) error {
	if productID == "" {
		return order.ErrProductIDIsRequired
	}

	c.productID = productID
	return nil
}

func (c *AddOrderItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: got %d", order.ErrQuantityIsInvalid, quantity)
	}

	c.quantity = quantity
	return nil
}

package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var (
	ErrChangeOrderItemQuantityCommandIsNotConstructed = errors.New(
		"ChangeOrderItemQuantityCommand must be created via NewChangeOrderItemQuantityCommand constructor",
	)
	ErrDeltaIsRequired = errors.New("quantity delta must not be zero")
)

// ChangeOrderItemQuantityCommand represents a request to adjust an item's
// quantity by a relative delta. A delta that brings the quantity to zero or
// below removes the line.
type ChangeOrderItemQuantityCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	productID string
	delta     int

	guard guard.ConstructorGuard
}

// NewChangeOrderItemQuantityCommand creates a command to adjust an item
// quantity. The delta may be negative but not zero.
func NewChangeOrderItemQuantityCommand(orderID kernel.UUID, productID string, delta int) (ChangeOrderItemQuantityCommand, error) {
	cmd := ChangeOrderItemQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
		cmd.setDelta(delta),
	); err != nil {
		return ChangeOrderItemQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderItemQuantityCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c ChangeOrderItemQuantityCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductID returns the product whose quantity changes.
func (c ChangeOrderItemQuantityCommand) ProductID() string {
	return c.productID
}

// Delta returns the relative quantity adjustment.
func (c ChangeOrderItemQuantityCommand) Delta() int {
	return c.delta
}

func (c *ChangeOrderItemQuantityCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderItemQuantityCommand) setProductID(productID string) error {
	if productID == "" {
		return order.ErrProductIDIsRequired
	}

	c.productID = productID
	return nil
}

func (c *ChangeOrderItemQuantityCommand) setDelta(delta int) error {
	if delta == 0 {
		return ErrDeltaIsRequired
	}

	c.delta = delta
	return nil
}

package commands

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
	"pos/internal/pkg/guard"
)

var ErrRemoveOrderExtraCommandIsNotConstructed = errors.New(
	"RemoveOrderExtraCommand must be created via NewRemoveOrderExtraCommand constructor",
)

// RemoveOrderExtraCommand represents a request to drop a surcharge by its
// insertion index.
type RemoveOrderExtraCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	index   int

	guard guard.ConstructorGuard
}

// NewRemoveOrderExtraCommand creates a command to remove an extra charge.
// The index is only range-checked against the actual order inside the
// transaction; here it merely must not be negative.
func NewRemoveOrderExtraCommand(orderID kernel.UUID, index int) (RemoveOrderExtraCommand, error) {
	cmd := RemoveOrderExtraCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setIndex(index),
	); err != nil {
		return RemoveOrderExtraCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderExtraCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderExtraCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c RemoveOrderExtraCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Index returns the insertion index of the extra to remove.
func (c RemoveOrderExtraCommand) Index() int {
	return c.index
}

func (c *RemoveOrderExtraCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveOrderExtraCommand) setIndex(index int) error {
	if index < 0 {
		return errs.NewValueIsInvalidError("extra index must not be negative")
	}

	c.index = index
	return nil
}

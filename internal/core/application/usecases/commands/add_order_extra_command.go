package commands

import (
	"errors"
	"strings"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var ErrAddOrderExtraCommandIsNotConstructed = errors.New(
	"AddOrderExtraCommand must be created via NewAddOrderExtraCommand constructor",
)

// AddOrderExtraCommand represents a request to append a surcharge to an order.
type AddOrderExtraCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	amount      kernel.Money
	description string

	guard guard.ConstructorGuard
}

// NewAddOrderExtraCommand creates a command to append an extra charge.
func NewAddOrderExtraCommand(orderID kernel.UUID, amount kernel.Money, description string) (AddOrderExtraCommand, error) {
	cmd := AddOrderExtraCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAmount(amount),
		cmd.setDescription(description),
	); err != nil {
		return AddOrderExtraCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderExtraCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderExtraCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c AddOrderExtraCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount returns the surcharge amount.
func (c AddOrderExtraCommand) Amount() kernel.Money {
	return c.amount
}

// Description returns the surcharge description.
func (c AddOrderExtraCommand) Description() string {
	return c.description
}

func (c *AddOrderExtraCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderExtraCommand) setAmount(amount kernel.Money) error {
	if amount.IsZero() {
		return order.ErrExtraAmountIsInvalid
	}

	c.amount = amount
	return nil
}

func (c *AddOrderExtraCommand) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return order.ErrExtraDescriptionIsRequired
	}

	c.description = description
	return nil
}

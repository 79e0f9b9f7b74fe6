package commands

import (
	"errors"
	"strings"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var ErrApplyOrderDiscountCommandIsNotConstructed = errors.New(
	"ApplyOrderDiscountCommand must be created via NewApplyOrderDiscountCommand constructor",
)

// ApplyOrderDiscountCommand represents a request to set an order's discount,
// replacing any existing one.
type ApplyOrderDiscountCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	amount  kernel.Money
	reason  string

	guard guard.ConstructorGuard
}

// NewApplyOrderDiscountCommand creates a command to apply a discount. The
// amount must be positive and the reason non-blank; the ceiling against the
// order total is checked by the aggregate inside the transaction.
func NewApplyOrderDiscountCommand(orderID kernel.UUID, amount kernel.Money, reason string) (ApplyOrderDiscountCommand, error) {
	cmd := ApplyOrderDiscountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAmount(amount),
		cmd.setReason(reason),
	); err != nil {
		return ApplyOrderDiscountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyOrderDiscountCommand) Validate() error {
	return c.guard.Validate(ErrApplyOrderDiscountCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c ApplyOrderDiscountCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount returns the discount amount.
func (c ApplyOrderDiscountCommand) Amount() kernel.Money {
	return c.amount
}

// Reason returns the discount justification.
func (c ApplyOrderDiscountCommand) Reason() string {
	return c.reason
}

func (c *ApplyOrderDiscountCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ApplyOrderDiscountCommand) setAmount(amount kernel.Money) error {
	if amount.IsZero() {
		return order.ErrDiscountAmountIsInvalid
	}

	c.amount = amount
	return nil
}

func (c *ApplyOrderDiscountCommand) setReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return order.ErrDiscountReasonIsRequired
	}

	c.reason = reason
	return nil
}

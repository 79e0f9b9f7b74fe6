package commands

import (
	"errors"
	"fmt"
	"strings"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// ItemPatch is a desired line item inside an order update: product, quantity,
// and the unit price the line should carry.
type ItemPatch struct {
	ProductID string
	Quantity  int
	UnitPrice kernel.Money
}

// DiscountPatch is a desired discount inside an order update.
type DiscountPatch struct {
	Amount kernel.Money
	Reason string
}

// ExtraPatch is a desired surcharge inside an order update.
type ExtraPatch struct {
	Amount      kernel.Money
	Description string
}

// UpdateOrderCommand carries a partial desired state for an order. Every
// field is tri-state: a nil pointer leaves the current value untouched, a
// non-nil pointer replaces it. The discount additionally distinguishes
// "remove" (provided but nil patch) from "leave unchanged" (not provided),
// mirroring the null-versus-absent distinction of a JSON merge patch.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	tableIdentifier  *string
	status           *order.Status
	items            *[]ItemPatch
	discountProvided bool
	discount         *DiscountPatch
	extras           *[]ExtraPatch

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates an order update command. Only shallow field
// validation happens here; whole-state rules are checked against the
// assembled candidate by the handler.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	tableIdentifier *string,
	status *string,
	items *[]ItemPatch,
	discountProvided bool,
	discount *DiscountPatch,
	extras *[]ExtraPatch,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		discountProvided: discountProvided,
		items:            items,
		extras:           extras,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTableIdentifier(tableIdentifier),
		cmd.setStatus(status),
		cmd.setItems(items),
		cmd.setDiscount(discountProvided, discount),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TableIdentifier returns the desired table, or nil to leave it unchanged.
func (c UpdateOrderCommand) TableIdentifier() *string {
	return c.tableIdentifier
}

// Status returns the desired status, or nil to leave it unchanged.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

// Items returns the desired item list, or nil to leave items unchanged.
// A pointer to an empty slice clears all items.
func (c UpdateOrderCommand) Items() *[]ItemPatch {
	return c.items
}

// DiscountProvided reports whether the update addresses the discount at all.
func (c UpdateOrderCommand) DiscountProvided() bool {
	return c.discountProvided
}

// Discount returns the desired discount. Only meaningful when
// DiscountProvided is true; nil then means "remove".
func (c UpdateOrderCommand) Discount() *DiscountPatch {
	return c.discount
}

// Extras returns the desired extras, or nil to leave them unchanged.
func (c UpdateOrderCommand) Extras() *[]ExtraPatch {
	return c.extras
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setTableIdentifier(tableIdentifier *string) error {
	if tableIdentifier != nil && *tableIdentifier == "" {
		return order.ErrTableIdentifierIsRequired
	}

	c.tableIdentifier = tableIdentifier
	return nil
}

func (c *UpdateOrderCommand) setStatus(status *string) error {
	if status == nil {
		return nil
	}

	s, err := order.NewStatus(*status)
	if err != nil {
		return err
	}

	c.status = &s
	return nil
}

func (c *UpdateOrderCommand) setItems(items *[]ItemPatch) error {
	if items == nil {
		return nil
	}

	for _, item := range *items {
		if item.ProductID == "" {
			return order.ErrProductIDIsRequired
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: got %d", order.ErrQuantityIsInvalid, item.Quantity)
		}
	}

	return nil
}

func (c *UpdateOrderCommand) setDiscount(provided bool, discount *DiscountPatch) error {
	if !provided || discount == nil {
		return nil
	}

	if discount.Amount.IsZero() {
		return order.ErrDiscountAmountIsInvalid
	}
	if strings.TrimSpace(discount.Reason) == "" {
		return order.ErrDiscountReasonIsRequired
	}

	c.discount = discount
	return nil
}

package commands

import (
	"errors"
	"fmt"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// ItemSpec names a product and a quantity. Unit prices are resolved from the
// catalog by the handler, never supplied by the caller.
type ItemSpec struct {
	ProductID string
	Quantity  int
}

// CreateOrderCommand represents a request to open a new order for a table,
// optionally seeded with items.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "table-7", []ItemSpec{{ProductID: id, Quantity: 2}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	tableIdentifier string
	items           []ItemSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order. Validates that
// the order ID is valid, the table identifier is not empty, and every item
// spec names a product with a positive quantity.
func NewCreateOrderCommand(orderID kernel.UUID, tableIdentifier string, items []ItemSpec) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setTableIdentifier(tableIdentifier),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TableIdentifier returns the table the order belongs to.
func (c CreateOrderCommand) TableIdentifier() string {
	return c.tableIdentifier
}

// Items returns the initial item specs.
func (c CreateOrderCommand) Items() []ItemSpec {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setTableIdentifier(tableIdentifier string) error {
	if tableIdentifier == "" {
		return order.ErrTableIdentifierIsRequired
	}

	c.tableIdentifier = tableIdentifier
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemSpec) error {
	for _, item := range items {
		if item.ProductID == "" {
			return order.ErrProductIDIsRequired
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: got %d", order.ErrQuantityIsInvalid, item.Quantity)
		}
	}

	c.items = items
	return nil
}

package commands

import (
	"errors"
	"strings"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/product"
	"pos/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	price       kernel.Money
	cost        kernel.Money

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a catalog entry.
func NewCreateProductCommand(productID kernel.UUID, name, description string, price, cost kernel.Money) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		description: description,
		cost:        cost,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setPrice(price, cost),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the display name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the free-form description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Price returns the sale price.
func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

// Cost returns the cost price.
func (c CreateProductCommand) Cost() kernel.Money {
	return c.cost
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if len(strings.TrimSpace(name)) < 3 {
		return product.ErrNameIsTooShort
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price, cost kernel.Money) error {
	if price.LessThan(cost) {
		return product.ErrPriceBelowCost
	}

	c.price = price
	return nil
}

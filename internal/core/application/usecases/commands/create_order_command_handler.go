package commands

import (
	"context"
	"errors"
	"fmt"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for opening an order.
// Item prices are captured from the catalog at creation time, so later price
// changes never affect orders already taken.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires a UoWFactory spanning orders and the catalog.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle opens a new order for the table named by the command. Each item spec
// is priced by looking up its product; inactive or unknown products fail the
// whole command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	items := make([]order.OrderItem, 0, len(cmd.Items()))
	for _, spec := range cmd.Items() {
		productID, err := kernel.UUIDFromString(spec.ProductID)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrProductNotFound, spec.ProductID)
		}

		p, err := productRepo.Get(ctx, productID)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return fmt.Errorf("%w: %s", ErrProductNotFound, spec.ProductID)
			}
			return err
		}
		if !p.IsActive() {
			return fmt.Errorf("%w: %s", ErrProductIsNotActive, spec.ProductID)
		}

		item, err := order.NewOrderItem(spec.ProductID, spec.Quantity, p.Price())
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.TableIdentifier(), items)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

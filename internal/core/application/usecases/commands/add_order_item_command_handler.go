package commands

import (
	"context"
	"errors"
	"fmt"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/pkg/errs"
)

// AddOrderItemCommandHandler adds a catalog product to an open order at the
// product's current price. If the product is already on the order its
// quantity is incremented and the originally captured price kept.
type AddOrderItemCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddOrderItemCommandHandler creates a handler for adding order items.
func NewAddOrderItemCommandHandler(uowFactory UoWFactory) AddOrderItemCommandHandler {
	return AddOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command.
func (h *AddOrderItemCommandHandler) Handle(ctx context.Context, cmd AddOrderItemCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	productID, err := kernel.UUIDFromString(cmd.ProductID())
	if err != nil {
		return fmt.Errorf("%w: %s", ErrProductNotFound, cmd.ProductID())
	}

	p, err := uow.ProductRepository().Get(ctx, productID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return fmt.Errorf("%w: %s", ErrProductNotFound, cmd.ProductID())
		}
		return err
	}
	if !p.IsActive() {
		return fmt.Errorf("%w: %s", ErrProductIsNotActive, cmd.ProductID())
	}

	if err = o.AddItem(cmd.ProductID(), cmd.Quantity(), p.Price()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

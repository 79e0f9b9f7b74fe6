package commands

import (
	"context"
	"errors"

	"pos/internal/pkg/errs"
)

// RemoveOrderDiscountCommandHandler clears the discount on an open order.
// Removing an absent discount is a no-op write, not an error.
type RemoveOrderDiscountCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveOrderDiscountCommandHandler creates a handler for discount removal.
func NewRemoveOrderDiscountCommandHandler(uowFactory OrderUoWFactory) RemoveOrderDiscountCommandHandler {
	return RemoveOrderDiscountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command.
func (h *RemoveOrderDiscountCommandHandler) Handle(ctx context.Context, cmd RemoveOrderDiscountCommand) error {
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

	if err = o.RemoveDiscount(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

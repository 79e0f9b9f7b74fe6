package commands

import (
	"context"
	"errors"

	"pos/internal/pkg/errs"
)

// ChangeOrderItemQuantityCommandHandler applies a relative quantity
// adjustment to one line of an open order.
type ChangeOrderItemQuantityCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderItemQuantityCommandHandler creates a handler for quantity adjustments.
func NewChangeOrderItemQuantityCommandHandler(uowFactory OrderUoWFactory) ChangeOrderItemQuantityCommandHandler {
	return ChangeOrderItemQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command.
func (h *ChangeOrderItemQuantityCommandHandler) Handle(ctx context.Context, cmd ChangeOrderItemQuantityCommand) error {
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

	if err = o.UpdateItemQuantity(cmd.ProductID(), cmd.Delta()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

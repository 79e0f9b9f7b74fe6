package commands

import (
	"context"
	"errors"

	"pos/internal/pkg/errs"
)

// ApplyOrderDiscountCommandHandler sets or replaces the discount on an open
// order.
type ApplyOrderDiscountCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewApplyOrderDiscountCommandHandler creates a handler for discount application.
func NewApplyOrderDiscountCommandHandler(uowFactory OrderUoWFactory) ApplyOrderDiscountCommandHandler {
	return ApplyOrderDiscountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command.
func (h *ApplyOrderDiscountCommandHandler) Handle(ctx context.Context, cmd ApplyOrderDiscountCommand) error {
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

	if err = o.ApplyDiscount(cmd.Amount(), cmd.Reason()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

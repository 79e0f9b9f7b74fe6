package commands

import (
	"context"
	"errors"

	"pos/internal/pkg/errs"
)

// RemoveOrderExtraCommandHandler drops a surcharge from an open order.
// Like item removal, the aggregate re-validates the discount afterwards.
type RemoveOrderExtraCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveOrderExtraCommandHandler creates a handler for extra removal.
func NewRemoveOrderExtraCommandHandler(uowFactory OrderUoWFactory) RemoveOrderExtraCommandHandler {
	return RemoveOrderExtraCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command.
func (h *RemoveOrderExtraCommandHandler) Handle(ctx context.Context, cmd RemoveOrderExtraCommand) error {
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

	if err = o.RemoveExtra(cmd.Index()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

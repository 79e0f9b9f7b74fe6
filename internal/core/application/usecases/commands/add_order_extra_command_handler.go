package commands

import (
	"context"
	"errors"

	"pos/internal/pkg/errs"
)

// AddOrderExtraCommandHandler appends a surcharge to an open order.
type AddOrderExtraCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddOrderExtraCommandHandler creates a handler for adding extras.
func NewAddOrderExtraCommandHandler(uowFactory OrderUoWFactory) AddOrderExtraCommandHandler {
	return AddOrderExtraCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command.
func (h *AddOrderExtraCommandHandler) Handle(ctx context.Context, cmd AddOrderExtraCommand) error {
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

	if err = o.AddExtra(cmd.Amount(), cmd.Description()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

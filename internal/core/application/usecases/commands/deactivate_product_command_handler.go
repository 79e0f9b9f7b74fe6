package commands

import (
	"context"
	"errors"

	"pos/internal/pkg/errs"
)

// DeactivateProductCommandHandler hides a catalog entry from new orders.
type DeactivateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewDeactivateProductCommandHandler creates a handler for product deactivation.
func NewDeactivateProductCommandHandler(uowFactory ProductUoWFactory) DeactivateProductCommandHandler {
	return DeactivateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command.
func (h *DeactivateProductCommandHandler) Handle(ctx context.Context, cmd DeactivateProductCommand) error {
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
	p, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	p.Deactivate()

	if err = productRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"errors"

	"pos/internal/pkg/errs"
)

// ChangeProductPriceCommandHandler reprices a catalog entry.
type ChangeProductPriceCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewChangeProductPriceCommandHandler creates a handler for price changes.
func NewChangeProductPriceCommandHandler(uowFactory ProductUoWFactory) ChangeProductPriceCommandHandler {
	return ChangeProductPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command.
func (h *ChangeProductPriceCommandHandler) Handle(ctx context.Context, cmd ChangeProductPriceCommand) error {
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

	if err = p.ChangePrice(cmd.Price()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

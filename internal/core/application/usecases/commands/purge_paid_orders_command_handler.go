package commands

import (
	"context"
	"time"
)

// PurgePaidOrdersCommandHandler deletes paid orders whose last update lies
// outside the retention window. Runs from the scheduled purge job.
type PurgePaidOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPurgePaidOrdersCommandHandler creates a handler for the retention purge.
func NewPurgePaidOrdersCommandHandler(uowFactory OrderUoWFactory) PurgePaidOrdersCommandHandler {
	return PurgePaidOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes expired paid orders and returns how many were removed.
func (h *PurgePaidOrdersCommandHandler) Handle(ctx context.Context, cmd PurgePaidOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	cutoff := time.Now().UTC().Add(-cmd.Retention())
	expired, err := orderRepo.GetAllPaidBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, o := range expired {
		if err = orderRepo.Delete(ctx, o.ID()); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(expired), nil
}

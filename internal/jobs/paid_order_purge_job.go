package jobs

import (
	"context"
	"log/slog"
	"time"

	"pos/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PaidOrderPurgeJob deletes paid orders that have aged past the retention
// window. Keeps the orders table bounded to the working set of open and
// recently closed orders.
type PaidOrderPurgeJob struct {
	handler   commands.PurgePaidOrdersCommandHandler
	schedule  string
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewPaidOrderPurgeJob creates a purge job with the given six-field cron
// schedule and retention window.
func NewPaidOrderPurgeJob(
	handler commands.PurgePaidOrdersCommandHandler,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *PaidOrderPurgeJob {
	return &PaidOrderPurgeJob{
		handler:   handler,
		schedule:  schedule,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "paid_order_purge_job"),
	}
}

// Start schedules the purge job.
func (j *PaidOrderPurgeJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewPurgePaidOrdersCommand(j.retention)
		if err != nil {
			j.logger.ErrorContext(ctx, "Paid order purge job misconfigured", "error", err)
			return
		}

		purged, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Paid order purge job failed", "error", err)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged paid orders", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Paid order purge job started",
		"schedule", j.schedule, "retention", j.retention.String())
	return nil
}

// Stop stops the purge job.
func (j *PaidOrderPurgeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Paid order purge job stopped")
}

package jobs

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleDeliveryJob manages the scheduled reclamation of abandoned
// deliveries. Runs every minute and force-returns in-transit records
// untouched for longer than the configured threshold.
type StaleDeliveryJob struct {
	handler    commands.ReleaseStaleDeliveriesCommandHandler
	staleAfter time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewStaleDeliveryJob creates a new job for reclaiming stale deliveries.
// Uses ReleaseStaleDeliveriesCommandHandler with the given inactivity
// threshold.
func NewStaleDeliveryJob(
	handler commands.ReleaseStaleDeliveriesCommandHandler,
	staleAfter time.Duration,
	logger *slog.Logger,
) *StaleDeliveryJob {
	return &StaleDeliveryJob{
		handler:    handler,
		staleAfter: staleAfter,
		cron:       cron.New(),
		logger:     logger.With("component", "stale_delivery_job"),
	}
}

// Start begins the stale delivery job to run every minute.
func (j *StaleDeliveryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewReleaseStaleDeliveriesCommand(j.staleAfter)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale delivery sweep misconfigured", "error", err)
			return
		}

		released, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale delivery sweep failed", "error", err)
			return
		}

		if released > 0 {
			j.logger.InfoContext(ctx, "Released stale deliveries back to backlog",
				"released", released, "stale_after", j.staleAfter)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale delivery job started (running every minute)",
		"stale_after", j.staleAfter)
	return nil
}

// Stop stops the stale delivery job.
func (j *StaleDeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale delivery job stopped")
}

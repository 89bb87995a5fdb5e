package jobs

import (
	"context"
	"log/slog"
	"time"

	"restaurant/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CartCleanupJob periodically purges cart lines that sat untouched longer
// than the retention window. Runs hourly.
type CartCleanupJob struct {
	handler   commands.PurgeStaleCartsCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewCartCleanupJob creates a new job for purging stale carts. Lines older
// than the retention window are deleted on each run.
func NewCartCleanupJob(
	handler commands.PurgeStaleCartsCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *CartCleanupJob {
	return &CartCleanupJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "cart_cleanup_job"),
	}
}

// Start begins the cart cleanup job to run at the top of every hour.
func (j *CartCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewPurgeStaleCartsCommand(time.Now().UTC().Add(-j.retention))
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Cart cleanup job failed to build command", "error", cmdErr)
			return
		}

		purged, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Cart cleanup job failed", "error", handleErr)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Stale cart lines purged", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart cleanup job started (running hourly)", "retention", j.retention)
	return nil
}

// Stop stops the cart cleanup job.
func (j *CartCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cart cleanup job stopped")
}

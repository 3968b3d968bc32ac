package jobs

import (
	"context"
	"log/slog"
	"time"

	"restaurant/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DelayWatchJob manages the scheduled sweep for stuck kitchen orders.
// Runs every 30 seconds to flag orders sitting in one kitchen state longer
// than the configured threshold.
type DelayWatchJob struct {
	handler   commands.FlagDelayedOrdersCommandHandler
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewDelayWatchJob creates a new job for the delay sweep.
// Uses FlagDelayedOrdersCommandHandler with the given threshold.
func NewDelayWatchJob(
	handler commands.FlagDelayedOrdersCommandHandler,
	threshold time.Duration,
	logger *slog.Logger,
) *DelayWatchJob {
	return &DelayWatchJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "delay_watch_job"),
	}
}

// Start begins the delay watch job to run every 30 seconds.
func (j *DelayWatchJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewFlagDelayedOrdersCommand(j.threshold)
		if err != nil {
			j.logger.ErrorContext(ctx, "Delay watch job misconfigured", "error", err)
			return
		}

		flagged, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Delay watch job failed", "error", err)
			return
		}
		if flagged > 0 {
			j.logger.InfoContext(ctx, "Delay watch flagged stuck orders", "count", flagged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delay watch job started (running every 30 seconds)")
	return nil
}

// Stop stops the delay watch job.
func (j *DelayWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delay watch job stopped")
}

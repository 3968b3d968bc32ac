// Package jobs provides scheduled background tasks for the restaurant
// engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. DelayWatchJob - Runs every 30 seconds to flag orders stuck in one kitchen state beyond the delay threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(flagDelayedHandler, 15*time.Minute, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The delay watch job logs sweep failures and keeps running; a table that
// cannot be flushed is retried on the next sweep.
package jobs

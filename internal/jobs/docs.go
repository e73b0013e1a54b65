// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the delivery marketplace.
//
// # Available Jobs
//
// 1. StaleDeliveryJob - Periodically force-returns in-transit deliveries
// whose driver has gone dark, putting them back in the available backlog.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(releaseStaleHandler, staleAfter, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The stale delivery job runs every minute. The inactivity threshold that
// decides when an in-transit record counts as abandoned is configuration
// (STALE_AFTER); the sweep itself is cheap when nothing qualifies.
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; a record the
// driver finished mid-sweep is skipped by the handler, not an error.
package jobs

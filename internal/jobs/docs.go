// Package jobs provides scheduled background tasks for the ordering backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. CartCleanupJob - Runs hourly to purge cart lines older than the
// configured retention window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(purgeStaleCartsHandler, cartRetention, logger)
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
// The cleanup job logs failures and keeps its schedule; a purge that deletes
// nothing is not an error and is not logged.
package jobs

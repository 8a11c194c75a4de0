// Package jobs provides scheduled background tasks for the point of sale
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance operations.
//
// # Available Jobs
//
// 1. TableGroupPurgeJob - Runs hourly to remove table groups that no order
// table references anymore.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(purgeHandler, 24*time.Hour, logger)
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
// - The purge job logs failures and carries on; a missed run is retried on
// the next schedule.
// - Failed job starts will stop any already running jobs.
package jobs

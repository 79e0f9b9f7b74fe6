// Package jobs provides scheduled background tasks for the point of sale
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping work.
//
// # Available Jobs
//
// 1. PaidOrderPurgeJob - Periodically deletes paid orders older than the
// configured retention window.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(purgeHandler, schedule, retention, logger)
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
// The purge job schedule is configured with a six-field cron expression
// (seconds included), so both coarse schedules like "0 0 3 * * *" (daily at
// 03:00) and tight ones for testing are supported.
package jobs

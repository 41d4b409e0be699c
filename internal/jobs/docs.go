// Package jobs provides scheduled background tasks for the bakery ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. PartnerAssignmentJob - Runs every five seconds to dispatch ready home
// delivery orders to available delivery partners
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(dispatchOrdersHandler, logger)
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
// The assignment job uses the cron expression "*/5 * * * * *" which means it
// runs every five seconds, keeping the ready backlog moving without hammering
// the database.
//
// # Error Handling
//
// - Assignment job ignores expected business errors (no orders, no partners)
// - Failed job starts will stop any already running jobs
package jobs

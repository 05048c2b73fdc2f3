// Package jobs provides scheduled background tasks for the in-store order
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic work the system needs.
//
// # Available Jobs
//
// 1. OrderRefreshJob - Runs every 30 seconds to re-pull tracked orders from
// the order service and reconcile the snapshots into local sessions.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(trackedHandler, refreshHandler, logger)
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
// A failed refresh of one order never blocks the rest of the sweep. Orders
// the service no longer knows about and transient remote failures are logged
// at warning level; anything else is an error.
package jobs

package jobs

import (
	"fmt"
	"log/slog"

	"instore/internal/core/application/usecases/commands"
	"instore/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderRefreshJob *OrderRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command and query handlers as dependencies to wire up job execution.
func NewJobManager(
	trackedHandler queries.GetTrackedOrdersQueryHandler,
	refreshHandler commands.RefreshOrderCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderRefreshJob: NewOrderRefreshJob(trackedHandler, refreshHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start order refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderRefreshJob.Stop()
}

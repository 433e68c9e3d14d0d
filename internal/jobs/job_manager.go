package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderProcessingJob *OrderProcessingJob
}

// NewJobManager creates a new job manager. An empty schedule disables order processing.
func NewJobManager(
	processHandler OrderBatchProcessor,
	schedule string,
	userIDs []int64,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if schedule != "" {
		jm.orderProcessingJob = NewOrderProcessingJob(processHandler, schedule, userIDs, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.orderProcessingJob == nil {
		return nil
	}

	if err := jm.orderProcessingJob.Start(); err != nil {
		return fmt.Errorf("failed to start order processing job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.orderProcessingJob != nil {
		jm.orderProcessingJob.Stop()
	}
}

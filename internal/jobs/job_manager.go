package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	redispatchJob *RedispatchJob
	reconcileJob  *ReconcileJob
}

func NewJobManager(redispatchJob *RedispatchJob, reconcileJob *ReconcileJob) *JobManager {
	return &JobManager{
		redispatchJob: redispatchJob,
		reconcileJob:  reconcileJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.redispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start redispatch job: %w", err)
	}

	if err := jm.reconcileJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.redispatchJob.Stop()
		return fmt.Errorf("failed to start reconcile job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reconcileJob.Stop()
	jm.redispatchJob.Stop()
}

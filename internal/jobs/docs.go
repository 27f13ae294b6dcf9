// Package jobs provides scheduled background tasks for the ordering service.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// 1. RedispatchJob - retries kitchen dispatches that failed while an order was placed
// 2. ReconcileJob - moves every unfinished order forward to its ticket's status
//
// # Usage
//
//	jobManager := jobs.NewJobManager(redispatchJob, reconcileJob)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the next tick tries again. Failed job starts stop any
// already running jobs.
package jobs

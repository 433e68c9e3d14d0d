// Package jobs provides scheduled background tasks for order processing.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OrderProcessingJob - runs the order processing batch for every configured user
// on a cron schedule with a seconds field, e.g. "0 */5 * * * *".
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(processHandler, cfg.ProcessingSchedule, cfg.ProcessingUserIDs, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// An empty schedule leaves the job disabled; batches are then only triggered over HTTP.
//
// # Overlap
//
// Ticks that fire while a run is still in progress are skipped, so two batches
// never run at the same time. A failed batch is logged and does not stop the job.
package jobs

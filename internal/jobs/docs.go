// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. CreditReconciliationJob - compares every partner's creditUsed with the sum of
// totals of its orders in Approved, Processing, Shipped or Delivered and logs a
// warning per mismatch. Read-only.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(discrepanciesHandler, metrics, cfg.ReconciliationSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions (seconds first). The default
// "0 */5 * * * *" runs every five minutes. A pass that is still running when
// the next one is due causes the next one to be skipped.
package jobs

// Package jobs provides scheduled background tasks for the logistics service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// LegAssignmentJob binds the best available courier to the oldest ready leg that some
// courier can take. A leg is ready once the leg before it is moving. It handles one
// leg per run.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(assignPendingLegHandler, "*/5 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions with a leading seconds field. The default
// runs every five seconds.
//
// # Error Handling
//
// The assignment job ignores expected business outcomes (nothing pending, no free
// courier) and logs everything else. A failed start is returned to the caller.
package jobs

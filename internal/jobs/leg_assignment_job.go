package jobs

import (
	"context"
	"errors"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// DefaultLegAssignmentSchedule runs the job every five seconds.
const DefaultLegAssignmentSchedule = "*/5 * * * * *"

// PendingLegAssigner is the use case the job drives.
type PendingLegAssigner interface {
	Handle(ctx context.Context, command commands.AssignPendingLegCommand) error
}

// LegAssignmentJob binds couriers to pending legs on a cron schedule, one leg per run.
type LegAssignmentJob struct {
	handler  PendingLegAssigner
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewLegAssignmentJob takes a six-field cron expression (seconds first). An empty
// schedule means DefaultLegAssignmentSchedule.
func NewLegAssignmentJob(handler PendingLegAssigner, schedule string, logger *slog.Logger) *LegAssignmentJob {
	if schedule == "" {
		schedule = DefaultLegAssignmentSchedule
	}
	return &LegAssignmentJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "leg_assignment_job"),
	}
}

// Start registers the job and starts the scheduler.
func (j *LegAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Leg assignment job started", "schedule", j.schedule)
	return nil
}

// RunOnce assigns at most one pending leg. Having nothing to assign and having no
// free courier are expected outcomes and are not logged as errors.
func (j *LegAssignmentJob) RunOnce(ctx context.Context) {
	err := j.handler.Handle(ctx, commands.NewAssignPendingLegCommand())
	switch {
	case err == nil:
		j.logger.DebugContext(ctx, "Pending leg assigned")
	case errors.Is(err, commands.ErrNoPendingLegFound):
	case errors.Is(err, services.ErrNoDriverAvailable):
		j.logger.DebugContext(ctx, "No courier for any ready leg", "error", err)
	default:
		j.logger.ErrorContext(ctx, "Leg assignment job failed", "error", err)
	}
}

// Stop stops the scheduler and waits for a running assignment to finish.
func (j *LegAssignmentJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Leg assignment job stopped")
}

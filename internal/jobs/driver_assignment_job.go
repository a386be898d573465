package jobs

import (
	"context"
	"errors"
	"log/slog"

	"parcel/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DriverAssignmentJob manages the scheduled matching of pending orders with
// available drivers. Runs every five seconds so a freshly placed order does
// not wait long for dispatch.
type DriverAssignmentJob struct {
	handler commands.AssignPendingOrderCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDriverAssignmentJob creates a new job for assigning drivers.
// Uses AssignPendingOrderCommandHandler to dispatch the oldest pending order.
func NewDriverAssignmentJob(handler commands.AssignPendingOrderCommandHandler, logger *slog.Logger) *DriverAssignmentJob {
	return &DriverAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "driver_assignment_job"),
	}
}

// Start begins the driver assignment job to run every five seconds.
func (j *DriverAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignPendingOrderCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty queue or an empty driver pool is not a failure.
			if !errors.Is(err, commands.ErrNoPendingOrderFound) &&
				!errors.Is(err, commands.ErrNoAvailableDriversFound) {
				j.logger.ErrorContext(ctx, "Driver assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver assignment job started (running every five seconds)")
	return nil
}

// Stop stops the driver assignment job.
func (j *DriverAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Driver assignment job stopped")
}

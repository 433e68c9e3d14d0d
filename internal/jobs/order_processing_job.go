package jobs

import (
	"context"
	"log/slog"

	"orderprocessing/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderBatchProcessor runs a processing batch for one user.
type OrderBatchProcessor interface {
	Handle(ctx context.Context, cmd commands.ProcessUserOrdersCommand) bool
}

// OrderProcessingJob periodically processes the orders of a fixed set of users.
// A run that is still busy when the next tick fires makes that tick skip.
type OrderProcessingJob struct {
	handler  OrderBatchProcessor
	schedule string
	userIDs  []int64
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderProcessingJob creates the job. schedule is a cron spec with a seconds field.
func NewOrderProcessingJob(
	handler OrderBatchProcessor,
	schedule string,
	userIDs []int64,
	logger *slog.Logger,
) *OrderProcessingJob {
	logger = logger.With("component", "order_processing_job")
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))

	return &OrderProcessingJob{
		handler:  handler,
		schedule: schedule,
		userIDs:  userIDs,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		logger: logger,
	}
}

// Start registers the schedule and starts the scheduler.
func (j *OrderProcessingJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order processing job started",
		"schedule", j.schedule, "users", len(j.userIDs))
	return nil
}

// Stop stops the scheduler and waits for a running batch to finish.
func (j *OrderProcessingJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order processing job stopped")
}

// RunOnce processes every configured user in order and returns how many batches succeeded.
func (j *OrderProcessingJob) RunOnce(ctx context.Context) int {
	succeeded := 0

	for _, userID := range j.userIDs {
		cmd, err := commands.NewProcessUserOrdersCommand(userID)
		if err != nil {
			j.logger.ErrorContext(ctx, "Skipping invalid user id", "user_id", userID, "error", err)
			continue
		}

		if j.handler.Handle(ctx, cmd) {
			succeeded++
		}
	}

	j.logger.InfoContext(ctx, "Order processing run finished",
		"users", len(j.userIDs), "succeeded", succeeded)
	return succeeded
}

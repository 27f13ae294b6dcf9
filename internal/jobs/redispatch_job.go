package jobs

import (
	"context"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const DefaultRedispatchSchedule = "*/5 * * * * *"

// RedispatchJob drains the dispatch queue on a schedule.
type RedispatchJob struct {
	handler  commands.RedispatchFailedCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

func NewRedispatchJob(handler commands.RedispatchFailedCommandHandler, schedule string, logger *zap.Logger) *RedispatchJob {
	if schedule == "" {
		schedule = DefaultRedispatchSchedule
	}
	return &RedispatchJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With(zap.String("component", "redispatch_job")),
	}
}

// Run performs a single pass.
func (j *RedispatchJob) Run(ctx context.Context) (commands.RedispatchResult, error) {
	result, err := j.handler.Handle(ctx, commands.NewRedispatchFailedCommand())
	if err != nil {
		j.logger.Error("Redispatch job failed", zap.Error(err))
		return result, err
	}
	if result.Dispatched > 0 || result.Dropped > 0 || result.Remaining > 0 {
		j.logger.Info("Redispatch pass finished",
			zap.Int("dispatched", result.Dispatched),
			zap.Int("dropped", result.Dropped),
			zap.Int("remaining", result.Remaining),
		)
	}
	return result, nil
}

func (j *RedispatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Redispatch job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop waits for a running pass to finish.
func (j *RedispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Redispatch job stopped")
}

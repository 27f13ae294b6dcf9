package jobs

import (
	"context"
	"errors"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const DefaultReconcileSchedule = "*/10 * * * * *"

// ReconcileJob sweeps all orders that are not completed yet, so an order moves
// forward even when nobody is tracking it.
type ReconcileJob struct {
	list      queries.ListOrdersQueryHandler
	reconcile commands.ReconcileOrderCommandHandler
	schedule  string
	cron      *cron.Cron
	logger    *zap.Logger
}

func NewReconcileJob(
	list queries.ListOrdersQueryHandler,
	reconcile commands.ReconcileOrderCommandHandler,
	schedule string,
	logger *zap.Logger,
) *ReconcileJob {
	if schedule == "" {
		schedule = DefaultReconcileSchedule
	}
	return &ReconcileJob{
		list:      list,
		reconcile: reconcile,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With(zap.String("component", "reconcile_job")),
	}
}

// Run reconciles every unfinished order once and returns how many changed status.
// A failure on one order does not stop the sweep.
func (j *ReconcileJob) Run(ctx context.Context) (int, error) {
	orders, err := j.list.Handle(ctx, queries.NewListOrdersQuery(nil, "", 0))
	if err != nil {
		j.logger.Error("Reconcile job failed to list orders", zap.Error(err))
		return 0, err
	}

	var (
		advanced int
		failures []error
	)
	for _, o := range orders {
		if o.Status() == order.Completed {
			continue
		}

		cmd, err := commands.NewReconcileOrderCommand(o.Number())
		if err != nil {
			failures = append(failures, err)
			continue
		}

		reconciled, err := j.reconcile.Handle(ctx, cmd)
		if errors.Is(err, errs.ErrObjectNotFound) {
			// deleted since the listing
			continue
		}
		if err != nil {
			j.logger.Error("Reconcile failed", zap.String("orderNumber", o.Number().String()), zap.Error(err))
			failures = append(failures, err)
			continue
		}
		if reconciled.Status() != o.Status() {
			advanced++
		}
	}

	return advanced, errors.Join(failures...)
}

func (j *ReconcileJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Reconcile job started", zap.String("schedule", j.schedule))
	return nil
}

func (j *ReconcileJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Reconcile job stopped")
}

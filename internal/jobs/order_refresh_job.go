package jobs

import (
	"context"
	"errors"
	"log/slog"

	"instore/internal/core/application/usecases/commands"
	"instore/internal/core/application/usecases/queries"
	"instore/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// OrderRefreshJob periodically re-pulls every tracked order from the order
// service and reconciles the snapshots into local sessions. Runs every 30
// seconds; the sequence gate in the session makes a refresh racing a shopper
// mutation harmless.
type OrderRefreshJob struct {
	trackedHandler queries.GetTrackedOrdersQueryHandler
	refreshHandler commands.RefreshOrderCommandHandler
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewOrderRefreshJob creates a job that keeps tracked snapshots current.
// Uses GetTrackedOrdersQueryHandler to enumerate sessions and
// RefreshOrderCommandHandler to reconcile each one.
func NewOrderRefreshJob(
	trackedHandler queries.GetTrackedOrdersQueryHandler,
	refreshHandler commands.RefreshOrderCommandHandler,
	logger *slog.Logger,
) *OrderRefreshJob {
	return &OrderRefreshJob{
		trackedHandler: trackedHandler,
		refreshHandler: refreshHandler,
		cron:           cron.New(cron.WithSeconds()),
		logger:         logger.With("component", "order_refresh_job"),
	}
}

// Start begins the order refresh job to run every 30 seconds.
func (j *OrderRefreshJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		j.refreshAll(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order refresh job started (running every 30 seconds)")
	return nil
}

// Stop stops the order refresh job.
func (j *OrderRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order refresh job stopped")
}

// refreshAll walks the tracked sessions one at a time. One failed order does
// not block the rest of the sweep.
func (j *OrderRefreshJob) refreshAll(ctx context.Context) {
	tracked, err := j.trackedHandler.Handle(ctx, queries.NewGetTrackedOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order refresh job failed to list tracked orders", "error", err)
		return
	}

	for _, order := range tracked {
		cmd, err := commands.NewRefreshOrderCommand(order.ID)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order refresh job built an invalid command",
				"orderID", order.ID, "error", err)
			continue
		}

		if err := j.refreshHandler.Handle(ctx, cmd); err != nil {
			// The service dropping an order is expected near end of life;
			// transient remote failures resolve on the next sweep.
			if errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, errs.ErrRemoteCall) {
				j.logger.WarnContext(ctx, "Order refresh skipped",
					"orderID", order.ID, "error", err)
				continue
			}
			j.logger.ErrorContext(ctx, "Order refresh job failed",
				"orderID", order.ID, "error", err)
		}
	}
}

package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderStatsJob *OrderStatsJob
	logger        *slog.Logger
}

// NewJobManager creates the jobs and registers their collectors on reg.
func NewJobManager(counter OrderCounter, statsSchedule string, reg prometheus.Registerer, logger *slog.Logger) *JobManager {
	return &JobManager{
		orderStatsJob: NewOrderStatsJob(counter, statsSchedule, reg, logger),
		logger:        logger.With("component", "job_manager"),
	}
}

// StartAll starts all scheduled jobs. The stats gauge is filled once right away
// so /metrics is populated before the first tick; a failure there is only logged.
func (jm *JobManager) StartAll(ctx context.Context) error {
	if err := jm.orderStatsJob.Collect(ctx); err != nil {
		jm.logger.WarnContext(ctx, "initial order stats collection failed", "error", err)
	}

	if err := jm.orderStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start order stats job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderStatsJob.Stop()
}

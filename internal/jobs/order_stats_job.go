package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"laborders/internal/core/application/usecases/queries"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"
)

// DefaultStatsSchedule runs the stats job at second zero of every minute.
const DefaultStatsSchedule = "0 * * * * *"

const collectTimeout = 10 * time.Second

// OrderCounter is the read-side query the stats job runs.
type OrderCounter interface {
	Handle(ctx context.Context, query queries.CountOrdersByStateQuery) ([]queries.CountOrdersByStateQueryResponse, error)
}

// OrderStatsJob publishes the number of active orders per lifecycle state as
// the laborders_orders gauge.
type OrderStatsJob struct {
	counter  OrderCounter
	schedule string
	gauge    *prometheus.GaugeVec
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderStatsJob registers the gauge on reg. An empty schedule means DefaultStatsSchedule.
func NewOrderStatsJob(counter OrderCounter, schedule string, reg prometheus.Registerer, logger *slog.Logger) *OrderStatsJob {
	if schedule == "" {
		schedule = DefaultStatsSchedule
	}

	return &OrderStatsJob{
		counter:  counter,
		schedule: schedule,
		gauge: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "laborders",
			Name:      "orders",
			Help:      "Active orders by lifecycle state.",
		}, []string{"state"}),
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "order_stats_job"),
	}
}

// Collect runs the count query once and updates the gauge.
func (j *OrderStatsJob) Collect(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, collectTimeout)
	defer cancel()

	counts, err := j.counter.Handle(ctx, queries.NewCountOrdersByStateQuery())
	if err != nil {
		return fmt.Errorf("count orders by state: %w", err)
	}

	for _, count := range counts {
		j.gauge.WithLabelValues(count.State.String()).Set(float64(count.Count))
	}
	return nil
}

// Start schedules Collect. An invalid schedule is returned as an error.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Collect(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order stats job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running collection to finish.
func (j *OrderStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}

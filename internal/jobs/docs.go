// Package jobs provides scheduled background tasks.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// OrderStatsJob counts active orders per lifecycle state through the
// CountOrdersByState query and publishes the result as the
// laborders_orders{state="..."} gauge. The default schedule is "0 * * * * *"
// (once a minute) and is configured with STATS_SCHEDULE.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(countHandler, cfg.StatsSchedule, registry, logger)
//	if err := jobManager.StartAll(ctx); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs

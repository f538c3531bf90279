package scheduler

import (
	"context"
	"time"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/config"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/resilience"
)

// Job names.
const (
	JobPurge       = "purge"
	JobHealthCheck = "health_check"
	JobStatsReport = "stats_report"
)

// idleLimiterAge is how long an unused in-memory rate bucket is kept.
const idleLimiterAge = 10 * time.Minute

// CachePurger drops expired response cache entries.
type CachePurger interface {
	PurgeExpired() int
}

// IdleCleaner drops unused in-memory rate limit buckets.
type IdleCleaner interface {
	CleanupIdle(maxIdle time.Duration) int
}

// HealthChecker probes registered services.
type HealthChecker interface {
	RunHealthChecks(ctx context.Context)
	OverallLevel() resilience.DegradationLevel
}

// StatsSource reports counters for the periodic stats log.
type StatsSource interface {
	GetStats() map[string]interface{}
}

// Deps are the maintained components. Nil fields skip their part of a job.
type Deps struct {
	Cache   CachePurger
	Limiter IdleCleaner
	Health  HealthChecker
	Stats   StatsSource
}

// Register adds the standard maintenance jobs.
func Register(s *Scheduler, cfg config.SchedulerConfig, deps Deps) error {
	if err := s.Add(JobPurge, cfg.CachePurge, purgeJob(s, deps)); err != nil {
		return err
	}
	if deps.Health != nil {
		if err := s.Add(JobHealthCheck, cfg.HealthCheck, healthJob(s, deps.Health)); err != nil {
			return err
		}
	}
	if deps.Stats != nil {
		if err := s.Add(JobStatsReport, cfg.StatsReport, statsJob(s, deps.Stats)); err != nil {
			return err
		}
	}
	return nil
}

func purgeJob(s *Scheduler, deps Deps) JobFunc {
	return func(ctx context.Context) {
		var purged, idle int
		if deps.Cache != nil {
			purged = deps.Cache.PurgeExpired()
		}
		if deps.Limiter != nil {
			idle = deps.Limiter.CleanupIdle(idleLimiterAge)
		}
		if purged > 0 || idle > 0 {
			s.logger.Info("Purged expired entries", "cache_entries", purged, "rate_limit_buckets", idle)
		}
	}
}

func healthJob(s *Scheduler, health HealthChecker) JobFunc {
	return func(ctx context.Context) {
		health.RunHealthChecks(ctx)
		level := health.OverallLevel()
		if level != resilience.LevelNormal {
			s.logger.Warn("Service degradation detected", "level", level.String())
		}
	}
}

func statsJob(s *Scheduler, stats StatsSource) JobFunc {
	return func(ctx context.Context) {
		snapshot := stats.GetStats()
		s.logger.Info("Stats report",
			"total_requests", snapshot["total_requests"],
			"error_rate_percent", snapshot["error_rate_percent"],
			"analyses", snapshot["analyses"],
			"rewrites_applied", snapshot["rewrites_applied"],
			"cache_hit_rate_percent", snapshot["cache_hit_rate_percent"],
		)
	}
}

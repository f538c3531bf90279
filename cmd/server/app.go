package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/adapters"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/analysis"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/benchmark"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/cache"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/config"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/errors"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/lexicon"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/middleware"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/monitoring"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/ratelimit"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/resilience"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/scheduler"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/security"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/sentiment"
)

// app holds every long-lived component of the server.
type app struct {
	cfg     *config.Config
	logger  *monitoring.Logger
	metrics *monitoring.Metrics

	analyzer      *analysis.Analyzer
	benchmarks    *benchmark.Store
	estimator     sentiment.Estimator
	defaultMethod analysis.Method

	cache       *cache.Cache
	compression *middleware.CompressionMiddleware
	redis       *ratelimit.RedisClient
	limiter     *ratelimit.RateLimiter
	guard       *security.Guard
	health      *resilience.DegradationManager
	breakers    *resilience.CircuitBreakerRegistry
	scheduler   *scheduler.Scheduler
}

func newApp(ctx context.Context, cfg *config.Config, logger *monitoring.Logger) (*app, error) {
	tables, err := lexicon.Load(cfg.Analysis.TablesFile)
	if err != nil {
		return nil, errors.NewConfigurationError("lexicon tables", err)
	}
	benchmarks, err := benchmark.LoadFile(cfg.Analysis.BenchmarksFile)
	if err != nil {
		return nil, errors.NewConfigurationError("benchmarks", err)
	}
	defaultMethod, err := analysis.ParseMethod(cfg.Analysis.DefaultMethod)
	if err != nil {
		return nil, errors.NewConfigurationError("default method", err)
	}

	a := &app{
		cfg:           cfg,
		logger:        logger,
		metrics:       monitoring.NewMetrics(),
		benchmarks:    benchmarks,
		defaultMethod: defaultMethod,
		health:        resilience.NewDegradationManager(resilience.DefaultDegradationConfig()),
		breakers:      resilience.NewCircuitBreakerRegistry(),
		guard: security.NewGuard(security.GuardConfig{
			MaxBodyBytes:   cfg.Server.MaxBodyBytes,
			MaxTextLength:  cfg.Analysis.MaxTextLength,
			RequestTimeout: cfg.Server.WriteTimeout,
		}),
	}

	a.estimator, err = adapters.NewSentimentEstimator(ctx, cfg.Sentiment,
		sentiment.WithDegradation(a.health),
		sentiment.WithRecorder(a.metrics),
		sentiment.WithBreakerRegistry(a.breakers),
		sentiment.WithStateChange(a.onBreakerChange),
		sentiment.WithLogger(logger.Logger),
	)
	if err != nil {
		return nil, err
	}

	a.analyzer = analysis.NewAnalyzer(tables,
		analysis.WithEstimator(a.estimator),
		analysis.WithBenchmarks(benchmarks),
		analysis.WithRewriteThreshold(cfg.Analysis.RewriteThreshold),
	)

	if cfg.Cache.Enabled {
		a.cache = cache.NewCache(cfg.Cache.TTL, cfg.Cache.MaxSize)
	}
	if cfg.Server.Compression {
		a.compression = middleware.NewCompressionMiddleware(middleware.DefaultCompressionConfig())
	}

	if cfg.RateLimit.Enabled {
		a.redis, err = ratelimit.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			logger.Warn("Redis unavailable, rate limiting in memory", "error", err)
		}
		if a.redis.IsEnabled() {
			a.health.RegisterService("redis", a.redis.HealthCheck)
		}
		a.limiter = ratelimit.NewRateLimiter(a.redis, ratelimit.Config{
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
			Burst:             cfg.RateLimit.Burst,
		}, a.metrics)
	}

	a.scheduler = scheduler.New(logger, 30*time.Second)
	deps := scheduler.Deps{Health: a.health, Stats: a.metrics}
	if a.cache != nil {
		deps.Cache = a.cache
	}
	if a.limiter != nil {
		deps.Limiter = a.limiter
	}
	if err := scheduler.Register(a.scheduler, cfg.Scheduler, deps); err != nil {
		return nil, errors.NewConfigurationError("scheduler", err)
	}

	logger.SystemLogger("app_initialized", fmt.Sprintf("estimator=%s cache=%t rate_limit=%t redis=%t",
		a.analyzer.EstimatorName(), a.cache != nil, a.limiter != nil, a.redis.IsEnabled()))
	return a, nil
}

func (a *app) onBreakerChange(name string, from, to resilience.CircuitBreakerState) {
	switch to {
	case resilience.StateOpen:
		a.metrics.RecordBreakerTransition(true)
	case resilience.StateClosed:
		a.metrics.RecordBreakerTransition(false)
	}
	a.logger.SystemLogger("circuit_breaker", fmt.Sprintf("%s: %s -> %s", name, from, to))
}

// close stops background jobs and releases external clients.
func (a *app) close(ctx context.Context) {
	if err := a.scheduler.Stop(ctx); err != nil {
		a.logger.Warn("Scheduler did not stop cleanly", "error", err)
	}
	if c, ok := a.estimator.(io.Closer); ok {
		errors.SafeClose(c, "sentiment estimator")
	}
	if a.redis != nil {
		errors.SafeClose(a.redis, "redis client")
	}
	a.health.GracefulShutdown()
}

package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"golang.org/x/time/rate"
)

// Config holds rate limiter configuration
type Config struct {
	RequestsPerMinute int // per client IP
	Burst             int
}

// DefaultConfig returns default rate limiting configuration
func DefaultConfig() Config {
	return Config{RequestsPerMinute: 60, Burst: 10}
}

// Metrics receives limiter events. *monitoring.Metrics satisfies it.
type Metrics interface {
	IncrementRateLimitIPBlock()
	IncrementRateLimitRedisError()
	IncrementRateLimitFallback()
}

// Result represents the result of a rate limit check
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
}

type fallbackEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter provides distributed rate limiting with Redis and in-memory fallback
type RateLimiter struct {
	redisLimiter *redis_rate.Limiter
	redisClient  *RedisClient
	config       Config
	metrics      Metrics
	now          func() time.Time

	fallbackMutex    sync.Mutex
	fallbackLimiters map[string]*fallbackEntry
}

// NewRateLimiter creates a new rate limiter. A nil or disabled redisClient
// selects the in-memory token buckets.
func NewRateLimiter(redisClient *RedisClient, config Config, metrics Metrics) *RateLimiter {
	if config.RequestsPerMinute <= 0 {
		config.RequestsPerMinute = DefaultConfig().RequestsPerMinute
	}
	if config.Burst <= 0 {
		config.Burst = DefaultConfig().Burst
	}

	rl := &RateLimiter{
		redisClient:      redisClient,
		config:           config,
		metrics:          metrics,
		now:              time.Now,
		fallbackLimiters: make(map[string]*fallbackEntry),
	}

	if redisClient.IsEnabled() {
		rl.redisLimiter = redis_rate.NewLimiter(redisClient.GetClient())
		slog.Info("Redis rate limiter initialized")
	} else {
		slog.Warn("Redis unavailable, using in-memory rate limiting only")
	}
	return rl
}

// AllowIP checks if an IP address may make another request this minute.
func (rl *RateLimiter) AllowIP(ctx context.Context, ip string) *Result {
	return rl.allow(ctx, "ratelimit:ip:"+ip)
}

// allow tries Redis first and falls back to memory on any Redis error.
func (rl *RateLimiter) allow(ctx context.Context, key string) *Result {
	if rl.redisLimiter != nil && rl.redisClient.IsEnabled() {
		result, err := rl.allowRedis(ctx, key)
		if err == nil {
			return result
		}
		slog.Warn("Redis rate limit check failed, using fallback", "key", key, "error", err)
		if rl.metrics != nil {
			rl.metrics.IncrementRateLimitRedisError()
		}
	}

	if rl.metrics != nil {
		rl.metrics.IncrementRateLimitFallback()
	}
	return rl.allowFallback(key)
}

func (rl *RateLimiter) allowRedis(ctx context.Context, key string) (*Result, error) {
	res, err := rl.redisLimiter.Allow(ctx, key, redis_rate.Limit{
		Rate:   rl.config.RequestsPerMinute,
		Burst:  rl.config.Burst,
		Period: time.Minute,
	})
	if err != nil {
		return nil, fmt.Errorf("redis rate limit check failed: %w", err)
	}

	return &Result{
		Allowed:    res.Allowed > 0,
		Limit:      res.Limit.Rate,
		Remaining:  res.Remaining,
		ResetAt:    rl.now().Add(res.ResetAfter),
		RetryAfter: res.RetryAfter,
	}, nil
}

// allowFallback uses a per-key token bucket refilled at RequestsPerMinute.
func (rl *RateLimiter) allowFallback(key string) *Result {
	now := rl.now()

	rl.fallbackMutex.Lock()
	entry, exists := rl.fallbackLimiters[key]
	if !exists {
		rps := rate.Limit(float64(rl.config.RequestsPerMinute) / time.Minute.Seconds())
		entry = &fallbackEntry{limiter: rate.NewLimiter(rps, rl.config.Burst)}
		rl.fallbackLimiters[key] = entry
	}
	entry.lastSeen = now
	rl.fallbackMutex.Unlock()

	allowed := entry.limiter.AllowN(now, 1)
	tokens := entry.limiter.TokensAt(now)

	result := &Result{
		Allowed:   allowed,
		Limit:     rl.config.RequestsPerMinute,
		Remaining: max(0, int(tokens)),
	}

	// time until one whole token is available
	perToken := time.Duration(float64(time.Minute) / float64(rl.config.RequestsPerMinute))
	if !allowed {
		deficit := 1 - tokens
		result.RetryAfter = time.Duration(deficit * float64(perToken))
		if result.RetryAfter < time.Second {
			result.RetryAfter = time.Second
		}
	}
	result.ResetAt = now.Add(time.Duration(float64(rl.config.Burst)-tokens) * perToken)
	return result
}

// CleanupIdle drops in-memory buckets unused for longer than maxIdle and
// reports how many were removed. The scheduler runs it periodically.
func (rl *RateLimiter) CleanupIdle(maxIdle time.Duration) int {
	cutoff := rl.now().Add(-maxIdle)

	rl.fallbackMutex.Lock()
	defer rl.fallbackMutex.Unlock()

	removed := 0
	for key, entry := range rl.fallbackLimiters {
		if entry.lastSeen.Before(cutoff) {
			delete(rl.fallbackLimiters, key)
			removed++
		}
	}
	return removed
}

// GetStats returns rate limiter statistics
func (rl *RateLimiter) GetStats() map[string]interface{} {
	rl.fallbackMutex.Lock()
	fallbackCount := len(rl.fallbackLimiters)
	rl.fallbackMutex.Unlock()

	stats := map[string]interface{}{
		"redis_enabled":       rl.redisClient.IsEnabled(),
		"fallback_limiters":   fallbackCount,
		"requests_per_minute": rl.config.RequestsPerMinute,
		"burst":               rl.config.Burst,
	}
	if rl.redisClient.IsEnabled() {
		stats["redis_pool"] = rl.redisClient.GetPoolStats()
	}
	return stats
}

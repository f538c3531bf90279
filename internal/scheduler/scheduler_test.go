package scheduler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/config"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/monitoring"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/resilience"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler(t *testing.T) *Scheduler {
	t.Helper()
	return New(monitoring.NewLoggerTo(io.Discard, "debug", "json"), time.Second)
}

func TestAdd(t *testing.T) {
	s := newTestScheduler(t)
	noop := func(context.Context) {}

	require.NoError(t, s.Add("a", "@every 1m", noop))
	assert.Equal(t, []string{"a"}, s.Jobs())

	t.Run("empty spec disables", func(t *testing.T) {
		require.NoError(t, s.Add("disabled", "", noop))
		assert.NotContains(t, s.Jobs(), "disabled")
	})

	t.Run("duplicate name", func(t *testing.T) {
		assert.Error(t, s.Add("a", "@every 1m", noop))
	})

	t.Run("invalid spec", func(t *testing.T) {
		assert.Error(t, s.Add("bad", "every now and then", noop))
		assert.NotContains(t, s.Jobs(), "bad")
	})
}

func TestRunNow(t *testing.T) {
	s := newTestScheduler(t)

	var calls int32
	require.NoError(t, s.Add("count", "@every 1h", func(ctx context.Context) {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		atomic.AddInt32(&calls, 1)
	}))

	require.NoError(t, s.RunNow(context.Background(), "count"))
	require.NoError(t, s.RunNow(context.Background(), "count"))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Equal(t, int64(2), s.Runs("count"))

	assert.Error(t, s.RunNow(context.Background(), "missing"))
}

func TestPanickingJobIsRecovered(t *testing.T) {
	var buf bytes.Buffer
	s := New(monitoring.NewLoggerTo(&buf, "info", "json"), time.Second)
	require.NoError(t, s.Add("boom", "@every 1h", func(context.Context) { panic("boom") }))

	assert.NotPanics(t, func() {
		require.NoError(t, s.RunNow(context.Background(), "boom"))
	})
	assert.Equal(t, int64(1), s.Runs("boom"))
	assert.Contains(t, buf.String(), "Scheduled job panicked")
}

func TestStartStop(t *testing.T) {
	s := newTestScheduler(t)

	fired := make(chan struct{}, 1)
	require.NoError(t, s.Add("tick", "@every 1s", func(context.Context) {
		select {
		case fired <- struct{}{}:
		default:
		}
	}))

	s.Start()
	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not fire")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}

type fakeCache struct{ calls int }

func (f *fakeCache) PurgeExpired() int { f.calls++; return 3 }

type fakeLimiter struct{ maxIdle time.Duration }

func (f *fakeLimiter) CleanupIdle(maxIdle time.Duration) int { f.maxIdle = maxIdle; return 1 }

type fakeStats struct{ calls int }

func (f *fakeStats) GetStats() map[string]interface{} {
	f.calls++
	return map[string]interface{}{"total_requests": int64(5)}
}

func TestRegister(t *testing.T) {
	cfg := config.SchedulerConfig{
		CachePurge:  "@every 5m",
		HealthCheck: "@every 1m",
		StatsReport: "@every 15m",
	}

	cache := &fakeCache{}
	limiter := &fakeLimiter{}
	stats := &fakeStats{}
	health := resilience.NewDegradationManager(resilience.DefaultDegradationConfig())

	var probes int32
	health.RegisterService("sentiment_test", func(ctx context.Context) error {
		atomic.AddInt32(&probes, 1)
		return errors.New("down")
	})

	s := newTestScheduler(t)
	require.NoError(t, Register(s, cfg, Deps{Cache: cache, Limiter: limiter, Health: health, Stats: stats}))
	assert.Equal(t, []string{JobHealthCheck, JobPurge, JobStatsReport}, s.Jobs())

	ctx := context.Background()

	require.NoError(t, s.RunNow(ctx, JobPurge))
	assert.Equal(t, 1, cache.calls)
	assert.Equal(t, idleLimiterAge, limiter.maxIdle)

	require.NoError(t, s.RunNow(ctx, JobHealthCheck))
	assert.Equal(t, int32(1), atomic.LoadInt32(&probes))

	require.NoError(t, s.RunNow(ctx, JobStatsReport))
	assert.Equal(t, 1, stats.calls)

	t.Run("optional deps are skipped", func(t *testing.T) {
		s := newTestScheduler(t)
		require.NoError(t, Register(s, cfg, Deps{}))
		assert.Equal(t, []string{JobPurge}, s.Jobs())
		require.NoError(t, s.RunNow(ctx, JobPurge))
	})

	t.Run("disabled specs", func(t *testing.T) {
		s := newTestScheduler(t)
		require.NoError(t, Register(s, config.SchedulerConfig{}, Deps{Health: health, Stats: stats}))
		assert.Empty(t, s.Jobs())
	})
}

package sentiment

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/resilience"
)

// CallRecorder receives the outcome of every provider call.
type CallRecorder interface {
	RecordEstimatorCall(provider string, duration time.Duration, err error)
}

// ResilientConfig controls how a remote estimator is guarded.
type ResilientConfig struct {
	Timeout time.Duration
	Retry   resilience.RetryConfig
	Breaker resilience.CircuitBreakerConfig
}

// Resilient wraps a remote estimator with a timeout, retries and a circuit
// breaker. It still returns errors; the scorer turns them into neutral readings.
type Resilient struct {
	name     string
	next     Estimator
	config   ResilientConfig
	breaker  *resilience.CircuitBreaker
	registry *resilience.CircuitBreakerRegistry
	health   *resilience.DegradationManager
	recorder CallRecorder
	logger   *slog.Logger
}

// ResilientOption configures a Resilient estimator.
type ResilientOption func(*Resilient)

// WithDegradation reports every call to dm under the estimator's name.
func WithDegradation(dm *resilience.DegradationManager) ResilientOption {
	return func(r *Resilient) { r.health = dm }
}

// WithRecorder reports call timings.
func WithRecorder(rec CallRecorder) ResilientOption {
	return func(r *Resilient) { r.recorder = rec }
}

// WithBreakerRegistry takes the breaker from a shared registry so its state
// shows up in the registry stats.
func WithBreakerRegistry(reg *resilience.CircuitBreakerRegistry) ResilientOption {
	return func(r *Resilient) { r.registry = reg }
}

// WithStateChange observes circuit breaker transitions.
func WithStateChange(fn func(name string, from, to resilience.CircuitBreakerState)) ResilientOption {
	return func(r *Resilient) { r.config.Breaker.OnStateChange = fn }
}

// WithLogger sets the logger used for failures.
func WithLogger(l *slog.Logger) ResilientOption {
	return func(r *Resilient) { r.logger = l }
}

// NewResilient wraps next.
func NewResilient(next Estimator, config ResilientConfig, opts ...ResilientOption) *Resilient {
	if config.Timeout <= 0 {
		config.Timeout = 5 * time.Second
	}
	if config.Retry.MaxAttempts <= 0 {
		config.Retry = resilience.DefaultRetryConfig()
	}

	r := &Resilient{
		name:   NameOf(next),
		next:   next,
		config: config,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.registry != nil {
		r.breaker = r.registry.GetOrCreate(r.name, r.config.Breaker)
	} else {
		r.breaker = resilience.NewCircuitBreaker(r.name, r.config.Breaker)
	}
	if r.health != nil {
		r.health.RegisterService(r.ServiceName(), r.Probe)
	}
	return r
}

// Name implements Named by reporting the wrapped provider.
func (r *Resilient) Name() string { return r.name }

// ServiceName is the key used with the degradation manager.
func (r *Resilient) ServiceName() string { return "sentiment_" + r.name }

// Breaker exposes the circuit breaker for health reporting.
func (r *Resilient) Breaker() *resilience.CircuitBreaker { return r.breaker }

// Estimate implements Estimator.
func (r *Resilient) Estimate(ctx context.Context, text string) (Estimate, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	var out Estimate
	err := r.breaker.Call(func() error {
		return resilience.RetryWithConfig(ctx, r.config.Retry, func() error {
			est, err := r.next.Estimate(ctx, text)
			if err != nil {
				return err
			}
			out = est
			return nil
		})
	})

	if r.recorder != nil {
		r.recorder.RecordEstimatorCall(r.name, time.Since(start), err)
	}
	if r.health != nil {
		r.health.RecordRequest(r.ServiceName(), err)
	}
	if err != nil {
		r.logger.Warn("Sentiment estimator failed, using neutral reading",
			"provider", r.name,
			"breaker_state", r.breaker.State().String(),
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err)
		return Neutral, err
	}
	return out.Clamp(), nil
}

// Probe runs a short estimate. It is used as a scheduled health check.
func (r *Resilient) Probe(ctx context.Context) error {
	_, err := r.next.Estimate(ctx, "We are a friendly team.")
	return err
}

// Close closes the wrapped estimator when it holds resources.
func (r *Resilient) Close() error {
	if c, ok := r.next.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

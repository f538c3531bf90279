package monitoring

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"gonum.org/v1/gonum/stat"
)

// maxSamples bounds each latency window.
const maxSamples = 1000

// latencyWindow keeps the most recent samples in milliseconds.
type latencyWindow struct {
	mu      sync.Mutex
	samples []float64
}

func (w *latencyWindow) record(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.samples = append(w.samples, float64(d)/float64(time.Millisecond))
	if len(w.samples) > maxSamples {
		w.samples = w.samples[len(w.samples)-maxSamples:]
	}
}

func (w *latencyWindow) reset() {
	w.mu.Lock()
	w.samples = w.samples[:0]
	w.mu.Unlock()
}

// LatencySummary describes a latency window in milliseconds.
type LatencySummary struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean_ms"`
	P50   float64 `json:"p50_ms"`
	P95   float64 `json:"p95_ms"`
	P99   float64 `json:"p99_ms"`
}

func (w *latencyWindow) summary() LatencySummary {
	w.mu.Lock()
	sorted := make([]float64, len(w.samples))
	copy(sorted, w.samples)
	w.mu.Unlock()

	if len(sorted) == 0 {
		return LatencySummary{}
	}
	sort.Float64s(sorted)
	return LatencySummary{
		Count: len(sorted),
		Mean:  stat.Mean(sorted, nil),
		P50:   stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P95:   stat.Quantile(0.95, stat.Empirical, sorted, nil),
		P99:   stat.Quantile(0.99, stat.Empirical, sorted, nil),
	}
}

// ProviderCounts tallies calls to one sentiment provider.
type ProviderCounts struct {
	Calls     int64 `json:"calls"`
	Errors    int64 `json:"errors"`
	Fallbacks int64 `json:"fallbacks"`
}

// Metrics holds application metrics. All methods are safe for concurrent use.
type Metrics struct {
	StartTime time.Time

	requestCount int64
	errorCount   int64
	cacheHits    int64
	cacheMisses  int64

	analyses        int64
	rewrites        int64
	rewritesSkipped int64

	breakerOpens  int64
	breakerCloses int64

	rateLimitIPBlocks   int64
	rateLimitRedisError int64
	rateLimitFallback   int64

	requestLatency  latencyWindow
	analysisLatency latencyWindow

	mu          sync.Mutex
	byStatus    map[int]int64
	byMethod    map[string]int64
	byDirection map[string]int64
	providers   map[string]*ProviderCounts
}

// NewMetrics creates a new metrics instance
func NewMetrics() *Metrics {
	m := &Metrics{}
	m.Reset()
	return m
}

// IncrementRequest increments the request count
func (m *Metrics) IncrementRequest() { atomic.AddInt64(&m.requestCount, 1) }

// IncrementError increments the error count
func (m *Metrics) IncrementError() { atomic.AddInt64(&m.errorCount, 1) }

// IncrementCacheHit increments cache hit count
func (m *Metrics) IncrementCacheHit() { atomic.AddInt64(&m.cacheHits, 1) }

// IncrementCacheMiss increments cache miss count
func (m *Metrics) IncrementCacheMiss() { atomic.AddInt64(&m.cacheMisses, 1) }

// RecordResponseTime records one HTTP round trip.
func (m *Metrics) RecordResponseTime(d time.Duration) { m.requestLatency.record(d) }

// RecordRequestByStatus records request count by HTTP status code
func (m *Metrics) RecordRequestByStatus(statusCode int) {
	m.mu.Lock()
	m.byStatus[statusCode]++
	m.mu.Unlock()
}

// RecordAnalysis records one completed analysis.
func (m *Metrics) RecordAnalysis(method, direction string, d time.Duration) {
	atomic.AddInt64(&m.analyses, 1)
	m.analysisLatency.record(d)

	m.mu.Lock()
	m.byMethod[method]++
	m.byDirection[direction]++
	m.mu.Unlock()
}

// RecordRewrite records whether an improvement request produced a rewrite.
func (m *Metrics) RecordRewrite(applied bool) {
	if applied {
		atomic.AddInt64(&m.rewrites, 1)
		return
	}
	atomic.AddInt64(&m.rewritesSkipped, 1)
}

// RecordEstimatorCall implements sentiment.CallRecorder. A failed call is
// also a fallback, since the scorer substitutes a neutral reading.
func (m *Metrics) RecordEstimatorCall(provider string, _ time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pc := m.provider(provider)
	pc.Calls++
	if err != nil {
		pc.Errors++
		pc.Fallbacks++
	}
}

// provider must be called with mu held.
func (m *Metrics) provider(name string) *ProviderCounts {
	pc, ok := m.providers[name]
	if !ok {
		pc = &ProviderCounts{}
		m.providers[name] = pc
	}
	return pc
}

// RecordBreakerTransition counts circuit breaker opens and closes.
func (m *Metrics) RecordBreakerTransition(opened bool) {
	if opened {
		atomic.AddInt64(&m.breakerOpens, 1)
		return
	}
	atomic.AddInt64(&m.breakerCloses, 1)
}

// IncrementRateLimitIPBlock increments IP-based rate limit blocks
func (m *Metrics) IncrementRateLimitIPBlock() { atomic.AddInt64(&m.rateLimitIPBlocks, 1) }

// IncrementRateLimitRedisError increments Redis error count for rate limiting
func (m *Metrics) IncrementRateLimitRedisError() { atomic.AddInt64(&m.rateLimitRedisError, 1) }

// IncrementRateLimitFallback increments fallback rate limiter usage count
func (m *Metrics) IncrementRateLimitFallback() { atomic.AddInt64(&m.rateLimitFallback, 1) }

// RequestLatency summarises recent HTTP latencies.
func (m *Metrics) RequestLatency() LatencySummary { return m.requestLatency.summary() }

// AnalysisLatency summarises recent analysis latencies.
func (m *Metrics) AnalysisLatency() LatencySummary { return m.analysisLatency.summary() }

// GetStatusCodeDistribution returns request count by status code
func (m *Metrics) GetStatusCodeDistribution() map[int]int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyCounts(m.byStatus)
}

// GetEstimatorStats returns per-provider call counts.
func (m *Metrics) GetEstimatorStats() map[string]ProviderCounts {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]ProviderCounts, len(m.providers))
	for name, pc := range m.providers {
		out[name] = *pc
	}
	return out
}

// GetStats returns current metrics statistics
func (m *Metrics) GetStats() map[string]interface{} {
	requests := atomic.LoadInt64(&m.requestCount)
	errors := atomic.LoadInt64(&m.errorCount)
	cacheHits := atomic.LoadInt64(&m.cacheHits)
	cacheMisses := atomic.LoadInt64(&m.cacheMisses)

	m.mu.Lock()
	started := m.StartTime
	byMethod := copyCounts(m.byMethod)
	byDirection := copyCounts(m.byDirection)
	m.mu.Unlock()

	return map[string]interface{}{
		"uptime_seconds":           time.Since(started).Seconds(),
		"start_time":               started.Format(time.RFC3339),
		"total_requests":           requests,
		"error_count":              errors,
		"error_rate_percent":       percent(errors, requests),
		"cache_hits":               cacheHits,
		"cache_misses":             cacheMisses,
		"cache_hit_rate_percent":   percent(cacheHits, cacheHits+cacheMisses),
		"request_latency":          m.RequestLatency(),
		"status_code_distribution": m.GetStatusCodeDistribution(),

		"analyses":              atomic.LoadInt64(&m.analyses),
		"analyses_by_method":    byMethod,
		"analyses_by_direction": byDirection,
		"analysis_latency":      m.AnalysisLatency(),
		"rewrites_applied":      atomic.LoadInt64(&m.rewrites),
		"rewrites_skipped":      atomic.LoadInt64(&m.rewritesSkipped),

		"estimators":             m.GetEstimatorStats(),
		"circuit_breaker_opens":  atomic.LoadInt64(&m.breakerOpens),
		"circuit_breaker_closes": atomic.LoadInt64(&m.breakerCloses),
	}
}

// GetRateLimitStats returns rate limiting statistics
func (m *Metrics) GetRateLimitStats() map[string]interface{} {
	return map[string]interface{}{
		"ip_blocks":      atomic.LoadInt64(&m.rateLimitIPBlocks),
		"redis_errors":   atomic.LoadInt64(&m.rateLimitRedisError),
		"fallback_count": atomic.LoadInt64(&m.rateLimitFallback),
	}
}

// Reset resets all metrics (useful for testing)
func (m *Metrics) Reset() {
	for _, p := range []*int64{
		&m.requestCount, &m.errorCount, &m.cacheHits, &m.cacheMisses,
		&m.analyses, &m.rewrites, &m.rewritesSkipped,
		&m.breakerOpens, &m.breakerCloses,
		&m.rateLimitIPBlocks, &m.rateLimitRedisError, &m.rateLimitFallback,
	} {
		atomic.StoreInt64(p, 0)
	}
	m.requestLatency.reset()
	m.analysisLatency.reset()

	m.mu.Lock()
	m.byStatus = make(map[int]int64)
	m.byMethod = make(map[string]int64)
	m.byDirection = make(map[string]int64)
	m.providers = make(map[string]*ProviderCounts)
	m.StartTime = time.Now()
	m.mu.Unlock()
}

func percent(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func copyCounts[K comparable](src map[K]int64) map[K]int64 {
	out := make(map[K]int64, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

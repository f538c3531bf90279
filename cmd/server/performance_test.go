package main

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/types"
)

func TestConcurrentAnalysis_ThreadSafety(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping thread safety test in short mode")
	}

	a := newTestApp(t, map[string]string{"CACHE_ENABLED": "true"})
	r := a.router()

	const numGoroutines = 20
	const requestsPerGoroutine = 5

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures int
	)
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < requestsPerGoroutine; j++ {
				// half the goroutines share a body so the cache is exercised concurrently
				text := masculineAdvert
				if i%2 == 0 {
					text = fmt.Sprintf("%s Team %d.", masculineAdvert, i)
				}
				path := analyzePath
				if j%2 == 1 {
					path = rewritePath
				}
				w := postJSON(r, path, types.RewriteRequest{Text: text})
				if w.Code != http.StatusOK {
					mu.Lock()
					failures++
					mu.Unlock()
				}
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, failures, "No errors should occur in concurrent requests")
	assert.Equal(t, numGoroutines*requestsPerGoroutine, a.metrics.RequestLatency().Count)
}

func TestEndpoint_ResponseTimeDistribution(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping response time distribution test in short mode")
	}

	a := newTestApp(t, nil)
	r := a.router()

	for i := 0; i < 50; i++ {
		w := postJSON(r, analyzePath, types.AnalyzeRequest{Text: masculineAdvert})
		require.Equal(t, http.StatusOK, w.Code)
	}

	latency := a.metrics.AnalysisLatency()
	t.Logf("analysis latency: mean=%.2fms p50=%.2fms p95=%.2fms p99=%.2fms",
		latency.Mean, latency.P50, latency.P95, latency.P99)

	assert.Equal(t, 50, latency.Count)
	assert.LessOrEqual(t, latency.P50, latency.P95)
	assert.LessOrEqual(t, latency.P95, latency.P99)
	assert.Less(t, time.Duration(latency.P95*float64(time.Millisecond)), time.Second, "95th percentile should be under 1 second")
}

func BenchmarkAnalyzeEndpoint(b *testing.B) {
	r := newTestApp(b, nil).router()
	req := types.AnalyzeRequest{Text: masculineAdvert}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if w := postJSON(r, analyzePath, req); w.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", w.Code)
		}
	}
}

// Package types holds the HTTP request and response bodies.
package types

import (
	"time"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/benchmark"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/resilience"
)

// AnalyzeRequest represents the request structure for the analyze endpoint.
// An empty text is valid and scores neutral.
type AnalyzeRequest struct {
	Text     string `json:"text"`
	Method   string `json:"method,omitempty"`
	Industry string `json:"industry,omitempty"`
}

// RewriteRequest asks for an improvement report. Force rewrites even when the
// score is within the rewrite threshold.
type RewriteRequest struct {
	Text     string `json:"text"`
	Method   string `json:"method,omitempty"`
	Industry string `json:"industry,omitempty"`
	Force    bool   `json:"force,omitempty"`
}

// HealthResponse is returned by /health.
type HealthResponse struct {
	Status    string                     `json:"status"`
	Version   string                     `json:"version"`
	Timestamp time.Time                  `json:"timestamp"`
	Estimator string                     `json:"estimator"`
	Level     string                     `json:"degradation_level"`
	Services  []resilience.ServiceHealth `json:"services"`
	Breakers  []resilience.BreakerStats  `json:"circuit_breakers"`
}

// IndustriesResponse lists the benchmark sectors.
type IndustriesResponse struct {
	Industries []benchmark.Industry `json:"industries"`
	Fallback   string               `json:"fallback"`
}

// Package sentiment defines the polarity/subjectivity capability used by the
// intensity scorer, along with a local estimator and a fail-soft wrapper for
// remote providers.
package sentiment

import (
	"context"
	"math"
)

// Estimate is a general sentiment reading for a document.
type Estimate struct {
	Polarity     float64 `json:"polarity"`     // [-1, 1]
	Subjectivity float64 `json:"subjectivity"` // [0, 1]
}

// Neutral is used whenever no estimator is configured or the estimator fails.
var Neutral = Estimate{Polarity: 0, Subjectivity: 0.5}

// Clamp forces the reading into its documented ranges.
func (e Estimate) Clamp() Estimate {
	if math.IsNaN(e.Polarity) {
		e.Polarity = 0
	}
	if math.IsNaN(e.Subjectivity) {
		e.Subjectivity = Neutral.Subjectivity
	}
	e.Polarity = math.Max(-1, math.Min(1, e.Polarity))
	e.Subjectivity = math.Max(0, math.Min(1, e.Subjectivity))
	return e
}

// Estimator returns a polarity/subjectivity reading for text.
type Estimator interface {
	Estimate(ctx context.Context, text string) (Estimate, error)
}

// Named is implemented by estimators that can report where a reading came from.
type Named interface {
	Name() string
}

// NameOf returns the provider name of e, or "none" when e is nil.
func NameOf(e Estimator) string {
	if e == nil {
		return ProviderNone
	}
	if n, ok := e.(Named); ok {
		return n.Name()
	}
	return "custom"
}

// Provider names accepted in configuration.
const (
	ProviderNone      = "none"
	ProviderLocal     = "local"
	ProviderGoogle    = "google"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Func adapts a plain function to the Estimator interface.
type Func func(ctx context.Context, text string) (Estimate, error)

// Estimate calls f.
func (f Func) Estimate(ctx context.Context, text string) (Estimate, error) {
	return f(ctx, text)
}

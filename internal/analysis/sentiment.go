package analysis

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/lexicon"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/sentiment"
)

const subjectivityThreshold = 0.6

// estimate asks est for a reading and falls back to sentiment.Neutral on any
// failure, including a panic inside the estimator.
func estimate(ctx context.Context, est sentiment.Estimator, text string) (reading sentiment.Estimate, ok bool) {
	if est == nil || strings.TrimSpace(text) == "" {
		return sentiment.Neutral, false
	}

	defer func() {
		if r := recover(); r != nil {
			reading, ok = sentiment.Neutral, false
		}
	}()

	got, err := est.Estimate(ctx, text)
	if err != nil {
		return sentiment.Neutral, false
	}
	return got.Clamp(), true
}

// subjectivityAdjustment nudges the score for strongly subjective copy.
func subjectivityAdjustment(e sentiment.Estimate) int {
	if e.Subjectivity <= subjectivityThreshold {
		return 0
	}
	switch {
	case e.Polarity > 0.3:
		return 15
	case e.Polarity < -0.2:
		return 10
	default:
		return -10
	}
}

// ScoreSentiment sums intensity-marker weights, once per unique word, and
// applies the subjectivity adjustment when an estimate is available.
func ScoreSentiment(ctx context.Context, text string, t *lexicon.Tables, est sentiment.Estimator) SentimentResult {
	markers := []string{}
	seen := make(map[string]struct{})
	weight := 0
	for _, tok := range tokenize(text) {
		w, ok := t.Intensity[tok]
		if !ok {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		weight += w
		markers = append(markers, tok)
	}

	reading, estimated := estimate(ctx, est, text)
	adjustment := 0
	if estimated {
		adjustment = subjectivityAdjustment(reading)
	}

	provider := sentiment.ProviderNone
	if estimated {
		provider = sentiment.NameOf(est)
	}

	return SentimentResult{
		Score:        round1(clipScore(float64(weight + adjustment))),
		Confidence:   confidence(50, 4, len(markers), maxSentimentConfidence),
		Markers:      markers,
		MarkerWeight: weight,
		Polarity:     reading.Polarity,
		Subjectivity: reading.Subjectivity,
		Adjustment:   adjustment,
		Estimated:    estimated,
		Provider:     provider,
	}
}

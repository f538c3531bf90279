package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/lexicon"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/sentiment"
)

type stubEstimator struct {
	reading sentiment.Estimate
	err     error
	panics  bool
	calls   int
}

func (s *stubEstimator) Estimate(_ context.Context, _ string) (sentiment.Estimate, error) {
	s.calls++
	if s.panics {
		panic("estimator exploded")
	}
	return s.reading, s.err
}

func (s *stubEstimator) Name() string { return "stub" }

func TestScoreSentiment(t *testing.T) {
	tables := lexicon.Default()
	ctx := context.Background()

	tests := []struct {
		name       string
		input      string
		estimator  *stubEstimator
		score      float64
		confidence float64
		markers    []string
		adjustment int
		estimated  bool
	}{
		{
			name:       "markers without estimator",
			input:      "A competitive and aggressive culture.",
			score:      45,
			confidence: 58,
			markers:    []string{"competitive", "aggressive"},
		},
		{
			name:       "repeated marker counts once",
			input:      "Tough problems, tough deadlines, tough calls.",
			score:      16,
			confidence: 54,
			markers:    []string{"tough"},
		},
		{
			name:       "positive subjective copy",
			input:      "A competitive role.",
			estimator:  &stubEstimator{reading: sentiment.Estimate{Polarity: 0.5, Subjectivity: 0.8}},
			score:      35,
			confidence: 54,
			markers:    []string{"competitive"},
			adjustment: 15,
			estimated:  true,
		},
		{
			name:       "negative subjective copy",
			input:      "A competitive role.",
			estimator:  &stubEstimator{reading: sentiment.Estimate{Polarity: -0.5, Subjectivity: 0.9}},
			score:      30,
			confidence: 54,
			markers:    []string{"competitive"},
			adjustment: 10,
			estimated:  true,
		},
		{
			name:       "neutral subjective copy",
			input:      "A competitive role.",
			estimator:  &stubEstimator{reading: sentiment.Estimate{Polarity: 0.1, Subjectivity: 0.9}},
			score:      10,
			confidence: 54,
			markers:    []string{"competitive"},
			adjustment: -10,
			estimated:  true,
		},
		{
			name:       "objective copy is not adjusted",
			input:      "A competitive role.",
			estimator:  &stubEstimator{reading: sentiment.Estimate{Polarity: 0.9, Subjectivity: 0.6}},
			score:      20,
			confidence: 54,
			markers:    []string{"competitive"},
			estimated:  true,
		},
		{
			name:       "out of range readings are clamped",
			input:      "A kind team.",
			estimator:  &stubEstimator{reading: sentiment.Estimate{Polarity: 4, Subjectivity: 3}},
			score:      5,
			confidence: 54,
			markers:    []string{"kind"},
			adjustment: 15,
			estimated:  true,
		},
		{
			name:       "estimator error degrades to neutral",
			input:      "A competitive role.",
			estimator:  &stubEstimator{err: errors.New("provider down")},
			score:      20,
			confidence: 54,
			markers:    []string{"competitive"},
		},
		{
			name:       "estimator panic degrades to neutral",
			input:      "A competitive role.",
			estimator:  &stubEstimator{panics: true},
			score:      20,
			confidence: 54,
			markers:    []string{"competitive"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var est sentiment.Estimator
			if tt.estimator != nil {
				est = tt.estimator
			}

			got := ScoreSentiment(ctx, tt.input, tables, est)

			assert.Equal(t, tt.score, got.Score)
			assert.Equal(t, tt.confidence, got.Confidence)
			assert.Equal(t, tt.markers, got.Markers)
			assert.Equal(t, tt.adjustment, got.Adjustment)
			assert.Equal(t, tt.estimated, got.Estimated)
			if tt.estimated {
				assert.Equal(t, "stub", got.Provider)
			} else {
				assert.Equal(t, sentiment.ProviderNone, got.Provider)
				assert.Equal(t, sentiment.Neutral.Polarity, got.Polarity)
				assert.Equal(t, sentiment.Neutral.Subjectivity, got.Subjectivity)
			}
		})
	}
}

func TestScoreSentiment_BlankTextSkipsEstimator(t *testing.T) {
	est := &stubEstimator{reading: sentiment.Estimate{Polarity: 1, Subjectivity: 1}}

	got := ScoreSentiment(context.Background(), "   \n\t", lexicon.Default(), est)

	assert.Equal(t, 0, est.calls)
	assert.Equal(t, 0.0, got.Score)
	assert.Equal(t, 50.0, got.Confidence)
	assert.False(t, got.Estimated)
}

func TestScoreSentiment_Clipping(t *testing.T) {
	tables := lexicon.Default()

	var positive, negative []string
	for word, weight := range tables.Intensity {
		if weight > 0 {
			positive = append(positive, word)
		} else {
			negative = append(negative, word)
		}
	}

	high := ScoreSentiment(context.Background(), strings.Join(positive, " "), tables, nil)
	assert.Equal(t, 100.0, high.Score)
	assert.Equal(t, 80.0, high.Confidence)

	low := ScoreSentiment(context.Background(), strings.Join(negative, " "), tables, nil)
	assert.Equal(t, -100.0, low.Score)
	assert.Equal(t, 80.0, low.Confidence)
}

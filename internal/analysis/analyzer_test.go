package analysis

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/lexicon"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/sentiment"
)

const masculineAdvert = "We are looking for a competitive, aggressive individual who can dominate the market."

type stubBenchmarks map[string]Benchmark

func (s stubBenchmarks) Lookup(industry string) Benchmark {
	if b, ok := s[industry]; ok {
		return b
	}
	return s["General OR/Analytics"]
}

var testBenchmarks = stubBenchmarks{
	"General OR/Analytics": {
		Industry:   "General OR/Analytics",
		SampleSize: 308,
		Thresholds: Thresholds{BestPractice: 15, NeutralThreshold: 20, AverageBias: 28.4},
	},
	"Defence & Aerospace": {
		Industry:    "Defence & Aerospace",
		Description: "Defence sector",
		SampleSize:  54,
		Thresholds:  Thresholds{BestPractice: 18, NeutralThreshold: 25, AverageBias: 42.3},
	},
}

func newTestAnalyzer(opts ...Option) *Analyzer {
	seq := 0
	opts = append([]Option{
		WithBenchmarks(testBenchmarks),
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("analysis-%d", seq)
		}),
	}, opts...)
	return NewAnalyzer(lexicon.Default(), opts...)
}

func TestNewAnalyzer(t *testing.T) {
	a := NewAnalyzer(lexicon.Default())

	assert.NotNil(t, a.rewriter)
	assert.Equal(t, DefaultRewriteThreshold, a.RewriteThreshold())
	assert.Equal(t, sentiment.ProviderNone, a.EstimatorName())
	assert.NotEmpty(t, a.newID())

	a = NewAnalyzer(lexicon.Default(), WithRewriteThreshold(30))
	assert.Equal(t, 30.0, a.RewriteThreshold())
}

func TestAnalyzer_Score(t *testing.T) {
	a := newTestAnalyzer()

	got := a.Score(context.Background(), masculineAdvert)

	assert.Equal(t, 100.0, got.Lexicon.Score)
	assert.Equal(t, 72.0, got.Lexicon.Confidence)
	assert.Equal(t, 35.0, got.Contextual.Score)
	assert.Equal(t, []PatternMatch{{Phrase: "dominate the market", Weight: 32}}, got.Contextual.Patterns)
	assert.Equal(t, 45.0, got.Sentiment.Score)
	assert.Equal(t, 63.5, got.Ensemble)
	assert.Equal(t, 66.0, got.EnsembleConfidence)
	assert.Equal(t, 35.0, got.Spread)
}

func TestAnalyzer_Analyze(t *testing.T) {
	a := newTestAnalyzer()
	ctx := context.Background()

	tests := []struct {
		name       string
		method     Method
		final      float64
		confidence float64
		label      string
	}{
		{"ensemble", MethodEnsemble, 63.5, 66, "High Bias"},
		{"default method is ensemble", "", 63.5, 66, "High Bias"},
		{"lexicon", MethodLexicon, 100, 72, "High Bias"},
		{"contextual", MethodContextual, 35, 68, "Moderate Bias"},
		{"sentiment", MethodSentiment, 45, 58, "High Bias"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := a.Analyze(ctx, masculineAdvert, Options{Method: tt.method})
			assert.Equal(t, tt.final, res.FinalScore)
			assert.Equal(t, tt.confidence, res.Confidence)
			assert.Equal(t, tt.label, res.Classification.Label)
			assert.Equal(t, DirectionMasculine, res.Direction)
			assert.Nil(t, res.Benchmark)
			assert.Equal(t, 13, res.Stats.Words)
		})
	}
}

func TestAnalyzer_AnalyzeEmpty(t *testing.T) {
	res := newTestAnalyzer().Analyze(context.Background(), "", Options{})

	assert.Equal(t, 0.0, res.Scores.Lexicon.Score)
	assert.Equal(t, 0.0, res.Scores.Contextual.Score)
	assert.Equal(t, 0.0, res.Scores.Sentiment.Score)
	assert.Equal(t, 0.0, res.FinalScore)
	assert.Empty(t, res.Scores.Lexicon.MasculineWords)
	assert.Empty(t, res.Scores.Lexicon.FeminineWords)
	assert.Empty(t, res.Scores.Contextual.Patterns)
	assert.Empty(t, res.Scores.Sentiment.Markers)
	assert.Equal(t, "Well Balanced", res.Classification.Label)
	assert.Equal(t, DirectionNeutral, res.Direction)
	assert.Contains(t, res.Interpretation, "Excellent balance")
}

func TestAnalyzer_AnalyzeWithIndustry(t *testing.T) {
	a := newTestAnalyzer()
	ctx := context.Background()

	t.Run("known industry", func(t *testing.T) {
		res := a.Analyze(ctx, masculineAdvert, Options{Industry: "Defence & Aerospace", Method: MethodContextual})
		require.NotNil(t, res.Benchmark)
		assert.Equal(t, "Defence & Aerospace", res.Benchmark.Industry)
		assert.Equal(t, 54, res.Benchmark.SampleSize)
		assert.Equal(t, "Industry Average", res.Benchmark.Classification.Label)
	})

	t.Run("unknown industry falls back", func(t *testing.T) {
		res := a.Analyze(ctx, masculineAdvert, Options{Industry: "Underwater Basket Weaving", Method: MethodContextual})
		require.NotNil(t, res.Benchmark)
		assert.Equal(t, "General OR/Analytics", res.Benchmark.Industry)
		assert.Equal(t, "Above Average Bias", res.Benchmark.Classification.Label)
	})
}

func TestAnalyzer_Properties(t *testing.T) {
	a := newTestAnalyzer(WithEstimator(sentiment.Func(func(context.Context, string) (sentiment.Estimate, error) {
		return sentiment.Estimate{Polarity: 0.6, Subjectivity: 0.9}, nil
	})))
	ctx := context.Background()

	inputs := []string{
		"",
		"   ",
		masculineAdvert,
		"Our collaborative team values supportive, inclusive partnership.",
		"You must be the best. Dominate the market, crush the competition and win at all costs!",
		"Nurturing, caring, empathetic, kind, gentle, warm and welcoming colleagues wanted.",
		"Ünïcödé tëxt wïth nö mätchës.",
	}

	for _, text := range inputs {
		first := a.Analyze(ctx, text, Options{})
		second := a.Analyze(ctx, text, Options{})

		assert.Equal(t, first.Scores, second.Scores, "scoring must be repeatable for %q", text)

		s := first.Scores
		for _, score := range []float64{s.Lexicon.Score, s.Contextual.Score, s.Sentiment.Score, s.Ensemble} {
			assert.GreaterOrEqual(t, score, -100.0)
			assert.LessOrEqual(t, score, 100.0)
		}
		assert.LessOrEqual(t, s.Lexicon.Confidence, 90.0)
		assert.LessOrEqual(t, s.Contextual.Confidence, 85.0)
		assert.LessOrEqual(t, s.Sentiment.Confidence, 80.0)
		assert.LessOrEqual(t, s.EnsembleConfidence, 95.0)
		assert.GreaterOrEqual(t, s.EnsembleConfidence, 0.0)
	}
}

func TestAnalyzer_Improve(t *testing.T) {
	a := newTestAnalyzer()
	ctx := context.Background()

	t.Run("rewrites biased text and re-scores it", func(t *testing.T) {
		report := a.Improve(ctx, masculineAdvert, Options{}, false)

		require.True(t, report.Applied)
		require.NotNil(t, report.Improved)
		assert.Equal(t, "We are looking for a results-focused, proactive collaborative who can facilitate in the market.", report.Rewrite.Text)
		assert.Equal(t, []string{
			"dominate the market → lead in the market",
			"competitive → results-focused",
			"aggressive → proactive",
			"individual → collaborative",
			"lead → facilitate",
		}, report.Rewrite.Changes)
		assert.Equal(t, 63.5, report.Original.FinalScore)
		assert.Equal(t, -43.6, report.Improved.FinalScore)
		assert.Equal(t, 19.9, report.ReductionPoints)
		assert.Equal(t, 31.3, report.ReductionPercent)
		assert.NotEqual(t, report.Original.ID, report.Improved.ID)
	})

	t.Run("balanced text is left alone", func(t *testing.T) {
		report := a.Improve(ctx, "The quick brown fox jumps over the lazy dog.", Options{}, false)

		assert.False(t, report.Applied)
		assert.Nil(t, report.Improved)
		assert.Equal(t, "The quick brown fox jumps over the lazy dog.", report.Rewrite.Text)
		assert.Empty(t, report.Rewrite.Changes)
	})

	t.Run("force rewrites regardless of score", func(t *testing.T) {
		report := a.Improve(ctx, "Competitive individual needed", Options{}, true)

		require.True(t, report.Applied)
		assert.Equal(t, "Results-focused collaborative needed", report.Rewrite.Text)
		assert.Contains(t, report.Rewrite.Changes, "competitive → results-focused")
		assert.Equal(t, 46.1, report.Original.FinalScore)
		assert.Equal(t, -42.5, report.Improved.FinalScore)
		assert.Equal(t, 3.6, report.ReductionPoints)
	})

	t.Run("selected method drives the comparison", func(t *testing.T) {
		report := a.Improve(ctx, masculineAdvert, Options{Method: MethodLexicon}, false)

		require.True(t, report.Applied)
		require.NotNil(t, report.Improved)
		assert.Equal(t, MethodLexicon, report.Improved.Method)
		assert.Equal(t, report.Original.Scores.Lexicon.Score, report.Original.FinalScore)
		assert.Equal(t, report.Improved.Scores.Lexicon.Score, report.Improved.FinalScore)
		assert.Equal(t, -43.6, report.Improved.Scores.Ensemble)

		before, after := math.Abs(report.Original.FinalScore), math.Abs(report.Improved.FinalScore)
		if before > after {
			assert.Equal(t, round1(before-after), report.ReductionPoints)
		} else {
			assert.Zero(t, report.ReductionPoints)
		}
	})

	t.Run("no reduction when the rewrite does not help", func(t *testing.T) {
		report := a.Improve(ctx, "Our team values kindness.", Options{}, true)

		require.True(t, report.Applied)
		assert.Zero(t, report.ReductionPoints)
		assert.Zero(t, report.ReductionPercent)
	})
}

func TestInterpret(t *testing.T) {
	assert.Contains(t, Interpret(10), "Excellent balance")
	assert.Contains(t, Interpret(-30), "feminine-coded")
	assert.Contains(t, Interpret(30), "masculine-coded")
	assert.Contains(t, Interpret(-70), "strong feminine coding")
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		input    string
		expected Method
		wantErr  bool
	}{
		{"", MethodEnsemble, false},
		{"Comprehensive", MethodEnsemble, false},
		{"lexicon", MethodLexicon, false},
		{" contextual ", MethodContextual, false},
		{"intensity", MethodSentiment, false},
		{"magic", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMethod(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

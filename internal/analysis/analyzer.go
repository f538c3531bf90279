package analysis

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/lexicon"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/sentiment"
)

// DefaultRewriteThreshold is the |score| above which a rewrite is proposed.
const DefaultRewriteThreshold = 15.0

// Benchmark is the industry reference data used for comparisons.
type Benchmark struct {
	Industry    string
	Description string
	SampleSize  int
	Thresholds
}

// BenchmarkSource resolves an industry name, falling back to a default
// industry when the name is unknown.
type BenchmarkSource interface {
	Lookup(industry string) Benchmark
}

// Options select the final method and the optional industry of an analysis.
type Options struct {
	Method   Method
	Industry string
}

// Analyzer orchestrates the full analysis pipeline. It holds only read-only
// state and may be shared between goroutines.
type Analyzer struct {
	tables           *lexicon.Tables
	rewriter         *Rewriter
	estimator        sentiment.Estimator
	benchmarks       BenchmarkSource
	rewriteThreshold float64
	newID            func() string
}

type Option func(*Analyzer)

// WithEstimator sets the optional sentiment estimator.
func WithEstimator(e sentiment.Estimator) Option {
	return func(a *Analyzer) { a.estimator = e }
}

// WithBenchmarks enables industry comparisons.
func WithBenchmarks(b BenchmarkSource) Option {
	return func(a *Analyzer) { a.benchmarks = b }
}

func WithRewriteThreshold(threshold float64) Option {
	return func(a *Analyzer) { a.rewriteThreshold = threshold }
}

func WithIDGenerator(fn func() string) Option {
	return func(a *Analyzer) { a.newID = fn }
}

// NewAnalyzer creates a new analyzer over tables.
func NewAnalyzer(tables *lexicon.Tables, opts ...Option) *Analyzer {
	a := &Analyzer{
		tables:           tables,
		rewriter:         NewRewriter(tables),
		rewriteThreshold: DefaultRewriteThreshold,
		newID:            uuid.NewString,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RewriteThreshold returns the |score| above which Improve rewrites text.
func (a *Analyzer) RewriteThreshold() float64 {
	return a.rewriteThreshold
}

// EstimatorName reports the configured sentiment provider.
func (a *Analyzer) EstimatorName() string {
	return sentiment.NameOf(a.estimator)
}

// Score runs the three methods and the ensemble on text.
func (a *Analyzer) Score(ctx context.Context, text string) Scores {
	lex := ScoreLexicon(text, a.tables)
	con := ScoreContextual(text, a.tables)
	sen := ScoreSentiment(ctx, text, a.tables, a.estimator)

	return Scores{
		Lexicon:            lex,
		Contextual:         con,
		Sentiment:          sen,
		Ensemble:           Combine(lex.Score, con.Score, sen.Score),
		EnsembleConfidence: CombineConfidence(lex.Confidence, con.Confidence, sen.Confidence),
		Spread:             spread(lex.Score, con.Score, sen.Score),
	}
}

// Analyze scores text and classifies the score chosen by opts.Method.
func (a *Analyzer) Analyze(ctx context.Context, text string, opts Options) Result {
	method := opts.Method
	if method == "" {
		method = MethodEnsemble
	}

	scores := a.Score(ctx, text)
	final, conf := scores.Ensemble, scores.EnsembleConfidence
	switch method {
	case MethodLexicon:
		final, conf = scores.Lexicon.Score, scores.Lexicon.Confidence
	case MethodContextual:
		final, conf = scores.Contextual.Score, scores.Contextual.Confidence
	case MethodSentiment:
		final, conf = scores.Sentiment.Score, scores.Sentiment.Confidence
	}

	res := Result{
		ID:             a.newID(),
		Method:         method,
		Scores:         scores,
		FinalScore:     final,
		Confidence:     conf,
		Direction:      directionOf(final),
		Classification: Classify(final),
		Interpretation: Interpret(final),
		Stats: TextStats{
			Words:      len(strings.Fields(text)),
			Characters: utf8.RuneCountInString(text),
		},
	}

	if a.benchmarks != nil && opts.Industry != "" {
		b := a.benchmarks.Lookup(opts.Industry)
		res.Benchmark = &BenchmarkComparison{
			Industry:         b.Industry,
			Description:      b.Description,
			SampleSize:       b.SampleSize,
			AverageBias:      b.AverageBias,
			NeutralThreshold: b.NeutralThreshold,
			BestPractice:     b.BestPractice,
			Classification:   ClassifyBenchmarked(final, b.Thresholds),
		}
	}

	return res
}

// Rewrite applies the replacement tables to text.
func (a *Analyzer) Rewrite(text string) RewriteResult {
	return a.rewriter.Rewrite(text)
}

// Improve analyses text and, when its final score exceeds the rewrite
// threshold or force is set, rewrites it and scores the rewrite with the same
// options. Final scores follow opts.Method, so a non-ensemble method compares
// that method's scores rather than the ensemble.
func (a *Analyzer) Improve(ctx context.Context, text string, opts Options, force bool) Improvement {
	original := a.Analyze(ctx, text, opts)
	report := Improvement{
		Original: original,
		Rewrite:  RewriteResult{Text: text, Changes: []string{}},
	}
	if !force && math.Abs(original.FinalScore) <= a.rewriteThreshold {
		return report
	}

	report.Applied = true
	report.Rewrite = a.Rewrite(text)
	improved := a.Analyze(ctx, report.Rewrite.Text, opts)
	report.Improved = &improved

	before, after := math.Abs(original.FinalScore), math.Abs(improved.FinalScore)
	if before > after {
		report.ReductionPoints = round1(before - after)
		report.ReductionPercent = round1((before - after) / before * 100)
	}
	return report
}

// Interpret returns a short narrative for a final score.
func Interpret(score float64) string {
	abs := math.Abs(score)
	coding := "masculine"
	if score < 0 {
		coding = "feminine"
	}
	switch Classify(score).Level {
	case LevelGood:
		return fmt.Sprintf("Excellent balance: a bias score of %.1f indicates inclusive language likely to appeal to candidates regardless of gender.", abs)
	case LevelWarning:
		return fmt.Sprintf("Moderate bias: a bias score of %.1f shows %s-coded language that may influence application rates. Consider the suggested improvements.", abs, coding)
	default:
		return fmt.Sprintf("Significant bias: a bias score of %.1f shows strong %s coding that may narrow the applicant pool. A comprehensive revision is recommended.", abs, coding)
	}
}

package analysis

import (
	"fmt"
	"strings"
)

// Method selects which score becomes the final score of an analysis.
type Method string

const (
	MethodLexicon    Method = "lexicon"
	MethodContextual Method = "contextual"
	MethodSentiment  Method = "sentiment"
	MethodEnsemble   Method = "ensemble"
)

// ParseMethod accepts the canonical names plus a few aliases. An empty string
// selects the ensemble.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ensemble", "comprehensive":
		return MethodEnsemble, nil
	case "lexicon":
		return MethodLexicon, nil
	case "contextual", "pattern":
		return MethodContextual, nil
	case "sentiment", "intensity":
		return MethodSentiment, nil
	}
	return "", fmt.Errorf("unknown analysis method %q", s)
}

// Direction names the dominant coding of a text.
type Direction string

const (
	DirectionMasculine Direction = "masculine"
	DirectionFeminine  Direction = "feminine"
	DirectionNeutral   Direction = "neutral"
)

func directionOf(score float64) Direction {
	switch {
	case score > 0:
		return DirectionMasculine
	case score < 0:
		return DirectionFeminine
	default:
		return DirectionNeutral
	}
}

type LexiconResult struct {
	Score          float64  `json:"score"`
	Confidence     float64  `json:"confidence"`
	MasculineWords []string `json:"masculine_words"`
	FeminineWords  []string `json:"feminine_words"`
}

// PatternMatch is a detected contextual phrase and the weight it contributed.
type PatternMatch struct {
	Phrase string `json:"phrase"`
	Weight int    `json:"weight"`
}

type ContextualResult struct {
	Score            float64        `json:"score"`
	Confidence       float64        `json:"confidence"`
	Patterns         []PatternMatch `json:"patterns"`
	StructuralWeight int            `json:"structural_weight"`
}

type SentimentResult struct {
	Score        float64  `json:"score"`
	Confidence   float64  `json:"confidence"`
	Markers      []string `json:"markers"`
	MarkerWeight int      `json:"marker_weight"`
	Polarity     float64  `json:"polarity"`
	Subjectivity float64  `json:"subjectivity"`
	Adjustment   int      `json:"adjustment"`
	// Estimated is false when the neutral defaults were used.
	Estimated bool   `json:"estimated"`
	Provider  string `json:"provider"`
}

// Scores is one full pass of the three methods and the ensemble.
type Scores struct {
	Lexicon            LexiconResult    `json:"lexicon"`
	Contextual         ContextualResult `json:"contextual"`
	Sentiment          SentimentResult  `json:"sentiment"`
	Ensemble           float64          `json:"ensemble_score"`
	EnsembleConfidence float64          `json:"ensemble_confidence"`
	// Spread is the standard deviation of the three method scores.
	Spread float64 `json:"method_spread"`
}

// TextStats describes the analysed input.
type TextStats struct {
	Words      int `json:"words"`
	Characters int `json:"characters"`
}

// BenchmarkComparison places a score against an industry benchmark.
type BenchmarkComparison struct {
	Industry         string         `json:"industry"`
	Description      string         `json:"description,omitempty"`
	SampleSize       int            `json:"sample_size"`
	AverageBias      float64        `json:"average_bias"`
	NeutralThreshold float64        `json:"neutral_threshold"`
	BestPractice     float64        `json:"best_practice"`
	Classification   Classification `json:"classification"`
}

// Result is the outcome of one analysis.
type Result struct {
	ID             string               `json:"id"`
	Method         Method               `json:"method"`
	Scores         Scores               `json:"scores"`
	FinalScore     float64              `json:"final_score"`
	Confidence     float64              `json:"confidence"`
	Direction      Direction            `json:"direction"`
	Classification Classification       `json:"classification"`
	Interpretation string               `json:"interpretation"`
	Benchmark      *BenchmarkComparison `json:"benchmark,omitempty"`
	Stats          TextStats            `json:"stats"`
}

// Improvement is a before/after report for a rewrite. Both results are
// scored with the same Options, so the threshold check and the reduction
// compare final scores of the selected method: the ensemble by default, the
// lexicon score alone when the method is lexicon. Improved.Scores.Ensemble
// always holds the improved ensemble score.
type Improvement struct {
	Original Result        `json:"original"`
	Applied  bool          `json:"applied"`
	Rewrite  RewriteResult `json:"rewrite"`
	Improved *Result       `json:"improved,omitempty"`
	// Reduction values are zero unless the rewrite moved the score toward neutral.
	ReductionPoints  float64 `json:"reduction_points"`
	ReductionPercent float64 `json:"reduction_percent"`
}

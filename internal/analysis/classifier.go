package analysis

import "math"

// Level is a coarse severity for presenting a classification.
type Level string

const (
	LevelGood    Level = "good"
	LevelWarning Level = "warning"
	LevelAlert   Level = "alert"
)

type Classification struct {
	Label       string `json:"label"`
	Level       Level  `json:"level"`
	Description string `json:"description,omitempty"`
}

// Band is one tier of a classifier: scores with |score| <= Limit get Label.
type Band struct {
	Limit float64
	Classification
}

// Classifier evaluates its bands top to bottom and returns Fallback when no
// band matches.
type Classifier struct {
	Bands    []Band
	Fallback Classification
}

// Classify maps the absolute value of score to a label.
func (c Classifier) Classify(score float64) Classification {
	abs := math.Abs(score)
	for _, b := range c.Bands {
		if abs <= b.Limit {
			return b.Classification
		}
	}
	return c.Fallback
}

// BasicClassifier uses fixed thresholds.
var BasicClassifier = Classifier{
	Bands: []Band{
		{Limit: 20, Classification: Classification{Label: "Well Balanced", Level: LevelGood}},
		{Limit: 40, Classification: Classification{Label: "Moderate Bias", Level: LevelWarning}},
	},
	Fallback: Classification{Label: "High Bias", Level: LevelAlert},
}

// Classify applies the basic classifier.
func Classify(score float64) Classification {
	return BasicClassifier.Classify(score)
}

// Thresholds are the per-industry limits the benchmarked classifier needs.
type Thresholds struct {
	BestPractice     float64 `json:"best_practice"`
	NeutralThreshold float64 `json:"neutral_threshold"`
	AverageBias      float64 `json:"average_bias"`
}

// benchmarkTier derives a band limit from industry thresholds.
type benchmarkTier struct {
	limit func(Thresholds) float64
	Classification
}

var benchmarkTiers = []benchmarkTier{
	{
		limit:          func(t Thresholds) float64 { return t.BestPractice },
		Classification: Classification{Label: "Excellent", Level: LevelGood, Description: "Top-tier inclusive language"},
	},
	{
		limit:          func(t Thresholds) float64 { return t.NeutralThreshold },
		Classification: Classification{Label: "Good", Level: LevelGood, Description: "Well-balanced language"},
	},
	{
		limit:          func(t Thresholds) float64 { return t.AverageBias },
		Classification: Classification{Label: "Industry Average", Level: LevelWarning, Description: "Typical for your sector"},
	},
	{
		limit:          func(t Thresholds) float64 { return 1.5 * t.AverageBias },
		Classification: Classification{Label: "Above Average Bias", Level: LevelAlert, Description: "Higher than sector norm"},
	},
}

// BenchmarkClassifier builds the tiered classifier for one industry.
func BenchmarkClassifier(t Thresholds) Classifier {
	bands := make([]Band, 0, len(benchmarkTiers))
	for _, tier := range benchmarkTiers {
		bands = append(bands, Band{Limit: tier.limit(t), Classification: tier.Classification})
	}
	return Classifier{
		Bands:    bands,
		Fallback: Classification{Label: "High Bias", Level: LevelAlert, Description: "Significantly biased"},
	}
}

// ClassifyBenchmarked applies the industry classifier built from t.
func ClassifyBenchmarked(score float64, t Thresholds) Classification {
	return BenchmarkClassifier(t).Classify(score)
}

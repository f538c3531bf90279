package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		score float64
		label string
		level Level
	}{
		{0, "Well Balanced", LevelGood},
		{20, "Well Balanced", LevelGood},
		{-20, "Well Balanced", LevelGood},
		{20.1, "Moderate Bias", LevelWarning},
		{-40, "Moderate Bias", LevelWarning},
		{40.1, "High Bias", LevelAlert},
		{-100, "High Bias", LevelAlert},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got := Classify(tt.score)
			assert.Equal(t, tt.label, got.Label)
			assert.Equal(t, tt.level, got.Level)
		})
	}
}

func TestClassifyBenchmarked(t *testing.T) {
	healthcare := Thresholds{BestPractice: 12, NeutralThreshold: 18, AverageBias: 22.5}

	tests := []struct {
		name  string
		score float64
		label string
	}{
		{"at best practice", 12, "Excellent"},
		{"negative below best practice", -5, "Excellent"},
		{"under neutral threshold", 17.9, "Good"},
		{"at industry average", -22.5, "Industry Average"},
		{"within one and a half averages", 33.75, "Above Average Bias"},
		{"beyond one and a half averages", 33.8, "High Bias"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.label, ClassifyBenchmarked(tt.score, healthcare).Label)
		})
	}
}

func TestBenchmarkClassifier_Bands(t *testing.T) {
	c := BenchmarkClassifier(Thresholds{BestPractice: 10, NeutralThreshold: 15, AverageBias: 20})

	limits := make([]float64, 0, len(c.Bands))
	for _, b := range c.Bands {
		limits = append(limits, b.Limit)
	}
	assert.Equal(t, []float64{10, 15, 20, 30}, limits)
	assert.Equal(t, "High Bias", c.Fallback.Label)
	assert.Equal(t, "Significantly biased", c.Fallback.Description)
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name                  string
		lex, con, sen, expect float64
	}{
		{"all zero", 0, 0, 0, 0},
		{"masculine advert", 100, 35, 45, 63.5},
		{"rounds half away from zero", 100, 25, 20, 53.8},
		{"feminine advert", -100, -21, -34, -55.9},
		{"mixed signs", 50, -50, 0, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Combine(tt.lex, tt.con, tt.sen))
		})
	}
}

func TestCombineConfidence(t *testing.T) {
	assert.Equal(t, 66.0, CombineConfidence(72, 68, 58))
	assert.Equal(t, 68.3, CombineConfidence(75, 68, 62))
	assert.Equal(t, 85.0, CombineConfidence(90, 85, 80))
	assert.LessOrEqual(t, CombineConfidence(100, 100, 100), 95.0)
}

package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/lexicon"
)

func TestScoreContextual(t *testing.T) {
	tables := lexicon.Default()

	tests := []struct {
		name       string
		input      string
		score      float64
		confidence float64
		patterns   []PatternMatch
		structural int
	}{
		{
			name:       "exact phrase adds its weight",
			input:      "Join our competitive environment.",
			score:      25,
			confidence: 68,
			patterns:   []PatternMatch{{Phrase: "competitive environment", Weight: 25}},
		},
		{
			name:       "repeated phrase counts once",
			input:      "A competitive environment. Another competitive environment.",
			score:      25,
			confidence: 68,
			patterns:   []PatternMatch{{Phrase: "competitive environment", Weight: 25}},
		},
		{
			name:       "structural cues only",
			input:      "You must be the best. We work together.",
			score:      6,
			confidence: 65,
			patterns:   []PatternMatch{},
			structural: 6,
		},
		{
			name:       "individual framing wins over team framing",
			input:      "Candidates should be excellent and work independently with our team.",
			score:      -2,
			confidence: 68,
			patterns:   []PatternMatch{{Phrase: "our team", Weight: -14}},
			structural: 12,
		},
		{
			name:       "structural cues match substrings",
			input:      "We were here.",
			score:      -3,
			confidence: 65,
			patterns:   []PatternMatch{},
			structural: -3,
		},
		{
			name:       "empty sentences are skipped",
			input:      "...",
			score:      0,
			confidence: 65,
			patterns:   []PatternMatch{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreContextual(tt.input, tables)
			assert.Equal(t, tt.score, got.Score)
			assert.Equal(t, tt.confidence, got.Confidence)
			assert.Equal(t, tt.patterns, got.Patterns)
			assert.Equal(t, tt.structural, got.StructuralWeight)
		})
	}
}

func TestScoreContextual_Clipping(t *testing.T) {
	tables := lexicon.Default()

	var masculine, feminine []string
	for _, p := range tables.Patterns {
		if p.Weight >= 30 {
			masculine = append(masculine, p.Phrase)
		}
		if p.Weight <= -15 {
			feminine = append(feminine, p.Phrase)
		}
	}

	high := ScoreContextual(strings.Join(masculine, " "), tables)
	assert.Equal(t, 100.0, high.Score)
	assert.Equal(t, 85.0, high.Confidence)

	low := ScoreContextual(strings.Join(feminine, " "), tables)
	assert.Equal(t, -100.0, low.Score)
}

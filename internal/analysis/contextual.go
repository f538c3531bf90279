package analysis

import (
	"strings"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/lexicon"
)

// structuralCue adds weight to a sentence containing any of its phrases.
type structuralCue struct {
	phrases []string
	weight  int
}

var (
	requirementCue = structuralCue{
		phrases: []string{"must be", "should be", "required to", "expected to"},
		weight:  5,
	}
	superlativeCue = structuralCue{
		phrases: []string{"best", "top", "leading", "premier", "superior", "excellent"},
		weight:  4,
	}
	// Individual framing wins over team framing within one sentence.
	framingCues = []structuralCue{
		{phrases: []string{"you will", "individual", "independently", "on your own"}, weight: 3},
		{phrases: []string{"we", "our team", "together", "collaborate", "partnership"}, weight: -3},
	}
)

func (c structuralCue) matches(sentence string) bool {
	for _, p := range c.phrases {
		if strings.Contains(sentence, p) {
			return true
		}
	}
	return false
}

// structuralWeight sums the sentence-level cues over every '.'-separated sentence.
func structuralWeight(lowered string) int {
	total := 0
	for _, sentence := range strings.Split(lowered, ".") {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		if requirementCue.matches(sentence) {
			total += requirementCue.weight
		}
		if superlativeCue.matches(sentence) {
			total += superlativeCue.weight
		}
		for _, cue := range framingCues {
			if cue.matches(sentence) {
				total += cue.weight
				break
			}
		}
	}
	return total
}

// ScoreContextual sums the weights of every table phrase present in text plus
// the structural sentence cues. A phrase counts once however often it occurs.
func ScoreContextual(text string, t *lexicon.Tables) ContextualResult {
	lowered := strings.ToLower(text)

	detected := []PatternMatch{}
	sum := 0
	for _, p := range t.Patterns {
		if strings.Contains(lowered, p.Phrase) {
			sum += p.Weight
			detected = append(detected, PatternMatch{Phrase: p.Phrase, Weight: p.Weight})
		}
	}

	structural := structuralWeight(lowered)

	return ContextualResult{
		Score:            round1(clipScore(float64(sum + structural))),
		Confidence:       confidence(65, 3, len(detected), maxContextualConfidence),
		Patterns:         detected,
		StructuralWeight: structural,
	}
}

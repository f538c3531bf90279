package analysis

import (
	"strings"
	"unicode"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/lexicon"
)

// tokenize lowercases text and splits it into runs of letters, digits and underscores.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
}

// MatchWords returns the unique masculine and feminine tokens of text in
// first-occurrence order. The masculine set is consulted first.
func MatchWords(text string, t *lexicon.Tables) (masculine, feminine []string) {
	masculine, feminine = []string{}, []string{}
	seen := make(map[string]struct{})
	for _, tok := range tokenize(text) {
		if _, ok := seen[tok]; ok {
			continue
		}
		switch {
		case t.Masculine.Has(tok):
			masculine = append(masculine, tok)
		case t.Feminine.Has(tok):
			feminine = append(feminine, tok)
		default:
			continue
		}
		seen[tok] = struct{}{}
	}
	return masculine, feminine
}

// ScoreLexicon computes the normalized masculine/feminine ratio of text.
func ScoreLexicon(text string, t *lexicon.Tables) LexiconResult {
	masculine, feminine := MatchWords(text, t)
	m, f := len(masculine), len(feminine)

	score := 0.0
	if total := m + f; total > 0 {
		score = round1(100 * float64(m-f) / float64(total))
	}

	return LexiconResult{
		Score:          score,
		Confidence:     confidence(60, 3, m+f, maxLexiconConfidence),
		MasculineWords: masculine,
		FeminineWords:  feminine,
	}
}

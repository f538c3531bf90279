package lexicon

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

// Pattern is a weighted multi-word phrase. Positive weights lean masculine.
type Pattern struct {
	Phrase string `json:"phrase"`
	Weight int    `json:"weight"`
}

// Replacement maps a biased phrase to a neutral one.
type Replacement struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// WordSet is a set of lowercase tokens.
type WordSet map[string]struct{}

func newWordSet(words []string) WordSet {
	s := make(WordSet, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		s[w] = struct{}{}
	}
	return s
}

// Has reports whether word is in the set.
func (s WordSet) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// Tables holds every static table the scorers and rewriter read.
// A Tables value must not be modified once built; it is shared across goroutines.
type Tables struct {
	Masculine          WordSet
	Feminine           WordSet
	Patterns           []Pattern
	Intensity          map[string]int
	PhraseReplacements []Replacement
	WordReplacements   map[string]string
}

// tableFile is the JSON layout of an override file. Omitted sections keep the defaults.
type tableFile struct {
	MasculineWords     []string          `json:"masculine_words"`
	FeminineWords      []string          `json:"feminine_words"`
	Patterns           []Pattern         `json:"patterns"`
	IntensityMarkers   map[string]int    `json:"intensity_markers"`
	PhraseReplacements []Replacement     `json:"phrase_replacements"`
	WordReplacements   map[string]string `json:"word_replacements"`
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the built-in tables. They are built once per process.
func Default() *Tables {
	defaultOnce.Do(func() {
		defaultTables = build(tableFile{
			MasculineWords:     masculineWords,
			FeminineWords:      feminineWords,
			Patterns:           biasPatterns,
			IntensityMarkers:   intensityMarkers,
			PhraseReplacements: phraseReplacements,
			WordReplacements:   wordReplacements,
		})
	})
	return defaultTables
}

// Load reads an override file and merges it over the defaults.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Tables, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon file: %w", err)
	}
	defer file.Close()

	var override tableFile
	if err := json.NewDecoder(file).Decode(&override); err != nil {
		return nil, fmt.Errorf("failed to decode lexicon file: %w", err)
	}

	merged := tableFile{
		MasculineWords:     masculineWords,
		FeminineWords:      feminineWords,
		Patterns:           biasPatterns,
		IntensityMarkers:   intensityMarkers,
		PhraseReplacements: phraseReplacements,
		WordReplacements:   wordReplacements,
	}
	if len(override.MasculineWords) > 0 {
		merged.MasculineWords = override.MasculineWords
	}
	if len(override.FeminineWords) > 0 {
		merged.FeminineWords = override.FeminineWords
	}
	if len(override.Patterns) > 0 {
		merged.Patterns = override.Patterns
	}
	if len(override.IntensityMarkers) > 0 {
		merged.IntensityMarkers = override.IntensityMarkers
	}
	if len(override.PhraseReplacements) > 0 {
		merged.PhraseReplacements = override.PhraseReplacements
	}
	if len(override.WordReplacements) > 0 {
		merged.WordReplacements = override.WordReplacements
	}

	t := build(merged)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func build(f tableFile) *Tables {
	t := &Tables{
		Masculine:          newWordSet(f.MasculineWords),
		Feminine:           newWordSet(f.FeminineWords),
		Patterns:           make([]Pattern, 0, len(f.Patterns)),
		Intensity:          make(map[string]int, len(f.IntensityMarkers)),
		PhraseReplacements: make([]Replacement, 0, len(f.PhraseReplacements)),
		WordReplacements:   make(map[string]string, len(f.WordReplacements)),
	}
	for _, p := range f.Patterns {
		phrase := strings.ToLower(strings.TrimSpace(p.Phrase))
		if phrase == "" {
			continue
		}
		t.Patterns = append(t.Patterns, Pattern{Phrase: phrase, Weight: p.Weight})
	}
	for word, weight := range f.IntensityMarkers {
		t.Intensity[strings.ToLower(word)] = weight
	}
	for _, r := range f.PhraseReplacements {
		from := strings.ToLower(strings.TrimSpace(r.From))
		if from == "" {
			continue
		}
		t.PhraseReplacements = append(t.PhraseReplacements, Replacement{From: from, To: r.To})
	}
	for word, repl := range f.WordReplacements {
		t.WordReplacements[strings.ToLower(word)] = repl
	}
	return t
}

// Validate checks that the word lexicons are disjoint.
func (t *Tables) Validate() error {
	for w := range t.Masculine {
		if t.Feminine.Has(w) {
			return fmt.Errorf("word %q is listed as both masculine and feminine", w)
		}
	}
	return nil
}

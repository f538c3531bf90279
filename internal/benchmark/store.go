// Package benchmark serves per-industry bias benchmarks used to put an
// analysis score in context.
package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/analysis"
)

// Industry holds the reference statistics for one sector.
type Industry struct {
	Name              string  `json:"name"`
	AverageBias       float64 `json:"average_bias"`
	NeutralThreshold  float64 `json:"neutral_threshold"`
	BestPractice      float64 `json:"best_practice"`
	SampleSize        int     `json:"sample_size"`
	MasculineTendency float64 `json:"masculine_tendency"`
	FeminineTendency  float64 `json:"feminine_tendency"`
	Description       string  `json:"description"`
}

// Thresholds returns the limits the benchmarked classifier needs.
func (i Industry) Thresholds() analysis.Thresholds {
	return analysis.Thresholds{
		BestPractice:     i.BestPractice,
		NeutralThreshold: i.NeutralThreshold,
		AverageBias:      i.AverageBias,
	}
}

// Store is a read-only set of industries keyed case-insensitively by name.
type Store struct {
	industries map[string]Industry
	fallback   string
}

// NewStore indexes industries. fallback must name one of them.
func NewStore(industries []Industry, fallback string) (*Store, error) {
	s := &Store{industries: make(map[string]Industry, len(industries)), fallback: key(fallback)}
	for _, ind := range industries {
		if strings.TrimSpace(ind.Name) == "" {
			return nil, fmt.Errorf("industry without a name")
		}
		if ind.BestPractice > ind.NeutralThreshold || ind.NeutralThreshold > ind.AverageBias {
			return nil, fmt.Errorf("industry %q: thresholds must satisfy best_practice <= neutral_threshold <= average_bias", ind.Name)
		}
		s.industries[key(ind.Name)] = ind
	}
	if _, ok := s.industries[s.fallback]; !ok {
		return nil, fmt.Errorf("fallback industry %q is not defined", fallback)
	}
	return s, nil
}

// Default returns the built-in store.
func Default() *Store {
	s, err := NewStore(defaultIndustries, DefaultIndustry)
	if err != nil {
		panic(err)
	}
	return s
}

// LoadFile reads industries from a JSON array. A missing file or an empty
// path returns the built-in store.
func LoadFile(path string) (*Store, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open benchmark file: %w", err)
	}
	defer file.Close()

	var industries []Industry
	if err := json.NewDecoder(file).Decode(&industries); err != nil {
		return nil, fmt.Errorf("failed to decode benchmark data: %w", err)
	}

	fallback := DefaultIndustry
	if len(industries) > 0 {
		if _, ok := findIndustry(industries, DefaultIndustry); !ok {
			fallback = industries[0].Name
		}
	}
	return NewStore(industries, fallback)
}

func findIndustry(industries []Industry, name string) (Industry, bool) {
	for _, ind := range industries {
		if key(ind.Name) == key(name) {
			return ind, true
		}
	}
	return Industry{}, false
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Get returns the named industry, or the fallback industry and false.
func (s *Store) Get(name string) (Industry, bool) {
	if ind, ok := s.industries[key(name)]; ok {
		return ind, true
	}
	return s.industries[s.fallback], false
}

// Fallback returns the industry used for unknown names.
func (s *Store) Fallback() Industry {
	return s.industries[s.fallback]
}

// List returns every industry sorted by name.
func (s *Store) List() []Industry {
	out := make([]Industry, 0, len(s.industries))
	for _, ind := range s.industries {
		out = append(out, ind)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup implements analysis.BenchmarkSource.
func (s *Store) Lookup(name string) analysis.Benchmark {
	ind, _ := s.Get(name)
	return analysis.Benchmark{
		Industry:    ind.Name,
		Description: ind.Description,
		SampleSize:  ind.SampleSize,
		Thresholds:  ind.Thresholds(),
	}
}

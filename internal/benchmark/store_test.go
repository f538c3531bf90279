package benchmark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/analysis"
)

func TestDefault(t *testing.T) {
	s := Default()

	assert.Len(t, s.List(), 15)
	assert.Equal(t, DefaultIndustry, s.Fallback().Name)

	t.Run("known industry", func(t *testing.T) {
		ind, ok := s.Get("Defence & Aerospace")
		require.True(t, ok)
		assert.Equal(t, 42.3, ind.AverageBias)
		assert.Equal(t, 25.0, ind.NeutralThreshold)
		assert.Equal(t, 18.0, ind.BestPractice)
		assert.Equal(t, 54, ind.SampleSize)
	})

	t.Run("lookup ignores case and padding", func(t *testing.T) {
		ind, ok := s.Get("  government & public sector ")
		require.True(t, ok)
		assert.Equal(t, "Government & Public Sector", ind.Name)
	})

	t.Run("unknown industry falls back", func(t *testing.T) {
		ind, ok := s.Get("Space Mining")
		assert.False(t, ok)
		assert.Equal(t, DefaultIndustry, ind.Name)
		assert.Equal(t, 308, ind.SampleSize)
	})

	t.Run("list is sorted", func(t *testing.T) {
		list := s.List()
		for i := 1; i < len(list); i++ {
			assert.Less(t, list[i-1].Name, list[i].Name)
		}
	})
}

func TestStore_Lookup(t *testing.T) {
	var source analysis.BenchmarkSource = Default()

	b := source.Lookup("Healthcare & Medical OR")
	assert.Equal(t, "Healthcare & Medical OR", b.Industry)
	assert.Equal(t, analysis.Thresholds{BestPractice: 12, NeutralThreshold: 18, AverageBias: 22.5}, b.Thresholds)
	assert.Equal(t, "Excellent", analysis.ClassifyBenchmarked(-11, b.Thresholds).Label)

	fallback := source.Lookup("")
	assert.Equal(t, DefaultIndustry, fallback.Industry)
}

func TestNewStore_Validation(t *testing.T) {
	_, err := NewStore([]Industry{{Name: "A", BestPractice: 10, NeutralThreshold: 20, AverageBias: 30}}, "B")
	assert.Error(t, err)

	_, err = NewStore([]Industry{{Name: "A", BestPractice: 25, NeutralThreshold: 20, AverageBias: 30}}, "A")
	assert.Error(t, err)

	_, err = NewStore([]Industry{{Name: " ", BestPractice: 1, NeutralThreshold: 2, AverageBias: 3}}, " ")
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		s, err := LoadFile("")
		require.NoError(t, err)
		assert.Len(t, s.List(), 15)
	})

	t.Run("missing file", func(t *testing.T) {
		s, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
		require.NoError(t, err)
		assert.Len(t, s.List(), 15)
	})

	t.Run("custom file uses first entry as fallback", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "benchmarks.json")
		body := `[
			{"name": "Nursing", "average_bias": 12, "neutral_threshold": 10, "best_practice": 5, "sample_size": 40},
			{"name": "Mining", "average_bias": 45, "neutral_threshold": 25, "best_practice": 20, "sample_size": 12}
		]`
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		s, err := LoadFile(path)
		require.NoError(t, err)
		assert.Len(t, s.List(), 2)
		assert.Equal(t, "Nursing", s.Fallback().Name)

		ind, ok := s.Get("mining")
		require.True(t, ok)
		assert.Equal(t, 45.0, ind.AverageBias)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "benchmarks.json")
		require.NoError(t, os.WriteFile(path, []byte("[{"), 0o644))

		_, err := LoadFile(path)
		assert.Error(t, err)
	})
}

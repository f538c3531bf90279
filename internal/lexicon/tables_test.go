package lexicon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	tables := Default()

	t.Run("word sets are populated and disjoint", func(t *testing.T) {
		assert.True(t, tables.Masculine.Has("competitive"))
		assert.True(t, tables.Masculine.Has("dominate"))
		assert.True(t, tables.Feminine.Has("collaborative"))
		assert.True(t, tables.Feminine.Has("partnership"))
		require.NoError(t, tables.Validate())
	})

	t.Run("patterns are lowercase", func(t *testing.T) {
		var found bool
		for _, p := range tables.Patterns {
			assert.Equal(t, strings.ToLower(p.Phrase), p.Phrase)
			if p.Phrase == "competitive environment" {
				found = true
				assert.Equal(t, 25, p.Weight)
			}
		}
		assert.True(t, found)
	})

	t.Run("intensity markers", func(t *testing.T) {
		assert.Equal(t, 25, tables.Intensity["aggressive"])
		assert.Equal(t, -20, tables.Intensity["empathetic"])
	})

	t.Run("replacements", func(t *testing.T) {
		assert.Equal(t, "results-focused", tables.WordReplacements["competitive"])
		assert.Equal(t, "collaborative", tables.WordReplacements["individual"])
		require.NotEmpty(t, tables.PhraseReplacements)
		assert.Equal(t, "fast-paced environment", tables.PhraseReplacements[0].From)
	})

	t.Run("built once", func(t *testing.T) {
		assert.Same(t, tables, Default())
	})
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		tables, err := Load("")
		require.NoError(t, err)
		assert.Same(t, Default(), tables)
	})

	t.Run("missing file returns defaults", func(t *testing.T) {
		tables, err := Load(filepath.Join(t.TempDir(), "missing.json"))
		require.NoError(t, err)
		assert.Same(t, Default(), tables)
	})

	t.Run("override replaces only given sections", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tables.json")
		body := `{"masculine_words": ["Rockstar", "ninja"], "patterns": [{"phrase": "Work Hard Play Hard", "weight": 12}]}`
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		tables, err := Load(path)
		require.NoError(t, err)
		assert.Len(t, tables.Masculine, 2)
		assert.True(t, tables.Masculine.Has("rockstar"))
		assert.Equal(t, []Pattern{{Phrase: "work hard play hard", Weight: 12}}, tables.Patterns)
		assert.True(t, tables.Feminine.Has("collaborative"))
		assert.Equal(t, Default().Intensity, tables.Intensity)
	})

	t.Run("overlapping lexicons are rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tables.json")
		body := `{"masculine_words": ["team"], "feminine_words": ["team"]}`
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tables.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

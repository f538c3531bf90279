package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/analysis"
)

const masculineAdvert = "We are looking for a competitive, aggressive individual who can dominate the market."

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("SENTIMENT_PROVIDER", "local")
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	app := newCLI()
	app.Reader = strings.NewReader(stdin)
	app.Writer = &out
	app.ErrWriter = &out

	err := app.RunContext(context.Background(), append([]string{"biascheck"}, args...))
	return out.String(), err
}

func TestAnalyzeCommand(t *testing.T) {
	t.Run("stdin as JSON", func(t *testing.T) {
		out, err := run(t, masculineAdvert, "analyze", "--method", "lexicon", "--json", "-")
		require.NoError(t, err)

		var res analysis.Result
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, analysis.MethodLexicon, res.Method)
		assert.Equal(t, 100.0, res.FinalScore)
		assert.Equal(t, analysis.DirectionMasculine, res.Direction)
	})

	t.Run("no argument reads stdin", func(t *testing.T) {
		out, err := run(t, masculineAdvert, "analyze", "--json")
		require.NoError(t, err)
		assert.Contains(t, out, `"final_score"`)
	})

	t.Run("file report with benchmark", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "advert.txt")
		require.NoError(t, os.WriteFile(path, []byte(masculineAdvert), 0o644))

		out, err := run(t, "", "analyze", "-m", "contextual", "-i", "technology", path)
		require.NoError(t, err)
		assert.Contains(t, out, "advert.txt:")
		assert.Contains(t, out, "masculine-coded:")
		assert.Contains(t, out, "competitive")
		assert.Contains(t, out, "benchmark ")
		assert.Contains(t, out, "final score")
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := run(t, "text", "analyze", "--method", "magic")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown analysis method")
	})

	t.Run("unsupported file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "advert.rtf")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		_, err := run(t, "", "analyze", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported file type")
	})

	t.Run("too many arguments", func(t *testing.T) {
		_, err := run(t, "", "analyze", "a.txt", "b.txt")
		assert.Error(t, err)
	})
}

func TestRewriteCommand(t *testing.T) {
	t.Run("biased text", func(t *testing.T) {
		out, err := run(t, masculineAdvert, "rewrite", "-")
		require.NoError(t, err)
		assert.Contains(t, out, "results-focused")
		assert.Contains(t, out, "Changes:")
		assert.Contains(t, out, "Score: ")
	})

	t.Run("neutral text is not rewritten", func(t *testing.T) {
		out, err := run(t, "The role involves writing reports.", "rewrite")
		require.NoError(t, err)
		assert.Contains(t, out, "no rewrite needed")
	})

	t.Run("forced JSON report", func(t *testing.T) {
		out, err := run(t, "A competitive salary.", "rewrite", "--force", "--json")
		require.NoError(t, err)

		var report analysis.Improvement
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.True(t, report.Applied)
		assert.NotNil(t, report.Improved)
	})
}

func TestIndustriesCommand(t *testing.T) {
	out, err := run(t, "", "industries")
	require.NoError(t, err)
	assert.Contains(t, out, "INDUSTRY")
	assert.Contains(t, out, "(default)")
}

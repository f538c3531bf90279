package adapters

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/config"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/sentiment"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"bare object", `{"polarity": 0.2}`, `{"polarity": 0.2}`, false},
		{"fenced", "```json\n{\"polarity\": -0.5, \"subjectivity\": 0.3}\n```", `{"polarity": -0.5, "subjectivity": 0.3}`, false},
		{"prose around", `Sure! {"a":1} Hope that helps.`, `{"a":1}`, false},
		{"no object", "I cannot help with that", "", true},
		{"reversed braces", "} {", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSON(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEstimate(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		want    sentiment.Estimate
		wantErr bool
	}{
		{"valid", `{"polarity": 0.4, "subjectivity": 0.8}`, sentiment.Estimate{Polarity: 0.4, Subjectivity: 0.8}, false},
		{"out of range is clamped", `{"polarity": 2, "subjectivity": -1}`, sentiment.Estimate{Polarity: 1, Subjectivity: 0}, false},
		{"missing field", `{"polarity": 0.4}`, sentiment.Neutral, true},
		{"not json", `{polarity: high}`, sentiment.Neutral, true},
		{"empty", ``, sentiment.Neutral, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseEstimate(tt.reply)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildSentimentPrompt(t *testing.T) {
	prompt := buildSentimentPrompt("We are hiring a ninja.")
	assert.Contains(t, prompt, "We are hiring a ninja.")
	assert.Contains(t, prompt, `"polarity"`)

	long := strings.Repeat("a", maxPromptChars+500)
	assert.NotContains(t, buildSentimentPrompt(long), strings.Repeat("a", maxPromptChars+1))
}

func TestFromGoogle(t *testing.T) {
	assert.Equal(t, sentiment.Estimate{Polarity: 0.5, Subjectivity: 0.75}, fromGoogle(0.5, 1.5, 2))
	assert.Equal(t, sentiment.Estimate{Polarity: -0.25, Subjectivity: 1}, fromGoogle(-0.25, 4, 1))
	assert.Equal(t, sentiment.Estimate{Polarity: 0, Subjectivity: 0.5}, fromGoogle(0, 0.5, 0))
}

func TestNewSentimentEstimator(t *testing.T) {
	base := config.SentimentConfig{
		Timeout:         time.Second,
		MaxRetries:      1,
		BreakerFailures: 3,
		BreakerCooldown: time.Second,
	}
	ctx := context.Background()

	t.Run("none", func(t *testing.T) {
		cfg := base
		cfg.Provider = "none"
		est, err := NewSentimentEstimator(ctx, cfg)
		require.NoError(t, err)
		assert.Nil(t, est)
	})

	t.Run("local", func(t *testing.T) {
		cfg := base
		cfg.Provider = "local"
		est, err := NewSentimentEstimator(ctx, cfg)
		require.NoError(t, err)
		assert.Equal(t, sentiment.ProviderLocal, sentiment.NameOf(est))
	})

	t.Run("openai is wrapped", func(t *testing.T) {
		cfg := base
		cfg.Provider = "OpenAI"
		cfg.APIKey = "sk-test"
		est, err := NewSentimentEstimator(ctx, cfg)
		require.NoError(t, err)
		r, ok := est.(*sentiment.Resilient)
		require.True(t, ok)
		assert.Equal(t, sentiment.ProviderOpenAI, r.Name())
	})

	t.Run("anthropic is wrapped", func(t *testing.T) {
		cfg := base
		cfg.Provider = "anthropic"
		cfg.APIKey = "key"
		est, err := NewSentimentEstimator(ctx, cfg)
		require.NoError(t, err)
		assert.Equal(t, sentiment.ProviderAnthropic, sentiment.NameOf(est))
	})

	t.Run("google with bad credentials", func(t *testing.T) {
		cfg := base
		cfg.Provider = "google"
		cfg.CredentialsJSON = "%%% not base64"
		_, err := NewSentimentEstimator(ctx, cfg)
		assert.Error(t, err)
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := base
		cfg.Provider = "watson"
		_, err := NewSentimentEstimator(ctx, cfg)
		assert.Error(t, err)
	})
}

func TestResilientConfig(t *testing.T) {
	rc := resilientConfig(config.SentimentConfig{Timeout: 2 * time.Second, MaxRetries: 2, BreakerFailures: 4, BreakerCooldown: time.Minute})
	assert.Equal(t, 2*time.Second, rc.Timeout)
	assert.Equal(t, 3, rc.Retry.MaxAttempts)
	assert.Equal(t, 4, rc.Breaker.FailureThreshold)
	assert.Equal(t, time.Minute, rc.Breaker.RecoveryTimeout)
}

package adapters

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/config"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/errors"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/resilience"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/sentiment"
)

// NewSentimentEstimator builds the configured provider. It returns nil for
// "none". Remote providers come wrapped in sentiment.Resilient.
func NewSentimentEstimator(ctx context.Context, cfg config.SentimentConfig, opts ...sentiment.ResilientOption) (sentiment.Estimator, error) {
	var remote sentiment.Estimator

	switch strings.ToLower(cfg.Provider) {
	case sentiment.ProviderNone:
		return nil, nil
	case sentiment.ProviderLocal, "":
		local, err := sentiment.NewLocal(sentiment.LocalConfig{NeutralBand: cfg.NeutralBand})
		if err != nil {
			return nil, errors.NewConfigurationError("local sentiment model", err)
		}
		return local, nil
	case sentiment.ProviderOpenAI:
		remote = NewOpenAIEstimator(cfg.APIKey, cfg.Model)
	case sentiment.ProviderAnthropic:
		remote = NewAnthropicEstimator(cfg.APIKey, cfg.Model)
	case sentiment.ProviderGoogle:
		g, err := NewGoogleEstimator(ctx, cfg.CredentialsJSON, cfg.CredentialsFile)
		if err != nil {
			return nil, err
		}
		remote = g
	default:
		return nil, errors.NewConfigurationError("unknown sentiment provider "+cfg.Provider, nil)
	}

	return sentiment.NewResilient(remote, resilientConfig(cfg), opts...), nil
}

func resilientConfig(cfg config.SentimentConfig) sentiment.ResilientConfig {
	retry := resilience.DefaultRetryConfig()
	retry.MaxAttempts = cfg.MaxRetries + 1

	return sentiment.ResilientConfig{
		Timeout: cfg.Timeout,
		Retry:   retry,
		Breaker: resilience.CircuitBreakerConfig{
			FailureThreshold: cfg.BreakerFailures,
			RecoveryTimeout:  cfg.BreakerCooldown,
		},
	}
}

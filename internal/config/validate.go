package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/errors"
)

var (
	validMethods   = []string{"ensemble", "comprehensive", "lexicon", "contextual", "pattern", "sentiment", "intensity"}
	validProviders = []string{"none", "local", "google", "openai", "anthropic"}
	validLevels    = []string{"debug", "info", "warn", "error"}
	validFormats   = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	checks := []struct {
		section string
		err     error
	}{
		{"server", c.Server.validate()},
		{"analysis", c.Analysis.validate()},
		{"sentiment", c.Sentiment.validate()},
		{"cache", c.Cache.validate()},
		{"rate_limit", c.RateLimit.validate()},
		{"log", c.Log.validate()},
	}
	for _, check := range checks {
		if check.err != nil {
			return errors.NewConfigurationError(check.section+": "+check.err.Error(), check.err)
		}
	}
	return nil
}

func (s ServerConfig) validate() error {
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("port must be in 1..65535 (got %d)", s.Port)
	}
	if s.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be > 0 (got %d)", s.MaxBodyBytes)
	}
	return nil
}

func (a AnalysisConfig) validate() error {
	if a.RewriteThreshold < 0 || a.RewriteThreshold > 100 {
		return fmt.Errorf("rewrite_threshold must be in 0..100 (got %v)", a.RewriteThreshold)
	}
	if a.MaxTextLength <= 0 {
		return fmt.Errorf("max_text_length must be > 0 (got %d)", a.MaxTextLength)
	}
	if !slices.Contains(validMethods, strings.ToLower(a.DefaultMethod)) {
		return fmt.Errorf("default_method %q is not one of %s", a.DefaultMethod, strings.Join(validMethods, ", "))
	}
	return nil
}

func (s SentimentConfig) validate() error {
	provider := strings.ToLower(s.Provider)
	if !slices.Contains(validProviders, provider) {
		return fmt.Errorf("provider %q is not one of %s", s.Provider, strings.Join(validProviders, ", "))
	}
	switch provider {
	case "openai", "anthropic":
		if s.APIKey == "" {
			return fmt.Errorf("api_key is required for provider %s", provider)
		}
	case "google":
		if s.CredentialsJSON == "" && s.CredentialsFile == "" {
			return fmt.Errorf("credentials_json or credentials_file is required for provider google")
		}
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", s.Timeout)
	}
	if s.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0 (got %d)", s.MaxRetries)
	}
	if s.NeutralBand < 0 || s.NeutralBand >= 1 {
		return fmt.Errorf("neutral_band must be in [0, 1) (got %g)", s.NeutralBand)
	}
	return nil
}

func (c CacheConfig) validate() error {
	if !c.Enabled {
		return nil
	}
	if c.TTL <= 0 {
		return fmt.Errorf("ttl must be > 0 (got %s)", c.TTL)
	}
	if c.MaxSize <= 0 {
		return fmt.Errorf("max_size must be > 0 (got %d)", c.MaxSize)
	}
	return nil
}

func (r RateLimitConfig) validate() error {
	if !r.Enabled {
		return nil
	}
	if r.RequestsPerMinute <= 0 {
		return fmt.Errorf("requests_per_minute must be > 0 (got %d)", r.RequestsPerMinute)
	}
	if r.Burst <= 0 {
		return fmt.Errorf("burst must be > 0 (got %d)", r.Burst)
	}
	return nil
}

func (l LogConfig) validate() error {
	if !slices.Contains(validLevels, strings.ToLower(l.Level)) {
		return fmt.Errorf("level %q is not one of %s", l.Level, strings.Join(validLevels, ", "))
	}
	if !slices.Contains(validFormats, strings.ToLower(l.Format)) {
		return fmt.Errorf("format %q is not one of %s", l.Format, strings.Join(validFormats, ", "))
	}
	return nil
}

package config

import (
	"strconv"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Sentiment SentimentConfig `yaml:"sentiment"`
	Cache     CacheConfig     `yaml:"cache"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Redis     RedisConfig     `yaml:"redis"`
	CORS      CORSConfig      `yaml:"cors"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"8080"`
	Mode            string        `yaml:"mode"             env:"GIN_MODE"                env-default:"release"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`
	EnableHSTS      bool          `yaml:"enable_hsts"      env:"ENABLE_HSTS"             env-default:"false"`
	EnableProfiling bool          `yaml:"enable_profiling" env:"ENABLE_PROFILING"        env-default:"false"`
	Compression     bool          `yaml:"compression"      env:"ENABLE_COMPRESSION"      env-default:"true"`
}

// AnalysisConfig holds scoring and rewriting settings.
type AnalysisConfig struct {
	RewriteThreshold float64 `yaml:"rewrite_threshold" env:"ANALYSIS_REWRITE_THRESHOLD" env-default:"15"`
	MaxTextLength    int     `yaml:"max_text_length"   env:"ANALYSIS_MAX_TEXT_LENGTH"   env-default:"20000"`
	DefaultMethod    string  `yaml:"default_method"    env:"ANALYSIS_DEFAULT_METHOD"    env-default:"ensemble"`
	DefaultIndustry  string  `yaml:"default_industry"  env:"ANALYSIS_DEFAULT_INDUSTRY"`
	TablesFile       string  `yaml:"tables_file"       env:"ANALYSIS_TABLES_FILE"`
	BenchmarksFile   string  `yaml:"benchmarks_file"   env:"ANALYSIS_BENCHMARKS_FILE"`
}

// SentimentConfig selects and guards the polarity/subjectivity provider.
type SentimentConfig struct {
	Provider        string        `yaml:"provider"          env:"SENTIMENT_PROVIDER"          env-default:"local"`
	APIKey          string        `yaml:"api_key"           env:"SENTIMENT_API_KEY"`
	CredentialsJSON string        `yaml:"credentials_json"  env:"SENTIMENT_CREDENTIALS_JSON"` // base64, Google only
	CredentialsFile string        `yaml:"credentials_file"  env:"SENTIMENT_CREDENTIALS_FILE"`
	Model           string        `yaml:"model"             env:"SENTIMENT_MODEL"`
	Timeout         time.Duration `yaml:"timeout"           env:"SENTIMENT_TIMEOUT"           env-default:"5s"`
	MaxRetries      int           `yaml:"max_retries"       env:"SENTIMENT_MAX_RETRIES"       env-default:"2"`
	BreakerFailures int           `yaml:"breaker_failures"  env:"SENTIMENT_BREAKER_FAILURES"  env-default:"5"`
	BreakerCooldown time.Duration `yaml:"breaker_cooldown"  env:"SENTIMENT_BREAKER_COOLDOWN"  env-default:"30s"`
	NeutralBand     float64       `yaml:"neutral_band"      env:"SENTIMENT_NEUTRAL_BAND"      env-default:"0.05"`
}

// CacheConfig holds response cache settings.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"  env:"CACHE_ENABLED"  env-default:"true"`
	TTL     time.Duration `yaml:"ttl"      env:"CACHE_TTL"      env-default:"5m"`
	MaxSize int           `yaml:"max_size" env:"CACHE_MAX_SIZE" env-default:"1000"`
}

// RateLimitConfig holds per-IP limits.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"             env:"RATE_LIMIT_ENABLED"             env-default:"true"`
	RequestsPerMinute int  `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE" env-default:"60"`
	Burst             int  `yaml:"burst"               env:"RATE_LIMIT_BURST"               env-default:"10"`
}

// RedisConfig holds the distributed rate-limit store. An empty URL selects the in-memory limiter.
type RedisConfig struct {
	URL string `yaml:"url" env:"REDIS_URL"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	AllowedMethods string `yaml:"allowed_methods" env:"CORS_ALLOWED_METHODS" env-default:"GET,POST,OPTIONS"`
	AllowedHeaders string `yaml:"allowed_headers" env:"CORS_ALLOWED_HEADERS" env-default:"Content-Type,X-Request-ID"`
	MaxAge         int    `yaml:"max_age"         env:"CORS_MAX_AGE"         env-default:"86400"`
}

// SchedulerConfig holds cron specs for background jobs. An empty spec disables the job.
type SchedulerConfig struct {
	CachePurge  string `yaml:"cache_purge"  env:"SCHEDULER_CACHE_PURGE"  env-default:"@every 5m"`
	HealthCheck string `yaml:"health_check" env:"SCHEDULER_HEALTH_CHECK" env-default:"@every 1m"`
	StatsReport string `yaml:"stats_report" env:"SCHEDULER_STATS_REPORT" env-default:"@every 15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SplitList splits a comma-separated setting, dropping blanks.
func SplitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}

package config

import (
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/errors"
)

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// A .env file in the working directory is loaded first when present.
// The YAML file path comes from CONFIG_PATH (fallback "./config.yaml"); a
// missing fallback file means ENV + defaults only, a missing explicit file is an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, errors.NewConfigurationError("read "+path, err)
		}
	} else if explicitPath {
		return nil, errors.NewConfigurationError("config file "+path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.NewConfigurationError("read env", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

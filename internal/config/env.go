package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvConfig holds VOCARD_* environment overrides. Nil means unset.
type EnvConfig struct {
	Words      *string `env:"VOCARD_WORDS"`
	Library    *bool   `env:"VOCARD_LIBRARY"`
	TimeoutSec *int    `env:"VOCARD_TIMEOUT_SEC"`
	Mode       *string `env:"VOCARD_MODE"`
	MockMode   *string `env:"VOCARD_MOCK_MODE"`
	Seed       *int64  `env:"VOCARD_SEED"`
	LogFile    *string `env:"VOCARD_LOG_FILE"`
	LogLevel   *string `env:"VOCARD_LOG_LEVEL"`
}

// LoadEnv reads an optional .env file from the working directory and then
// parses the process environment.
func LoadEnv() (EnvConfig, error) {
	// Missing .env is fine.
	_ = godotenv.Load()
	return ParseEnv()
}

// ParseEnv parses the process environment without touching .env files.
func ParseEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// Overlay returns file settings with environment values taking precedence.
func Overlay(file FileConfig, e EnvConfig) FileConfig {
	pick := func(dst **string, v *string) {
		if v != nil {
			*dst = v
		}
	}
	pick(&file.Source.Words, e.Words)
	pick(&file.Practice.Mode, e.Mode)
	pick(&file.Practice.MockMode, e.MockMode)
	pick(&file.Log.File, e.LogFile)
	pick(&file.Log.Level, e.LogLevel)
	if e.Library != nil {
		file.Source.Library = e.Library
	}
	if e.TimeoutSec != nil {
		file.Source.TimeoutSec = e.TimeoutSec
	}
	if e.Seed != nil {
		file.Practice.Seed = e.Seed
	}
	return file
}

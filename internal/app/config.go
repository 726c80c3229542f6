package app

import (
	"errors"
	"time"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	EnvFile string // path to the .env file supplying credentials
	BaseURL string // API root of the OpenAI-compatible endpoint

	Timeout   time.Duration
	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.EnvFile == "" {
		return nil, errors.New("EnvFile is a required configuration field and cannot be empty")
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("BaseURL is a required configuration field and cannot be empty")
	}
	if cfg.Timeout <= 0 {
		return nil, errors.New("Timeout must be a positive duration")
	}

	return &cfg, nil
}

// Package config loads runtime configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// ReviewsFile is the name of the reviews CSV inside the data directory.
const ReviewsFile = "restaurant_reviews.csv"

// ErrMissingAPIKey is returned by Validate when no OpenAI key is configured.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set")

type Config struct {
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`

	DataDir   string `env:"DATA_DIR" envDefault:"data"`
	OutputDir string `env:"OUTPUT_DIR" envDefault:"outputs"`

	// Sample data generation.
	SampleSize int `env:"SAMPLE_SIZE" envDefault:"200"`
	DaysBack   int `env:"DAYS_BACK" envDefault:"30"`
}

// Load reads .env (if present) and parses configuration from the environment.
func Load() (*Config, error) {
	// A missing .env file is not an error; the environment may be set directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// Validate reports whether the configuration is usable for LLM calls.
func (c *Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// DataFile returns the path of the reviews CSV.
func (c *Config) DataFile() string {
	return filepath.Join(c.DataDir, ReviewsFile)
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Database (tag cache and job history)
	DatabasePath string

	// OpenAI API
	OpenAIAPIKey  string
	OpenAIBaseURL string // Optional: OpenAI-compatible endpoint
	OpenAIModel   string

	// Tagging
	TagMaxTokens         int
	TagTemperature       float64
	TagRequestsPerMinute int // 0 disables pacing
	TagMaxRetries        int
	TagTimeout           time.Duration

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		DatabasePath:  getEnv("DATABASE_PATH", "data/quoteprep.db"),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.TagMaxTokens, err = getInt("TAG_MAX_TOKENS", 300); err != nil {
		return nil, err
	}
	if cfg.TagRequestsPerMinute, err = getInt("TAG_REQUESTS_PER_MINUTE", 0); err != nil {
		return nil, err
	}
	if cfg.TagMaxRetries, err = getInt("TAG_MAX_RETRIES", 2); err != nil {
		return nil, err
	}

	cfg.TagTemperature, err = strconv.ParseFloat(getEnv("TAG_TEMPERATURE", "0.7"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TAG_TEMPERATURE: %w", err)
	}

	cfg.TagTimeout, err = time.ParseDuration(getEnv("TAG_TIMEOUT", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid TAG_TIMEOUT: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	return nil
}

// ValidateForTagging checks configuration needed for category tagging.
func (c *Config) ValidateForTagging() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required for tagging")
	}
	if c.OpenAIModel == "" {
		return fmt.Errorf("OPENAI_MODEL is required for tagging")
	}
	if c.TagMaxTokens <= 0 {
		return fmt.Errorf("TAG_MAX_TOKENS must be positive, got %d", c.TagMaxTokens)
	}
	if c.TagTemperature < 0 || c.TagTemperature > 2 {
		return fmt.Errorf("TAG_TEMPERATURE must be between 0 and 2, got %g", c.TagTemperature)
	}
	if c.TagRequestsPerMinute < 0 {
		return fmt.Errorf("TAG_REQUESTS_PER_MINUTE must not be negative, got %d", c.TagRequestsPerMinute)
	}
	if c.TagMaxRetries < 0 {
		return fmt.Errorf("TAG_MAX_RETRIES must not be negative, got %d", c.TagMaxRetries)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getInt(key string, defaultVal int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

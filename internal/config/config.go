// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	BotToken      string
	Port          string
	WebhookURL    string // empty = long polling
	WebhookSecret string
	HTTPTimeout   time.Duration
	CacheSize     int
	MaxAttempts   int

	// Upstream endpoints, overridable for local testing.
	DecodeBaseURL string
	RandomVINURL  string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		BotToken:      os.Getenv("BOT_TOKEN"),
		Port:          getEnv("PORT", "8080"),
		WebhookURL:    getEnv("WEBHOOK_URL", ""),
		WebhookSecret: getEnv("WEBHOOK_SECRET", ""),
		HTTPTimeout:   getEnvDuration("HTTP_TIMEOUT", 15*time.Second),
		CacheSize:     getEnvInt("VIN_CACHE_SIZE", 100),
		MaxAttempts:   getEnvInt("RANDOM_VIN_ATTEMPTS", 10),
		DecodeBaseURL: getEnv("NHTSA_BASE_URL", ""),
		RandomVINURL:  getEnv("RANDOM_VIN_URL", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN cannot be empty")
	}
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be > 0")
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("VIN_CACHE_SIZE must be > 0")
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("RANDOM_VIN_ATTEMPTS must be > 0")
	}
	if c.WebhookURL != "" && !strings.HasPrefix(c.WebhookURL, "https://") {
		return fmt.Errorf("WEBHOOK_URL must use https")
	}
	return nil
}

// WebhookMode returns true if updates arrive over a webhook instead of
// long polling.
func (c *Config) WebhookMode() bool {
	return c.WebhookURL != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}

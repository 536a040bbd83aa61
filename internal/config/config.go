// Package config loads and validates application configuration from
// environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration. It is resolved once at startup
// and read-only afterwards; the completion API key is passed into the
// invoker's constructor rather than read from ambient state.
type Config struct {
	Port     string
	Address  string
	Env      string
	LogLevel string

	// GroqAPIKey may be empty: the service still starts and AI-backed
	// actions degrade to an instructional message.
	GroqAPIKey  string
	GroqBaseURL string
	GroqModel   string

	OpenFDABaseURL string
}

// Load reads configuration from the environment, applies defaults and
// validates the result.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnvWithDefault("PORT", "8080"),
		Address:        getEnvWithDefault("ADDRESS", "127.0.0.1"),
		Env:            getEnvWithDefault("ENV", "dev"),
		LogLevel:       getEnvWithDefault("LOG_LEVEL", "info"),
		GroqAPIKey:     os.Getenv("GROQ_API_KEY"),
		GroqBaseURL:    getEnvWithDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GroqModel:      getEnvWithDefault("GROQ_MODEL", "llama-3.3-70b-versatile"),
		OpenFDABaseURL: getEnvWithDefault("OPENFDA_BASE_URL", "https://api.fda.gov/drug/label.json"),
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if err := validatePort(cfg.Port); err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}
	if err := validateOneOf("ENV", cfg.Env, []string{"dev", "staging", "prod", "test"}); err != nil {
		return err
	}
	if err := validateOneOf("LOG_LEVEL", cfg.LogLevel, []string{"debug", "info", "warn", "error"}); err != nil {
		return err
	}
	return nil
}

func validatePort(port string) error {
	if port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}

	portNum, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid number: %w", err)
	}

	if portNum < 1 || portNum > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}

	return nil
}

func validateOneOf(name, value string, valid []string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}

	lowered := strings.ToLower(value)
	for _, v := range valid {
		if lowered == v {
			return nil
		}
	}

	return fmt.Errorf("%s must be one of: %v, got: %s", name, valid, value)
}

// getEnvWithDefault gets an environment variable with a default value.
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

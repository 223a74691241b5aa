package llm

import (
	"os"
	"strconv"
)

// Config holds all configuration for the generation backend.
type Config struct {
	APIKey     string
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
}

// DefaultConfig returns a Config with sensible defaults. The backend is
// unconfigured (no API key) by default; the assistant then runs entirely
// on local fallback responses.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "https://generativelanguage.googleapis.com",
		Model:      "gemini-1.5-flash",
		TimeoutMs:  15000,
		MaxRetries: 1,
	}
}

// LoadConfig reads backend configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("HELLOGUYS_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("HELLOGUYS_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("HELLOGUYS_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("HELLOGUYS_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("HELLOGUYS_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("HELLOGUYS_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}

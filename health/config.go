package health

import (
	"os"
	"strconv"
	"time"
)

// Config configures a health registry.
type Config struct {
	// Version is the service version reported in responses.
	// Default: "0.0.0"
	Version string

	// CheckTimeout is the per-check execution bound.
	// Default: 5 seconds
	CheckTimeout time.Duration

	// IncludeDetails controls whether per-check results are included
	// in responses.
	// Default: true
	IncludeDetails bool
}

// DefaultConfig returns the default registry configuration.
func DefaultConfig() Config {
	return Config{
		Version:        "0.0.0",
		CheckTimeout:   5 * time.Second,
		IncludeDetails: true,
	}
}

// ConfigFromEnv builds a configuration from environment variables.
//
// Recognized variables:
//   - HEALTH_CHECK_TIMEOUT: per-check timeout in milliseconds (default 5000)
//   - HEALTH_INCLUDE_DETAILS: "false" disables per-check detail (default true)
//   - SERVICE_VERSION: reported service version (default "0.0.0")
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if t := os.Getenv("HEALTH_CHECK_TIMEOUT"); t != "" {
		if ms, err := strconv.Atoi(t); err == nil && ms > 0 {
			cfg.CheckTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	if d := os.Getenv("HEALTH_INCLUDE_DETAILS"); d == "false" {
		cfg.IncludeDetails = false
	}

	if v := os.Getenv("SERVICE_VERSION"); v != "" {
		cfg.Version = v
	}

	return cfg
}

package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds the HTTP timeout and connection pool settings of the API
// client. These values can be customized via environment variables.
type Timeouts struct {
	Request      time.Duration // Timeout for a single REST API request
	Upload       time.Duration // Timeout for a drive image upload
	MaxIdleConns int           // Idle connections kept per host
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - CLOUDSIGMA_TIMEOUT_REQUEST (default: 60s)
//   - CLOUDSIGMA_TIMEOUT_UPLOAD (default: 30m)
//   - CLOUDSIGMA_MAX_IDLE_CONNS (default: 4)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		Request:      parseDuration("CLOUDSIGMA_TIMEOUT_REQUEST", 60*time.Second),
		Upload:       parseDuration("CLOUDSIGMA_TIMEOUT_UPLOAD", 30*time.Minute),
		MaxIdleConns: parseInt("CLOUDSIGMA_MAX_IDLE_CONNS", 4),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}

	return d
}

// parseInt parses a positive integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil || i <= 0 {
		return defaultVal
	}

	return i
}

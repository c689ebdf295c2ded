package deckapi

import (
	"fmt"
	"os"
	"time"
)

// Config holds deck service connection settings.
type Config struct {
	// BaseURL is the root of the deck service API, without trailing slash.
	BaseURL string

	// Token is sent as a bearer token when non-empty.
	Token string

	// Timeout bounds a single HTTP request. Default: 15s.
	Timeout time.Duration

	Retry RetryConfig
}

// RetryConfig configures the retry decorator for transient failures.
type RetryConfig struct {
	// MaxAttempts is the total number of tries, first attempt included.
	MaxAttempts int

	// Backoff is the fixed wait between attempts.
	Backoff time.Duration
}

// DefaultRetryConfig returns the submission policy: one retry after a fixed
// backoff, then give up and leave reconciliation to the next natural sync
// point.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 2,
		Backoff:     750 * time.Millisecond,
	}
}

// ConfigFromEnv builds a Config from DECKPLAY_API_URL and
// DECKPLAY_API_TOKEN.
func ConfigFromEnv() (Config, error) {
	base := os.Getenv("DECKPLAY_API_URL")
	if base == "" {
		return Config{}, fmt.Errorf("DECKPLAY_API_URL is not set")
	}
	return Config{
		BaseURL: base,
		Token:   os.Getenv("DECKPLAY_API_TOKEN"),
		Timeout: 15 * time.Second,
		Retry:   DefaultRetryConfig(),
	}, nil
}

package api

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// RetryConfig tunes the opt-in retry policy. Values are taken from
// environment variables with the prefix "FEEDWAY_RETRY_". Example:
// FEEDWAY_RETRY_MAX_ATTEMPTS=6 FEEDWAY_RETRY_BASE_BACKOFF=250ms .
//
// The zero value disables retries entirely: every operation performs a
// single HTTP exchange.
type RetryConfig struct {
	MaxAttempts int           `envconfig:"MAX_ATTEMPTS" default:"4"`
	BaseBackoff time.Duration `envconfig:"BASE_BACKOFF" default:"100ms"`
	MaxInterval time.Duration `envconfig:"MAX_INTERVAL" default:"5s"`
}

// LoadRetryConfig populates RetryConfig from environment variables.
func LoadRetryConfig() (RetryConfig, error) {
	var c RetryConfig
	return c, envconfig.Process("FEEDWAY_RETRY", &c)
}

package feedway

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/feedway/feedway-go/internal/api"
)

// Option configures a Client during construction in New.
//
// Options are applied before the authorization transport wrapper is
// installed, so transport-related options (like debug logging) end up
// underneath the API-key wrapper. Options must be deterministic and
// side-effect free.
type Option func(*Client) error

// WithHTTPClient injects a custom *http.Client. Useful for setting
// transport timeouts, tracing, custom TLS settings, etc.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("nil http client")
		}
		c.http = hc
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response
// is logged when enabled is true.
//
// Do not enable this option in production environments: the dump includes
// headers and bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// WithRetry enables exponential-backoff retries for recoverable failures
// (5xx responses, timeouts, rate limiting, network errors). Tunables come
// from FEEDWAY_RETRY_* environment variables; without this option every
// operation performs exactly one HTTP exchange.
func WithRetry() Option {
	return func(c *Client) error {
		cfg, err := api.LoadRetryConfig()
		if err != nil {
			return err
		}
		c.retry = cfg
		return nil
	}
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	apierrors "github.com/feedway/feedway-go/internal/errors"
	"github.com/feedway/feedway-go/internal/types"
)

// maxErrorBodyBytes bounds how much of an error response is retained for
// diagnostics.
const maxErrorBodyBytes = 2048

// Caller bundles what every endpoint function needs: the HTTP client (its
// transport carries the auth header), the service base URL without a
// trailing slash, and the retry policy. A zero-value Retry means one
// attempt per call.
type Caller struct {
	HTTP    *http.Client
	BaseURL string
	Retry   RetryConfig
}

// doJSON performs one logical API call: marshal body (when non-nil), issue
// the request, check the expected status, decode into out (when non-nil).
// Failed attempts are classified and retried per the Caller's policy;
// irrecoverable failures stop the loop immediately.
func (c *Caller) doJSON(ctx context.Context, op, method, url string, body any, wantStatus int, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return err
		}
	}

	requestsTotal.WithLabelValues(op).Inc()

	maxAttempts := c.Retry.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	exp := backoff.NewExponentialBackOff()
	if c.Retry.BaseBackoff > 0 {
		exp.InitialInterval = c.Retry.BaseBackoff
	}
	if c.Retry.MaxInterval > 0 {
		exp.MaxInterval = c.Retry.MaxInterval
	}
	exp.Multiplier = 2
	exp.Reset()

	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(exp.NextBackOff()):
			case <-ctx.Done():
				requestFailuresTotal.WithLabelValues(op).Inc()
				return ctx.Err()
			}
		}

		err = c.attempt(ctx, op, method, url, payload, wantStatus, out)
		if err == nil {
			return nil
		}
		if apierrors.IsIrrecoverable(err) {
			break
		}
	}

	requestFailuresTotal.WithLabelValues(op).Inc()
	return err
}

func (c *Caller) attempt(ctx context.Context, op, method, url string, payload []byte, wantStatus int, out any) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return apierrors.NewNetworkError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != wantStatus {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		if resp.StatusCode == http.StatusNotFound {
			return &apierrors.ClassifiedError{
				Category:   apierrors.Irrecoverable,
				StatusCode: resp.StatusCode,
				Body:       string(b),
				Underlying: fmt.Errorf("%s: %w", op, types.ErrNotFound),
			}
		}
		return apierrors.NewHTTPError(resp.StatusCode, string(b), op)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			// A malformed body on a success status will not improve on retry.
			return &apierrors.ClassifiedError{
				Category:   apierrors.Irrecoverable,
				StatusCode: resp.StatusCode,
				Underlying: fmt.Errorf("%s: decode response: %w", op, err),
			}
		}
	}
	return nil
}

package api

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
)

// errRT is an http.RoundTripper that always returns an error (simulates
// network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// newCaller wires a Caller to an httptest server client without retries.
func newCaller(hc *http.Client, baseURL string) *Caller {
	return &Caller{HTTP: hc, BaseURL: baseURL}
}

// mustParseQuery extracts the query parameters from a request URL string.
func mustParseQuery(t *testing.T, rawURL string) url.Values {
	t.Helper()
	u, err := url.Parse(rawURL)
	if err != nil {
		t.Fatalf("parse %q: %v", rawURL, err)
	}
	return u.Query()
}

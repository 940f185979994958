// Package feedway is the Go SDK for the Feedway activity-feed service's
// reaction endpoints. Every method is a single stateless HTTP exchange;
// the Client holds no mutable state after construction and is safe for
// concurrent use.
package feedway

import (
	"context"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/feedway/feedway-go/internal/api"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL string
	http    *http.Client
	apiKey  string
	retry   api.RetryConfig
	caller  *api.Caller

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client with the specified baseURL and apiKey.
// Additional options can be provided via functional arguments.
func New(baseURL, apiKey string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}
	if apiKey == "" {
		panic("apiKey cannot be empty")
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}

	// Wrap HTTP transport to automatically add the Authorization header.
	c.wrapTransportWithAPIKey()

	c.caller = &api.Caller{HTTP: c.http, BaseURL: c.baseURL, Retry: c.retry}
	return c
}

// wrapTransportWithAPIKey wraps the HTTP client's transport so every
// request carries the configured API key.
func (c *Client) wrapTransportWithAPIKey() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &apiKeyTransport{
		base:   baseTransport,
		apiKey: c.apiKey,
	}
}

// apiKeyTransport wraps an http.RoundTripper to automatically add the
// Authorization header.
type apiKeyTransport struct {
	base   http.RoundTripper
	apiKey string
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+t.apiKey)
	return t.base.RoundTrip(cloned)
}

// Close releases idle connections held by the underlying transport. Safe
// to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	c.http.CloseIdleConnections()
	return nil
}

// NewReactionID returns a fresh UUID suitable for the AddReactionRequest.ID
// field, letting callers create reactions with idempotent, pre-known ids.
func NewReactionID() string { return uuid.NewString() }

// --------------------------------------------------------------------
// Reaction operations - delegated to internal/api
// --------------------------------------------------------------------

// AddReaction creates a reaction of the given kind on an activity. The
// activity may be referenced by a plain ActivityID or any ActivityRef.
func (c *Client) AddReaction(ctx context.Context, req AddReactionRequest) (*Reaction, error) {
	return api.AddReaction(ctx, c.caller, req)
}

// AddChildReaction creates a reaction attached to a parent reaction,
// producing a child reaction. The parent may be referenced by a plain
// ReactionID or a previously fetched Reaction.
func (c *Client) AddChildReaction(ctx context.Context, req AddChildReactionRequest) (*Reaction, error) {
	return api.AddChildReaction(ctx, c.caller, req)
}

// GetReaction fetches a single reaction by id.
func (c *Client) GetReaction(ctx context.Context, id string) (*Reaction, error) {
	return api.GetReaction(ctx, c.caller, id)
}

// FilterReactions retrieves reactions by exactly one of user id, activity
// id or reaction id; violating that rule fails with ErrInvalidFilter
// before any request is made. Limit defaults to 10 when unset.
func (c *Client) FilterReactions(ctx context.Context, req FilterReactionsRequest) (*FilterReactionsResponse, error) {
	return api.FilterReactions(ctx, c.caller, req)
}

// UpdateReaction replaces a reaction's data and, when supplied, its
// target-feed fan-out list.
func (c *Client) UpdateReaction(ctx context.Context, id string, req UpdateReactionRequest) (*Reaction, error) {
	return api.UpdateReaction(ctx, c.caller, id, req)
}

// DeleteReaction removes a reaction by id.
func (c *Client) DeleteReaction(ctx context.Context, id string) error {
	return api.DeleteReaction(ctx, c.caller, id)
}

// ListReactions pages through all reactions without a lookup key; options
// pass through verbatim.
func (c *Client) ListReactions(ctx context.Context, req ListReactionsRequest) (*ListReactionsResponse, error) {
	return api.ListReactions(ctx, c.caller, req)
}

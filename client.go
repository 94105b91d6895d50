// Package client is a Go SDK for the pollwise voting service. It exposes the
// four service operations — registration, paginated poll listing, vote
// casting, and result retrieval — as synchronous calls against a configurable
// base address.
//
// Each call issues exactly one HTTP request and classifies the response; there
// are no retries, no caching, and no shared mutable state, so a single Client
// is safe for concurrent use.
package client

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/pollwise/pollwise-client/internal/api"
)

// DefaultBaseURL is used when New is given an empty base URL.
const DefaultBaseURL = "http://localhost:8000"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

type Client struct {
	baseURL string
	http    *http.Client
}

// New constructs a Client for the service at baseURL. An empty baseURL falls
// back to DefaultBaseURL; a trailing slash is trimmed so path joining stays
// predictable. Additional knobs are set via functional options.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Wrap the transport so every outgoing request carries an X-Request-Id.
	c.wrapTransportWithRequestID()

	return c, nil
}

// BaseURL returns the normalized base address the client targets.
func (c *Client) BaseURL() string { return c.baseURL }

// --------------------------------------------------------------------
// Operations - delegated to internal/api
// --------------------------------------------------------------------

// Register creates a new user account and returns its record. A 400 from the
// service surfaces as ErrDuplicateUsername.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	user, err := api.Register(ctx, c.http, c.baseURL, req)
	observe(opRegister, err)
	return user, err
}

// ListPolls retrieves one page of polls. skip and limit are forwarded to the
// service untouched; the returned slice is at most limit long, in the order
// the service defines.
func (c *Client) ListPolls(ctx context.Context, skip, limit int) ([]Poll, error) {
	polls, err := api.ListPolls(ctx, c.http, c.baseURL, skip, limit)
	observe(opListPolls, err)
	return polls, err
}

// Vote casts a ballot for optionID on pollID, authenticated by the bearer
// accessToken. A 401 surfaces as ErrUnauthorized and a 404 as ErrNotFound.
// Votes are not idempotent: repeated calls record repeated votes server-side.
func (c *Client) Vote(ctx context.Context, pollID, optionID int, accessToken string) (*Vote, error) {
	vote, err := api.Vote(ctx, c.http, c.baseURL, pollID, optionID, accessToken)
	observe(opVote, err)
	return vote, err
}

// Results retrieves the tally for pollID. A 404 surfaces as ErrNotFound.
func (c *Client) Results(ctx context.Context, pollID int) (*PollResults, error) {
	pr, err := api.Results(ctx, c.http, c.baseURL, pollID)
	observe(opResults, err)
	return pr, err
}

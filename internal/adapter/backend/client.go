// Package backend is the sole gateway to the nlistplanet REST API. It
// owns the wire format: every loosely-shaped payload the API returns is
// normalized into the entity types here, so nothing above this package
// ever touches optional or legacy field spellings.
package backend

import (
	"net/http"
	"time"
)

// TokenSource supplies the bearer token attached to authenticated
// requests. An empty token means the request goes out unauthenticated.
type TokenSource interface {
	AuthToken() string
}

// StaticToken is a fixed-token TokenSource, handy for tests and tools.
type StaticToken string

func (s StaticToken) AuthToken() string { return string(s) }

// Client provides access to the nlistplanet REST API.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new REST API client.
func NewClient(baseURL string, tokens TokenSource, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

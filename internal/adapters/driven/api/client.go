// Package api provides the HTTP adapter for the Contexta backend.
//
// Every call, authenticated or not, goes through the single gateway in
// gateway.go. The gateway injects the bearer credential, tags each call
// with the session epoch at issue time, and enforces the invalidation
// contract: a 401 tears the session down exactly once and is surfaced
// as domain.ErrSessionExpired, never as a raw response.
package api

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/contexta-labs/contexta-cli/internal/core/domain"
	"github.com/contexta-labs/contexta-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.API = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:8888/api"
	DefaultTimeout = 60 * time.Second

	// DefaultRateLimit caps outbound calls per second. Refresh-heavy
	// flows (upload followed by list) stay under it comfortably.
	DefaultRateLimit rate.Limit = 5
	defaultBurst                = 5
)

// SessionSource provides the current session and accepts teardown.
// It is implemented by services.SessionManager.
type SessionSource interface {
	// Current returns the session and the epoch it belongs to.
	Current() (domain.Session, domain.Epoch)

	// Invalidate tears the session down if the epoch is still
	// current. Returns whether teardown happened.
	Invalidate(epoch domain.Epoch) bool
}

// Config holds configuration for the backend client.
type Config struct {
	// BaseURL is the API base URL (default: http://localhost:8888/api).
	BaseURL string

	// Timeout is the per-request timeout (default: 60s).
	Timeout time.Duration

	// RateLimit is the client-side request rate cap in requests per
	// second (default: 5). Zero means the default; a negative value
	// disables limiting.
	RateLimit rate.Limit
}

// Client is the driven.API implementation backed by HTTP+JSON.
type Client struct {
	client   *http.Client
	baseURL  string
	sessions SessionSource
	limiter  *rate.Limiter
}

// NewClient creates a backend client. sessions supplies the bearer
// token for authenticated calls and receives 401 teardowns.
func NewClient(cfg Config, sessions SessionSource) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	var limiter *rate.Limiter
	switch {
	case cfg.RateLimit == 0:
		limiter = rate.NewLimiter(DefaultRateLimit, defaultBurst)
	case cfg.RateLimit > 0:
		limiter = rate.NewLimiter(cfg.RateLimit, defaultBurst)
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:  cfg.BaseURL,
		sessions: sessions,
		limiter:  limiter,
	}
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

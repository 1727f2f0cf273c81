package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/contexta-labs/contexta-cli/internal/core/domain"
	"github.com/contexta-labs/contexta-cli/internal/logger"
)

// request describes one outbound call through the gateway.
type request struct {
	method       string
	path         string
	body         io.Reader
	contentType  string
	requiresAuth bool
}

// do executes a request and returns the status code and body.
//
// For authenticated requests the Authorization header is set after all
// other headers, so it wins any collision with caller-supplied ones.
// A 401 triggers session invalidation for the epoch the call was issued
// under; the invalidation itself is idempotent, so any number of
// concurrent calls observing 401 tear the session down exactly once.
// A result arriving after the issuing session is gone is discarded.
func (c *Client) do(ctx context.Context, req request) (int, []byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, req.body)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}

	var epoch domain.Epoch
	if req.requiresAuth {
		session, e := c.sessions.Current()
		if !session.Authenticated() {
			return 0, nil, domain.ErrNotAuthenticated
		}
		epoch = e
		httpReq.Header.Set("Authorization", "Bearer "+session.Token)
	}

	requestID := uuid.NewString()[:8]
	logger.Debug("[%s] %s %s", requestID, req.method, req.path)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		// Transport failure: no response to interpret.
		return 0, nil, fmt.Errorf("%s %s: %w", req.method, req.path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}

	logger.Debug("[%s] status %d (%d bytes)", requestID, resp.StatusCode, len(body))

	if req.requiresAuth {
		if resp.StatusCode == http.StatusUnauthorized {
			if c.sessions.Invalidate(epoch) {
				logger.Info("session rejected by server, cleared")
			}
			return 0, nil, domain.ErrSessionExpired
		}

		// The session changed while this call was in flight. Its
		// result must not repopulate state owned by a newer session.
		if _, current := c.sessions.Current(); current != epoch {
			logger.Debug("[%s] discarding result from stale session epoch", requestID)
			return 0, nil, domain.ErrSessionExpired
		}
	}

	return resp.StatusCode, body, nil
}

// serverMessage extracts the server-supplied {error} message from a
// non-2xx body, falling back to the given message.
func serverMessage(body []byte, fallback string) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return fallback
}

// is2xx reports whether the status code indicates success.
func is2xx(status int) bool {
	return status >= 200 && status < 300
}

// Package client is the single chokepoint for all calls to the EnoughFi API.
// It owns bearer-token attachment and the cold-start retry; it never mutates
// session state itself.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/finwealth4all/enoughfi-client/internal/apperrors"
	"github.com/finwealth4all/enoughfi-client/internal/platform/config"
	"github.com/finwealth4all/enoughfi-client/internal/platform/logging"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// TokenSource yields the current bearer token, or "" when unauthenticated.
// The session owns the token; the client only reads it, so a logout is
// observed by any retry still in flight.
type TokenSource interface {
	Token() string
}

// Client talks HTTP/JSON to the EnoughFi backend.
type Client struct {
	baseURL    string
	httpc      *http.Client
	tokens     TokenSource
	retryDelay time.Duration

	// authLimiter throttles credential submissions client-side, mirroring
	// the server's 5-per-minute login limit.
	authLimiter *limiter.Limiter
}

// New builds a Client from configuration. tokens may be nil for a client
// that only hits unauthenticated endpoints.
func New(cfg *config.Config, tokens TokenSource) *Client {
	return &Client{
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		httpc:       &http.Client{Timeout: cfg.HTTPTimeout},
		tokens:      tokens,
		retryDelay:  cfg.RetryDelay,
		authLimiter: limiter.New(memory.NewStore(), limiter.Rate{Period: time.Minute, Limit: 5}),
	}
}

// errorEnvelope is the server's error body shape.
type errorEnvelope struct {
	Error string `json:"error"`
}

// Call sends a JSON request and decodes the response into out (skipped when
// out is nil). A transport-level failure is retried exactly once after the
// configured delay; an HTTP error status fails immediately since the server
// is reachable.
func (c *Client) Call(ctx context.Context, method, path string, body any, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
	}
	return c.do(ctx, method, path, payload, "application/json", out)
}

// CallForm sends a multipart form body. contentType must carry the boundary
// produced by the multipart writer. Retried on transport failure like Call.
func (c *Client) CallForm(ctx context.Context, method, path string, form []byte, contentType string, out any) error {
	return c.do(ctx, method, path, form, contentType, out)
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte, contentType string, out any) error {
	ctx, logger := logging.WithRequestScope(ctx, method, path)

	start := time.Now()
	err := c.doOnce(ctx, method, path, payload, contentType, out)
	if err == nil || !isTransportError(ctx, err) {
		logCompletion(logger, start, err)
		return err
	}

	// Server likely cold starting; wait once and try again.
	logger.Warn("Transport failure, retrying once", slog.String("error", err.Error()), slog.Duration("delay", c.retryDelay))
	select {
	case <-time.After(c.retryDelay):
	case <-ctx.Done():
		return ctx.Err()
	}

	err = c.doOnce(ctx, method, path, payload, contentType, out)
	if err != nil && isTransportError(ctx, err) {
		err = fmt.Errorf("%w: %v", apperrors.ErrServerStarting, err)
	}
	logCompletion(logger, start, err)
	return err
}

func (c *Client) doOnce(ctx context.Context, method, path string, payload []byte, contentType string, out any) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var envelope errorEnvelope
		_ = json.Unmarshal(data, &envelope)
		return apperrors.NewHTTPError(resp.StatusCode, envelope.Error)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// isTransportError distinguishes "request never reached the server" from
// everything else. The caller's context expiring is not retried, but a
// per-attempt http.Client timeout is: that error also unwraps to
// DeadlineExceeded, so the caller's ctx is consulted instead of the error.
func isTransportError(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if _, ok := err.(*apperrors.HTTPError); ok {
		return false
	}
	if ctx.Err() != nil {
		return false
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

func logCompletion(logger *slog.Logger, start time.Time, err error) {
	latency := time.Since(start)
	if err != nil {
		logger.Warn("Request failed", slog.String("error", err.Error()), slog.Duration("latency", latency))
		return
	}
	logger.Debug("Request completed", slog.Duration("latency", latency))
}

// checkAuthThrottle guards credential submissions; it never sends a request
// when the local limit is reached.
func (c *Client) checkAuthThrottle(ctx context.Context) error {
	lctx, err := c.authLimiter.Get(ctx, "auth")
	if err != nil {
		return err
	}
	if lctx.Reached {
		return apperrors.ErrRateLimited
	}
	return nil
}

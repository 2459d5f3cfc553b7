// Package httpclient implements ports.Backend over net/http: every request is
// sent to the configured base URL with the persisted bearer token attached.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/99minutos/storefront/internal/core/domain"
	"github.com/99minutos/storefront/internal/core/ports"
	"github.com/99minutos/storefront/internal/infrastructure/metrics"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "storefront-client/1.0"
	maxErrorBody     = 1 << 20

	headerRequestID = "X-Request-ID"
)

// Config captures the settings of the API client.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client implements ports.Backend.
type Client struct {
	baseURL   string
	http      *http.Client
	tokens    ports.TokenStore
	userAgent string
	log       zerolog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client (tests, custom transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

var _ ports.Backend = (*Client)(nil)

// New returns a Client for cfg.BaseURL that reads the bearer token from tokens
// before every request.
func New(cfg Config, tokens ports.TokenStore, log zerolog.Logger, opts ...Option) (*Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("httpclient: parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("httpclient: base url %q must be absolute", cfg.BaseURL)
	}
	if tokens == nil {
		return nil, errors.New("httpclient: token store is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}

	c := &Client{
		baseURL:   strings.TrimRight(u.String(), "/"),
		http:      &http.Client{Timeout: timeout},
		tokens:    tokens,
		userAgent: ua,
		log:       log.With().Str("component", "httpclient").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

// Post issues a POST request with body encoded as JSON. A nil body sends none.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	r, ct, err := jsonBody(body)
	if err != nil {
		return fmt.Errorf("POST %s: %w", stripQuery(path), err)
	}
	return c.do(ctx, http.MethodPost, path, r, ct, out)
}

// PostForm issues a POST request with an application/x-www-form-urlencoded body.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values, out any) error {
	return c.do(ctx, http.MethodPost, path, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", out)
}

// Put issues a PUT request with body encoded as JSON.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	r, ct, err := jsonBody(body)
	if err != nil {
		return fmt.Errorf("PUT %s: %w", stripQuery(path), err)
	}
	return c.do(ctx, http.MethodPut, path, r, ct, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	cleanPath := stripQuery(path)

	tokens, err := c.tokens.Load(ctx)
	if err != nil {
		return fmt.Errorf("%s %s: load tokens: %w", method, cleanPath, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), body)
	if err != nil {
		return fmt.Errorf("%s %s: build request: %w", method, cleanPath, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(headerRequestID, reqID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if tokens.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	}

	route := routeLabel(cleanPath)
	start := time.Now()
	resp, err := c.http.Do(req)
	elapsed := time.Since(start)
	metrics.APIRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(method, route, "error").Inc()
		c.log.Warn().Err(err).
			Str("method", method).
			Str("path", cleanPath).
			Str("request_id", reqID).
			Msg("request failed")
		return fmt.Errorf("%s %s: %w", method, cleanPath, err)
	}
	defer resp.Body.Close()

	metrics.APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(resp.StatusCode)).Inc()
	c.log.Debug().
		Str("method", method).
		Str("path", cleanPath).
		Str("request_id", reqID).
		Int("status", resp.StatusCode).
		Dur("elapsed", elapsed).
		Msg("api call")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &domain.APIError{
			Status: resp.StatusCode,
			Detail: parseDetail(raw),
			Method: method,
			Path:   cleanPath,
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, cleanPath, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, cleanPath, err)
	}
	return nil
}

func (c *Client) endpoint(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

func jsonBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, "", fmt.Errorf("encode body: %w", err)
	}
	return bytes.NewReader(b), "application/json", nil
}

// stripQuery drops the query string so one-time tokens never reach logs,
// metrics or error messages.
func stripQuery(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}

// routeLabel collapses numeric path segments: /api/cart/12 → /api/cart/:id.
func routeLabel(path string) string {
	segs := strings.Split(path, "/")
	for i, s := range segs {
		if s == "" {
			continue
		}
		if _, err := strconv.ParseInt(s, 10, 64); err == nil {
			segs[i] = ":id"
		}
	}
	return strings.Join(segs, "/")
}

package forge

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/lexfrei/go-forge/internal/httpclient"
	"github.com/lexfrei/go-forge/internal/middleware"
	"github.com/lexfrei/go-forge/internal/ratelimit"
	"github.com/lexfrei/go-forge/observability"
)

const (
	// DefaultBaseURL is the default Forge API base URL.
	DefaultBaseURL = "https://forge.laravel.com/api/v1"

	// DefaultRateLimit is the Forge API request budget (requests per minute).
	DefaultRateLimit = 60

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
)

// Client is the entry point to the Forge API, with operations grouped by
// resource. It holds no per-record state and is safe for concurrent use.
type Client struct {
	// Servers exposes operations on server resources.
	Servers *ServersService

	// Sites exposes operations on the sites hosted on a server.
	Sites *SitesService

	baseURL string
	http    *httpclient.Client
}

// ClientConfig holds configuration for the Forge API client.
type ClientConfig struct {
	// APIToken is the Forge personal API token used as a bearer token
	APIToken string

	// BaseURL is the base URL for the API (defaults to https://forge.laravel.com/api/v1)
	BaseURL string

	// HTTPClient is the HTTP client to use (optional)
	HTTPClient *http.Client

	// RateLimitPerMinute sets the client-side rate limit (defaults to 60)
	RateLimitPerMinute int

	// Timeout sets the HTTP client timeout
	Timeout time.Duration

	// InsecureSkipTLSVerify disables TLS certificate verification. Only
	// for self-hosted panels with self-signed certificates.
	InsecureSkipTLSVerify bool

	// Logger for observability (optional, uses noop logger if nil)
	Logger observability.Logger

	// Metrics recorder for observability (optional, uses noop recorder if nil)
	Metrics observability.MetricsRecorder
}

// New creates a new Forge API client with default settings.
// This is the recommended way to create a client for most use cases.
//
// Default settings:
//   - Base URL: https://forge.laravel.com/api/v1
//   - Rate limit: 60 requests/minute (the Forge API budget)
//   - Timeout: 30 seconds
//
// For custom configuration, use NewWithConfig.
//
// Example:
//
//	client, err := forge.New("your-api-token")
func New(apiToken string) (*Client, error) {
	return NewWithConfig(&ClientConfig{
		APIToken: apiToken,
	})
}

// NewWithConfig creates a new Forge API client with custom configuration.
// Use this when you need to customize the rate limit, timeout, base URL,
// or observability hooks.
//
// Example:
//
//	client, err := forge.NewWithConfig(&forge.ClientConfig{
//	    APIToken:           "your-api-token",
//	    RateLimitPerMinute: 30,
//	    Logger:             myLogger,
//	    Metrics:            myMetrics,
//	})
func NewWithConfig(cfg *ClientConfig) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if cfg.APIToken == "" {
		return nil, errors.New("API token is required")
	}

	// Set defaults
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.RateLimitPerMinute == 0 {
		cfg.RateLimitPerMinute = DefaultRateLimit
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	rateLimiter := ratelimit.NewRateLimiter(cfg.RateLimitPerMinute)

	// Build middleware chain (applied in reverse order: last = innermost, applied first)
	// Order from outside to inside: Observability -> RateLimit -> Bearer
	opts := []httpclient.Option{
		httpclient.WithTimeout(cfg.Timeout),
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, httpclient.WithHTTPClient(cfg.HTTPClient))
	}
	opts = append(opts, httpclient.WithMiddleware(
		middleware.Observability(cfg.Logger, cfg.Metrics),
		middleware.RateLimit(middleware.RateLimitConfig{
			Limiter: rateLimiter,
			Logger:  cfg.Logger,
			Metrics: cfg.Metrics,
		}),
		middleware.Bearer(cfg.APIToken),
	))
	if cfg.InsecureSkipTLSVerify {
		// Innermost: replaces the base transport with a TLS-configured one
		opts = append(opts, httpclient.WithMiddleware(
			middleware.TLSConfig(middleware.InsecureSkipVerify()),
		))
	}

	client := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpclient.New(opts...),
	}

	client.Servers = &ServersService{client: client}
	client.Sites = &SitesService{client: client}

	return client, nil
}

// do dispatches a single API call: it builds the request URL from the
// endpoint path computed by the caller, encodes the body, performs exactly
// one HTTP round trip, and interprets the result. Success is strictly
// HTTP 200; every other status is mapped onto the error taxonomy. No
// retries happen at this layer.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode != http.StatusOK {
		return errorFromResponse(resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return errors.Wrap(err, "failed to decode response body")
		}
	}

	return nil
}

// Package http provides a small retrying HTTP client used for catalog
// population. It handles exponential backoff, retryable status codes, and
// JSON decoding; callers own auth headers and endpoint URLs.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Config configures the client.
type Config struct {
	Timeout        time.Duration     // Per-request timeout (default 30s).
	MaxRetries     int               // Retries after the first attempt (default 3).
	BaseRetryDelay time.Duration     // Initial backoff delay (default 1s).
	MaxRetryDelay  time.Duration     // Backoff cap (default 30s).
	Headers        map[string]string // Headers applied to every request.
	UserAgent      string            // User-Agent header (default "neovate-code/1.0").
}

// Client wraps http.Client with retry and backoff for idempotent GETs.
type Client struct {
	client  *http.Client
	config  Config
	backoff BackoffConfig
}

// retryableStatus lists status codes worth retrying.
var retryableStatus = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// NewClient creates a client, filling unset Config fields with defaults.
func NewClient(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.MaxRetries == 0 {
		config.MaxRetries = 3
	}
	if config.BaseRetryDelay == 0 {
		config.BaseRetryDelay = time.Second
	}
	if config.MaxRetryDelay == 0 {
		config.MaxRetryDelay = 30 * time.Second
	}
	if config.UserAgent == "" {
		config.UserAgent = "neovate-code/1.0"
	}

	return &Client{
		client: &http.Client{Timeout: config.Timeout},
		config: config,
		backoff: BackoffConfig{
			BaseDelay:   config.BaseRetryDelay,
			MaxDelay:    config.MaxRetryDelay,
			Multiplier:  2.0,
			MaxAttempts: config.MaxRetries,
		},
	}
}

// Do executes the request, retrying retryable failures with exponential
// backoff. The context governs both the in-flight request and the waits
// between attempts.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", c.config.UserAgent)
	for key, value := range c.config.Headers {
		req.Header.Set(key, value)
	}

	var resp *http.Response
	var err error

	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := CalculateBackoff(c.backoff, attempt-1)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err = c.client.Do(req.Clone(ctx))
		if err != nil {
			continue
		}

		if retryableStatus[resp.StatusCode] && attempt < c.config.MaxRetries {
			_ = resp.Body.Close()
			continue
		}

		return resp, nil
	}

	if err != nil {
		return nil, fmt.Errorf("request failed after %d attempts: %w", c.config.MaxRetries+1, err)
	}
	return resp, nil
}

// GetJSON issues a GET with the given extra headers and decodes a 2xx JSON
// response body into dest.
func (c *Client) GetJSON(ctx context.Context, url string, headers map[string]string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// APIError is a non-2xx response from an endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Body)
}

// AuthHeaders creates authentication headers for the given method.
func AuthHeaders(method, token string) map[string]string {
	switch method {
	case "bearer":
		return map[string]string{"Authorization": "Bearer " + token}
	case "api-key":
		return map[string]string{"x-api-key": token}
	case "anthropic":
		return map[string]string{
			"x-api-key":         token,
			"anthropic-version": "2023-06-01",
		}
	default:
		return map[string]string{"Authorization": token}
	}
}

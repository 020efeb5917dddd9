package apiclient

import (
	"log/slog"
	"net/http"
	"time"
)

// DefaultTimeout bounds every request unless WithTimeout says otherwise.
const DefaultTimeout = 15 * time.Second

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. Non-positive values are ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
// Useful for custom transports, proxies, or testing.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		if key != "" && value != "" {
			c.headers.Set(key, value)
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger sets the logger for request outcomes.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRetry retries GET requests that failed in transport or got a temporary
// status, waiting interval between attempts. POST requests are never retried.
func WithRetry(attempts uint64, interval time.Duration) Option {
	return func(c *Client) {
		if interval > 0 {
			c.retryAttempts = attempts
			c.retryInterval = interval
		}
	}
}

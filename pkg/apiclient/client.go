package apiclient

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
	"sync"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/sethvargo/go-retry"

	"github.com/bootcamper/authkit/pkg/logger"
)

// maxResponseSize caps how much of a response body is read.
const maxResponseSize = 1 << 20

// Client sends JSON requests to one API base URL.
// Zero value is not usable; use New to create instances.
type Client struct {
	baseURL       *url.URL
	httpClient    *http.Client
	timeout       time.Duration
	headers       http.Header
	userAgent     string
	retryAttempts uint64
	retryInterval time.Duration
	logger        *slog.Logger

	mu            sync.RWMutex
	authorization string
}

// New creates a client for baseURL, which must be an absolute http or https URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidBaseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: host is required", ErrInvalidBaseURL)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")

	c := &Client{
		baseURL:    u,
		httpClient: cleanhttp.DefaultPooledClient(),
		timeout:    DefaultTimeout,
		headers:    make(http.Header),
		userAgent:  "authkit-apiclient/1.0",
		logger:     logger.Discard(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the base URL requests are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// SetAuthorization sets the Authorization header value sent with every
// subsequent request. An empty value removes the header.
func (c *Client) SetAuthorization(value string) {
	c.mu.Lock()
	c.authorization = value
	c.mu.Unlock()
}

// Authorization returns the Authorization header value sent with every request.
func (c *Client) Authorization() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.authorization
}

// Get sends a GET request to path with params encoded as the query string and
// decodes a JSON response into out, if out is not nil.
func (c *Client) Get(ctx context.Context, path string, params, out any) error {
	query, err := encodeQuery(params)
	if err != nil {
		return err
	}

	if c.retryAttempts == 0 {
		return c.do(ctx, http.MethodGet, path, query, nil, out)
	}

	backoff := retry.WithMaxRetries(c.retryAttempts, retry.NewConstant(c.retryInterval))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.do(ctx, http.MethodGet, path, query, nil, out)
		if isRetryable(err) {
			return retry.RetryableError(err)
		}
		return err
	})
}

// Post sends body as JSON to path and decodes a JSON response into out, if
// out is not nil. A nil body sends no payload.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncodeRequest, err)
		}
	}
	return c.do(ctx, http.MethodPost, path, nil, payload, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload []byte, out any) error {
	start := time.Now()

	// Layer the request timeout on top of the caller's context.
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := c.newRequest(reqCtx, method, path, query, payload)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "api request failed",
			logger.Method(method),
			logger.Path(path),
			logger.Duration(time.Since(start)),
			logger.Error(err),
		)
		switch {
		case ctx.Err() != nil:
			return ctx.Err()
		case errors.Is(reqCtx.Err(), context.DeadlineExceeded):
			return fmt.Errorf("%w: %w", ErrTimeout, err)
		default:
			return fmt.Errorf("%w: %w", ErrRequestFailed, err)
		}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return fmt.Errorf("%w: reading response: %w", ErrRequestFailed, err)
	}

	c.logger.DebugContext(ctx, "api request",
		logger.Method(method),
		logger.Path(path),
		logger.StatusCode(resp.StatusCode),
		logger.Duration(time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: errorMessage(resp.StatusCode, body)}
		c.logger.WarnContext(ctx, "api request rejected",
			logger.Method(method),
			logger.Path(path),
			logger.StatusCode(resp.StatusCode),
			slog.String("message", apiErr.Message),
		)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, payload []byte) (*http.Request, error) {
	u := *c.baseURL
	u.Path = c.baseURL.Path + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for k, v := range c.headers {
		req.Header[k] = v
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth := c.Authorization(); auth != "" {
		req.Header.Set("Authorization", auth)
	}

	return req, nil
}

// errorMessage extracts the server's explanation from an error body.
// Servers answer with {"message": "..."}, {"message": ["...", "..."]} or
// {"error": "..."}; anything else falls back to the status text.
func errorMessage(status int, body []byte) string {
	var payload struct {
		Message json.RawMessage `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, raw := range []json.RawMessage{payload.Message, payload.Error} {
			if msg := rawMessage(raw); msg != "" {
				return msg
			}
		}
	}

	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("status %d", status)
}

func rawMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.TrimSpace(strings.Join(list, ", "))
	}

	return ""
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Temporary()
	}
	return errors.Is(err, ErrRequestFailed) || errors.Is(err, ErrTimeout)
}

package apiclient

import (
	"context"
	"sync"
)

// The process-wide client is configured once at startup and shared by every
// caller, so an authorization set after sign-in applies to all later requests.
var (
	defaultMu     sync.RWMutex
	defaultClient *Client
)

// SetDefault installs c as the process-wide client.
func SetDefault(c *Client) {
	defaultMu.Lock()
	defaultClient = c
	defaultMu.Unlock()
}

// Default returns the process-wide client, or nil before SetDefault.
func Default() *Client {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultClient
}

// SetAuthorization sets the Authorization value of the process-wide client.
func SetAuthorization(value string) error {
	c := Default()
	if c == nil {
		return ErrNoDefaultClient
	}
	c.SetAuthorization(value)
	return nil
}

// Get sends a GET request through the process-wide client.
func Get(ctx context.Context, path string, params, out any) error {
	c := Default()
	if c == nil {
		return ErrNoDefaultClient
	}
	return c.Get(ctx, path, params, out)
}

// Post sends a POST request through the process-wide client.
func Post(ctx context.Context, path string, body, out any) error {
	c := Default()
	if c == nil {
		return ErrNoDefaultClient
	}
	return c.Post(ctx, path, body, out)
}

package session

import (
	"context"
	"time"
)

// Store persists authentication tokens by key.
type Store interface {
	// Save stores token under key. A positive ttl expires the token.
	Save(ctx context.Context, key, token string, ttl time.Duration) error

	// Load returns the token stored under key or ErrTokenNotFound.
	Load(ctx context.Context, key string) (string, error)

	// Delete removes the token stored under key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}

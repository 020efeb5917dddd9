package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bootcamper/authkit/pkg/authapi"
	"github.com/bootcamper/authkit/pkg/logger"
)

// DefaultKey is the store key used when none is configured.
const DefaultKey = "default"

// Authorizer receives the Authorization value for outgoing requests.
type Authorizer interface {
	SetAuthorization(value string)
}

// Keeper ties a token Store to the API client authorization: whatever it
// persists is also applied to outgoing requests.
type Keeper struct {
	store  Store
	auth   Authorizer
	key    string
	ttl    time.Duration
	logger *slog.Logger
}

// KeeperOption configures a Keeper.
type KeeperOption func(*Keeper)

// WithKey sets the store key, typically one per API base URL.
func WithKey(key string) KeeperOption {
	return func(k *Keeper) {
		if key != "" {
			k.key = key
		}
	}
}

// WithTTL expires stored tokens after ttl. Zero keeps them until Forget.
func WithTTL(ttl time.Duration) KeeperOption {
	return func(k *Keeper) {
		k.ttl = ttl
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) KeeperOption {
	return func(k *Keeper) {
		if l != nil {
			k.logger = l
		}
	}
}

// NewKeeper creates a Keeper over store that updates auth.
func NewKeeper(store Store, auth Authorizer, opts ...KeeperOption) *Keeper {
	k := &Keeper{
		store:  store,
		auth:   auth,
		key:    DefaultKey,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Persist stores token and applies it as a bearer authorization.
func (k *Keeper) Persist(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	if k.store == nil {
		return ErrNoStore
	}
	if err := k.store.Save(ctx, k.key, token, k.ttl); err != nil {
		return err
	}
	k.apply(token)
	k.logger.DebugContext(ctx, "session token persisted", slog.String("key", k.key))
	return nil
}

// Restore applies a previously persisted token. It reports false when no
// token is stored.
func (k *Keeper) Restore(ctx context.Context) (bool, error) {
	if k.store == nil {
		return false, ErrNoStore
	}

	token, err := k.store.Load(ctx, k.key)
	if errors.Is(err, ErrTokenNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	k.apply(token)
	k.logger.DebugContext(ctx, "session token restored", slog.String("key", k.key))
	return true, nil
}

// Forget removes the stored token and clears the authorization. The
// authorization is cleared even when the store fails.
func (k *Keeper) Forget(ctx context.Context) error {
	if k.auth != nil {
		k.auth.SetAuthorization("")
	}
	if k.store == nil {
		return ErrNoStore
	}
	if err := k.store.Delete(ctx, k.key); err != nil {
		k.logger.WarnContext(ctx, "failed to delete session token", logger.Error(err))
		return err
	}
	return nil
}

func (k *Keeper) apply(token string) {
	if k.auth != nil {
		k.auth.SetAuthorization(authapi.BearerToken(token))
	}
}

var _ authapi.TokenSink = (*Keeper)(nil)

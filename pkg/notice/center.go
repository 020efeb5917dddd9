package notice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bootcamper/authkit/pkg/logger"
)

// DefaultTTL is how long a notice stays visible unless configured otherwise.
const DefaultTTL = 4 * time.Second

// Center shows and dismisses the notices of one screen.
type Center struct {
	storage   Storage
	deliverer Deliverer
	ttl       time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

// Option configures a Center.
type Option func(*Center)

// WithTTL sets how long new notices stay visible. Zero or negative means
// notices stay until dismissed.
func WithTTL(ttl time.Duration) Option {
	return func(c *Center) { c.ttl = ttl }
}

// WithDeliverer sets where new notices are pushed.
func WithDeliverer(d Deliverer) Option {
	return func(c *Center) {
		if d != nil {
			c.deliverer = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Center) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Center) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCenter creates a Center over storage. A nil storage gets a MemoryStorage.
func NewCenter(storage Storage, opts ...Option) *Center {
	if storage == nil {
		storage = NewMemoryStorage()
	}

	c := &Center{
		storage:   storage,
		deliverer: NoOpDeliverer{},
		ttl:       DefaultTTL,
		now:       time.Now,
		logger:    logger.Discard(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Show stores a notice of type typ and delivers it.
// Delivery is best effort: a failing deliverer is logged, the notice stays stored.
func (c *Center) Show(ctx context.Context, typ Type, message string) (Notice, error) {
	if strings.TrimSpace(message) == "" {
		return Notice{}, ErrEmptyMessage
	}

	now := c.now()
	n := Notice{
		ID:        uuid.New(),
		Type:      typ,
		Message:   message,
		CreatedAt: now,
	}
	if c.ttl > 0 {
		n.ExpiresAt = now.Add(c.ttl)
	}

	if err := c.storage.Create(ctx, n); err != nil {
		return Notice{}, fmt.Errorf("failed to store notice: %w", err)
	}

	if err := c.deliverer.Deliver(ctx, n); err != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "failed to deliver notice",
			slog.String("notice_id", n.ID.String()),
			logger.Error(err),
		)
	}

	return n, nil
}

// Error shows an error notice.
func (c *Center) Error(ctx context.Context, message string) (Notice, error) {
	return c.Show(ctx, TypeError, message)
}

// Dismiss removes the notices with the given IDs.
func (c *Center) Dismiss(ctx context.Context, ids ...uuid.UUID) error {
	if err := c.storage.Delete(ctx, ids...); err != nil {
		return fmt.Errorf("failed to dismiss notices: %w", err)
	}
	return nil
}

// Visible returns the notices that have not expired, oldest first.
// Expired notices are removed from storage.
func (c *Center) Visible(ctx context.Context) ([]Notice, error) {
	all, err := c.storage.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}

	now := c.now()
	visible := make([]Notice, 0, len(all))
	var expired []uuid.UUID
	for _, n := range all {
		if n.IsExpired(now) {
			expired = append(expired, n.ID)
			continue
		}
		visible = append(visible, n)
	}

	if len(expired) > 0 {
		if err := c.storage.Delete(ctx, expired...); err != nil {
			c.logger.LogAttrs(ctx, slog.LevelWarn, "failed to purge expired notices", logger.Error(err))
		}
	}

	return visible, nil
}

// Clear removes every notice.
func (c *Center) Clear(ctx context.Context) error {
	if err := c.storage.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear notices: %w", err)
	}
	return nil
}

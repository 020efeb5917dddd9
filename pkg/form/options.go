package form

import (
	"context"
	"log/slog"

	"github.com/bootcamper/authkit/pkg/authapi"
	"github.com/bootcamper/authkit/pkg/messages"
	"github.com/bootcamper/authkit/pkg/notice"
)

// Option configures a Controller.
type Option func(*Controller)

// WithMessages sets the screen strings. Unless WithFields is also given, the
// default fields are built with these messages.
func WithMessages(msgs messages.Login) Option {
	return func(c *Controller) {
		c.msgs = msgs
	}
}

// WithFields replaces the default inputs. Specs are kept in the given order.
func WithFields(specs ...FieldSpec) Option {
	return func(c *Controller) {
		c.specs = specs
	}
}

// WithNotices sets where submit failures are shown.
func WithNotices(center *notice.Center) Option {
	return func(c *Controller) {
		if center != nil {
			c.notices = center
		}
	}
}

// WithMode sets the initial mode.
func WithMode(m Mode) Option {
	return func(c *Controller) {
		c.mode = m
	}
}

// WithOnAuthenticated sets a hook called after a successful login or
// registration.
func WithOnAuthenticated(fn func(ctx context.Context, mode Mode, resp *authapi.AuthResponse)) Option {
	return func(c *Controller) {
		c.onAuthenticated = fn
	}
}

// WithLogger sets the logger used for submit outcomes.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

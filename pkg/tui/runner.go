package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bootcamper/authkit/pkg/async"
	"github.com/bootcamper/authkit/pkg/field"
	"github.com/bootcamper/authkit/pkg/form"
	"github.com/bootcamper/authkit/pkg/logger"
	"github.com/bootcamper/authkit/pkg/messages"
)

// DefaultMaxAttempts bounds how often a single field is prompted.
const DefaultMaxAttempts = 5

// Runner walks a user through a form.Controller on the terminal.
type Runner struct {
	ctrl        *form.Controller
	driver      PromptDriver
	catalog     *messages.Catalog
	lang        string
	maxAttempts int
	logger      *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithDriver sets the prompt driver. The default drives the terminal via survey.
func WithDriver(d PromptDriver) Option {
	return func(r *Runner) {
		if d != nil {
			r.driver = d
		}
	}
}

// WithCatalog sets the catalogue and language of the runner's own strings.
func WithCatalog(c *messages.Catalog, lang string) Option {
	return func(r *Runner) {
		if c != nil {
			r.catalog = c
		}
		r.lang = lang
	}
}

// WithMaxAttempts sets how often an invalid field is prompted again.
func WithMaxAttempts(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner creates a Runner for ctrl using survey prompts by default.
func NewRunner(ctrl *form.Controller, opts ...Option) *Runner {
	r := &Runner{
		ctrl:        ctrl,
		driver:      NewSurveyDriver(nil),
		catalog:     messages.Default(),
		lang:        messages.DefaultLanguage,
		maxAttempts: DefaultMaxAttempts,
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run prompts for the form until a submit succeeds, the user declines to
// retry, or a prompt fails.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.chooseMode(ctx); err != nil {
		return err
	}

	for {
		if err := r.fill(ctx); err != nil {
			return err
		}

		err := r.ctrl.Submit(ctx)
		if err == nil {
			return r.greet(ctx)
		}

		if errors.Is(err, form.ErrInvalidForm) {
			// A field changed after it was prompted; prompt again.
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err := r.showNotices(ctx); err != nil {
			return err
		}

		retry, perr := r.driver.Confirm(ctx, ConfirmConfig{Message: r.ctrl.Messages().Retry, Default: true})
		if perr != nil {
			return perr
		}
		if !retry {
			return err
		}
	}
}

func (r *Runner) chooseMode(ctx context.Context) error {
	if err := r.driver.Info(ctx, r.ctrl.Title()); err != nil {
		return err
	}

	msgs := r.ctrl.Messages()
	switchMode, err := r.driver.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("%s %s?", msgs.HasAccount, r.ctrl.SwitchLabel()),
	})
	if err != nil {
		return err
	}
	if !switchMode {
		return nil
	}

	if _, err := r.ctrl.ToggleMode(ctx); err != nil {
		return err
	}
	return r.driver.Info(ctx, r.ctrl.Title())
}

func (r *Runner) fill(ctx context.Context) error {
	for _, spec := range r.ctrl.Fields() {
		if err := r.fillField(ctx, spec); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) fillField(ctx context.Context, spec form.FieldSpec) error {
	h, err := r.ctrl.Handle(spec.Name)
	if err != nil {
		return err
	}

	label := spec.Label
	if label == "" {
		label = spec.Name
	}

	for range r.maxAttempts {
		value, err := r.prompt(ctx, spec, label)
		if err != nil {
			return err
		}

		if err := r.enter(ctx, h, spec.Name, value); err != nil {
			return err
		}

		if !h.ErrorState() {
			return nil
		}

		r.logger.DebugContext(ctx, "field rejected", logger.Field(spec.Name))
		if err := r.driver.Info(ctx, "  "+h.State().ErrorMessage); err != nil {
			return err
		}
	}

	_ = r.driver.Info(ctx, r.catalog.T(r.lang, "login.too_many_attempts"))
	return fmt.Errorf("%w: %s", ErrTooManyAttempts, spec.Name)
}

func (r *Runner) prompt(ctx context.Context, spec form.FieldSpec, label string) (string, error) {
	if spec.Secret {
		return r.driver.Password(ctx, InputConfig{Message: label})
	}
	current, err := r.ctrl.Value(spec.Name)
	if err != nil {
		return "", err
	}
	return r.driver.Input(ctx, InputConfig{Message: label, Default: current})
}

// enter replays what a text input does when the user types a value and
// leaves it: a change event followed by a blur event.
func (r *Runner) enter(ctx context.Context, h field.Handle, name, value string) error {
	changed, err := r.ctrl.SetValue(ctx, name, value)
	if err != nil {
		return err
	}
	if err := await(ctx, changed); err != nil {
		return err
	}

	blurred, err := r.ctrl.Blur(ctx, name)
	if err != nil {
		return err
	}
	if err := await(ctx, blurred); err != nil {
		return err
	}

	if changed == nil && blurred == nil {
		return h.Validate(ctx, value)
	}
	return nil
}

func (r *Runner) showNotices(ctx context.Context) error {
	notices, err := r.ctrl.Notices(ctx)
	if err != nil {
		return err
	}
	for _, n := range notices {
		if err := r.driver.Info(ctx, "! "+n.Message); err != nil {
			return err
		}
		if err := r.ctrl.DismissNotice(ctx, n.ID); err != nil {
			r.logger.WarnContext(ctx, "failed to dismiss notice", logger.Error(err))
		}
	}
	return nil
}

func (r *Runner) greet(ctx context.Context) error {
	email, _ := r.ctrl.Value(form.FieldEmail)
	key := "login.signed_in"
	if r.ctrl.Mode() == form.ModeRegister {
		key = "login.registered"
	}
	return r.driver.Info(ctx, r.catalog.T(r.lang, key, "email", email))
}

func await(ctx context.Context, f *async.Future[field.State]) error {
	if f == nil {
		return nil
	}
	_, err := f.AwaitContext(ctx)
	return err
}

package form

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/bootcamper/authkit/pkg/apiclient"
	"github.com/bootcamper/authkit/pkg/async"
	"github.com/bootcamper/authkit/pkg/authapi"
	"github.com/bootcamper/authkit/pkg/field"
	"github.com/bootcamper/authkit/pkg/logger"
	"github.com/bootcamper/authkit/pkg/messages"
	"github.com/bootcamper/authkit/pkg/notice"
	"github.com/bootcamper/authkit/pkg/validator"
)

// Authenticator performs the remote sign-in calls. *authapi.Service
// implements it.
type Authenticator interface {
	Login(ctx context.Context, creds authapi.Credentials) (*authapi.AuthResponse, error)
	Register(ctx context.Context, reg authapi.Registration) (*authapi.AuthResponse, error)
}

type input struct {
	spec  FieldSpec
	field *field.Field
}

// Controller owns the values of a login / registration form, validates them
// and performs the authentication call.
type Controller struct {
	auth            Authenticator
	notices         *notice.Center
	msgs            messages.Login
	specs           []FieldSpec
	onAuthenticated func(ctx context.Context, mode Mode, resp *authapi.AuthResponse)
	logger          *slog.Logger

	inputs []input

	mu         sync.RWMutex
	mode       Mode
	loading    bool
	submitting bool
}

// New creates a Controller calling auth on submit.
func New(auth Authenticator, opts ...Option) (*Controller, error) {
	if auth == nil {
		return nil, ErrNilAuthenticator
	}

	c := &Controller{
		auth:   auth,
		msgs:   messages.DefaultLogin(),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.notices == nil {
		c.notices = notice.NewCenter(notice.NewMemoryStorage(), notice.WithLogger(c.logger))
	}
	if c.specs == nil {
		c.specs = DefaultFields(c.msgs)
	}

	seen := make(map[string]bool, len(c.specs))
	for _, spec := range c.specs {
		if seen[spec.Name] {
			return nil, fmt.Errorf("form: duplicate field %q", spec.Name)
		}
		f, err := field.New(spec.Name, spec.Rules,
			field.WithTrigger(spec.Trigger),
			field.WithLogger(c.logger),
		)
		if err != nil {
			return nil, err
		}
		c.inputs = append(c.inputs, input{spec: spec, field: f})
		seen[spec.Name] = true
	}

	return c, nil
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// Loading reports whether the remote call of a submit is in flight.
func (c *Controller) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Fields returns the specs of the inputs active in the current mode, in
// display order.
func (c *Controller) Fields() []FieldSpec {
	mode := c.Mode()
	out := make([]FieldSpec, 0, len(c.inputs))
	for _, in := range c.active(mode) {
		out = append(out, in.spec)
	}
	return out
}

// Handle returns the validation handle of an active field.
func (c *Controller) Handle(name string) (field.Handle, error) {
	f, err := c.lookup(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Value returns the current value of an active field.
func (c *Controller) Value(name string) (string, error) {
	f, err := c.lookup(name)
	if err != nil {
		return "", err
	}
	return f.Value(), nil
}

// Values returns the values of the active fields keyed by name.
func (c *Controller) Values() map[string]string {
	active := c.active(c.Mode())
	out := make(map[string]string, len(active))
	for _, in := range active {
		out[in.spec.Name] = in.field.Value()
	}
	return out
}

// SetValue forwards a change event to the named field. The returned future is
// the validation run started by the event, or nil when the field does not
// validate on change.
func (c *Controller) SetValue(ctx context.Context, name, value string) (*async.Future[field.State], error) {
	f, err := c.lookup(name)
	if err != nil {
		return nil, err
	}
	return f.Change(ctx, value), nil
}

// Blur forwards a blur event to the named field. The returned future is the
// validation run started by the event, or nil when the field does not
// validate on blur.
func (c *Controller) Blur(ctx context.Context, name string) (*async.Future[field.State], error) {
	f, err := c.lookup(name)
	if err != nil {
		return nil, err
	}
	return f.Blur(ctx), nil
}

// Errors returns the committed validation failures of the active fields.
func (c *Controller) Errors() validator.ValidationErrors {
	var errs validator.ValidationErrors
	for _, in := range c.active(c.Mode()) {
		if st := in.field.State(); st.IsError {
			errs.Add(validator.ValidationError{
				Field:   in.spec.Name,
				Message: st.ErrorMessage,
			})
		}
	}
	return errs
}

// Submit validates every active field concurrently, waits for all of them,
// and calls Login or Register only when none failed.
//
// Validation failures return an error wrapping ErrInvalidForm and
// validator.ValidationErrors. A failed remote call is shown as an error
// notice and returned. The loading flag is cleared on every path.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return ErrSubmitInProgress
	}
	c.submitting = true
	mode := c.mode
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.submitting = false
		c.loading = false
		c.mu.Unlock()
	}()

	active := c.active(mode)
	values := snapshot(active)

	verrs, err := c.validateAll(ctx, active, values)
	if err != nil {
		return err
	}
	if !verrs.IsEmpty() {
		c.logger.DebugContext(ctx, "form submit rejected by validation",
			logger.Mode(mode),
			slog.Any("fields", verrs.Fields()),
		)
		return fmt.Errorf("%w: %w", ErrInvalidForm, verrs)
	}

	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	resp, err := c.authenticate(ctx, mode, values)
	if err != nil {
		c.logger.WarnContext(ctx, "authentication failed",
			logger.Mode(mode),
			logger.Error(err),
		)
		if _, nerr := c.notices.Error(ctx, apiclient.ErrorMessage(err)); nerr != nil {
			c.logger.ErrorContext(ctx, "failed to show notice", logger.Error(nerr))
		}
		return err
	}

	c.logger.InfoContext(ctx, "authenticated", logger.Mode(mode))
	if c.onAuthenticated != nil {
		c.onAuthenticated(ctx, mode, resp)
	}
	return nil
}

// snapshot captures the values a submit attempt validates and sends.
func snapshot(active []input) map[string]string {
	values := make(map[string]string, len(active))
	for _, in := range active {
		values[in.spec.Name] = in.field.Value()
	}
	return values
}

// validateAll starts a validation run for every field against values and
// returns once all runs have settled. The verdicts come from the runs
// themselves, so edits made while validating cannot leak into the result.
func (c *Controller) validateAll(ctx context.Context, active []input, values map[string]string) (validator.ValidationErrors, error) {
	futures := make([]*async.Future[field.State], len(active))
	for i, in := range active {
		futures[i] = in.field.ValidateAsync(ctx, values[in.spec.Name])
	}

	states, errs := async.SettleAll(futures...)
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("validating %s: %w", active[i].spec.Name, err)
		}
	}

	var verrs validator.ValidationErrors
	for i, st := range states {
		if st.IsError {
			verrs.Add(validator.ValidationError{
				Field:   active[i].spec.Name,
				Message: st.ErrorMessage,
			})
		}
	}
	return verrs, nil
}

func (c *Controller) authenticate(ctx context.Context, mode Mode, values map[string]string) (*authapi.AuthResponse, error) {
	if mode == ModeRegister {
		return c.auth.Register(ctx, authapi.Registration{
			Name:     values[FieldName],
			Email:    values[FieldEmail],
			Password: values[FieldPassword],
		})
	}
	return c.auth.Login(ctx, authapi.Credentials{
		Email:    values[FieldEmail],
		Password: values[FieldPassword],
	})
}

// ToggleMode switches between login and register, clearing every value and
// validation state. It fails while a submit is running.
func (c *Controller) ToggleMode(ctx context.Context) (Mode, error) {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return c.Mode(), ErrSubmitInProgress
	}
	c.mode = c.mode.Toggle()
	mode := c.mode
	c.mu.Unlock()

	c.Reset()
	c.logger.DebugContext(ctx, "form mode switched", logger.Mode(mode))
	return mode, nil
}

// Reset clears the values and validation state of every field, including
// fields inactive in the current mode.
func (c *Controller) Reset() {
	for _, in := range c.inputs {
		in.field.Reset()
	}
}

// Notices returns the notices currently visible on the form.
func (c *Controller) Notices(ctx context.Context) ([]notice.Notice, error) {
	return c.notices.Visible(ctx)
}

// DismissNotice hides the notice with id.
func (c *Controller) DismissNotice(ctx context.Context, id uuid.UUID) error {
	return c.notices.Dismiss(ctx, id)
}

// Title returns the screen heading for the current mode.
func (c *Controller) Title() string {
	if c.Mode() == ModeRegister {
		return c.msgs.RegisterTitle
	}
	return c.msgs.Title
}

// SubmitLabel returns the submit button text for the current mode.
func (c *Controller) SubmitLabel() string {
	if c.Mode() == ModeRegister {
		return c.msgs.RegisterSubmit
	}
	return c.msgs.Submit
}

// SwitchLabel returns the text of the control that toggles the mode.
func (c *Controller) SwitchLabel() string {
	if c.Mode() == ModeRegister {
		return c.msgs.SwitchToLogin
	}
	return c.msgs.SwitchToRegister
}

// Messages returns the screen strings.
func (c *Controller) Messages() messages.Login {
	return c.msgs
}

func (c *Controller) active(mode Mode) []input {
	out := make([]input, 0, len(c.inputs))
	for _, in := range c.inputs {
		if in.spec.RegisterOnly && mode != ModeRegister {
			continue
		}
		out = append(out, in)
	}
	return out
}

func (c *Controller) lookup(name string) (*field.Field, error) {
	for _, in := range c.active(c.Mode()) {
		if in.spec.Name == name {
			return in.field, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

package field

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bootcamper/authkit/pkg/async"
	"github.com/bootcamper/authkit/pkg/logger"
	"github.com/bootcamper/authkit/pkg/validator"
)

// State is the validation outcome of a field.
type State struct {
	IsError      bool
	ErrorMessage string
}

// Handle is the capability a form holds for each of its fields. It never
// exposes the field's internals.
type Handle interface {
	// Validate evaluates the field's rules against value and records the outcome.
	// Validation failures are reported through ErrorState, not the returned error.
	Validate(ctx context.Context, value string) error
	// ErrorState reports whether the last committed validation failed.
	ErrorState() bool
	// State returns the last committed validation state.
	State() State
	// Reset clears the value and the validation state.
	Reset()
}

// EventFunc is a caller-supplied blur or change callback.
type EventFunc func(ctx context.Context, value string)

// Field is a single validated text input.
// Zero value is not usable; use New to create instances.
type Field struct {
	name     string
	rules    []validator.Rule
	trigger  Trigger
	onBlur   EventFunc
	onChange EventFunc
	logger   *slog.Logger

	mu    sync.RWMutex
	value string
	state State
	// seq numbers validation runs; a run commits only while it is the latest.
	seq uint64
}

var _ Handle = (*Field)(nil)

// New creates a field named name that validates against rules in order.
// An empty rule list is a configuration error.
func New(name string, rules []validator.Rule, opts ...Option) (*Field, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("field %q: %w", name, ErrNoRules)
	}

	f := &Field{
		name:   name,
		rules:  append([]validator.Rule(nil), rules...),
		logger: logger.Discard(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

// Name returns the field name.
func (f *Field) Name() string {
	return f.name
}

// Trigger returns the configured automatic validation triggers.
func (f *Field) Trigger() Trigger {
	return f.trigger
}

// Value returns the latest value received through Change or Set.
func (f *Field) Value() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.value
}

// Set stores value without firing a change event.
func (f *Field) Set(value string) {
	f.mu.Lock()
	f.value = value
	f.mu.Unlock()
}

// ErrorState reports whether the last committed validation failed.
func (f *Field) ErrorState() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state.IsError
}

// State returns the last committed validation state.
func (f *Field) State() State {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state
}

// Reset sets the value to empty and the state to no error. Validation runs
// still in flight are discarded when they finish.
func (f *Field) Reset() {
	f.mu.Lock()
	f.seq++
	f.value = ""
	f.state = State{}
	f.mu.Unlock()
}

// Validate evaluates the rules against value. The state is updated only when
// no newer run or reset started in the meantime. The returned error is nil for
// both passing and failing values; it is non-nil only when the run was
// aborted by ctx or the rule list is misconfigured.
func (f *Field) Validate(ctx context.Context, value string) error {
	_, err := f.run(ctx, value)
	return err
}

// Change records a change event. When the trigger includes TriggerChange, it
// starts validating value and returns the future of that run, otherwise it
// returns nil. The onChange callback is always invoked.
func (f *Field) Change(ctx context.Context, value string) *async.Future[State] {
	f.Set(value)

	var future *async.Future[State]
	if f.trigger.Has(TriggerChange) {
		future = f.start(ctx, value)
	}

	if f.onChange != nil {
		f.onChange(ctx, value)
	}

	return future
}

// Blur records a blur event. When the trigger includes TriggerBlur, it starts
// validating the latest value and returns the future of that run, otherwise it
// returns nil. The onBlur callback is always invoked.
func (f *Field) Blur(ctx context.Context) *async.Future[State] {
	value := f.Value()

	var future *async.Future[State]
	if f.trigger.Has(TriggerBlur) {
		future = f.start(ctx, value)
	}

	if f.onBlur != nil {
		f.onBlur(ctx, value)
	}

	return future
}

// ValidateAsync starts validating value and returns the future of the run.
// The future resolves to the verdict for value even when a newer run
// supersedes it and the verdict is not committed.
func (f *Field) ValidateAsync(ctx context.Context, value string) *async.Future[State] {
	return f.start(ctx, value)
}

func (f *Field) start(ctx context.Context, value string) *async.Future[State] {
	// The run number is taken before the goroutine starts so that start order,
	// not scheduling order, decides which run is the latest.
	seq := f.nextSeq()
	return async.Async(ctx, value, func(ctx context.Context, v string) (State, error) {
		return f.evaluate(ctx, seq, v)
	})
}

func (f *Field) run(ctx context.Context, value string) (State, error) {
	return f.evaluate(ctx, f.nextSeq(), value)
}

func (f *Field) nextSeq() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	return f.seq
}

func (f *Field) evaluate(ctx context.Context, seq uint64, value string) (State, error) {
	failure, err := validator.Evaluate(ctx, f.name, value, f.rules)
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			level = slog.LevelDebug
		}
		f.logger.Log(ctx, level, "field validation aborted",
			logger.Field(f.name),
			logger.Error(err),
		)
		return f.State(), err
	}

	next := State{}
	if failure != nil {
		next = State{IsError: true, ErrorMessage: failure.Message}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if seq != f.seq {
		f.logger.DebugContext(ctx, "discarding superseded validation result",
			logger.Field(f.name),
			slog.Uint64("run", seq),
			slog.Uint64("latest", f.seq),
		)
		return next, nil
	}

	f.state = next
	if next.IsError {
		f.logger.DebugContext(ctx, "field validation failed",
			logger.Field(f.name),
			slog.String("message", next.ErrorMessage),
		)
	}

	return next, nil
}

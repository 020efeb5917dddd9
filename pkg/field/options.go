package field

import "log/slog"

// Option configures a Field.
type Option func(*Field)

// WithTrigger sets the events that validate the field automatically.
func WithTrigger(t Trigger) Option {
	return func(f *Field) {
		f.trigger = t
	}
}

// WithOnBlur sets the callback invoked on every blur event.
func WithOnBlur(fn EventFunc) Option {
	return func(f *Field) {
		f.onBlur = fn
	}
}

// WithOnChange sets the callback invoked on every change event.
func WithOnChange(fn EventFunc) Option {
	return func(f *Field) {
		f.onChange = fn
	}
}

// WithValue sets the initial value.
func WithValue(value string) Option {
	return func(f *Field) {
		f.value = value
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(f *Field) {
		if l != nil {
			f.logger = l
		}
	}
}

// Package field implements a validated text input: it holds the current
// value, evaluates an ordered rule list on blur, change or on demand, and
// keeps the resulting error state.
//
// A parent form never reaches into a Field. It keeps a Handle, which exposes
// Validate, ErrorState, State and Reset, and queries it at submit time.
//
// Change and Blur always invoke the callbacks passed with WithOnChange and
// WithOnBlur; validation only runs when the configured Trigger includes the
// event, and runs in its own goroutine. The returned future can be awaited or
// ignored.
//
// Every validation run is numbered when it starts. A run that finishes after a
// newer run (or a Reset) has started does not overwrite the state, so the
// state always reflects the latest started run. This matters for slow
// validators: a check started on an old keystroke cannot clobber the result
// for what the user typed since.
package field

package form

import "errors"

var (
	// ErrInvalidForm is returned by Submit when at least one active field
	// failed validation. It wraps validator.ValidationErrors.
	ErrInvalidForm = errors.New("form: invalid input")

	// ErrSubmitInProgress is returned when Submit or ToggleMode is called while
	// a submit is running.
	ErrSubmitInProgress = errors.New("form: submit already in progress")

	// ErrUnknownField is returned for a field name the form does not have or
	// that is inactive in the current mode.
	ErrUnknownField = errors.New("form: unknown field")

	// ErrNilAuthenticator is returned by New without an Authenticator.
	ErrNilAuthenticator = errors.New("form: nil authenticator")
)

package validator

import "errors"

var (
	// ErrNoRules is returned when a value is evaluated against an empty rule list.
	ErrNoRules = errors.New("validator: at least one rule must be provided")

	// ErrUnknownRule is returned for a nil rule, a nil *Required or *Validator,
	// or a type that embeds one of them.
	ErrUnknownRule = errors.New("validator: unknown rule type")

	// ErrNilCheck is returned when a Validator rule has no Check function.
	ErrNilCheck = errors.New("validator: validator rule has nil check")

	// ErrInvalidFormat is the default failure of pattern validators without a message.
	ErrInvalidFormat = errors.New("invalid format")
)

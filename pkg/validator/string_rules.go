package validator

import (
	"context"
	"unicode/utf8"
)

// Func adapts a synchronous predicate into a Validator.
func Func(check func(value string) error) Validator {
	return Validator{
		Check: func(_ context.Context, value string) error {
			return check(value)
		},
	}
}

// MinLen validates that the value has at least min characters.
func MinLen(min int, message string) Validator {
	return Func(func(value string) error {
		if utf8.RuneCountInString(value) < min {
			return ValidationError{
				Message:        message,
				TranslationKey: "validation.min_length",
				TranslationValues: map[string]any{
					"min": min,
				},
			}
		}
		return nil
	})
}

// MaxLen validates that the value has at most max characters.
func MaxLen(max int, message string) Validator {
	return Func(func(value string) error {
		if utf8.RuneCountInString(value) > max {
			return ValidationError{
				Message:        message,
				TranslationKey: "validation.max_length",
				TranslationValues: map[string]any{
					"max": max,
				},
			}
		}
		return nil
	})
}

package validator

import (
	"regexp"
)

// emailRegex mirrors the address shape accepted by the sign-in API.
var emailRegex = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,4}$`)

// Pattern validates that the value matches re.
func Pattern(re *regexp.Regexp, message string) Validator {
	if message == "" {
		message = ErrInvalidFormat.Error()
	}
	return Func(func(value string) error {
		if !re.MatchString(value) {
			return ValidationError{
				Message:        message,
				TranslationKey: "validation.regex_pattern",
				TranslationValues: map[string]any{
					"pattern": re.String(),
				},
			}
		}
		return nil
	})
}

// MatchesRegex compiles pattern once and validates against it. Panics on an
// invalid pattern, like regexp.MustCompile.
func MatchesRegex(pattern, message string) Validator {
	return Pattern(regexp.MustCompile(pattern), message)
}

// Email validates an email address.
func Email(message string) Validator {
	return Func(func(value string) error {
		if !emailRegex.MatchString(value) {
			return ValidationError{
				Message:        message,
				TranslationKey: "validation.email",
			}
		}
		return nil
	})
}

package validator

import (
	"strings"
	"unicode/utf8"
)

// PasswordSpecialChars is the set of special characters a strong password may use.
const PasswordSpecialChars = "@$!%*#?&"

// PasswordMinLength is the minimal strong password length.
const PasswordMinLength = 8

// StrongPassword requires a lowercase letter, an uppercase letter, a digit and
// one of PasswordSpecialChars, at least PasswordMinLength characters long, and
// no characters outside ASCII letters, digits and PasswordSpecialChars.
func StrongPassword(message string) Validator {
	return Func(func(value string) error {
		if !isStrongPassword(value) {
			return ValidationError{
				Message:        message,
				TranslationKey: "validation.password_strength",
				TranslationValues: map[string]any{
					"min":     PasswordMinLength,
					"special": PasswordSpecialChars,
				},
			}
		}
		return nil
	})
}

func isStrongPassword(value string) bool {
	if utf8.RuneCountInString(value) < PasswordMinLength {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(PasswordSpecialChars, r):
			hasSpecial = true
		default:
			return false
		}
	}

	return hasUpper && hasLower && hasDigit && hasSpecial
}

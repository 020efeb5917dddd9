package validator

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a single validation failure with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Error returns the human-readable message so a ValidationError can be
// returned directly from a Validator check.
func (e ValidationError) Error() string {
	return e.Message
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends err.
func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Has reports whether field has at least one error.
func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the failing field names in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// IsEmpty reports whether no error was recorded.
func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule is a single validation check. The set of rules is closed: a Rule is
// either Required or Validator.
type Rule interface {
	isRule()
}

// Required fails when the value is empty or whitespace-only.
type Required struct {
	Message string
}

func (Required) isRule() {}

// Validator runs an arbitrary, possibly slow, check. A non-nil error is a
// failure and its Error() text becomes the field message.
type Validator struct {
	Check func(ctx context.Context, value string) error
}

func (Validator) isRule() {}

// Evaluate runs rules against value in declared order and stops at the first
// failing rule. It returns that failure, or nil when every rule passes.
//
// The error return is reserved for conditions that are not a verdict about the
// value: an empty rule list (ErrNoRules), an unknown rule variant, a Validator
// without a check, or a context cancellation observed by a check.
func Evaluate(ctx context.Context, field, value string, rules []Rule) (*ValidationError, error) {
	if len(rules) == 0 {
		return nil, ErrNoRules
	}

	for i, rule := range rules {
		switch r := deref(rule).(type) {
		case Required:
			if strings.TrimSpace(value) == "" {
				return &ValidationError{
					Field:          field,
					Message:        r.Message,
					TranslationKey: "validation.required",
					TranslationValues: map[string]any{
						"field": field,
					},
				}, nil
			}

		case Validator:
			if r.Check == nil {
				return nil, fmt.Errorf("%w: rule %d of %q", ErrNilCheck, i, field)
			}
			if err := r.Check(ctx, value); err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return nil, err
				}
				return failure(field, err), nil
			}

		default:
			return nil, fmt.Errorf("%w: %T", ErrUnknownRule, rule)
		}
	}

	return nil, nil
}

// deref lets *Required and *Validator, which satisfy Rule through their
// method sets, evaluate like the values they point to.
func deref(rule Rule) Rule {
	switch r := rule.(type) {
	case *Required:
		if r != nil {
			return *r
		}
	case *Validator:
		if r != nil {
			return *r
		}
	}
	return rule
}

func failure(field string, err error) *ValidationError {
	var verr ValidationError
	if errors.As(err, &verr) {
		verr.Field = field
		return &verr
	}

	return &ValidationError{
		Field:          field,
		Message:        err.Error(),
		TranslationKey: "validation.invalid",
		TranslationValues: map[string]any{
			"field": field,
		},
	}
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

// IsValidationError reports whether err wraps ValidationErrors.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

// Input pairs a value with the rules it must satisfy.
type Input struct {
	Field string
	Value string
	Rules []Rule
}

// Apply evaluates every input and returns the collected failures as
// ValidationErrors, or nil when all inputs pass. Evaluation errors such as a
// cancelled context abort immediately.
func Apply(ctx context.Context, inputs ...Input) error {
	var errs ValidationErrors
	for _, in := range inputs {
		failure, err := Evaluate(ctx, in.Field, in.Value, in.Rules)
		if err != nil {
			return err
		}
		if failure != nil {
			errs.Add(*failure)
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

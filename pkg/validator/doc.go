// Package validator evaluates ordered rule lists against a single string
// value, the way an input field checks what the user typed.
//
// A Rule is a closed variant: Required fails on empty or whitespace-only
// input, Validator runs an arbitrary check that may block (a network lookup,
// for example) and reports failure by returning an error. Evaluate walks the
// rules in declared order and stops at the first failure, so the message a
// user sees is always the one of the first rule that did not pass.
//
// # Usage
//
//	rules := []validator.Rule{
//	    validator.Required{Message: "Email cannot be empty"},
//	    validator.Email("Invalid email address"),
//	}
//	failure, err := validator.Evaluate(ctx, "email", value, rules)
//	if err != nil {
//	    // misconfiguration or cancellation, not a verdict
//	}
//	if failure != nil {
//	    fmt.Println(failure.Message)
//	}
//
// # Error Handling
//
// Evaluate separates verdicts from errors. A failing rule yields a
// *ValidationError and a nil error. The error return carries ErrNoRules,
// ErrUnknownRule, ErrNilCheck or a context error. ValidationErrors aggregates
// several field failures into a single error value for form-level reporting.
//
// Checks may return a ValidationError to control the translation key that is
// attached to the failure; any other error is reported with its Error() text.
package validator

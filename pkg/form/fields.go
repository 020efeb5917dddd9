package form

import (
	"github.com/bootcamper/authkit/pkg/field"
	"github.com/bootcamper/authkit/pkg/messages"
	"github.com/bootcamper/authkit/pkg/validator"
)

// Field names.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// FieldSpec declares one input of the form: its rules, when it validates
// itself, and whether it only exists in register mode.
type FieldSpec struct {
	Name         string
	Label        string
	Secret       bool
	RegisterOnly bool
	Trigger      field.Trigger
	Rules        []validator.Rule
}

// DefaultFields returns the name, email and password inputs of the sign-in
// screen with the rules and messages of msgs.
func DefaultFields(msgs messages.Login) []FieldSpec {
	return []FieldSpec{
		{
			Name:         FieldName,
			Label:        msgs.NameLabel,
			RegisterOnly: true,
			Trigger:      field.TriggerBlur,
			Rules: []validator.Rule{
				validator.Required{Message: msgs.NameNotEmpty},
			},
		},
		{
			Name:    FieldEmail,
			Label:   msgs.EmailLabel,
			Trigger: field.TriggerChange,
			Rules: []validator.Rule{
				validator.Required{Message: msgs.EmailNotEmpty},
				validator.Email(msgs.EmailInvalid),
			},
		},
		{
			Name:    FieldPassword,
			Label:   msgs.PasswordLabel,
			Secret:  true,
			Trigger: field.TriggerChange,
			Rules: []validator.Rule{
				validator.Required{Message: msgs.PasswordNotEmpty},
				validator.StrongPassword(msgs.PasswordInvalid),
			},
		},
	}
}

package field

import (
	"errors"

	"github.com/bootcamper/authkit/pkg/validator"
)

var (
	// ErrNoRules is returned by New when the rule list is empty.
	ErrNoRules = validator.ErrNoRules

	// ErrUnknownTrigger is returned by ParseTrigger for an unsupported event name.
	ErrUnknownTrigger = errors.New("field: unknown validation trigger")
)

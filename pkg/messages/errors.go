package messages

import "errors"

var (
	ErrParseCatalog           = errors.New("messages: failed to parse catalog")
	ErrEmptyCatalog           = errors.New("messages: catalog has no languages")
	ErrMissingDefaultLanguage = errors.New("messages: catalog is missing the default language")
	ErrInvalidLanguage        = errors.New("messages: invalid language code")
)

package authapi

import "errors"

var (
	ErrMissingToken = errors.New("authapi: response does not contain a token")
	ErrNilDoer      = errors.New("authapi: nil request doer")
)

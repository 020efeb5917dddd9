package session

import "errors"

var (
	// ErrTokenNotFound indicates no token is stored under the key.
	ErrTokenNotFound = errors.New("session.token_not_found")

	// ErrEmptyToken indicates an attempt to store an empty token.
	ErrEmptyToken = errors.New("session.empty_token")

	// ErrNoStore indicates no store is configured.
	ErrNoStore = errors.New("session.no_store")
)

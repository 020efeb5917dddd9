package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidBaseURL  = errors.New("invalid API base URL")
	ErrEncodeRequest   = errors.New("failed to encode request")
	ErrDecodeResponse  = errors.New("failed to decode response")
	ErrRequestFailed   = errors.New("API request failed")
	ErrTimeout         = errors.New("API request timeout")
	ErrNoDefaultClient = errors.New("default API client is not configured")
)

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Temporary reports whether retrying the request may succeed.
func (e *APIError) Temporary() bool {
	switch e.StatusCode {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// IsAPIError reports whether err is or wraps an *APIError with one of the given
// status codes. With no codes, any APIError matches.
func IsAPIError(err error, codes ...int) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if len(codes) == 0 {
		return true
	}
	for _, code := range codes {
		if apiErr.StatusCode == code {
			return true
		}
	}
	return false
}

// ErrorMessage returns the text to show a user for err.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, ErrTimeout):
		return "The server took too long to respond"
	case errors.Is(err, ErrRequestFailed):
		return "Unable to reach the server"
	default:
		return err.Error()
	}
}

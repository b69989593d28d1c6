package api

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is an error response from the platform API. Message is the
// server's own message when one was present, otherwise a generic
// fallback keyed off the status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether err is an APIError caused by a missing
// or rejected bearer token.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}
	return false
}

// IsNotFound reports whether err is an APIError for a missing resource.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// UserMessage extracts a message suitable for showing to the admin.
// API errors surface the server's message; anything else (network
// failure, bad JSON) gets a generic fallback so internals don't leak
// into the page.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "something went wrong, please try again"
}

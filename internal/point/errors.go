package point

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the API could not be reached at all (DNS,
	// connect or timeout failure, as opposed to a rejection).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the API rejected the bearer token.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError carries the server-provided message of a non-success response.
// Callers that only care about the kind should match the wrapped sentinel
// with errors.Is; callers that print surface Message directly.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

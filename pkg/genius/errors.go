package genius

import (
	"errors"
	"fmt"
)

// HTTPError is returned when the HTTP layer answers with a status other
// than 200, for token and resource requests alike.
type HTTPError struct {
	StatusCode int    // HTTP status code
	URL        string // Requested URL, without query parameters added by the transport
}

// Error returns the error message.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("genius: http %d: %s", e.StatusCode, e.URL)
}

// Error represents a failure reported by the Genius API inside a
// successful HTTP response.
//
// The API wraps every payload in an envelope whose meta.status may differ
// from the HTTP status. Error carries that envelope status and message.
type Error struct {
	Status  int    // meta.status from the envelope
	URL     string // Full request URL
	Message string // meta.message from the envelope, may be empty
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("genius: error %d: %s", e.Status, e.URL)
	}
	return fmt.Sprintf("genius: error %d: %s: %s", e.Status, e.URL, e.Message)
}

// Is reports whether target is an *Error with the same status.
//
// This allows errors.Is(err, &genius.Error{Status: 404}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Status == t.Status
}

// Common envelope status codes.
const (
	StatusOK           = 200
	StatusUnauthorized = 401
	StatusForbidden    = 403
	StatusNotFound     = 404
)

// Predefined errors for common cases.
var (
	// ErrClosed is returned when a request is made on a closed transport.
	ErrClosed = errors.New("genius: transport closed")

	// ErrInvalidConfig is returned when client configuration is invalid.
	ErrInvalidConfig = errors.New("genius: invalid configuration")

	// ErrNoAccessToken is returned when the token endpoint answers 200
	// without an access_token.
	ErrNoAccessToken = errors.New("genius: token response has no access_token")
)

// IsNotFound reports whether err is an API or HTTP not-found failure.
func IsNotFound(err error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status == StatusNotFound
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == StatusNotFound
	}
	return false
}

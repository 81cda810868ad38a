package api

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError describes an HTTP error response from the backend. A request
// that produced no response at all (connection refused, timeout, DNS failure)
// never yields a StatusError; callers use errors.As to tell the two apart.
type StatusError struct {
	StatusCode  int
	Message     string
	FieldErrors map[string]string // keyed by UI field names
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.StatusCode)
}

// IsUnauthorized reports whether err is an HTTP 401 response.
func IsUnauthorized(err error) bool {
	return statusCode(err) == http.StatusUnauthorized
}

// IsConflict reports whether err is an HTTP 409 response.
func IsConflict(err error) bool {
	return statusCode(err) == http.StatusConflict
}

// IsNotFound reports whether err is an HTTP 404 response.
func IsNotFound(err error) bool {
	return statusCode(err) == http.StatusNotFound
}

// IsNoResponse reports whether err came from a request that received no HTTP
// response. Credential problems always arrive as a response, so the UI shows
// a connectivity message for these instead.
func IsNoResponse(err error) bool {
	if err == nil {
		return false
	}
	var se *StatusError
	return !errors.As(err, &se)
}

// FieldErrors extracts the per-field error map from a validation failure,
// or nil when err carries none.
func FieldErrors(err error) map[string]string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.FieldErrors
	}
	return nil
}

// ErrorMessage returns the backend-supplied message from an error response,
// or "" when there is none.
func ErrorMessage(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}

func statusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

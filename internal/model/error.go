// internal/model/error.go
package model

import (
	"errors"
	"fmt"
	"net/http"
)

// Application error classes. Service and importer code matches on these with
// errors.Is; the CLI maps them to exit messages.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("authentication required or expired")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("resource conflict")
	ErrInternalServer = errors.New("internal server error")
)

// APIError is a failure reported by the backend. Message is extracted from
// the JSON error body in priority order: "detail", then "error", then the
// raw body, then "HTTP Error: <status>".
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Unwrap maps the HTTP status onto the sentinel classes so callers can use
// errors.Is without caring about status codes.
func (e *APIError) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.Status == http.StatusForbidden:
		return ErrForbidden
	case e.Status == http.StatusNotFound:
		return ErrNotFound
	case e.Status == http.StatusConflict:
		return ErrConflict
	case e.Status == http.StatusBadRequest:
		return ErrInvalidInput
	case e.Status >= 500:
		return ErrInternalServer
	default:
		return nil
	}
}

// NewAPIError builds an APIError with the fallback message for the status.
func NewAPIError(status int, message string) *APIError {
	if message == "" {
		message = fmt.Sprintf("HTTP Error: %d", status)
	}
	return &APIError{Status: status, Message: message}
}

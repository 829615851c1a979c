package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized indicates that the current session token was rejected.
var ErrUnauthorized = errors.New("unauthorized")

// ErrServerStarting indicates the backend was unreachable twice in a row.
// The API runs on a scale-to-zero host; cold starts take tens of seconds.
var ErrServerStarting = errors.New("server is starting up, please try again in a few seconds")

// ErrRateLimited indicates the client-side throttle rejected the attempt
// before any request was sent.
var ErrRateLimited = errors.New("too many attempts, please wait a moment")

// HTTPError is returned when a request reached the server and came back with
// an error status. Message is the server's error field when present.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed (%d)", e.Status)
}

// NewHTTPError builds an HTTPError from a status code and optional server message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsuccessful is returned when the backend answers with success=false.
	ErrUnsuccessful = errors.New("backend: request unsuccessful")

	// ErrNotFound is returned for 404 responses; it matches ErrUnsuccessful.
	ErrNotFound = fmt.Errorf("%w: not found", ErrUnsuccessful)
)

// StatusError carries a non-2xx response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend: %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// APIError is a success=false answer; it matches ErrUnsuccessful.
type APIError struct {
	Method  string
	Path    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s %s: %s", ErrUnsuccessful, e.Method, e.Path, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnsuccessful
}

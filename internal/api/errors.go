package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized maps a 401; callers redirect to the login view.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrEventNotFound covers both a 404 and a success=false envelope.
	ErrEventNotFound = errors.New("event not found")
)

// APIError is any other non-2xx rejection, with the server's message when the
// payload carried one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

package client

import (
	"fmt"
	"strings"
)

// APIError is any non-2xx response other than 401, carrying the status
// code and the raw response body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return fmt.Sprintf("api error (%d): %s", e.Status, msg)
}

// AuthError is a 401 response, distinct from generic API errors so
// callers can suggest re-running login.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "authentication failed: invalid or missing token"
	}
	return "authentication failed: " + e.Message
}

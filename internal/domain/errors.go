package domain

import (
	"errors"
	"fmt"
)

// Login-time failures.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMalformedResponse  = errors.New("malformed server response")
)

// Request-time failures.
var (
	ErrNoCredential     = errors.New("no stored credential")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionExpired   = errors.New("session expired")
	ErrForbidden        = errors.New("forbidden")
	ErrUnreachable      = errors.New("server unreachable")
)

// ServerError carries a non-2xx status outside the 401/403 session paths,
// with the server-provided message when one was present.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error: status %d", e.Status)
	}
	return fmt.Sprintf("server error: status %d: %s", e.Status, e.Message)
}

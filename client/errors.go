package client

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

var (
	// ErrSessionExpired is returned once the wrapper has detected an
	// auth failure, cleared the session store and fired OnAuthFailure.
	ErrSessionExpired = errors.New("session expired, login required")
)

// APIError is any application-level failure the backend reports through
// its envelope, or a non-2xx response without one.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (%d)", e.Message, e.Code)
}

func isAuthFailure(code int) bool {
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}

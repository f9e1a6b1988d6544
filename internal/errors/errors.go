package errors

import (
	"errors"
	"fmt"
)

// Common error types for the admin console gateway
var (
	// Credential errors
	ErrNoCredential      = errors.New("no credential")
	ErrMalformedToken    = errors.New("malformed token")
	ErrCredentialExpired = errors.New("credential expired")

	// Session errors
	ErrLoginFailed       = errors.New("login failed")
	ErrSessionSuperseded = errors.New("session superseded")
	ErrSessionNotFound   = errors.New("session not found")

	// Backend errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrBackendUnavailable = errors.New("backend unavailable")

	// General errors
	ErrInternal = errors.New("internal error")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Package common contains shared sentinel errors and the validation error
// type used across CampusKart components. Callers should use errors.Is to
// match sentinels and errors.As to inspect validation failures.
package common

import (
	"errors"
	"fmt"
)

var (
	// Identity errors.
	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Session errors. ErrUnauthenticated means no active session;
	// ErrUnauthorized means the session user lacks the required role.
	ErrUnauthenticated = errors.New("not logged in")
	ErrUnauthorized    = errors.New("only sellers can post items")
)

// ValidationError reports a rejected input field. All validation happens
// before any mutation or persistence, so a returned ValidationError implies
// no state was changed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

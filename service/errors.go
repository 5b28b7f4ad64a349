package service

import (
	"errors"
	"fmt"

	"notes-app/store"
)

// Error kinds checked by the HTTP layer. Each maps to exactly one status
// code.
var (
	ErrDuplicateEmail     = store.ErrDuplicateEmail
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = store.ErrNotFound
	ErrForbidden          = errors.New("permission denied")
)

// ValidationError reports a rejected request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

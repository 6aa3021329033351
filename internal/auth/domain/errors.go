package domain

import (
	"fmt"

	"github.com/xenosis/employees/internal/errors"
)

// ForbiddenError reports that the caller's roles do not satisfy the policy for Operation.
type ForbiddenError struct {
	Operation Operation
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("access denied for operation %s", e.Operation)
}

// Unwrap returns errors.ErrForbidden.
func (e *ForbiddenError) Unwrap() error {
	return errors.ErrForbidden
}

// Authentication errors.
var (
	// ErrInvalidCredentials indicates an unknown email or a wrong password.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrNoPrincipal indicates a guarded call was made without an authenticated principal.
	ErrNoPrincipal = errors.Wrap(errors.ErrUnauthorized, "no authenticated principal")
)

package domain

import (
	"fmt"

	apperrors "github.com/xenosis/employees/internal/errors"
	appValidation "github.com/xenosis/employees/internal/validation"
)

// ValidationError lists every field invariant an input violated.
type ValidationError = appValidation.Error

// NotFoundError reports that no employee exists with ID.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("employee not found with id: %d", e.ID)
}

// Unwrap returns apperrors.ErrNotFound.
func (e *NotFoundError) Unwrap() error {
	return apperrors.ErrNotFound
}

// DuplicateEmailError reports that Email already belongs to another employee.
type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("email address already exists: %s", e.Email)
}

// Unwrap returns apperrors.ErrConflict.
func (e *DuplicateEmailError) Unwrap() error {
	return apperrors.ErrConflict
}

// ErrNotFound builds a NotFoundError for id.
func ErrNotFound(id int64) error {
	return &NotFoundError{ID: id}
}

// ErrDuplicateEmail builds a DuplicateEmailError for email.
func ErrDuplicateEmail(email string) error {
	return &DuplicateEmailError{Email: email}
}

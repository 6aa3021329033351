// Package errors defines the error kinds the employees service reports. Use
// cases wrap one of the sentinels below; transports classify with KindOf and
// never look at driver or library errors directly.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound: no employee with the requested id or email.
	ErrNotFound = errors.New("not found")

	// ErrConflict: the email is already registered to another employee.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput: one or more fields broke a validation rule.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized: no principal, or credentials did not verify.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden: the principal lacks a role the operation requires.
	ErrForbidden = errors.New("forbidden")
)

// Kind is the stable, client-facing classification of an error.
type Kind string

const (
	KindInvalidInput Kind = "validation_error"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindUnexpected   Kind = "internal_error"
)

// kinds is checked in order; the first sentinel found in the chain wins.
var kinds = []struct {
	sentinel error
	kind     Kind
}{
	{ErrInvalidInput, KindInvalidInput},
	{ErrNotFound, KindNotFound},
	{ErrConflict, KindConflict},
	{ErrUnauthorized, KindUnauthorized},
	{ErrForbidden, KindForbidden},
}

// KindOf classifies err. Errors that wrap none of the sentinels are unexpected.
func KindOf(err error) Kind {
	for _, k := range kinds {
		if errors.Is(err, k.sentinel) {
			return k.kind
		}
	}
	return KindUnexpected
}

// New creates an error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap prefixes err with message, keeping it matchable with Is and As.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is wraps errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

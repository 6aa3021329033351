// Package validation provides custom validation rules for the application.
package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"

	validation "github.com/jellydator/validation"
	"github.com/shopspring/decimal"

	apperrors "github.com/xenosis/employees/internal/errors"
)

var (
	// emailRegex is a basic email validation pattern
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// Error carries every field violation found while validating an input.
// It unwraps to apperrors.ErrInvalidInput.
type Error struct {
	Fields map[string]string
}

// Error renders the violations sorted by field name.
func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap returns apperrors.ErrInvalidInput.
func (e *Error) Unwrap() error {
	return apperrors.ErrInvalidInput
}

// WrapValidationError converts a jellydator validation result into *Error so
// that all field violations travel together. Non-field errors are wrapped as
// ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if apperrors.As(err, &fieldErrs) {
		fields := make(map[string]string, len(fieldErrs))
		for name, fieldErr := range fieldErrs {
			if fieldErr != nil {
				fields[name] = fieldErr.Error()
			}
		}
		if len(fields) == 0 {
			return nil
		}
		return &Error{Fields: fields}
	}

	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// PasswordStrength validates password meets minimum security requirements
type PasswordStrength struct {
	MinLength      int
	RequireUpper   bool
	RequireLower   bool
	RequireNumber  bool
	RequireSpecial bool
}

// Validate checks if the password meets the configured requirements
func (p PasswordStrength) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_password_strength", "password must be a string")
	}

	if len(s) < p.MinLength {
		return validation.NewError(
			"validation_password_min_length",
			fmt.Sprintf("password must be at least %d characters", p.MinLength),
		)
	}

	if p.RequireUpper && !containsRune(s, unicode.IsUpper) {
		return validation.NewError(
			"validation_password_uppercase",
			"password must contain at least one uppercase letter",
		)
	}

	if p.RequireLower && !containsRune(s, unicode.IsLower) {
		return validation.NewError(
			"validation_password_lowercase",
			"password must contain at least one lowercase letter",
		)
	}

	if p.RequireNumber && !containsRune(s, unicode.IsNumber) {
		return validation.NewError("validation_password_number", "password must contain at least one number")
	}

	if p.RequireSpecial && !containsRune(s, isSpecial) {
		return validation.NewError(
			"validation_password_special",
			"password must contain at least one special character",
		)
	}

	return nil
}

func containsRune(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if pred(r) {
			return true
		}
	}
	return false
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// Email validates email format using regex
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		return emailRegex.MatchString(s)
	},
	validation.NewError("validation_email_format", "must be a valid email address"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// PastDate returns a rule requiring a time.Time strictly before the calendar
// day of now(). Zero times are left to validation.Required.
func PastDate(now func() time.Time) validation.Rule {
	return validation.By(func(value interface{}) error {
		t, ok := value.(time.Time)
		if !ok {
			return validation.NewError("validation_past_date_type", "must be a date")
		}
		if t.IsZero() {
			return nil
		}
		y, m, d := now().UTC().Date()
		today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		if !t.UTC().Before(today) {
			return validation.NewError("validation_past_date", "must be in the past")
		}
		return nil
	})
}

// PositiveDecimal validates that a decimal.NullDecimal, when set, is greater than zero.
var PositiveDecimal = validation.By(func(value interface{}) error {
	d, ok := value.(decimal.NullDecimal)
	if !ok {
		return validation.NewError("validation_decimal_type", "must be a decimal")
	}
	if d.Valid && !d.Decimal.IsPositive() {
		return validation.NewError("validation_positive_decimal", "must be greater than zero")
	}
	return nil
})

// DecimalFits returns a rule requiring a set decimal.NullDecimal to be storable in a
// NUMERIC(precision, scale) column: at most scale fractional digits and at most
// precision-scale integer digits. Trailing fractional zeros are not counted.
func DecimalFits(precision, scale int32) validation.Rule {
	limit := decimal.New(1, precision-scale)
	return validation.By(func(value interface{}) error {
		d, ok := value.(decimal.NullDecimal)
		if !ok {
			return validation.NewError("validation_decimal_type", "must be a decimal")
		}
		if !d.Valid {
			return nil
		}
		if !d.Decimal.Equal(d.Decimal.Round(scale)) {
			return validation.NewError(
				"validation_decimal_scale",
				fmt.Sprintf("must have at most %d decimal places", scale),
			)
		}
		if d.Decimal.Abs().GreaterThanOrEqual(limit) {
			return validation.NewError(
				"validation_decimal_precision",
				fmt.Sprintf("must be less than %s", limit.String()),
			)
		}
		return nil
	})
}

// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xenosis/employees/internal/employee/domain"
	appValidation "github.com/xenosis/employees/internal/validation"
)

// DateLayout is the calendar-date format used for dateOfBirth on the wire.
const DateLayout = time.DateOnly

// EmployeeRequest is the body of create and full-replace update requests.
// Every field must be sent on update, password included.
type EmployeeRequest struct {
	Firstname      string              `json:"firstname"`
	Lastname       string              `json:"lastname"`
	Email          string              `json:"email"`
	Password       string              `json:"password"` //nolint:gosec // inbound credential
	DateOfBirth    string              `json:"dateOfBirth"`
	Department     string              `json:"department"`
	Salary         decimal.NullDecimal `json:"salary"`
	AttendanceDays *int                `json:"attendanceDays"`
	Roles          []string            `json:"roles"`
}

// ToInput converts the request into the use case input. Only wire-format
// problems are reported here; field rules are enforced by the use case.
func (r *EmployeeRequest) ToInput() (domain.EmployeeInput, error) {
	input := domain.EmployeeInput{
		Firstname:      r.Firstname,
		Lastname:       r.Lastname,
		Email:          r.Email,
		Password:       r.Password,
		Department:     r.Department,
		Salary:         r.Salary,
		AttendanceDays: r.AttendanceDays,
	}

	if dob := strings.TrimSpace(r.DateOfBirth); dob != "" {
		parsed, err := time.Parse(DateLayout, dob)
		if err != nil {
			return domain.EmployeeInput{}, &appValidation.Error{Fields: map[string]string{
				"dateOfBirth": "must be a date in YYYY-MM-DD format",
			}}
		}
		input.DateOfBirth = parsed
	}

	if r.Roles != nil {
		input.Roles = make([]domain.Role, 0, len(r.Roles))
		for _, name := range r.Roles {
			// Unknown names pass through so validation reports them.
			role, _ := domain.ParseRole(name)
			input.Roles = append(input.Roles, role)
		}
	}

	return input, nil
}

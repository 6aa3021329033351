package dto

import (
	"github.com/shopspring/decimal"

	"github.com/xenosis/employees/internal/employee/domain"
)

// EmployeeResponse represents an employee in API responses. The credential
// hash is never exposed.
type EmployeeResponse struct {
	ID             int64               `json:"id"`
	Firstname      string              `json:"firstname"`
	Lastname       string              `json:"lastname"`
	Email          string              `json:"email"`
	DateOfBirth    string              `json:"dateOfBirth"`
	Department     string              `json:"department"`
	Salary         decimal.NullDecimal `json:"salary"`
	AttendanceDays *int                `json:"attendanceDays"`
	Roles          []string            `json:"roles"`
}

// MapEmployeeToResponse converts a domain employee to an API response.
func MapEmployeeToResponse(employee *domain.Employee) EmployeeResponse {
	roles := make([]string, 0, len(employee.Roles))
	for _, r := range employee.Roles {
		roles = append(roles, string(r))
	}

	return EmployeeResponse{
		ID:             employee.ID,
		Firstname:      employee.Firstname,
		Lastname:       employee.Lastname,
		Email:          employee.Email,
		DateOfBirth:    employee.DateOfBirth.Format(DateLayout),
		Department:     employee.Department,
		Salary:         employee.Salary,
		AttendanceDays: employee.AttendanceDays,
		Roles:          roles,
	}
}

// MapEmployeesToResponse converts domain employees to API responses.
func MapEmployeesToResponse(employees []*domain.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, MapEmployeeToResponse(e))
	}
	return out
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

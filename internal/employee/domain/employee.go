// Package domain defines the employee aggregate, its role enumeration and the
// read-only report projections derived from it.
package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Role is a role tag granted to an employee.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleUser    Role = "USER"
	RoleManager Role = "MANAGER"
	RoleHR      Role = "HR"
)

// AllRoles lists the closed role enumeration in declaration order.
var AllRoles = []Role{RoleAdmin, RoleUser, RoleManager, RoleHR}

// IsValid reports whether r belongs to the role enumeration.
func (r Role) IsValid() bool {
	return slices.Contains(AllRoles, r)
}

// ParseRole converts a case-insensitive role name into a Role.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	return r, r.IsValid()
}

// Employee is the aggregate root of the employee lifecycle.
type Employee struct {
	ID             int64
	Firstname      string
	Lastname       string
	Email          string
	CredentialHash string //nolint:gosec // one-way hash, never the raw password
	DateOfBirth    time.Time
	Department     string
	Salary         decimal.NullDecimal
	// AttendanceDays is nil only for rows written before the column became mandatory.
	AttendanceDays *int
	Roles          []Role
}

// FullName joins first and last name the way reports display it.
func (e *Employee) FullName() string {
	return e.Firstname + " " + e.Lastname
}

// HasRole reports whether the employee holds role.
func (e *Employee) HasRole(role Role) bool {
	return slices.Contains(e.Roles, role)
}

// Principal returns the narrow authenticatable view of the employee.
func (e *Employee) Principal() *Principal {
	return &Principal{
		ID:             e.ID,
		Email:          e.Email,
		CredentialHash: e.CredentialHash,
		Roles:          slices.Clone(e.Roles),
	}
}

// Principal is what the authentication layer knows about a caller: an
// identifier, the stored credential hash and the granted roles.
type Principal struct {
	ID             int64
	Email          string
	CredentialHash string //nolint:gosec // one-way hash
	Roles          []Role
}

// EmployeeInput carries every mutable field of an employee plus the raw
// password. Create and Update both take the full record; there is no partial update.
type EmployeeInput struct {
	Firstname      string              `json:"firstname"`
	Lastname       string              `json:"lastname"`
	Email          string              `json:"email"`
	Password       string              `json:"password"` //nolint:gosec // raw credential, hashed before persistence
	DateOfBirth    time.Time           `json:"dateOfBirth"`
	Department     string              `json:"department"`
	Salary         decimal.NullDecimal `json:"salary"`
	AttendanceDays *int                `json:"attendanceDays"`
	Roles          []Role              `json:"roles"`
}

// NormalizedEmail returns the email the store indexes on.
func NormalizedEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Apply overwrites every mutable field of e with the input values. The
// credential hash is set separately by the caller once the password is hashed.
func (e *Employee) Apply(input EmployeeInput) {
	e.Firstname = strings.TrimSpace(input.Firstname)
	e.Lastname = strings.TrimSpace(input.Lastname)
	e.Email = NormalizedEmail(input.Email)
	e.DateOfBirth = input.DateOfBirth
	e.Department = strings.TrimSpace(input.Department)
	e.Salary = input.Salary
	e.AttendanceDays = input.AttendanceDays
	e.Roles = dedupeRoles(input.Roles)
}

func dedupeRoles(roles []Role) []Role {
	out := make([]Role, 0, len(roles))
	for _, r := range roles {
		if !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}

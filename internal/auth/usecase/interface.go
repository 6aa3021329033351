// Package usecase implements caller authentication: resolving HTTP Basic
// credentials into an employee principal.
package usecase

import (
	"context"

	employeeDomain "github.com/xenosis/employees/internal/employee/domain"
)

// EmployeeLookup finds employees by their normalized email. Employee
// repositories satisfy it.
type EmployeeLookup interface {
	FindByEmail(ctx context.Context, email string) (*employeeDomain.Employee, error)
}

// CredentialVerifier checks a raw password against a stored hash.
type CredentialVerifier interface {
	Verify(raw, hash string) bool
}

// AuthenticationUseCase resolves credentials into a principal.
type AuthenticationUseCase interface {
	// Authenticate returns the principal owning email when password matches.
	// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (*employeeDomain.Principal, error)
}

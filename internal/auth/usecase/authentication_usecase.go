package usecase

import (
	"context"

	authDomain "github.com/xenosis/employees/internal/auth/domain"
	employeeDomain "github.com/xenosis/employees/internal/employee/domain"
	apperrors "github.com/xenosis/employees/internal/errors"
)

// authenticationUseCase implements AuthenticationUseCase.
type authenticationUseCase struct {
	lookup   EmployeeLookup
	verifier CredentialVerifier
	// dummyHash is verified against when the email is unknown so both failure
	// paths spend the same hashing time.
	dummyHash string
}

// NewAuthenticationUseCase creates a new AuthenticationUseCase. dummyHash must
// be a valid hash produced by the configured hasher.
func NewAuthenticationUseCase(
	lookup EmployeeLookup,
	verifier CredentialVerifier,
	dummyHash string,
) AuthenticationUseCase {
	return &authenticationUseCase{
		lookup:    lookup,
		verifier:  verifier,
		dummyHash: dummyHash,
	}
}

// Authenticate verifies email and password and returns the matching principal.
func (uc *authenticationUseCase) Authenticate(
	ctx context.Context,
	email, password string,
) (*employeeDomain.Principal, error) {
	if email == "" || password == "" {
		return nil, authDomain.ErrInvalidCredentials
	}

	employee, err := uc.lookup.FindByEmail(ctx, employeeDomain.NormalizedEmail(email))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			_ = uc.verifier.Verify(password, uc.dummyHash)
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(err, "failed to look up principal")
	}

	if !uc.verifier.Verify(password, employee.CredentialHash) {
		return nil, authDomain.ErrInvalidCredentials
	}

	return employee.Principal(), nil
}

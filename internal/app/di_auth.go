package app

import (
	"fmt"

	authUseCase "github.com/xenosis/employees/internal/auth/usecase"
)

// dummyPassword is hashed once at startup; authentication of unknown emails is
// verified against that hash.
const dummyPassword = "Dummy-Password-1" //nolint:gosec // never a real credential

// AuthenticationUseCase returns the HTTP Basic authentication use case.
func (c *Container) AuthenticationUseCase() (authUseCase.AuthenticationUseCase, error) {
	err := c.lazy(&c.authenticationUseCaseInit, "authenticationUseCase", func() error {
		repo, err := c.EmployeeRepository()
		if err != nil {
			return fmt.Errorf("failed to get employee repository for authentication: %w", err)
		}
		hasher, err := c.CredentialHasher()
		if err != nil {
			return fmt.Errorf("failed to get credential hasher for authentication: %w", err)
		}
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return fmt.Errorf("failed to get business metrics for authentication: %w", err)
		}

		dummyHash, err := hasher.Hash(dummyPassword)
		if err != nil {
			return fmt.Errorf("failed to hash dummy credential: %w", err)
		}

		useCase := authUseCase.NewAuthenticationUseCase(repo, hasher, dummyHash)
		c.authenticationUseCase = authUseCase.NewAuthenticationUseCaseWithMetrics(useCase, businessMetrics)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.authenticationUseCase, nil
}

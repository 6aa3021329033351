package app

import (
	"fmt"

	authDomain "github.com/xenosis/employees/internal/auth/domain"
	authService "github.com/xenosis/employees/internal/auth/service"
	"github.com/xenosis/employees/internal/database"
	employeeHTTP "github.com/xenosis/employees/internal/employee/http"
	employeeRepository "github.com/xenosis/employees/internal/employee/repository"
	employeeUseCase "github.com/xenosis/employees/internal/employee/usecase"
)

// CredentialHasher returns the password hasher selected by configuration.
func (c *Container) CredentialHasher() (authService.CredentialHasher, error) {
	err := c.lazy(&c.credentialHasherInit, "credentialHasher", func() error {
		hasher, err := authService.NewCredentialHasher(authService.Config{
			Algorithm:  authService.Algorithm(c.config.CredentialHashAlgorithm),
			Policy:     c.config.CredentialHashPolicy,
			BcryptCost: c.config.BcryptCost,
		})
		if err != nil {
			return fmt.Errorf("failed to create credential hasher: %w", err)
		}
		c.credentialHasher = hasher
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.credentialHasher, nil
}

// EmployeeRepository returns the employee store for the configured driver.
func (c *Container) EmployeeRepository() (employeeUseCase.EmployeeRepository, error) {
	err := c.lazy(&c.employeeRepositoryInit, "employeeRepository", func() error {
		db, err := c.DB()
		if err != nil {
			return fmt.Errorf("failed to get database for employee repository: %w", err)
		}

		switch c.config.DBDriver {
		case database.DriverMySQL:
			c.employeeRepository = employeeRepository.NewMySQLEmployeeRepository(db)
		case database.DriverPostgres:
			c.employeeRepository = employeeRepository.NewPostgreSQLEmployeeRepository(db)
		default:
			return fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.employeeRepository, nil
}

// EmployeeUseCase returns the employee lifecycle use case with metrics but
// without the authorization gate. Only trusted callers such as the
// create-employee command use it directly.
func (c *Container) EmployeeUseCase() (employeeUseCase.EmployeeUseCase, error) {
	err := c.lazy(&c.employeeUseCaseInit, "employeeUseCase", func() error {
		txManager, err := c.TxManager()
		if err != nil {
			return fmt.Errorf("failed to get tx manager for employee use case: %w", err)
		}
		repo, err := c.EmployeeRepository()
		if err != nil {
			return fmt.Errorf("failed to get employee repository for employee use case: %w", err)
		}
		hasher, err := c.CredentialHasher()
		if err != nil {
			return fmt.Errorf("failed to get credential hasher for employee use case: %w", err)
		}
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return fmt.Errorf("failed to get business metrics for employee use case: %w", err)
		}

		useCase := employeeUseCase.NewEmployeeUseCase(txManager, repo, hasher)
		c.employeeUseCase = employeeUseCase.NewEmployeeUseCaseWithMetrics(useCase, businessMetrics)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.employeeUseCase, nil
}

// GuardedEmployeeUseCase returns the employee use case behind the role policy.
// HTTP handlers use this one.
func (c *Container) GuardedEmployeeUseCase() (employeeUseCase.EmployeeUseCase, error) {
	err := c.lazy(&c.guardedEmployeeUCInit, "guardedEmployeeUseCase", func() error {
		useCase, err := c.EmployeeUseCase()
		if err != nil {
			return err
		}
		c.guardedEmployeeUC = employeeUseCase.NewEmployeeUseCaseWithAuthorization(
			useCase,
			authDomain.DefaultPolicy(),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.guardedEmployeeUC, nil
}

// ReportingUseCase returns the guarded reporting use case.
func (c *Container) ReportingUseCase() (employeeUseCase.ReportingUseCase, error) {
	err := c.lazy(&c.reportingUseCaseInit, "reportingUseCase", func() error {
		repo, err := c.EmployeeRepository()
		if err != nil {
			return fmt.Errorf("failed to get employee repository for reporting use case: %w", err)
		}
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return fmt.Errorf("failed to get business metrics for reporting use case: %w", err)
		}

		useCase := employeeUseCase.NewReportingUseCase(repo)
		useCase = employeeUseCase.NewReportingUseCaseWithMetrics(useCase, businessMetrics)
		c.reportingUseCase = employeeUseCase.NewReportingUseCaseWithAuthorization(
			useCase,
			authDomain.DefaultPolicy(),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.reportingUseCase, nil
}

// EmployeeHandler returns the HTTP handler for employee routes.
func (c *Container) EmployeeHandler() (*employeeHTTP.EmployeeHandler, error) {
	err := c.lazy(&c.employeeHandlerInit, "employeeHandler", func() error {
		useCase, err := c.GuardedEmployeeUseCase()
		if err != nil {
			return fmt.Errorf("failed to get employee use case for handler: %w", err)
		}
		c.employeeHandler = employeeHTTP.NewEmployeeHandler(useCase, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.employeeHandler, nil
}

// ReportHandler returns the HTTP handler for report routes.
func (c *Container) ReportHandler() (*employeeHTTP.ReportHandler, error) {
	err := c.lazy(&c.reportHandlerInit, "reportHandler", func() error {
		useCase, err := c.ReportingUseCase()
		if err != nil {
			return fmt.Errorf("failed to get reporting use case for handler: %w", err)
		}
		c.reportHandler = employeeHTTP.NewReportHandler(useCase, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.reportHandler, nil
}

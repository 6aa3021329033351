// Package usecase implements the employee lifecycle and reporting business
// logic on top of an EmployeeRepository.
package usecase

import (
	"context"

	"github.com/xenosis/employees/internal/employee/domain"
)

// EmployeeRepository defines the persistence operations the use cases need.
// Implementations return *domain.NotFoundError and *domain.DuplicateEmailError
// for the corresponding storage conditions.
type EmployeeRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Employee, error)
	FindByEmail(ctx context.Context, email string) (*domain.Employee, error)
	FindAll(ctx context.Context) ([]*domain.Employee, error)
	// Save inserts the employee when ID is zero and assigns the generated id,
	// otherwise it replaces the stored record.
	Save(ctx context.Context, employee *domain.Employee) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
	DepartmentCounts(ctx context.Context) ([]domain.DepartmentCount, error)
}

// CredentialHasher hashes and verifies raw passwords.
type CredentialHasher interface {
	Hash(raw string) (string, error)
	Verify(raw, hash string) bool
}

// EmployeeUseCase defines the employee lifecycle operations.
type EmployeeUseCase interface {
	Create(ctx context.Context, input domain.EmployeeInput) (*domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	// Update replaces every mutable field, including the password.
	Update(ctx context.Context, id int64, input domain.EmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

// ReportingUseCase defines the read-only aggregate views over all employees.
type ReportingUseCase interface {
	AttendanceReport(ctx context.Context) ([]domain.AttendanceRecord, error)
	SalaryReport(ctx context.Context) ([]domain.SalaryRecord, error)
	DepartmentHeadcount(ctx context.Context) ([]domain.DepartmentCount, error)
}

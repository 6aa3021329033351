// Package mocks provides mock implementations of the employee use case
// interfaces for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/xenosis/employees/internal/employee/domain"
)

// MockTxManager is a mock implementation of database.TxManager. Unless an
// error is configured, it runs fn directly.
type MockTxManager struct {
	mock.Mock
}

// WithTx mocks the WithTx method of TxManager.
func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Get(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}

// MockEmployeeRepository is a mock implementation of EmployeeRepository.
type MockEmployeeRepository struct {
	mock.Mock
}

// FindByID mocks the FindByID method of EmployeeRepository.
func (m *MockEmployeeRepository) FindByID(ctx context.Context, id int64) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

// FindByEmail mocks the FindByEmail method of EmployeeRepository.
func (m *MockEmployeeRepository) FindByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

// FindAll mocks the FindAll method of EmployeeRepository.
func (m *MockEmployeeRepository) FindAll(ctx context.Context) ([]*domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Employee), args.Error(1)
}

// Save mocks the Save method of EmployeeRepository.
func (m *MockEmployeeRepository) Save(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

// ExistsByID mocks the ExistsByID method of EmployeeRepository.
func (m *MockEmployeeRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// DeleteByID mocks the DeleteByID method of EmployeeRepository.
func (m *MockEmployeeRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// DepartmentCounts mocks the DepartmentCounts method of EmployeeRepository.
func (m *MockEmployeeRepository) DepartmentCounts(ctx context.Context) ([]domain.DepartmentCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DepartmentCount), args.Error(1)
}

// MockCredentialHasher is a mock implementation of CredentialHasher.
type MockCredentialHasher struct {
	mock.Mock
}

// Hash mocks the Hash method of CredentialHasher.
func (m *MockCredentialHasher) Hash(raw string) (string, error) {
	args := m.Called(raw)
	return args.String(0), args.Error(1)
}

// Verify mocks the Verify method of CredentialHasher.
func (m *MockCredentialHasher) Verify(raw, hash string) bool {
	args := m.Called(raw, hash)
	return args.Bool(0)
}

// MockEmployeeUseCase is a mock implementation of EmployeeUseCase.
type MockEmployeeUseCase struct {
	mock.Mock
}

// Create mocks the Create method of EmployeeUseCase.
func (m *MockEmployeeUseCase) Create(ctx context.Context, input domain.EmployeeInput) (*domain.Employee, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

// GetByID mocks the GetByID method of EmployeeUseCase.
func (m *MockEmployeeUseCase) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

// List mocks the List method of EmployeeUseCase.
func (m *MockEmployeeUseCase) List(ctx context.Context) ([]*domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Employee), args.Error(1)
}

// Update mocks the Update method of EmployeeUseCase.
func (m *MockEmployeeUseCase) Update(
	ctx context.Context,
	id int64,
	input domain.EmployeeInput,
) (*domain.Employee, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

// Delete mocks the Delete method of EmployeeUseCase.
func (m *MockEmployeeUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockReportingUseCase is a mock implementation of ReportingUseCase.
type MockReportingUseCase struct {
	mock.Mock
}

// AttendanceReport mocks the AttendanceReport method of ReportingUseCase.
func (m *MockReportingUseCase) AttendanceReport(ctx context.Context) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceRecord), args.Error(1)
}

// SalaryReport mocks the SalaryReport method of ReportingUseCase.
func (m *MockReportingUseCase) SalaryReport(ctx context.Context) ([]domain.SalaryRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalaryRecord), args.Error(1)
}

// DepartmentHeadcount mocks the DepartmentHeadcount method of ReportingUseCase.
func (m *MockReportingUseCase) DepartmentHeadcount(ctx context.Context) ([]domain.DepartmentCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DepartmentCount), args.Error(1)
}

package usecase

import (
	"context"

	authDomain "github.com/xenosis/employees/internal/auth/domain"
	"github.com/xenosis/employees/internal/employee/domain"
)

// authorize checks the principal stored in ctx against policy for op.
func authorize(ctx context.Context, policy authDomain.Policy, op authDomain.Operation) error {
	principal, ok := authDomain.PrincipalFromContext(ctx)
	if !ok {
		return authDomain.ErrNoPrincipal
	}
	if !policy.Authorize(principal.Roles, op) {
		return &authDomain.ForbiddenError{Operation: op}
	}
	return nil
}

// employeeUseCaseWithAuthorization guards EmployeeUseCase with the role policy.
type employeeUseCaseWithAuthorization struct {
	next   EmployeeUseCase
	policy authDomain.Policy
}

// NewEmployeeUseCaseWithAuthorization wraps an EmployeeUseCase so that every
// call is checked against policy before it reaches the store.
func NewEmployeeUseCaseWithAuthorization(useCase EmployeeUseCase, policy authDomain.Policy) EmployeeUseCase {
	return &employeeUseCaseWithAuthorization{
		next:   useCase,
		policy: policy,
	}
}

func (e *employeeUseCaseWithAuthorization) Create(
	ctx context.Context,
	input domain.EmployeeInput,
) (*domain.Employee, error) {
	if err := authorize(ctx, e.policy, authDomain.CreateEmployee); err != nil {
		return nil, err
	}
	return e.next.Create(ctx, input)
}

func (e *employeeUseCaseWithAuthorization) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	if err := authorize(ctx, e.policy, authDomain.RetrieveByID); err != nil {
		return nil, err
	}
	return e.next.GetByID(ctx, id)
}

func (e *employeeUseCaseWithAuthorization) List(ctx context.Context) ([]*domain.Employee, error) {
	if err := authorize(ctx, e.policy, authDomain.RetrieveAll); err != nil {
		return nil, err
	}
	return e.next.List(ctx)
}

func (e *employeeUseCaseWithAuthorization) Update(
	ctx context.Context,
	id int64,
	input domain.EmployeeInput,
) (*domain.Employee, error) {
	if err := authorize(ctx, e.policy, authDomain.UpdateByID); err != nil {
		return nil, err
	}
	return e.next.Update(ctx, id, input)
}

func (e *employeeUseCaseWithAuthorization) Delete(ctx context.Context, id int64) error {
	if err := authorize(ctx, e.policy, authDomain.DeleteByID); err != nil {
		return err
	}
	return e.next.Delete(ctx, id)
}

// reportingUseCaseWithAuthorization guards ReportingUseCase with the role policy.
type reportingUseCaseWithAuthorization struct {
	next   ReportingUseCase
	policy authDomain.Policy
}

// NewReportingUseCaseWithAuthorization wraps a ReportingUseCase with the role policy.
func NewReportingUseCaseWithAuthorization(useCase ReportingUseCase, policy authDomain.Policy) ReportingUseCase {
	return &reportingUseCaseWithAuthorization{
		next:   useCase,
		policy: policy,
	}
}

func (r *reportingUseCaseWithAuthorization) AttendanceReport(
	ctx context.Context,
) ([]domain.AttendanceRecord, error) {
	if err := authorize(ctx, r.policy, authDomain.AttendanceReport); err != nil {
		return nil, err
	}
	return r.next.AttendanceReport(ctx)
}

func (r *reportingUseCaseWithAuthorization) SalaryReport(ctx context.Context) ([]domain.SalaryRecord, error) {
	if err := authorize(ctx, r.policy, authDomain.SalaryReport); err != nil {
		return nil, err
	}
	return r.next.SalaryReport(ctx)
}

func (r *reportingUseCaseWithAuthorization) DepartmentHeadcount(
	ctx context.Context,
) ([]domain.DepartmentCount, error) {
	if err := authorize(ctx, r.policy, authDomain.DepartmentHeadcount); err != nil {
		return nil, err
	}
	return r.next.DepartmentHeadcount(ctx)
}

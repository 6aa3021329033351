package usecase

import (
	"context"
	"time"

	"github.com/xenosis/employees/internal/employee/domain"
	"github.com/xenosis/employees/internal/metrics"
)

const metricsDomain = "employees"

// employeeUseCaseWithMetrics decorates EmployeeUseCase with metrics instrumentation.
type employeeUseCaseWithMetrics struct {
	next    EmployeeUseCase
	metrics metrics.BusinessMetrics
}

// NewEmployeeUseCaseWithMetrics wraps an EmployeeUseCase with metrics recording.
func NewEmployeeUseCaseWithMetrics(useCase EmployeeUseCase, m metrics.BusinessMetrics) EmployeeUseCase {
	return &employeeUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (e *employeeUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	metrics.Observe(ctx, e.metrics, metricsDomain, operation, start, err)
}

// Create records metrics for employee creation.
func (e *employeeUseCaseWithMetrics) Create(
	ctx context.Context,
	input domain.EmployeeInput,
) (*domain.Employee, error) {
	start := time.Now()
	employee, err := e.next.Create(ctx, input)
	e.record(ctx, "employee_create", start, err)
	return employee, err
}

// GetByID records metrics for employee retrieval.
func (e *employeeUseCaseWithMetrics) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	start := time.Now()
	employee, err := e.next.GetByID(ctx, id)
	e.record(ctx, "employee_get", start, err)
	return employee, err
}

// List records metrics for employee listing.
func (e *employeeUseCaseWithMetrics) List(ctx context.Context) ([]*domain.Employee, error) {
	start := time.Now()
	employees, err := e.next.List(ctx)
	e.record(ctx, "employee_list", start, err)
	return employees, err
}

// Update records metrics for employee replacement.
func (e *employeeUseCaseWithMetrics) Update(
	ctx context.Context,
	id int64,
	input domain.EmployeeInput,
) (*domain.Employee, error) {
	start := time.Now()
	employee, err := e.next.Update(ctx, id, input)
	e.record(ctx, "employee_update", start, err)
	return employee, err
}

// Delete records metrics for employee deletion.
func (e *employeeUseCaseWithMetrics) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := e.next.Delete(ctx, id)
	e.record(ctx, "employee_delete", start, err)
	return err
}

// reportingUseCaseWithMetrics decorates ReportingUseCase with metrics instrumentation.
type reportingUseCaseWithMetrics struct {
	next    ReportingUseCase
	metrics metrics.BusinessMetrics
}

// NewReportingUseCaseWithMetrics wraps a ReportingUseCase with metrics recording.
func NewReportingUseCaseWithMetrics(useCase ReportingUseCase, m metrics.BusinessMetrics) ReportingUseCase {
	return &reportingUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (r *reportingUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	metrics.Observe(ctx, r.metrics, metricsDomain, operation, start, err)
}

func (r *reportingUseCaseWithMetrics) AttendanceReport(ctx context.Context) ([]domain.AttendanceRecord, error) {
	start := time.Now()
	records, err := r.next.AttendanceReport(ctx)
	r.record(ctx, "report_attendance", start, err)
	return records, err
}

func (r *reportingUseCaseWithMetrics) SalaryReport(ctx context.Context) ([]domain.SalaryRecord, error) {
	start := time.Now()
	records, err := r.next.SalaryReport(ctx)
	r.record(ctx, "report_salary", start, err)
	return records, err
}

func (r *reportingUseCaseWithMetrics) DepartmentHeadcount(ctx context.Context) ([]domain.DepartmentCount, error) {
	start := time.Now()
	counts, err := r.next.DepartmentHeadcount(ctx)
	r.record(ctx, "report_department_headcount", start, err)
	return counts, err
}

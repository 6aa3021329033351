package usecase

import (
	"cmp"
	"context"
	"slices"

	"github.com/xenosis/employees/internal/employee/domain"
)

// reportingUseCase implements ReportingUseCase.
type reportingUseCase struct {
	repo EmployeeRepository
}

// NewReportingUseCase creates a new ReportingUseCase.
func NewReportingUseCase(repo EmployeeRepository) ReportingUseCase {
	return &reportingUseCase{repo: repo}
}

// AttendanceReport lists employees with at least one day of attendance.
func (uc *reportingUseCase) AttendanceReport(ctx context.Context) ([]domain.AttendanceRecord, error) {
	employees, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]domain.AttendanceRecord, 0, len(employees))
	for _, e := range employees {
		if e.AttendanceDays == nil || *e.AttendanceDays <= 0 {
			continue
		}
		records = append(records, domain.AttendanceRecord{
			EmployeeID:     e.ID,
			FullName:       e.FullName(),
			AttendanceDays: *e.AttendanceDays,
		})
	}

	slices.SortFunc(records, func(a, b domain.AttendanceRecord) int {
		return cmp.Compare(a.EmployeeID, b.EmployeeID)
	})
	return records, nil
}

// SalaryReport lists employees with a positive salary on file.
func (uc *reportingUseCase) SalaryReport(ctx context.Context) ([]domain.SalaryRecord, error) {
	employees, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]domain.SalaryRecord, 0, len(employees))
	for _, e := range employees {
		if !e.Salary.Valid || !e.Salary.Decimal.IsPositive() {
			continue
		}
		records = append(records, domain.SalaryRecord{
			EmployeeID: e.ID,
			FullName:   e.FullName(),
			Salary:     e.Salary.Decimal,
		})
	}

	slices.SortFunc(records, func(a, b domain.SalaryRecord) int {
		return cmp.Compare(a.EmployeeID, b.EmployeeID)
	})
	return records, nil
}

// DepartmentHeadcount returns the number of employees per department, sorted
// by department name.
func (uc *reportingUseCase) DepartmentHeadcount(ctx context.Context) ([]domain.DepartmentCount, error) {
	counts, err := uc.repo.DepartmentCounts(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(counts, func(a, b domain.DepartmentCount) int {
		return cmp.Compare(a.Department, b.Department)
	})
	return counts, nil
}

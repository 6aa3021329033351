package dto

import (
	"github.com/shopspring/decimal"

	"github.com/xenosis/employees/internal/employee/domain"
)

// AttendanceReportResponse is one row of the attendance report.
type AttendanceReportResponse struct {
	EmployeeID     int64  `json:"employeeId"`
	EmployeeName   string `json:"employeeName"`
	AttendanceDays int    `json:"attendanceDays"`
}

// SalaryReportResponse is one row of the salary report.
type SalaryReportResponse struct {
	EmployeeID   int64           `json:"employeeId"`
	EmployeeName string          `json:"employeeName"`
	Salary       decimal.Decimal `json:"salary"`
}

// DepartmentReportResponse is the headcount of one department.
type DepartmentReportResponse struct {
	Department     string `json:"department"`
	TotalEmployees int64  `json:"totalEmployees"`
}

// MapAttendanceReport converts attendance records to API responses.
func MapAttendanceReport(records []domain.AttendanceRecord) []AttendanceReportResponse {
	out := make([]AttendanceReportResponse, 0, len(records))
	for _, r := range records {
		out = append(out, AttendanceReportResponse{
			EmployeeID:     r.EmployeeID,
			EmployeeName:   r.FullName,
			AttendanceDays: r.AttendanceDays,
		})
	}
	return out
}

// MapSalaryReport converts salary records to API responses.
func MapSalaryReport(records []domain.SalaryRecord) []SalaryReportResponse {
	out := make([]SalaryReportResponse, 0, len(records))
	for _, r := range records {
		out = append(out, SalaryReportResponse{
			EmployeeID:   r.EmployeeID,
			EmployeeName: r.FullName,
			Salary:       r.Salary,
		})
	}
	return out
}

// MapDepartmentReport converts department counts to API responses.
func MapDepartmentReport(counts []domain.DepartmentCount) []DepartmentReportResponse {
	out := make([]DepartmentReportResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, DepartmentReportResponse{
			Department:     c.Department,
			TotalEmployees: c.Count,
		})
	}
	return out
}

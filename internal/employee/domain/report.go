package domain

import "github.com/shopspring/decimal"

// AttendanceRecord is one row of the attendance report.
type AttendanceRecord struct {
	EmployeeID     int64
	FullName       string
	AttendanceDays int
}

// SalaryRecord is one row of the salary report.
type SalaryRecord struct {
	EmployeeID int64
	FullName   string
	Salary     decimal.Decimal
}

// DepartmentCount is the headcount of a single department.
type DepartmentCount struct {
	Department string
	Count      int64
}

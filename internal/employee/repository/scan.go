// Package repository provides PostgreSQL and MySQL persistence for employees.
//
// Employees live in the employees table; their roles are kept one per row in
// employee_roles, which cascades on employee deletion.
package repository

import (
	"context"
	"database/sql"

	"github.com/xenosis/employees/internal/database"
	"github.com/xenosis/employees/internal/employee/domain"
	apperrors "github.com/xenosis/employees/internal/errors"
)

const employeeColumns = `id, firstname, lastname, email, password, date_of_birth, department, salary, attendance_days`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (*domain.Employee, error) {
	var (
		employee   domain.Employee
		attendance sql.NullInt32
	)
	err := row.Scan(
		&employee.ID,
		&employee.Firstname,
		&employee.Lastname,
		&employee.Email,
		&employee.CredentialHash,
		&employee.DateOfBirth,
		&employee.Department,
		&employee.Salary,
		&attendance,
	)
	if err != nil {
		return nil, err
	}
	if attendance.Valid {
		days := int(attendance.Int32)
		employee.AttendanceDays = &days
	}
	return &employee, nil
}

func attendanceArg(days *int) any {
	if days == nil {
		return nil
	}
	return *days
}

func notFoundByEmail(email string) error {
	return apperrors.Wrapf(apperrors.ErrNotFound, "employee not found with email: %s", email)
}

// queryEmployees runs a multi-row employee select and closes the cursor.
func queryEmployees(ctx context.Context, querier database.Querier, query string, args ...any) ([]*domain.Employee, error) {
	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, rows.Err()
}

// queryRoles loads role rows as (employee_id, role) pairs grouped per employee.
func queryRoles(ctx context.Context, querier database.Querier, query string, args ...any) (map[int64][]domain.Role, error) {
	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	roles := make(map[int64][]domain.Role)
	for rows.Next() {
		var (
			employeeID int64
			role       string
		)
		if err := rows.Scan(&employeeID, &role); err != nil {
			return nil, err
		}
		roles[employeeID] = append(roles[employeeID], domain.Role(role))
	}
	return roles, rows.Err()
}

func queryDepartmentCounts(ctx context.Context, querier database.Querier) ([]domain.DepartmentCount, error) {
	rows, err := querier.QueryContext(ctx,
		`SELECT department, COUNT(*) FROM employees GROUP BY department ORDER BY department`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	counts := make([]domain.DepartmentCount, 0)
	for rows.Next() {
		var c domain.DepartmentCount
		if err := rows.Scan(&c.Department, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

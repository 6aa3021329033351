package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/xenosis/employees/internal/database"
	"github.com/xenosis/employees/internal/employee/domain"
	apperrors "github.com/xenosis/employees/internal/errors"
)

// PostgreSQLEmployeeRepository handles employee persistence for PostgreSQL.
type PostgreSQLEmployeeRepository struct {
	db *sql.DB
}

// NewPostgreSQLEmployeeRepository creates a new PostgreSQLEmployeeRepository.
func NewPostgreSQLEmployeeRepository(db *sql.DB) *PostgreSQLEmployeeRepository {
	return &PostgreSQLEmployeeRepository{
		db: db,
	}
}

// FindByID retrieves an employee and its roles by id.
func (r *PostgreSQLEmployeeRepository) FindByID(ctx context.Context, id int64) (*domain.Employee, error) {
	querier := database.GetTx(ctx, r.db)

	employee, err := scanEmployee(querier.QueryRowContext(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound(id)
		}
		return nil, apperrors.Wrap(err, "failed to get employee by id")
	}

	if err := r.loadRoles(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// FindByEmail retrieves an employee by its normalized email.
func (r *PostgreSQLEmployeeRepository) FindByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	querier := database.GetTx(ctx, r.db)

	employee, err := scanEmployee(querier.QueryRowContext(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFoundByEmail(email)
		}
		return nil, apperrors.Wrap(err, "failed to get employee by email")
	}

	if err := r.loadRoles(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// FindAll retrieves every employee ordered by id.
func (r *PostgreSQLEmployeeRepository) FindAll(ctx context.Context) ([]*domain.Employee, error) {
	querier := database.GetTx(ctx, r.db)

	employees, err := queryEmployees(ctx, querier, `SELECT `+employeeColumns+` FROM employees ORDER BY id`)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list employees")
	}
	if len(employees) == 0 {
		return employees, nil
	}

	roles, err := queryRoles(ctx, querier,
		`SELECT employee_id, role FROM employee_roles ORDER BY employee_id, role`)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list employee roles")
	}
	for _, employee := range employees {
		employee.Roles = roles[employee.ID]
	}
	return employees, nil
}

// Save inserts the employee when its ID is zero and replaces it otherwise.
// Roles are rewritten in both cases, so callers should run Save in a transaction.
func (r *PostgreSQLEmployeeRepository) Save(ctx context.Context, employee *domain.Employee) error {
	querier := database.GetTx(ctx, r.db)

	if employee.ID == 0 {
		query := `INSERT INTO employees
			(firstname, lastname, email, password, date_of_birth, department, salary, attendance_days, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
			RETURNING id`

		err := querier.QueryRowContext(ctx, query,
			employee.Firstname,
			employee.Lastname,
			employee.Email,
			employee.CredentialHash,
			employee.DateOfBirth,
			employee.Department,
			employee.Salary,
			attendanceArg(employee.AttendanceDays),
		).Scan(&employee.ID)
		if err != nil {
			if database.IsUniqueViolation(err) {
				return domain.ErrDuplicateEmail(employee.Email)
			}
			return apperrors.Wrap(err, "failed to create employee")
		}
	} else {
		query := `UPDATE employees
			SET firstname = $1, lastname = $2, email = $3, password = $4, date_of_birth = $5,
				department = $6, salary = $7, attendance_days = $8, updated_at = NOW()
			WHERE id = $9`

		result, err := querier.ExecContext(ctx, query,
			employee.Firstname,
			employee.Lastname,
			employee.Email,
			employee.CredentialHash,
			employee.DateOfBirth,
			employee.Department,
			employee.Salary,
			attendanceArg(employee.AttendanceDays),
			employee.ID,
		)
		if err != nil {
			if database.IsUniqueViolation(err) {
				return domain.ErrDuplicateEmail(employee.Email)
			}
			return apperrors.Wrap(err, "failed to update employee")
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return apperrors.Wrap(err, "failed to get rows affected")
		}
		if affected == 0 {
			return domain.ErrNotFound(employee.ID)
		}
	}

	return r.replaceRoles(ctx, querier, employee)
}

// ExistsByID reports whether an employee with id exists.
func (r *PostgreSQLEmployeeRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	querier := database.GetTx(ctx, r.db)

	var exists bool
	err := querier.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1)`, id).
		Scan(&exists)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to check employee existence")
	}
	return exists, nil
}

// DeleteByID removes the employee with id. Its roles go with it.
func (r *PostgreSQLEmployeeRepository) DeleteByID(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete employee")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if affected == 0 {
		return domain.ErrNotFound(id)
	}
	return nil
}

// DepartmentCounts returns the employee count of every non-empty department.
func (r *PostgreSQLEmployeeRepository) DepartmentCounts(ctx context.Context) ([]domain.DepartmentCount, error) {
	counts, err := queryDepartmentCounts(ctx, database.GetTx(ctx, r.db))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to count employees by department")
	}
	return counts, nil
}

func (r *PostgreSQLEmployeeRepository) loadRoles(ctx context.Context, employee *domain.Employee) error {
	roles, err := queryRoles(ctx, database.GetTx(ctx, r.db),
		`SELECT employee_id, role FROM employee_roles WHERE employee_id = $1 ORDER BY role`, employee.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to get employee roles")
	}
	employee.Roles = roles[employee.ID]
	return nil
}

func (r *PostgreSQLEmployeeRepository) replaceRoles(
	ctx context.Context,
	querier database.Querier,
	employee *domain.Employee,
) error {
	if _, err := querier.ExecContext(ctx,
		`DELETE FROM employee_roles WHERE employee_id = $1`, employee.ID); err != nil {
		return apperrors.Wrap(err, "failed to clear employee roles")
	}
	for _, role := range employee.Roles {
		if _, err := querier.ExecContext(ctx,
			`INSERT INTO employee_roles (employee_id, role) VALUES ($1, $2)`, employee.ID, string(role)); err != nil {
			return apperrors.Wrap(err, "failed to insert employee role")
		}
	}
	return nil
}

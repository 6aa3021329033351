package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenosis/employees/internal/employee/domain"
	apperrors "github.com/xenosis/employees/internal/errors"
)

var employeeRowColumns = []string{
	"id", "firstname", "lastname", "email", "password",
	"date_of_birth", "department", "salary", "attendance_days",
}

var dob = time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func harishRow(id int64, salary, attendance driver.Value) *sqlmock.Rows {
	return sqlmock.NewRows(employeeRowColumns).
		AddRow(id, "Harish", "Palaspagar", "h@x.com", "hash", dob, "HR", salary, attendance)
}

func newHarish() *domain.Employee {
	days := 25
	return &domain.Employee{
		Firstname:      "Harish",
		Lastname:       "Palaspagar",
		Email:          "h@x.com",
		CredentialHash: "hash",
		DateOfBirth:    dob,
		Department:     "HR",
		AttendanceDays: &days,
		Roles:          []domain.Role{domain.RoleUser, domain.RoleHR},
	}
}

func TestPostgreSQLEmployeeRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE id = $1")).
			WithArgs(int64(1)).
			WillReturnRows(harishRow(1, "4500.50", int64(25)))
		mock.ExpectQuery(regexp.QuoteMeta("FROM employee_roles WHERE employee_id = $1")).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"employee_id", "role"}).
				AddRow(int64(1), "HR").
				AddRow(int64(1), "USER"))

		employee, err := NewPostgreSQLEmployeeRepository(db).FindByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, int64(1), employee.ID)
		assert.Equal(t, "Harish", employee.Firstname)
		assert.Equal(t, dob, employee.DateOfBirth)
		assert.True(t, employee.Salary.Valid)
		assert.True(t, decimal.RequireFromString("4500.5").Equal(employee.Salary.Decimal))
		require.NotNil(t, employee.AttendanceDays)
		assert.Equal(t, 25, *employee.AttendanceDays)
		assert.Equal(t, []domain.Role{domain.RoleHR, domain.RoleUser}, employee.Roles)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_NullableColumns", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE id = $1")).
			WithArgs(int64(2)).
			WillReturnRows(harishRow(2, nil, nil))
		mock.ExpectQuery(regexp.QuoteMeta("FROM employee_roles")).
			WillReturnRows(sqlmock.NewRows([]string{"employee_id", "role"}))

		employee, err := NewPostgreSQLEmployeeRepository(db).FindByID(ctx, 2)

		require.NoError(t, err)
		assert.False(t, employee.Salary.Valid)
		assert.Nil(t, employee.AttendanceDays)
		assert.Empty(t, employee.Roles)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE id = $1")).
			WithArgs(int64(9)).
			WillReturnError(sql.ErrNoRows)

		employee, err := NewPostgreSQLEmployeeRepository(db).FindByID(ctx, 9)

		assert.Nil(t, employee)
		var notFound *domain.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, int64(9), notFound.ID)
	})

	t.Run("Error_Database", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE id = $1")).
			WillReturnError(sql.ErrConnDone)

		_, err := NewPostgreSQLEmployeeRepository(db).FindByID(ctx, 9)

		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.NotErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestPostgreSQLEmployeeRepository_FindByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE email = $1")).
			WithArgs("h@x.com").
			WillReturnRows(harishRow(1, nil, int64(25)))
		mock.ExpectQuery(regexp.QuoteMeta("FROM employee_roles WHERE employee_id = $1")).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"employee_id", "role"}).AddRow(int64(1), "ADMIN"))

		employee, err := NewPostgreSQLEmployeeRepository(db).FindByEmail(ctx, "h@x.com")

		require.NoError(t, err)
		assert.Equal(t, "hash", employee.CredentialHash)
		assert.True(t, employee.HasRole(domain.RoleAdmin))
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM employees WHERE email = $1")).
			WithArgs("nobody@x.com").
			WillReturnError(sql.ErrNoRows)

		_, err := NewPostgreSQLEmployeeRepository(db).FindByEmail(ctx, "nobody@x.com")

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestPostgreSQLEmployeeRepository_FindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_AttachesRoles", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM employees ORDER BY id")).
			WillReturnRows(sqlmock.NewRows(employeeRowColumns).
				AddRow(int64(1), "Ana", "A", "a@x.com", "h1", dob, "HR", nil, int64(3)).
				AddRow(int64(2), "Bia", "B", "b@x.com", "h2", dob, "IT", "100.00", nil))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT employee_id, role FROM employee_roles ORDER BY employee_id, role")).
			WillReturnRows(sqlmock.NewRows([]string{"employee_id", "role"}).
				AddRow(int64(1), "ADMIN").
				AddRow(int64(2), "MANAGER").
				AddRow(int64(2), "USER"))

		employees, err := NewPostgreSQLEmployeeRepository(db).FindAll(ctx)

		require.NoError(t, err)
		require.Len(t, employees, 2)
		assert.Equal(t, []domain.Role{domain.RoleAdmin}, employees[0].Roles)
		assert.Equal(t, []domain.Role{domain.RoleManager, domain.RoleUser}, employees[1].Roles)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_EmptySkipsRoleQuery", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM employees ORDER BY id")).
			WillReturnRows(sqlmock.NewRows(employeeRowColumns))

		employees, err := NewPostgreSQLEmployeeRepository(db).FindAll(ctx)

		require.NoError(t, err)
		assert.Empty(t, employees)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgreSQLEmployeeRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_InsertAssignsID", func(t *testing.T) {
		db, mock := newMock(t)
		employee := newHarish()

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO employees")).
			WithArgs("Harish", "Palaspagar", "h@x.com", "hash", dob, "HR", nil, int64(25)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM employee_roles WHERE employee_id = $1")).
			WithArgs(int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO employee_roles")).
			WithArgs(int64(42), "USER").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO employee_roles")).
			WithArgs(int64(42), "HR").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewPostgreSQLEmployeeRepository(db).Save(ctx, employee)

		require.NoError(t, err)
		assert.Equal(t, int64(42), employee.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_InsertUniqueViolation", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO employees")).
			WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

		err := NewPostgreSQLEmployeeRepository(db).Save(ctx, newHarish())

		var dupErr *domain.DuplicateEmailError
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, "h@x.com", dupErr.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_Update", func(t *testing.T) {
		db, mock := newMock(t)
		employee := newHarish()
		employee.ID = 7
		employee.Salary = decimal.NewNullDecimal(decimal.NewFromInt(3000))
		employee.Roles = []domain.Role{domain.RoleAdmin}

		mock.ExpectExec(regexp.QuoteMeta("UPDATE employees")).
			WithArgs("Harish", "Palaspagar", "h@x.com", "hash", dob, "HR", "3000", int64(25), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM employee_roles")).
			WithArgs(int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO employee_roles")).
			WithArgs(int64(7), "ADMIN").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewPostgreSQLEmployeeRepository(db).Save(ctx, employee)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_UpdateMissingRow", func(t *testing.T) {
		db, mock := newMock(t)
		employee := newHarish()
		employee.ID = 7

		mock.ExpectExec(regexp.QuoteMeta("UPDATE employees")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewPostgreSQLEmployeeRepository(db).Save(ctx, employee)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Error_UpdateUniqueViolation", func(t *testing.T) {
		db, mock := newMock(t)
		employee := newHarish()
		employee.ID = 7

		mock.ExpectExec(regexp.QuoteMeta("UPDATE employees")).
			WillReturnError(&pq.Error{Code: "23505"})

		err := NewPostgreSQLEmployeeRepository(db).Save(ctx, employee)

		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})
}

func TestPostgreSQLEmployeeRepository_ExistsByID(t *testing.T) {
	ctx := context.Background()
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1)")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1)")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	repo := NewPostgreSQLEmployeeRepository(db)

	exists, err := repo.ExistsByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByID(ctx, 2)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPostgreSQLEmployeeRepository_DeleteByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM employees WHERE id = $1")).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, NewPostgreSQLEmployeeRepository(db).DeleteByID(ctx, 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM employees WHERE id = $1")).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewPostgreSQLEmployeeRepository(db).DeleteByID(ctx, 1)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestPostgreSQLEmployeeRepository_DepartmentCounts(t *testing.T) {
	ctx := context.Background()
	db, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT department, COUNT(*) FROM employees GROUP BY department")).
		WillReturnRows(sqlmock.NewRows([]string{"department", "count"}).
			AddRow("Finance", int64(1)).
			AddRow("HR", int64(4)))

	counts, err := NewPostgreSQLEmployeeRepository(db).DepartmentCounts(ctx)

	require.NoError(t, err)
	assert.Equal(t, []domain.DepartmentCount{
		{Department: "Finance", Count: 1},
		{Department: "HR", Count: 4},
	}, counts)
}

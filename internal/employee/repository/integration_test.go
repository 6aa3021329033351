package repository

import (
	"context"
	"database/sql"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenosis/employees/internal/database"
	"github.com/xenosis/employees/internal/employee/domain"
	"github.com/xenosis/employees/internal/employee/usecase"
	apperrors "github.com/xenosis/employees/internal/errors"
	"github.com/xenosis/employees/internal/testutil"
)

func newRepository(driver string, db *sql.DB) usecase.EmployeeRepository {
	if driver == database.DriverMySQL {
		return NewMySQLEmployeeRepository(db)
	}
	return NewPostgreSQLEmployeeRepository(db)
}

// TestEmployeeRepository_Integration runs the store contract against real
// databases. It is skipped when they are not reachable.
func TestEmployeeRepository_Integration(t *testing.T) {
	for _, driver := range []string{database.DriverPostgres, database.DriverMySQL} {
		t.Run(driver, func(t *testing.T) {
			testutil.SkipIfNoDB(t, driver)
			db := testutil.SetupDB(t, driver)
			repo := newRepository(driver, db)
			txManager := database.NewTxManager(db)
			ctx := context.Background()

			harish := newHarish()
			harish.Salary = decimal.NewNullDecimal(decimal.RequireFromString("50000.25"))
			require.NoError(t, repo.Save(ctx, harish))
			require.Positive(t, harish.ID)

			t.Run("FindByID", func(t *testing.T) {
				found, err := repo.FindByID(ctx, harish.ID)
				require.NoError(t, err)

				assert.Equal(t, "h@x.com", found.Email)
				assert.True(t, found.DateOfBirth.Equal(dob), "got %s", found.DateOfBirth)
				assert.True(t, found.Salary.Valid)
				assert.True(t, found.Salary.Decimal.Equal(decimal.RequireFromString("50000.25")))
				require.NotNil(t, found.AttendanceDays)
				assert.Equal(t, 25, *found.AttendanceDays)
				assert.ElementsMatch(t, []domain.Role{domain.RoleUser, domain.RoleHR}, found.Roles)
			})

			t.Run("DuplicateEmail", func(t *testing.T) {
				dup := newHarish()
				err := repo.Save(ctx, dup)

				assert.ErrorIs(t, err, apperrors.ErrConflict)
			})

			t.Run("ReplaceInTransaction", func(t *testing.T) {
				err := txManager.WithTx(ctx, func(ctx context.Context) error {
					found, err := repo.FindByID(ctx, harish.ID)
					if err != nil {
						return err
					}
					found.Department = "Finance"
					found.Salary = decimal.NullDecimal{}
					found.Roles = []domain.Role{domain.RoleAdmin}
					return repo.Save(ctx, found)
				})
				require.NoError(t, err)

				found, err := repo.FindByEmail(ctx, "h@x.com")
				require.NoError(t, err)
				assert.Equal(t, "Finance", found.Department)
				assert.False(t, found.Salary.Valid)
				assert.Equal(t, []domain.Role{domain.RoleAdmin}, found.Roles)
			})

			t.Run("DepartmentCounts", func(t *testing.T) {
				other := newHarish()
				other.Email = "other@x.com"
				other.Department = "Finance"
				require.NoError(t, repo.Save(ctx, other))
				third := newHarish()
				third.Email = "third@x.com"
				third.DateOfBirth = time.Date(1995, 6, 1, 0, 0, 0, 0, time.UTC)
				require.NoError(t, repo.Save(ctx, third))

				counts, err := repo.DepartmentCounts(ctx)
				require.NoError(t, err)
				assert.Equal(t, []domain.DepartmentCount{
					{Department: "Finance", Count: 2},
					{Department: "HR", Count: 1},
				}, counts)

				all, err := repo.FindAll(ctx)
				require.NoError(t, err)
				assert.Len(t, all, 3)
			})

			t.Run("DeleteCascadesRoles", func(t *testing.T) {
				require.NoError(t, repo.DeleteByID(ctx, harish.ID))

				exists, err := repo.ExistsByID(ctx, harish.ID)
				require.NoError(t, err)
				assert.False(t, exists)

				var roles int
				require.NoError(t, db.QueryRow(
					"SELECT COUNT(*) FROM employee_roles WHERE employee_id = "+strconv.FormatInt(harish.ID, 10),
				).Scan(&roles))
				assert.Zero(t, roles)

				_, err = repo.FindByID(ctx, harish.ID)
				assert.ErrorIs(t, err, apperrors.ErrNotFound)
				assert.ErrorIs(t, repo.DeleteByID(ctx, harish.ID), apperrors.ErrNotFound)
			})
		})
	}
}

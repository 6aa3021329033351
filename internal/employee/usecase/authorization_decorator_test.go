package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/xenosis/employees/internal/auth/domain"
	"github.com/xenosis/employees/internal/employee/domain"
	"github.com/xenosis/employees/internal/employee/usecase/mocks"
	apperrors "github.com/xenosis/employees/internal/errors"
)

func principalCtx(roles ...domain.Role) context.Context {
	return authDomain.WithPrincipal(context.Background(), &domain.Principal{ID: 1, Roles: roles})
}

func TestEmployeeUseCaseWithAuthorization(t *testing.T) {
	t.Run("Error_NoPrincipal", func(t *testing.T) {
		next := &mocks.MockEmployeeUseCase{}
		uc := NewEmployeeUseCaseWithAuthorization(next, authDomain.DefaultPolicy())

		_, err := uc.List(context.Background())

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		next.AssertNotCalled(t, "List", mock.Anything)
	})

	t.Run("Success_UserCanRead", func(t *testing.T) {
		next := &mocks.MockEmployeeUseCase{}
		ctx := principalCtx(domain.RoleUser)
		next.On("GetByID", ctx, int64(2)).Return(&domain.Employee{ID: 2}, nil)
		next.On("List", ctx).Return([]*domain.Employee{{ID: 2}}, nil)
		uc := NewEmployeeUseCaseWithAuthorization(next, authDomain.DefaultPolicy())

		employee, err := uc.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(2), employee.ID)

		employees, err := uc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, employees, 1)
		next.AssertExpectations(t)
	})

	t.Run("Error_UserCannotDeleteOrUpdate", func(t *testing.T) {
		next := &mocks.MockEmployeeUseCase{}
		ctx := principalCtx(domain.RoleUser)
		uc := NewEmployeeUseCaseWithAuthorization(next, authDomain.DefaultPolicy())

		err := uc.Delete(ctx, 2)
		var forbidden *authDomain.ForbiddenError
		require.ErrorAs(t, err, &forbidden)
		assert.Equal(t, authDomain.DeleteByID, forbidden.Operation)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		assert.NotErrorIs(t, err, apperrors.ErrNotFound)

		_, err = uc.Update(ctx, 2, domain.EmployeeInput{})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)

		next.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		next.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success_AnyRoleCanCreate", func(t *testing.T) {
		next := &mocks.MockEmployeeUseCase{}
		ctx := principalCtx(domain.RoleHR)
		input := domain.EmployeeInput{Firstname: "Ana"}
		next.On("Create", ctx, input).Return(&domain.Employee{ID: 10}, nil)
		uc := NewEmployeeUseCaseWithAuthorization(next, authDomain.DefaultPolicy())

		employee, err := uc.Create(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, int64(10), employee.ID)
	})

	t.Run("Error_ManagerCannotList", func(t *testing.T) {
		next := &mocks.MockEmployeeUseCase{}
		uc := NewEmployeeUseCaseWithAuthorization(next, authDomain.DefaultPolicy())

		_, err := uc.List(principalCtx(domain.RoleManager))

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("Success_AdminCanDelete", func(t *testing.T) {
		next := &mocks.MockEmployeeUseCase{}
		ctx := principalCtx(domain.RoleAdmin)
		next.On("Delete", ctx, int64(2)).Return(nil)
		uc := NewEmployeeUseCaseWithAuthorization(next, authDomain.DefaultPolicy())

		assert.NoError(t, uc.Delete(ctx, 2))
		next.AssertExpectations(t)
	})
}

func TestReportingUseCaseWithAuthorization(t *testing.T) {
	t.Run("Error_NonAdminDenied", func(t *testing.T) {
		next := &mocks.MockReportingUseCase{}
		ctx := principalCtx(domain.RoleUser, domain.RoleManager, domain.RoleHR)
		uc := NewReportingUseCaseWithAuthorization(next, authDomain.DefaultPolicy())

		_, err := uc.AttendanceReport(ctx)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		_, err = uc.SalaryReport(ctx)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		_, err = uc.DepartmentHeadcount(ctx)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)

		next.AssertNotCalled(t, "AttendanceReport", mock.Anything)
		next.AssertNotCalled(t, "SalaryReport", mock.Anything)
		next.AssertNotCalled(t, "DepartmentHeadcount", mock.Anything)
	})

	t.Run("Success_AdminAllowed", func(t *testing.T) {
		next := &mocks.MockReportingUseCase{}
		ctx := principalCtx(domain.RoleAdmin)
		next.On("AttendanceReport", ctx).Return([]domain.AttendanceRecord{}, nil)
		next.On("SalaryReport", ctx).Return([]domain.SalaryRecord{}, nil)
		next.On("DepartmentHeadcount", ctx).Return([]domain.DepartmentCount{{Department: "HR", Count: 1}}, nil)
		uc := NewReportingUseCaseWithAuthorization(next, authDomain.DefaultPolicy())

		_, err := uc.AttendanceReport(ctx)
		require.NoError(t, err)
		_, err = uc.SalaryReport(ctx)
		require.NoError(t, err)
		counts, err := uc.DepartmentHeadcount(ctx)
		require.NoError(t, err)
		assert.Len(t, counts, 1)
		next.AssertExpectations(t)
	})
}

package usecase

import (
	"context"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/xenosis/employees/internal/database"
	"github.com/xenosis/employees/internal/employee/domain"
	apperrors "github.com/xenosis/employees/internal/errors"
	appValidation "github.com/xenosis/employees/internal/validation"
)

// passwordPolicy mirrors the credential rule employees have always been held to:
// at least eight characters mixing upper case, lower case and digits.
var passwordPolicy = appValidation.PasswordStrength{
	MinLength:     8,
	RequireUpper:  true,
	RequireLower:  true,
	RequireNumber: true,
}

// employeeUseCase implements EmployeeUseCase.
type employeeUseCase struct {
	txManager database.TxManager
	repo      EmployeeRepository
	hasher    CredentialHasher
	now       func() time.Time
}

// NewEmployeeUseCase creates a new EmployeeUseCase.
func NewEmployeeUseCase(
	txManager database.TxManager,
	repo EmployeeRepository,
	hasher CredentialHasher,
) EmployeeUseCase {
	return &employeeUseCase{
		txManager: txManager,
		repo:      repo,
		hasher:    hasher,
		now:       time.Now,
	}
}

// validateInput checks every field of input and reports all violations at once.
func (uc *employeeUseCase) validateInput(input domain.EmployeeInput) error {
	roleValues := make([]interface{}, 0, len(domain.AllRoles))
	for _, r := range domain.AllRoles {
		roleValues = append(roleValues, r)
	}

	err := validation.ValidateStruct(&input,
		validation.Field(&input.Firstname,
			validation.Required.Error("firstname is required"),
			appValidation.NotBlank,
			validation.Length(1, 100).Error("firstname must be between 1 and 100 characters"),
		),
		validation.Field(&input.Lastname,
			validation.Required.Error("lastname is required"),
			appValidation.NotBlank,
			validation.Length(1, 100).Error("lastname must be between 1 and 100 characters"),
		),
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			passwordPolicy,
		),
		validation.Field(&input.DateOfBirth,
			validation.Required.Error("dateOfBirth is required"),
			appValidation.PastDate(uc.now),
		),
		validation.Field(&input.Department,
			validation.Required.Error("department is required"),
			appValidation.NotBlank,
		),
		validation.Field(&input.Salary, appValidation.PositiveDecimal, appValidation.DecimalFits(10, 2)),
		validation.Field(&input.AttendanceDays,
			validation.NotNil.Error("attendanceDays is required"),
			validation.Min(0).Error("attendanceDays must be between 0 and 31"),
			validation.Max(31).Error("attendanceDays must be between 0 and 31"),
		),
		validation.Field(&input.Roles,
			validation.Required.Error("at least one role is required"),
			validation.Each(
				validation.Required.Error("role must not be empty"),
				validation.In(roleValues...).Error("role must be one of ADMIN, USER, MANAGER, HR"),
			),
		),
	)
	return appValidation.WrapValidationError(err)
}

// ensureEmailAvailable fails with DuplicateEmailError when email belongs to an
// employee other than ownerID. Pass zero for ownerID when creating.
func (uc *employeeUseCase) ensureEmailAvailable(ctx context.Context, email string, ownerID int64) error {
	existing, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != ownerID {
		return domain.ErrDuplicateEmail(email)
	}
	return nil
}

// Create validates input, hashes the password and persists a new employee.
func (uc *employeeUseCase) Create(ctx context.Context, input domain.EmployeeInput) (*domain.Employee, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	employee := &domain.Employee{}
	employee.Apply(input)

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.ensureEmailAvailable(ctx, employee.Email, 0); err != nil {
			return err
		}

		hash, err := uc.hasher.Hash(input.Password)
		if err != nil {
			return apperrors.Wrap(err, "failed to hash password")
		}
		employee.CredentialHash = hash

		return uc.repo.Save(ctx, employee)
	})
	if err != nil {
		return nil, err
	}

	return employee, nil
}

// GetByID retrieves an employee by id.
func (uc *employeeUseCase) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return uc.repo.FindByID(ctx, id)
}

// List retrieves every employee.
func (uc *employeeUseCase) List(ctx context.Context) ([]*domain.Employee, error) {
	return uc.repo.FindAll(ctx)
}

// Update replaces every mutable field of the employee and re-hashes the password.
func (uc *employeeUseCase) Update(
	ctx context.Context,
	id int64,
	input domain.EmployeeInput,
) (*domain.Employee, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	var employee *domain.Employee
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		existing, err := uc.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		email := domain.NormalizedEmail(input.Email)
		if err := uc.ensureEmailAvailable(ctx, email, existing.ID); err != nil {
			return err
		}

		hash, err := uc.hasher.Hash(input.Password)
		if err != nil {
			return apperrors.Wrap(err, "failed to hash password")
		}

		existing.Apply(input)
		existing.CredentialHash = hash

		if err := uc.repo.Save(ctx, existing); err != nil {
			return err
		}
		employee = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return employee, nil
}

// Delete removes the employee with id.
func (uc *employeeUseCase) Delete(ctx context.Context, id int64) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		exists, err := uc.repo.ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound(id)
		}
		return uc.repo.DeleteByID(ctx, id)
	})
}

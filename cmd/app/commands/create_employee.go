package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/xenosis/employees/internal/employee/http/dto"
	employeeUseCase "github.com/xenosis/employees/internal/employee/usecase"
)

// Console is where interactive commands prompt and print. Tests swap in buffers.
type Console struct {
	In  io.Reader
	Out io.Writer
}

// StdConsole is the process terminal.
func StdConsole() Console {
	return Console{In: os.Stdin, Out: os.Stdout}
}

// CreateEmployeeParams carries the raw flag values of create-employee.
type CreateEmployeeParams struct {
	Firstname      string
	Lastname       string
	Email          string
	Password       string //nolint:gosec // raw credential from the operator
	DateOfBirth    string
	Department     string
	Salary         string
	AttendanceDays int
	Roles          []string
}

// RunCreateEmployee creates an employee through the ungated use case. It is
// how the first ADMIN gets into an empty database, since every HTTP route
// needs an authenticated caller. When no password is given it is read from
// console.In.
//
// Requirements: Database must be migrated and accessible.
func RunCreateEmployee(
	ctx context.Context,
	employeeUseCase employeeUseCase.EmployeeUseCase,
	logger *slog.Logger,
	params CreateEmployeeParams,
	format string,
	console Console,
) error {
	logger.Info("creating employee", slog.String("email", params.Email))

	password := params.Password
	if password == "" {
		var err error
		password, err = promptForPassword(console)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	}

	request := dto.EmployeeRequest{
		Firstname:      params.Firstname,
		Lastname:       params.Lastname,
		Email:          params.Email,
		Password:       password,
		DateOfBirth:    params.DateOfBirth,
		Department:     params.Department,
		AttendanceDays: &params.AttendanceDays,
		Roles:          params.Roles,
	}

	if s := strings.TrimSpace(params.Salary); s != "" {
		salary, err := decimal.NewFromString(s)
		if err != nil {
			return fmt.Errorf("invalid salary %q: %w", s, err)
		}
		request.Salary = decimal.NewNullDecimal(salary)
	}

	input, err := request.ToInput()
	if err != nil {
		return fmt.Errorf("invalid employee: %w", err)
	}

	employee, err := employeeUseCase.Create(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	response := dto.MapEmployeeToResponse(employee)
	if format == "json" {
		encoder := json.NewEncoder(console.Out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		_, _ = fmt.Fprintln(console.Out, "Employee created successfully")
		_, _ = fmt.Fprintf(console.Out, "ID: %d\n", response.ID)
		_, _ = fmt.Fprintf(console.Out, "Email: %s\n", response.Email)
		_, _ = fmt.Fprintf(console.Out, "Roles: %s\n", strings.Join(response.Roles, ", "))
	}

	logger.Info("employee created successfully",
		slog.Int64("employee_id", employee.ID),
		slog.String("email", employee.Email),
	)

	return nil
}

func promptForPassword(console Console) (string, error) {
	if console.In == nil {
		return "", fmt.Errorf("no password given and no input to prompt from")
	}

	_, _ = fmt.Fprint(console.Out, "Enter password: ")
	line, err := bufio.NewReader(console.In).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}

package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/xenosis/employees/cmd/app/commands"
	"github.com/xenosis/employees/internal/app"
	"github.com/xenosis/employees/internal/config"
)

func employeeCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-employee",
			Usage: "Create an employee directly in the database, typically the first ADMIN",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "firstname",
					Required: true,
					Usage:    "First name",
				},
				&cli.StringFlag{
					Name:     "lastname",
					Required: true,
					Usage:    "Last name",
				},
				&cli.StringFlag{
					Name:     "email",
					Aliases:  []string{"e"},
					Required: true,
					Usage:    "Login email, unique across employees",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "Password (omit to be prompted)",
				},
				&cli.StringFlag{
					Name:     "date-of-birth",
					Required: true,
					Usage:    "Date of birth in YYYY-MM-DD format",
				},
				&cli.StringFlag{
					Name:     "department",
					Aliases:  []string{"d"},
					Required: true,
					Usage:    "Department name",
				},
				&cli.StringFlag{
					Name:  "salary",
					Usage: "Positive decimal salary (optional)",
				},
				&cli.IntFlag{
					Name:  "attendance-days",
					Value: 0,
					Usage: "Attendance days in the current month (0-31)",
				},
				&cli.StringSliceFlag{
					Name:    "role",
					Aliases: []string{"r"},
					Value:   []string{"ADMIN"},
					Usage:   "Role to grant; repeat for several (ADMIN, USER, MANAGER, HR)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				employeeUseCase, err := container.EmployeeUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateEmployee(
					ctx,
					employeeUseCase,
					container.Logger(),
					commands.CreateEmployeeParams{
						Firstname:      cmd.String("firstname"),
						Lastname:       cmd.String("lastname"),
						Email:          cmd.String("email"),
						Password:       cmd.String("password"),
						DateOfBirth:    cmd.String("date-of-birth"),
						Department:     cmd.String("department"),
						Salary:         cmd.String("salary"),
						AttendanceDays: int(cmd.Int("attendance-days")),
						Roles:          cmd.StringSlice("role"),
					},
					cmd.String("format"),
					commands.StdConsole(),
				)
			},
		},
	}
}

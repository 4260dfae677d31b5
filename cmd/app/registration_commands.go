package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/brdocs/cmd/app/commands"
	"github.com/allisson/brdocs/internal/app"
	"github.com/allisson/brdocs/internal/config"
)

func getRegistrationCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "check-email",
			Usage:     "Inspect an email address against the registration domain",
			ArgsUsage: "<email>",
			Flags:     []cli.Flag{formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				registrationUseCase, err := container.RegistrationUseCase()
				if err != nil {
					return err
				}

				return commands.RunCheckEmail(
					ctx,
					registrationUseCase,
					commands.DefaultIO().Writer,
					cmd.Args().First(),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "check-password",
			Usage: "List the strength rules a password breaks",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "password",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Password to check",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				registrationUseCase, err := container.RegistrationUseCase()
				if err != nil {
					return err
				}

				return commands.RunCheckPassword(
					ctx,
					registrationUseCase,
					commands.DefaultIO().Writer,
					cmd.String("password"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "register",
			Usage: "Process a company registration and print its report",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "email",
					Aliases:  []string{"e"},
					Required: true,
					Usage:    "Contact email address",
				},
				&cli.StringFlag{
					Name:     "password",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Account password",
				},
				&cli.StringFlag{
					Name:     "cnpj",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "Company CNPJ, masked or digits only",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				registrationUseCase, err := container.RegistrationUseCase()
				if err != nil {
					return err
				}

				return commands.RunRegister(
					ctx,
					registrationUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("email"),
					cmd.String("password"),
					cmd.String("cnpj"),
					cmd.String("format"),
				)
			},
		},
	}
}

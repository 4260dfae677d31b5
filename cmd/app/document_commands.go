package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/brdocs/cmd/app/commands"
	"github.com/allisson/brdocs/internal/app"
	"github.com/allisson/brdocs/internal/config"
)

func getDocumentCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "validate",
			Usage:     "Validate the check digits of a CPF or CNPJ",
			ArgsUsage: "<value>",
			Flags:     []cli.Flag{kindFlag(), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				documentUseCase, err := container.DocumentUseCase()
				if err != nil {
					return err
				}

				return commands.RunValidate(
					ctx,
					documentUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("kind"),
					cmd.Args().First(),
					cmd.String("format"),
				)
			},
		},
		{
			Name:      "mask",
			Usage:     "Format a CPF or CNPJ for display",
			ArgsUsage: "<value>",
			Flags:     []cli.Flag{kindFlag(), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				documentUseCase, err := container.DocumentUseCase()
				if err != nil {
					return err
				}

				return commands.RunMask(
					ctx,
					documentUseCase,
					commands.DefaultIO().Writer,
					cmd.String("kind"),
					cmd.Args().First(),
					cmd.String("format"),
				)
			},
		},
		{
			Name:      "unmask",
			Usage:     "Strip every non-digit character from a CPF or CNPJ",
			ArgsUsage: "<value>",
			Flags:     []cli.Flag{kindFlag(), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				documentUseCase, err := container.DocumentUseCase()
				if err != nil {
					return err
				}

				return commands.RunUnmask(
					ctx,
					documentUseCase,
					commands.DefaultIO().Writer,
					cmd.String("kind"),
					cmd.Args().First(),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "generate",
			Usage: "Generate random valid CPF or CNPJ values for testing",
			Flags: []cli.Flag{
				kindFlag(),
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"n"},
					Value:   1,
					Usage:   "How many values to generate",
				},
				&cli.BoolFlag{
					Name:    "masked",
					Aliases: []string{"m"},
					Value:   false,
					Usage:   "Print the values in display format",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				documentUseCase, err := container.DocumentUseCase()
				if err != nil {
					return err
				}

				return commands.RunGenerate(
					ctx,
					documentUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("kind"),
					int(cmd.Int("count")),
					cmd.Bool("masked"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:      "check-format",
			Usage:     "Check whether a value looks like a complete or partially typed CPF or CNPJ",
			ArgsUsage: "<value>",
			Flags:     []cli.Flag{kindFlag(), formatFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer func() { _ = container.Shutdown(ctx) }()

				documentUseCase, err := container.DocumentUseCase()
				if err != nil {
					return err
				}

				return commands.RunCheckFormat(
					ctx,
					documentUseCase,
					commands.DefaultIO().Writer,
					cmd.String("kind"),
					cmd.Args().First(),
					cmd.String("format"),
				)
			},
		},
	}
}

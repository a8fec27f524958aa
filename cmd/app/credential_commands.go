package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/credstore/cmd/app/commands"
	"github.com/allisson/credstore/internal/app"
	"github.com/allisson/credstore/internal/config"
)

func getCredentialCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "save-credential",
			Usage: "Encrypt and store a credential record",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "identifier",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Credential identifier (e.g., account or user name)",
				},
				&cli.StringFlag{
					Name:     "secret",
					Aliases:  []string{"s"},
					Required: true,
					Usage:    "Secret value to protect",
				},
				&cli.StringFlag{
					Name:     "key-tag",
					Aliases:  []string{"k"},
					Required: true,
					Usage:    "Tag of the key pair used to encrypt the secret",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.CredentialUseCase()
				if err != nil {
					return err
				}

				return commands.RunSaveCredential(
					ctx,
					useCase,
					container.Logger(),
					cmd.String("identifier"),
					cmd.String("secret"),
					cmd.String("key-tag"),
				)
			},
		},
		{
			Name:  "load-credential",
			Usage: "Decrypt and print the stored credential",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "key-tag",
					Aliases:  []string{"k"},
					Required: true,
					Usage:    "Tag of the key pair used to decrypt the secret",
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

				useCase, err := container.CredentialUseCase()
				if err != nil {
					return err
				}

				return commands.RunLoadCredential(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("key-tag"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "delete-credential",
			Usage: "Remove the stored credential record",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.CredentialUseCase()
				if err != nil {
					return err
				}

				return commands.RunDeleteCredential(ctx, useCase, container.Logger())
			},
		},
	}
}

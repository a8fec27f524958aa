package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/credstore/cmd/app/commands"
	"github.com/allisson/credstore/internal/app"
	"github.com/allisson/credstore/internal/config"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "save-key",
			Usage: "Store key material under a tag, replacing any existing entry",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "tag",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Tag to store the key material under",
				},
				&cli.StringFlag{
					Name:     "material",
					Aliases:  []string{"m"},
					Required: true,
					Usage:    "Base64-encoded key material",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				keyManager, err := container.KeyManager()
				if err != nil {
					return err
				}

				return commands.RunSaveKey(
					ctx,
					keyManager,
					container.Logger(),
					cmd.String("tag"),
					cmd.String("material"),
				)
			},
		},
		{
			Name:  "delete-key",
			Usage: "Remove the key material stored under a tag",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "tag",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Tag of the entry to remove",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				keyManager, err := container.KeyManager()
				if err != nil {
					return err
				}

				return commands.RunDeleteKey(ctx, keyManager, container.Logger(), cmd.String("tag"))
			},
		},
		{
			Name:  "generate-keypair",
			Usage: "Generate an RSA-2048 key pair under a tag and print the public half",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "tag",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Tag to store the key pair under",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				keyManager, err := container.KeyManager()
				if err != nil {
					return err
				}

				return commands.RunGenerateKeyPair(
					ctx,
					keyManager,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("tag"),
				)
			},
		},
		{
			Name:  "get-public-key",
			Usage: "Print the PEM-encoded public key stored under a tag",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "tag",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Tag of the key pair",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				keyManager, err := container.KeyManager()
				if err != nil {
					return err
				}

				return commands.RunGetPublicKey(
					ctx,
					keyManager,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("tag"),
				)
			},
		},
	}
}

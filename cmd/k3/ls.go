package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"
)

func lsCmd() *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Usage:     "List the files kid3-cli sees in a directory",
		ArgsUsage: "[DIR]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "o",
				Usage: "Output format: terminal, json, html",
				Value: "terminal",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := cmd.Args().First()
			if dir == "" {
				dir = "."
			}

			rnd, err := newApp().renderer(cmd.String("o"))
			if err != nil {
				return err
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			files, err := client.ListDir(ctx, dir)
			if err != nil {
				return err
			}
			return rnd.RenderListing(os.Stdout, dir, files)
		},
	}
}

package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

func copyCmd() *cli.Command {
	return &cli.Command{
		Name:      "copy",
		Usage:     "Copy the tags of one file onto another",
		ArgsUsage: "FROM TO",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "from-tag",
				Usage: "Tag to copy from: 1, 2 or 12",
			},
			&cli.IntFlag{
				Name:  "to-tag",
				Usage: "Tag to paste into: 1, 2 or 12",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("exactly two files are required")
			}
			from, to := cmd.Args().Get(0), cmd.Args().Get(1)

			fromTag, err := tagNumber(int(cmd.Int("from-tag")))
			if err != nil {
				return err
			}
			toTag, err := tagNumber(int(cmd.Int("to-tag")))
			if err != nil {
				return err
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			if err := client.CopyTags(ctx, from, to, fromTag, toTag); err != nil {
				return fmt.Errorf("copy tags: %w", err)
			}
			log.Info("copied", "from", from, "to", to)
			return nil
		},
	}
}

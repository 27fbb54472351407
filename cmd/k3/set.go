package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

func setCmd() *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "Set frames on a file and save it",
		ArgsUsage: "FILE Name=Value...",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "tag",
				Usage: "Tag to write: 1, 2 or 12",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) < 2 {
				return fmt.Errorf("a file and at least one Name=Value are required")
			}

			frames, err := parseAssignments(args[1:])
			if err != nil {
				return err
			}

			tag, err := tagNumber(int(cmd.Int("tag")))
			if err != nil {
				return err
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			if err := client.SetTagsOn(ctx, frames, args[0], tag); err != nil {
				return fmt.Errorf("set tags on %s: %w", args[0], err)
			}
			log.Info("saved", "file", args[0], "frames", len(frames))
			return nil
		},
	}
}

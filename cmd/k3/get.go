package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sonnes/kid3/core"
	"github.com/sonnes/kid3/kid3"
	"github.com/urfave/cli/v3"
)

func getCmd() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Print the tags of one or more files",
		ArgsUsage: "FILE...",
		Description: `Reads tag 2 of each file, falling back to tag 1. Files are read
concurrently, one kid3-cli process per file.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "column",
				Aliases: []string{"c"},
				Usage:   "Frame to read (repeatable). Default: all frames",
			},
			&cli.IntFlag{
				Name:  "tag",
				Usage: "Tag to read: 1, 2 or 12",
			},
			&cli.StringFlag{
				Name:  "o",
				Usage: "Output format: terminal, json, html",
				Value: "terminal",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			paths := cmd.Args().Slice()
			if len(paths) == 0 {
				return fmt.Errorf("at least one file is required")
			}

			tag, err := tagNumber(int(cmd.Int("tag")))
			if err != nil {
				return err
			}

			rnd, err := newApp().renderer(cmd.String("o"))
			if err != nil {
				return err
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			opts := kid3.GetOptions{Columns: cmd.StringSlice("column"), Tag: tag}
			frames, err := client.GetTagsMany(ctx, opts, paths...)
			if err != nil {
				return fmt.Errorf("get tags: %w", err)
			}

			reports := make([]core.TagReport, len(paths))
			for i, p := range paths {
				reports[i] = core.TagReport{Path: p, Frames: frames[i]}
			}
			return rnd.RenderTags(os.Stdout, reports)
		},
	}
}

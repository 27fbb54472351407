package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/sonnes/kid3/sheet"
	"github.com/urfave/cli/v3"
)

func applyCmd() *cli.Command {
	return &cli.Command{
		Name:      "apply",
		Usage:     "Write the tags declared in an HCL tag sheet",
		ArgsUsage: "SHEET",
		Description: `A tag sheet declares one file block per audio file:

  file "01 - Intro.mp3" {
    tag  = 2
    tags = {
      Title  = "Intro"
      Artist = env.ARTIST
    }
  }

Relative paths resolve against the sheet's directory. Files are written in
order and the first failure stops the run.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("exactly one sheet is required")
			}

			s, err := sheet.ReadFile(cmd.Args().First())
			if err != nil {
				return err
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			if err := sheet.Apply(ctx, client, s); err != nil {
				return err
			}
			log.Info("applied", "sheet", cmd.Args().First(), "files", len(s.Files))
			return nil
		},
	}
}

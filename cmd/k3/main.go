package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/sonnes/kid3/builder"
	"github.com/urfave/cli/v3"
)

func main() {
	root := &cli.Command{
		Name:  "k3",
		Usage: "Read and write audio file tags through kid3-cli",
		Description: `
  _    _____
 | | _|___ /
 | |/ / |_ \
 |   < ___) |
 |_|\_\____/

 Every command runs kid3-cli once with a -c sequence built for it.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log",
				Usage: "Log level: debug, info, warn, error",
				Value: "error",
			},
			&cli.StringFlag{
				Name:    "binary",
				Usage:   "Path to the kid3-cli executable",
				Value:   builder.DefaultBinary,
				Sources: cli.EnvVars("KID3_CLI"),
			},
			&cli.StringFlag{
				Name:  "encoding",
				Usage: "Character set of kid3-cli output, e.g. windows-1252 (default UTF-8)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := log.ParseLevel(cmd.String("log"))
			if err != nil {
				return ctx, err
			}
			log.SetLevel(level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			getCmd(),
			setCmd(),
			copyCmd(),
			tagsCmd(),
			lsCmd(),
			applyCmd(),
			snapshotCmd(),
			serveCmd(),
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := root.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

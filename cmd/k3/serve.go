package main

import (
	"context"

	"github.com/sonnes/kid3/server"
	"github.com/urfave/cli/v3"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:      "serve",
		Usage:     "Browse the tags of a directory in a local web UI",
		ArgsUsage: "[DIR]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port to listen on",
				Value: 8080,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := cmd.Args().First()
			if dir == "" {
				dir = "."
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			s := &server.Server{Tagger: client, Dir: dir, Port: int(cmd.Int("port"))}
			return s.ListenAndServe(ctx)
		},
	}
}

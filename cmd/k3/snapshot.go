package main

import (
	"context"
	"fmt"
	"maps"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sonnes/kid3/core"
	"github.com/sonnes/kid3/kid3"
	"github.com/sonnes/kid3/snapshot"
	"github.com/urfave/cli/v3"
)

const snapshotFile = ".kid3-snapshot.json"

func snapshotCmd() *cli.Command {
	return &cli.Command{
		Name:      "snapshot",
		Usage:     "Record the tags of every file in a directory",
		ArgsUsage: "[DIR]",
		Description: `Reads the tags of each file kid3-cli lists in DIR and upserts them into
a JSON snapshot (default DIR/` + snapshotFile + `). Files whose tags changed
since the previous snapshot are reported.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Snapshot path",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := cmd.Args().First()
			if dir == "" {
				dir = "."
			}
			path := cmd.String("file")
			if path == "" {
				path = filepath.Join(dir, snapshotFile)
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			names, err := client.ListDir(ctx, dir)
			if err != nil {
				return fmt.Errorf("list %s: %w", dir, err)
			}

			paths := make([]string, len(names))
			for i, n := range names {
				paths[i] = filepath.Join(dir, n)
			}
			frames, err := client.GetTagsMany(ctx, kid3.GetOptions{}, paths...)
			if err != nil {
				return fmt.Errorf("get tags: %w", err)
			}

			s, err := snapshot.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read snapshot: %w", err)
			}
			s.Dir = dir

			changed := record(s, paths, frames, time.Now().UTC())
			for _, name := range changed {
				log.Info("changed", "file", name)
			}

			if err := s.WriteFile(path); err != nil {
				return fmt.Errorf("write snapshot: %w", err)
			}
			fmt.Printf("%d files recorded, %d changed\n", len(paths), len(changed))
			return nil
		},
	}
}

// record upserts one entry per path and returns the names whose frames
// differ from the previous snapshot. Unchanged entries keep their time.
func record(s *snapshot.Snapshot, paths []string, frames []core.Frames, at time.Time) []string {
	var changed []string
	for i, p := range paths {
		entry := snapshot.NewEntry(core.TagReport{Path: p, Frames: frames[i]}, at)
		prev, ok := s.Lookup(entry.File)
		if ok && maps.Equal(prev.Tags, entry.Tags) {
			continue
		}
		changed = append(changed, entry.File)
		s.Upsert(entry)
	}
	return changed
}

package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
)

func tagsCmd() *cli.Command {
	return &cli.Command{
		Name:      "tags",
		Usage:     "List the tag numbers present in a file",
		ArgsUsage: "FILE",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("exactly one file is required")
			}

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			nums, err := client.ListTagNumbers(ctx, cmd.Args().First())
			if err != nil {
				return err
			}
			fmt.Println(joinInts(nums))
			return nil
		},
	}
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}

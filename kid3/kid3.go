// Package kid3 reads and writes audio file tags by driving kid3-cli. Every
// method builds one command sequence and spawns exactly one kid3-cli process
// for it, so a Client holds no state between calls.
package kid3

import (
	"context"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/sonnes/kid3/builder"
	"github.com/sonnes/kid3/core"
	"github.com/sonnes/kid3/parse"
	"golang.org/x/sync/errgroup"
)

// Config holds the settings for a Client.
type Config struct {
	Binary   string           // path to kid3-cli; builder.DefaultBinary if empty
	Executor builder.Executor // runs kid3-cli; a builder.ExecExecutor if nil
}

// Client exposes common tagging workflows.
type Client struct {
	cfg Config
}

// New creates a Client from the given config.
func New(cfg Config) *Client {
	return &Client{cfg: cfg}
}

// Builder returns a fresh command builder bound to the client's binary and
// executor, for sequences the Client has no method for.
func (c *Client) Builder() *builder.Builder {
	return builder.New(builder.Config{Binary: c.cfg.Binary, Executor: c.cfg.Executor})
}

// GetOptions narrows what GetTags reads.
type GetOptions struct {
	// Columns lists the frames to read. Empty reads all frames.
	Columns []string
	Tag     core.TagNumber
}

// ListTagNumbers returns the tag numbers kid3-cli reports for the file.
func (c *Client) ListTagNumbers(ctx context.Context, path string) ([]int, error) {
	out, err := c.Builder().TagInfo().RunSync(ctx, path)
	if err != nil {
		return nil, err
	}
	return parse.TagNumbers(out)
}

// ReadTags returns the full parsed "get" listing for the file.
func (c *Client) ReadTags(ctx context.Context, path string, opts GetOptions) (core.TagOutput, error) {
	out, err := c.Builder().
		Get(strings.Join(opts.Columns, ","), opts.Tag).
		RunSync(ctx, path)
	if err != nil {
		return core.TagOutput{}, err
	}
	return parse.TagFrameOutput(out), nil
}

// GetTags returns the frames of tag 2 if the file has one, otherwise those
// of tag 1. The result is nil when kid3-cli lists neither.
func (c *Client) GetTags(ctx context.Context, path string, opts GetOptions) (core.Frames, error) {
	out, err := c.ReadTags(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	return out.Preferred(), nil
}

// GetTagsMany runs GetTags for each path concurrently, one kid3-cli process
// per file, and returns the frames in the order of paths. The first failure
// cancels the remaining reads.
func (c *Client) GetTagsMany(ctx context.Context, opts GetOptions, paths ...string) ([]core.Frames, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]core.Frames, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			frames, err := c.GetTags(ctx, path, opts)
			if err != nil {
				return err
			}
			results[i] = frames
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// SetTags sets each frame in tags on the default tag and saves the file.
func (c *Client) SetTags(ctx context.Context, tags core.Frames, path string) error {
	return c.SetTagsOn(ctx, tags, path, core.TagDefault)
}

// SetTagsOn is SetTags for a specific tag. Frames are applied in name order.
func (c *Client) SetTagsOn(ctx context.Context, tags core.Frames, path string, tag core.TagNumber) error {
	b := c.Builder()
	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		b.Set(name, tags[name], tag)
	}
	_, err := b.Save().RunSync(ctx, path)
	return err
}

// CopyTags copies the frames of one file to another within a single kid3-cli
// session, through its internal copy buffer.
func (c *Client) CopyTags(ctx context.Context, from, to string, fromTag, toTag core.TagNumber) error {
	_, err := c.Builder().
		Cd(filepath.Dir(from)).
		Select(filepath.Base(from)).
		Copy(fromTag).
		Cd(filepath.Dir(to)).
		Select(filepath.Base(to)).
		Paste(toTag).
		Save().
		RunSync(ctx, "")
	return err
}

// ListDir returns the names kid3-cli lists for dir.
func (c *Client) ListDir(ctx context.Context, dir string) ([]string, error) {
	out, err := c.Builder().Cd(dir).Ls().RunSync(ctx, "")
	if err != nil {
		return nil, err
	}
	return parse.DirectoryList(out), nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/sonnes/kid3/builder"
	"github.com/sonnes/kid3/core"
	"github.com/sonnes/kid3/kid3"
	"github.com/sonnes/kid3/render"
	htmlrender "github.com/sonnes/kid3/render/html"
	jsonrender "github.com/sonnes/kid3/render/json"
	"github.com/sonnes/kid3/render/terminal"
	"github.com/urfave/cli/v3"
)

// app holds the renderer registry used by CLI commands.
type app struct {
	renderers map[string]func() render.Renderer
}

func newApp() *app {
	return &app{
		renderers: map[string]func() render.Renderer{
			"terminal": func() render.Renderer { return terminal.New() },
			"json":     func() render.Renderer { return jsonrender.New() },
			"html":     func() render.Renderer { return htmlrender.New() },
		},
	}
}

func (a *app) renderer(name string) (render.Renderer, error) {
	fn, ok := a.renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", name)
	}
	return fn(), nil
}

// newClient builds a kid3 client from the root --binary and --encoding flags.
func newClient(cmd *cli.Command) (*kid3.Client, error) {
	enc, err := builder.LookupEncoding(cmd.String("encoding"))
	if err != nil {
		return nil, err
	}
	return kid3.New(kid3.Config{
		Binary:   cmd.String("binary"),
		Executor: &builder.ExecExecutor{Encoding: enc},
	}), nil
}

// tagNumber validates a --tag flag value. Zero selects kid3-cli's default.
func tagNumber(n int) (core.TagNumber, error) {
	switch t := core.TagNumber(n); t {
	case core.TagDefault, core.Tag1, core.Tag2, core.TagBoth:
		return t, nil
	default:
		return 0, fmt.Errorf("invalid tag %d: want 1, 2 or 12", n)
	}
}

// parseAssignments turns "Name=Value" arguments into frames. Values may
// contain "=", names may not be empty.
func parseAssignments(args []string) (core.Frames, error) {
	frames := make(core.Frames, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid assignment %q: want Name=Value", arg)
		}
		frames[name] = value
	}
	return frames, nil
}

// Package builder assembles kid3-cli invocations. Each method appends one
// interactive command (the argument of a -c flag) and returns the builder so
// calls can be chained:
//
//	out, err := builder.New(builder.Config{}).
//		Cd("/music").
//		Ls().
//		RunSync(ctx, "")
package builder

import (
	"context"
	"errors"
	"strings"
)

// DefaultBinary is the executable used when Config.Binary is empty.
const DefaultBinary = "kid3-cli"

// ErrNoCommands is returned when a builder is built or run before any command
// has been added.
var ErrNoCommands = errors.New("please add some commands first")

// Config holds the settings for a Builder.
type Config struct {
	Binary   string   // path to kid3-cli; DefaultBinary if empty
	Executor Executor // runs the process; an ExecExecutor if nil
}

// Builder accumulates kid3-cli commands.
type Builder struct {
	binary   string
	executor Executor
	commands []string
}

// New creates an empty Builder.
func New(cfg Config) *Builder {
	b := &Builder{binary: cfg.Binary, executor: cfg.Executor}
	if b.binary == "" {
		b.binary = DefaultBinary
	}
	if b.executor == nil {
		b.executor = &ExecExecutor{}
	}
	return b
}

// Binary returns the executable the builder invokes.
func (b *Builder) Binary() string {
	return b.binary
}

// Commands returns a copy of the accumulated commands.
func (b *Builder) Commands() []string {
	out := make([]string, len(b.commands))
	copy(out, b.commands)
	return out
}

func (b *Builder) add(command string) *Builder {
	b.commands = append(b.commands, command)
	return b
}

// Args returns the process arguments: one "-c" pair per command, followed by
// filepath when it is not empty.
func (b *Builder) Args(filepath string) ([]string, error) {
	if len(b.commands) == 0 {
		return nil, ErrNoCommands
	}
	args := make([]string, 0, 2*len(b.commands)+1)
	for _, c := range b.commands {
		args = append(args, "-c", c)
	}
	if filepath != "" {
		args = append(args, filepath)
	}
	return args, nil
}

// Build returns the arguments as a single shell-style string, e.g.
//
//	-c pwd -c "set 'title' 'X' 12" "song.mp3"
func (b *Builder) Build(filepath string) (string, error) {
	if len(b.commands) == 0 {
		return "", ErrNoCommands
	}
	parts := make([]string, 0, len(b.commands)+1)
	for _, c := range b.commands {
		parts = append(parts, "-c "+shellQuote(c))
	}
	if filepath != "" {
		parts = append(parts, `"`+escapeDouble(filepath)+`"`)
	}
	return strings.Join(parts, " "), nil
}

// String returns the full command line including the binary. It is meant for
// logs and error messages.
func (b *Builder) String(filepath string) (string, error) {
	line, err := b.Build(filepath)
	if err != nil {
		return "", err
	}
	return b.binary + " " + line, nil
}

// mode selects how invoke waits for the process.
type mode int

const (
	blocking mode = iota
	background
)

// invoke validates the command list synchronously, then runs the process
// either on the calling goroutine or on a new one, reporting through done.
func (b *Builder) invoke(ctx context.Context, filepath string, m mode, done func(string, error)) error {
	args, err := b.Args(filepath)
	if err != nil {
		return err
	}
	run := func() {
		done(b.executor.Execute(ctx, b.binary, args...))
	}
	if m == background {
		go run()
		return nil
	}
	run()
	return nil
}

// RunSync runs the invocation and returns its standard output. Errors from the
// executor are returned unchanged.
func (b *Builder) RunSync(ctx context.Context, filepath string) (string, error) {
	var (
		out    string
		runErr error
	)
	if err := b.invoke(ctx, filepath, blocking, func(o string, e error) {
		out, runErr = o, e
	}); err != nil {
		return "", err
	}
	return out, runErr
}

// Run starts the invocation on a new goroutine and calls done with its output
// once the process exits. ErrNoCommands is returned directly and done is not
// called in that case.
func (b *Builder) Run(ctx context.Context, filepath string, done func(out string, err error)) error {
	return b.invoke(ctx, filepath, background, done)
}

// shellQuote wraps s in double quotes unless it is a bare word.
func shellQuote(s string) string {
	if s != "" && strings.IndexFunc(s, needsQuote) < 0 {
		return s
	}
	return `"` + escapeDouble(s) + `"`
}

func needsQuote(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case r == '-' || r == '_' || r == '.' || r == '/':
		return false
	}
	return true
}

func escapeDouble(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

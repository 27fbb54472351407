package builder

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// Executor runs a process and returns its standard output.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}

// ExitError reports a process that could not be started or exited non-zero.
type ExitError struct {
	Name   string
	Args   []string
	Stderr string
	Err    error
}

func (e *ExitError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		return fmt.Sprintf("%s: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Name, e.Err, msg)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExecExecutor runs processes with os/exec. No shell is involved: every
// argument reaches the process as-is.
type ExecExecutor struct {
	// Dir is the working directory of the process. Empty means the current one.
	Dir string
	// Encoding, when set, is used to decode stdout to UTF-8.
	Encoding encoding.Encoding
}

// Execute implements Executor.
func (x *ExecExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	log.Debug("exec", "binary", name, "args", args, "dir", x.Dir)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = x.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &ExitError{Name: name, Args: args, Stderr: stderr.String(), Err: err}
	}

	if x.Encoding == nil {
		return stdout.String(), nil
	}
	out, err := io.ReadAll(transform.NewReader(&stdout, x.Encoding.NewDecoder()))
	if err != nil {
		return "", fmt.Errorf("decode output: %w", err)
	}
	return string(out), nil
}

// LookupEncoding resolves an IANA character set name such as "windows-1252"
// or "Shift_JIS". An empty name returns a nil Encoding.
func LookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return enc, nil
}

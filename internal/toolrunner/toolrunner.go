// Package toolrunner discovers and runs the external tools that doccheck
// delegates to (the Markdown linter and the site builder).
package toolrunner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"
)

//go:generate go tool mockgen -destination=mocks/mock_runner.go -package=mocks github.com/spboyer/doccheck/internal/toolrunner Runner

// Availability is the outcome of looking a tool up on PATH.
type Availability struct {
	Name  string
	Path  string
	Found bool
}

// Invocation describes one subprocess run.
type Invocation struct {
	// Path is the executable, usually Availability.Path.
	Path string
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Timeout kills the process when exceeded. Zero means no timeout.
	Timeout time.Duration
}

// Result holds the captured outcome of a finished process.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the process exited with status zero.
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// Runner discovers and runs external tools.
type Runner interface {
	// Discover looks name up without running it.
	Discover(name string) Availability

	// Run executes the invocation and waits for it. A non-zero exit status is
	// reported through Result.ExitCode with a nil error; an error means the
	// process could not be started or was stopped by ctx or the timeout.
	Run(ctx context.Context, inv Invocation) (*Result, error)
}

// ExecRunner is the os/exec backed Runner.
type ExecRunner struct{}

var _ Runner = (*ExecRunner)(nil)

// New returns an ExecRunner.
func New() *ExecRunner {
	return &ExecRunner{}
}

func (*ExecRunner) Discover(name string) Availability {
	p, err := exec.LookPath(name)
	if err != nil {
		slog.Debug("tool not found", "tool", name, "error", err)
		return Availability{Name: name}
	}
	return Availability{Name: name, Path: p, Found: true}
}

func (*ExecRunner) Run(ctx context.Context, inv Invocation) (*Result, error) {
	if inv.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, inv.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...)
	cmd.Dir = inv.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	slog.Debug("tool finished", "tool", inv.Path, "args", inv.Args, "dir", inv.Dir, "duration", time.Since(start), "error", err)

	res := &Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err == nil {
		return res, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return res, fmt.Errorf("running %s: %w", inv.Path, ctxErr)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	return nil, fmt.Errorf("running %s: %w", inv.Path, err)
}

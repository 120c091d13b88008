// Package invoker runs the external tools each pipeline stage wraps. The
// tools are opaque: their output streams are passed through to the operator,
// never parsed, and the only machine-readable result is the exit code.
package invoker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Mode selects how a tool's exit code is interpreted.
type Mode int

const (
	// Batch tools report success through their exit code; non-zero is fatal.
	Batch Mode = iota
	// Interactive tools block until the operator closes them. GUI
	// applications routinely exit non-zero on a user-initiated close, so
	// the code is advisory only; whether the stage worked is decided by
	// the artifact check that follows.
	Interactive
)

func (m Mode) String() string {
	if m == Interactive {
		return "interactive"
	}
	return "batch"
}

// Invocation describes one external tool launch.
type Invocation struct {
	Program string
	Args    []string
	Dir     string // working directory; empty means inherit
}

// ProcessFailedError reports a batch tool that exited non-zero.
type ProcessFailedError struct {
	Program  string
	ExitCode int
}

func (e *ProcessFailedError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Program, e.ExitCode)
}

// Runner launches external tools and waits for them. An interface so the
// sequencer can be exercised without spawning real processes.
type Runner interface {
	// Run blocks until the process exits and returns its exit code.
	// In Batch mode a non-zero exit also returns *ProcessFailedError;
	// in Interactive mode only start failures and cancellation are errors.
	Run(ctx context.Context, inv Invocation, mode Mode) (int, error)
}

// ExecRunner launches real processes, inheriting the parent environment and
// streaming the tool's output to the operator.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates an ExecRunner wired to the process's own streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, inv Invocation, mode Mode) (int, error) {
	cmd := exec.CommandContext(ctx, inv.Program, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		// The process never started (missing binary, permission denied).
		// Fatal in every mode.
		return -1, fmt.Errorf("starting %s: %w", inv.Program, err)
	}

	code := exitErr.ExitCode()
	if ctx.Err() != nil {
		// Operator cancellation counts as stage failure regardless of mode.
		return code, fmt.Errorf("%s terminated: %w", inv.Program, ctx.Err())
	}
	if mode == Batch {
		return code, &ProcessFailedError{Program: inv.Program, ExitCode: code}
	}
	return code, nil
}

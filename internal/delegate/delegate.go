// SPDX-License-Identifier: MPL-2.0

package delegate

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/iechor-research/research-launcher/pkg/types"
)

const captureWaitDelay = 2 * time.Second

type (
	// Delegate spawns the interpreter for a LaunchSpec.
	Delegate struct {
		stdin   io.Reader
		stdout  io.Writer
		stderr  io.Writer
		environ func() []string
	}

	// Option configures a Delegate.
	Option func(*Delegate)
)

// WithStdio replaces the inherited standard streams. Passing *os.File values
// hands the descriptors to the child directly; any other reader or writer is
// copied through a pipe.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(d *Delegate) {
		d.stdin, d.stdout, d.stderr = stdin, stdout, stderr
	}
}

// WithEnviron sets the source of the caller environment (default os.Environ).
func WithEnviron(environ func() []string) Option {
	return func(d *Delegate) { d.environ = environ }
}

// New creates a Delegate bound to the process's own standard streams.
func New(opts ...Option) *Delegate {
	d := &Delegate{
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		environ: os.Environ,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run spawns the interpreter with inherited streams and blocks until it exits.
// A non-zero child exit is not an error: it is reported in Result.ExitCode.
// A spawn failure returns a *StartupFailureError.
func (d *Delegate) Run(ctx context.Context, spec *LaunchSpec) (*Result, error) {
	cmd := d.command(ctx, spec)
	cmd.Stdin = d.stdin
	cmd.Stdout = d.stdout
	cmd.Stderr = d.stderr

	slog.Debug("spawning delegate", "interpreter", spec.Interpreter(), "argv", spec.Argv())

	if err := cmd.Start(); err != nil {
		return nil, &StartupFailureError{
			Interpreter: spec.Interpreter(),
			ModulePath:  spec.ModulePath(),
			Err:         err,
		}
	}

	stop := relaySignals(cmd.Process)
	err := cmd.Wait()
	stop()

	result := extractExitCode(cmd.ProcessState, err)
	slog.Debug("delegate exited", "code", result.ExitCode)
	return result, nil
}

// Capture runs the same invocation as Run but buffers stdout and stderr into
// the result. Stdin is not connected.
func (d *Delegate) Capture(ctx context.Context, spec *LaunchSpec) *Result {
	cmd := d.command(ctx, spec)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Grandchildren holding the pipes must not outlive a canceled probe.
	cmd.WaitDelay = captureWaitDelay

	err := cmd.Run()
	result := extractExitCode(cmd.ProcessState, err)
	result.Output = stdout.String()
	result.ErrOutput = stderr.String()
	return result
}

func (d *Delegate) command(ctx context.Context, spec *LaunchSpec) *exec.Cmd {
	cmd := exec.CommandContext(ctx, spec.Interpreter(), spec.Argv()...)
	cmd.Env = spec.Environ(d.environ())
	return cmd
}

// extractExitCode maps a finished command to a Result. Failures that are not
// a child exit status (e.g. the program could not be started) keep the
// fallback code and set Result.Error.
func extractExitCode(state *os.ProcessState, err error) *Result {
	result := &Result{}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.ExitCode = types.ExitSuccess
	case errors.As(err, &exitErr):
		result.ExitCode = exitCodeOf(exitErr.ProcessState)
	case state != nil:
		result.ExitCode = exitCodeOf(state)
		result.Error = err
	default:
		result.ExitCode = types.ExitFailure
		result.Error = err
	}
	return result
}

// SPDX-License-Identifier: MPL-2.0

package delegate

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// DefaultPrecheckTimeout bounds the interpreter version probe.
const DefaultPrecheckTimeout = 10 * time.Second

type (
	// ProbeConfig controls the interpreter availability check.
	ProbeConfig struct {
		// VersionArgs are passed to the interpreter for the probe (default "--version").
		VersionArgs []string
		// Timeout bounds the probe (default DefaultPrecheckTimeout).
		Timeout time.Duration
		// MinVersion is advisory: an older interpreter only logs a warning.
		MinVersion string
	}

	// Interpreter describes an interpreter that passed the precheck.
	Interpreter struct {
		// Path is the executable found on PATH.
		Path string
		// Version is the canonical version reported by the probe, or "".
		Version string
	}
)

// Precheck verifies that interpreter can be found and answers a version
// probe before the real invocation is attempted. Any failure returns an
// *InterpreterUnavailableError.
func (d *Delegate) Precheck(ctx context.Context, interpreter string, cfg ProbeConfig) (*Interpreter, error) {
	if interpreter == "" {
		interpreter = DefaultInterpreter
	}

	path, err := exec.LookPath(interpreter)
	if err != nil {
		return nil, &InterpreterUnavailableError{Interpreter: interpreter, Err: err}
	}

	args := cfg.VersionArgs
	if len(args) == 0 {
		args = []string{"--version"}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultPrecheckTimeout
	}

	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res := d.Capture(probeCtx, NewLaunchSpec(path, "", args, ""))
	switch {
	case probeCtx.Err() != nil && ctx.Err() == nil:
		return nil, &InterpreterUnavailableError{
			Interpreter: interpreter,
			Probe:       res,
			Err:         fmt.Errorf("version probe timed out after %s", timeout),
		}
	case res.Error != nil:
		return nil, &InterpreterUnavailableError{Interpreter: interpreter, Probe: res, Err: res.Error}
	case !res.ExitCode.IsSuccess():
		return nil, &InterpreterUnavailableError{
			Interpreter: interpreter,
			Probe:       res,
			Err:         fmt.Errorf("version probe exited with code %s: %s", res.ExitCode, strings.TrimSpace(res.ErrOutput)),
		}
	}

	info := &Interpreter{Path: path, Version: ParseVersion(res.Output)}
	slog.Debug("interpreter available", "path", path, "version", info.Version)

	if cfg.MinVersion != "" && info.Version != "" && !MeetsMinimum(info.Version, cfg.MinVersion) {
		slog.Warn("interpreter is older than the supported minimum",
			"interpreter", interpreter, "version", info.Version, "minimum", cfg.MinVersion)
	}
	return info, nil
}

// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	// ExitSuccess is the exit code of a successful run.
	ExitSuccess ExitCode = 0
	// ExitFailure is the launcher's own failure code. It is used for module
	// resolution failures, an unavailable interpreter, spawn failures, and as
	// the fallback when the delegate's exit status carries no numeric code.
	ExitFailure ExitCode = 1
	// signalExitBase is added to a signal number to form the conventional
	// POSIX shell exit code for a signal-terminated process.
	signalExitBase ExitCode = 128
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode represents a process exit status code.
	// The zero value (0) means success. Negative values mean "no code
	// available" (for example, os.ProcessState.ExitCode returns -1 for a
	// signal-terminated child).
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode is negative.
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

// SignalExitCode returns the shell-convention exit code (128+n) for a process
// terminated by signal number n.
func SignalExitCode(signal int) ExitCode {
	return signalExitBase + ExitCode(signal)
}

// Error implements the error interface.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must not be negative)", e.Value)
}

// Unwrap returns ErrInvalidExitCode so callers can use errors.Is for programmatic detection.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// Validate returns an error if the ExitCode is negative.
// Windows exit codes may exceed 255, so no upper bound is enforced.
func (c ExitCode) Validate() error {
	if c < 0 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// OrFallback returns c when it is a usable exit code and ExitFailure otherwise.
func (c ExitCode) OrFallback() ExitCode {
	if c.Validate() != nil {
		return ExitFailure
	}
	return c
}

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }

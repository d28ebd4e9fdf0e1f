// SPDX-License-Identifier: MPL-2.0

package delegate

import (
	"errors"
	"fmt"
)

var (
	// ErrInterpreterUnavailable is the sentinel error wrapped by InterpreterUnavailableError.
	ErrInterpreterUnavailable = errors.New("interpreter unavailable")
	// ErrStartupFailure is the sentinel error wrapped by StartupFailureError.
	ErrStartupFailure = errors.New("failed to start delegate")
)

type (
	// InterpreterUnavailableError is returned by Precheck when the interpreter
	// is not on PATH or its version probe fails.
	InterpreterUnavailableError struct {
		Interpreter string
		// Probe is the captured probe result; nil when the lookup itself failed.
		Probe *Result
		Err   error
	}

	// StartupFailureError is returned when the interpreter process could not
	// be spawned at all.
	StartupFailureError struct {
		Interpreter string
		ModulePath  string
		Err         error
	}
)

// Error implements the error interface.
func (e *InterpreterUnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrInterpreterUnavailable, e.Interpreter)
	}
	return fmt.Sprintf("%s: %s: %v", ErrInterpreterUnavailable, e.Interpreter, e.Err)
}

// Unwrap returns both the sentinel and the underlying cause.
func (e *InterpreterUnavailableError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInterpreterUnavailable}
	}
	return []error{ErrInterpreterUnavailable, e.Err}
}

// Error implements the error interface.
func (e *StartupFailureError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", ErrStartupFailure, e.Interpreter, e.ModulePath, e.Err)
}

// Unwrap returns both the sentinel and the underlying cause.
func (e *StartupFailureError) Unwrap() []error {
	return []error{ErrStartupFailure, e.Err}
}

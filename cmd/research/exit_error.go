// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/iechor-research/research-launcher/pkg/types"
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
// A bare ExitError (nil Err) is the delegate's own exit status and is never
// reported by the launcher.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %s", e.Code)
}

// Unwrap returns the wrapped error for errors.Is/As chains.
func (e *ExitError) Unwrap() error {
	return e.Err
}

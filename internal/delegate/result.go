// SPDX-License-Identifier: MPL-2.0

package delegate

import "github.com/iechor-research/research-launcher/pkg/types"

// Result is the outcome of a delegate invocation.
type Result struct {
	// ExitCode is the child's exit code, or the fallback when none was available.
	ExitCode types.ExitCode
	// Output and ErrOutput hold captured streams (Capture only).
	Output    string
	ErrOutput string
	// Error is set when the child could not be run to completion.
	Error error
}

// Success returns true when the child ran and exited 0.
func (r *Result) Success() bool {
	return r.Error == nil && r.ExitCode.IsSuccess()
}

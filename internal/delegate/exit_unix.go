// SPDX-License-Identifier: MPL-2.0

//go:build unix

package delegate

import (
	"os"
	"syscall"

	"github.com/iechor-research/research-launcher/pkg/types"
)

// exitCodeOf returns the child's exit code, or 128+signal for a child
// terminated by a signal.
func exitCodeOf(state *os.ProcessState) types.ExitCode {
	if state == nil {
		return types.ExitFailure
	}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return types.SignalExitCode(int(ws.Signal()))
	}
	return types.ExitCode(state.ExitCode()).OrFallback()
}

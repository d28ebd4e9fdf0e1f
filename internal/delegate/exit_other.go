// SPDX-License-Identifier: MPL-2.0

//go:build !unix

package delegate

import (
	"os"

	"github.com/iechor-research/research-launcher/pkg/types"
)

func exitCodeOf(state *os.ProcessState) types.ExitCode {
	if state == nil {
		return types.ExitFailure
	}
	return types.ExitCode(state.ExitCode()).OrFallback()
}

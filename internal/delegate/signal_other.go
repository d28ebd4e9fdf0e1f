// SPDX-License-Identifier: MPL-2.0

//go:build !unix

package delegate

import (
	"os"
	"os/signal"
)

// relaySignals absorbs Ctrl+C while the child runs; the console delivers it
// to the child directly.
func relaySignals(_ *os.Process) (stop func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	return func() { signal.Stop(sigs) }
}

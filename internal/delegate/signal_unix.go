// SPDX-License-Identifier: MPL-2.0

//go:build unix

package delegate

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// relaySignals keeps the launcher alive while the child runs. SIGINT and
// SIGQUIT are absorbed since the terminal delivers them to the whole
// foreground process group. SIGTERM and SIGHUP are sent to the launcher alone
// and are forwarded to the child. The returned function stops the relay.
func relaySignals(child *os.Process) (stop func()) {
	sigs := make(chan os.Signal, 4)
	signal.Notify(sigs, os.Interrupt, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGHUP)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigs:
				if sig == syscall.SIGTERM || sig == syscall.SIGHUP {
					if err := child.Signal(sig); err != nil {
						slog.Debug("forwarding signal to delegate", "signal", sig, "error", err)
					}
				}
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}

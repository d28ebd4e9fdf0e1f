// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"os"
	"sync"
)

const (
	// SandboxNone indicates no sandbox environment detected.
	SandboxNone SandboxType = ""
	// SandboxFlatpak indicates a Flatpak sandbox environment.
	SandboxFlatpak SandboxType = "flatpak"
	// SandboxSnap indicates a Snap sandbox environment.
	SandboxSnap SandboxType = "snap"
)

// detectOnce caches the sandbox detection result for the lifetime of the process.
// detectSandboxFrom must not panic: sync.OnceValue re-panics on every call.
var detectOnce = sync.OnceValue(func() SandboxType {
	return detectSandboxFrom(os.Getenv, statFile)
})

// SandboxType identifies the type of application sandbox, if any.
type SandboxType string

// DetectSandbox returns the sandbox the current process runs in.
// The result is cached after the first call.
func DetectSandbox() SandboxType {
	return detectOnce()
}

// HostPathHint returns a remediation hint explaining that system and user
// install locations seen by the launcher belong to the sandbox rather than the
// host. It returns "" outside a sandbox.
func HostPathHint(st SandboxType) string {
	switch st {
	case SandboxFlatpak:
		return "The launcher runs inside a Flatpak sandbox; host paths such as /usr/local/lib are not visible. " +
			"Point RESEARCH_CLI_HOME at a directory shared with the sandbox (for example under your home directory)"
	case SandboxSnap:
		return "The launcher runs inside a Snap; system install locations are those of the snap, not the host. " +
			"Point RESEARCH_CLI_HOME at an installation the snap can read"
	case SandboxNone:
		return ""
	default:
		return ""
	}
}

// detectSandboxFrom performs sandbox detection using the provided lookup functions
// so tests can inject behavior without mutating process-wide state.
func detectSandboxFrom(getenv func(string) string, statFile func(string) error) SandboxType {
	// /.flatpak-info is always present inside Flatpak sandboxes and wins over Snap.
	if err := statFile("/.flatpak-info"); err == nil {
		return SandboxFlatpak
	}
	if getenv("SNAP_NAME") != "" {
		return SandboxSnap
	}
	return SandboxNone
}

func statFile(path string) error {
	_, err := os.Stat(path)
	return err
}

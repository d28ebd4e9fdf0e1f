// SPDX-License-Identifier: MPL-2.0

package platform

// OS name constants for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// ExecutableName returns base with the platform's executable suffix for goos.
func ExecutableName(goos, base string) string {
	if goos == Windows {
		return base + ".exe"
	}
	return base
}

// SPDX-License-Identifier: MPL-2.0

package delegate

import (
	"strings"

	"golang.org/x/mod/semver"
)

// ParseVersion extracts a canonical semantic version ("v20.11.1") from
// interpreter version output such as "v20.11.1\n" or "node 20.11.1".
// It returns "" when no version is recognized.
func ParseVersion(output string) string {
	for _, field := range strings.Fields(output) {
		v := field
		if !strings.HasPrefix(v, "v") {
			v = "v" + v
		}
		if semver.IsValid(v) {
			return semver.Canonical(v)
		}
	}
	return ""
}

// MeetsMinimum reports whether version satisfies minimum. Both accept an
// optional "v" prefix. An unparsable minimum is treated as satisfied, an
// unparsable version is not.
func MeetsMinimum(version, minimum string) bool {
	lowest := ParseVersion(minimum)
	if lowest == "" {
		return true
	}
	v := ParseVersion(version)
	if v == "" {
		return false
	}
	return semver.Compare(v, lowest) >= 0
}

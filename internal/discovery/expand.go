// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/shell"
)

// ErrEmptySearchPath is returned for blank configured search paths.
var ErrEmptySearchPath = errors.New("empty search path")

// ExpandSearchPath expands a leading "~" to home and $VAR / ${VAR} references
// using lookupEnv, the way a POSIX shell would inside double quotes.
// Command substitution is not performed.
func ExpandSearchPath(p string, lookupEnv func(string) (string, bool), home string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", ErrEmptySearchPath
	}

	if p == "~" || strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) {
		if home == "" {
			return "", fmt.Errorf("expand %q: home directory unknown", p)
		}
		p = home + p[1:]
	}

	expanded, err := shell.Expand(p, func(name string) string {
		v, _ := lookupEnv(name)
		return v
	})
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", p, err)
	}
	if strings.TrimSpace(expanded) == "" {
		return "", fmt.Errorf("expand %q: %w", p, ErrEmptySearchPath)
	}
	return filepath.Clean(expanded), nil
}

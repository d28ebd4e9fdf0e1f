// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"os"
	"path/filepath"
	"strings"
)

// Candidate is a single root + suffix combination examined during resolution.
type Candidate struct {
	// Tier is the search tier that produced the candidate.
	Tier TierKind
	// Root is the directory the suffix was joined to.
	Root string
	// Suffix is the relative layout (forward slashes).
	Suffix string
	// Path is the joined path that was tested.
	Path string
	// Exists reports whether Path existed when probed.
	Exists bool
}

// Probe joins each suffix to root in order and returns the first path that
// exists. A missing, empty or whitespace-only root is a normal "no match".
func Probe(root string, suffixes []string) (string, bool) {
	return probe(root, suffixes, nil)
}

// probe is Probe with an observer invoked for every candidate tested.
func probe(root string, suffixes []string, observe func(path, suffix string, exists bool)) (string, bool) {
	if strings.TrimSpace(root) == "" {
		return "", false
	}
	for _, suffix := range suffixes {
		path := filepath.Join(root, filepath.FromSlash(suffix))
		exists := pathExists(path)
		if observe != nil {
			observe(path, suffix, exists)
		}
		if exists {
			return path, true
		}
	}
	return "", false
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"log/slog"
	"path/filepath"
)

const (
	// ManifestMarker is the package manifest marking an install root.
	ManifestMarker = "package.json"
	// PackagesMarker is the workspace directory marking an install root.
	PackagesMarker = "packages"
)

// InferInstallRoot walks upward from the directory containing modulePath and
// returns the first directory that has a package manifest, has a packages
// subdirectory, or is itself named after the product. It returns false when
// the filesystem root is reached without a match.
func InferInstallRoot(modulePath string) (string, bool) {
	abs, err := filepath.Abs(modulePath)
	if err != nil {
		return "", false
	}

	dir := filepath.Dir(abs)
	for {
		if marker, ok := installRootMarker(dir); ok {
			slog.Debug("inferred install root", "dir", dir, "marker", marker)
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func installRootMarker(dir string) (string, bool) {
	switch {
	case pathExists(filepath.Join(dir, ManifestMarker)):
		return ManifestMarker, true
	case dirExists(filepath.Join(dir, PackagesMarker)):
		return PackagesMarker + "/", true
	case filepath.Base(dir) == ProductName:
		return "directory name", true
	default:
		return "", false
	}
}

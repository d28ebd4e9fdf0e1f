// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/iechor-research/research-launcher/pkg/platform"
)

const (
	// TierOverride probes $RESEARCH_CLI_HOME.
	TierOverride TierKind = iota + 1
	// TierExecutable probes next to, and one level above, the launcher binary.
	TierExecutable
	// TierSystem probes platform-conventional system install roots.
	TierSystem
	// TierUser probes install roots under the user's home directory.
	TierUser
	// TierPlatform probes the Windows roaming app-data directory.
	TierPlatform
	// TierConfigured probes the search_paths from the launcher configuration.
	TierConfigured
)

const (
	// OverrideEnvVar names the install root and is the highest-priority search signal.
	OverrideEnvVar = "RESEARCH_CLI_HOME"
	// AppDataEnvVar is the Windows roaming app-data directory.
	AppDataEnvVar = "APPDATA"
	// ProductName is the install directory name of the Research CLI.
	ProductName = "research-cli"
)

// Relative layouts probed under each root, in precedence order. These tables
// are the on-disk contract with Research CLI installations.
var (
	// InstallLayouts are probed under $RESEARCH_CLI_HOME and configured search paths.
	InstallLayouts = []string{
		"packages/cli/dist/index.js",
		"dist/index.js",
		"index.js",
	}

	// ExecutableLayouts are probed under the binary's directory and its parent.
	ExecutableLayouts = []string{
		"lib/" + ProductName + "/packages/cli/dist/index.js",
		"lib/" + ProductName + "/dist/index.js",
		"packages/cli/dist/index.js",
	}

	// SystemLayouts are probed under system, user and app-data roots.
	SystemLayouts = []string{
		"packages/cli/dist/index.js",
		"dist/index.js",
	}

	// SystemRoots are the system install roots probed on every platform.
	SystemRoots = []string{
		"/usr/local/lib/" + ProductName,
		"/opt/" + ProductName,
		"/usr/lib/" + ProductName,
	}

	// DarwinSystemRoots are additional system roots probed on macOS.
	DarwinSystemRoots = []string{
		"/opt/homebrew/lib/" + ProductName,
	}

	// UserRoots are joined to the home directory.
	UserRoots = []string{
		".local/lib/" + ProductName,
		"." + ProductName,
	}
)

type (
	// TierKind identifies a search tier. The numeric order is the precedence order.
	TierKind int

	// Tier is one ordered search rule: lazily computed candidate roots, each
	// probed against a fixed list of relative suffixes.
	Tier struct {
		Kind     TierKind
		Roots    func() []string
		Suffixes []string
	}
)

// String returns a human-readable tier name.
func (k TierKind) String() string {
	switch k {
	case TierOverride:
		return "override ($" + OverrideEnvVar + ")"
	case TierExecutable:
		return "executable-relative"
	case TierSystem:
		return "system"
	case TierUser:
		return "user"
	case TierPlatform:
		return "platform"
	case TierConfigured:
		return "configured search path"
	default:
		return "unknown"
	}
}

// Tiers returns the locator's search tiers in precedence order.
func (l *Locator) Tiers() []Tier {
	return []Tier{
		{Kind: TierOverride, Roots: l.overrideRoots, Suffixes: InstallLayouts},
		{Kind: TierExecutable, Roots: l.executableRoots, Suffixes: ExecutableLayouts},
		{Kind: TierSystem, Roots: l.systemRoots, Suffixes: SystemLayouts},
		{Kind: TierUser, Roots: l.userRoots, Suffixes: SystemLayouts},
		{Kind: TierPlatform, Roots: l.platformRoots, Suffixes: SystemLayouts},
		{Kind: TierConfigured, Roots: l.configuredRoots, Suffixes: InstallLayouts},
	}
}

func (l *Locator) overrideRoots() []string {
	if home, ok := l.OverrideRoot(); ok {
		return []string{home}
	}
	return nil
}

// executableRoots returns the binary's directory and its parent, first for the
// symlink-resolved executable and then for the path as invoked when it differs.
func (l *Locator) executableRoots() []string {
	exe, err := l.executable()
	if err != nil || exe == "" {
		return nil
	}

	var roots []string
	add := func(p string) {
		dir := filepath.Dir(p)
		for _, r := range []string{dir, filepath.Dir(dir)} {
			if !slices.Contains(roots, r) {
				roots = append(roots, r)
			}
		}
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		add(resolved)
	}
	add(exe)
	return roots
}

func (l *Locator) systemRoots() []string {
	roots := slices.Clone(l.system)
	if l.goos == platform.Darwin {
		roots = append(roots, l.darwinSystem...)
	}
	return roots
}

func (l *Locator) userRoots() []string {
	home := l.homeDir()
	if home == "" {
		return nil
	}
	roots := make([]string, 0, len(UserRoots))
	for _, rel := range UserRoots {
		roots = append(roots, filepath.Join(home, filepath.FromSlash(rel)))
	}
	return roots
}

func (l *Locator) platformRoots() []string {
	if l.goos != platform.Windows {
		return nil
	}
	appData, ok := l.lookupEnv(AppDataEnvVar)
	if !ok || appData == "" {
		return nil
	}
	return []string{filepath.Join(appData, ProductName)}
}

func (l *Locator) configuredRoots() []string {
	roots := make([]string, 0, len(l.searchPaths))
	for _, p := range l.searchPaths {
		expanded, err := ExpandSearchPath(p, l.lookupEnv, l.homeDir())
		if err != nil {
			slog.Warn("skipping configured search path", "path", p, "error", err)
			continue
		}
		roots = append(roots, expanded)
	}
	return roots
}

// homeDir returns the user's home directory from the environment
// (USERPROFILE on Windows, HOME elsewhere), or "" when unset.
func (l *Locator) homeDir() string {
	key := "HOME"
	if l.goos == platform.Windows {
		key = "USERPROFILE"
	}
	home, _ := l.lookupEnv(key)
	return home
}

// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
)

// ErrModuleNotFound is the sentinel error wrapped by NotFoundError.
var ErrModuleNotFound = errors.New("research CLI module not found")

type (
	// ResolvedModule is the single module path chosen for a run.
	ResolvedModule struct {
		// Path is the absolute path to the module entry point.
		Path string
		// Tier is the search tier that produced the match.
		Tier TierKind
		// Root is the candidate root the matching suffix was joined to.
		Root string
	}

	// NotFoundError is returned when no tier produced an existing candidate.
	// It carries every candidate examined so the CLI can list them.
	NotFoundError struct {
		Candidates []Candidate
	}

	// Locator resolves the Research CLI module across the ordered search tiers.
	Locator struct {
		lookupEnv    func(string) (string, bool)
		executable   func() (string, error)
		goos         string
		system       []string
		darwinSystem []string
		searchPaths  []string
	}

	// Option configures a Locator.
	Option func(*Locator)
)

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s (searched %d locations)", ErrModuleNotFound, len(e.Candidates))
}

// Unwrap returns ErrModuleNotFound for errors.Is() compatibility.
func (e *NotFoundError) Unwrap() error { return ErrModuleNotFound }

// SearchedRoots returns the distinct roots examined, in search order.
func (e *NotFoundError) SearchedRoots() []string {
	var roots []string
	for _, c := range e.Candidates {
		if !slices.Contains(roots, c.Root) {
			roots = append(roots, c.Root)
		}
	}
	return roots
}

// WithLookupEnv sets the environment lookup (default os.LookupEnv).
func WithLookupEnv(lookup func(string) (string, bool)) Option {
	return func(l *Locator) { l.lookupEnv = lookup }
}

// WithExecutable fixes the launcher executable path (default os.Executable).
func WithExecutable(path string) Option {
	return func(l *Locator) {
		l.executable = func() (string, error) { return path, nil }
	}
}

// WithGOOS overrides the platform used to select platform-specific tiers.
func WithGOOS(goos string) Option {
	return func(l *Locator) { l.goos = goos }
}

// WithSystemRoots replaces the system tier roots (default SystemRoots and,
// on darwin, DarwinSystemRoots).
func WithSystemRoots(roots ...string) Option {
	return func(l *Locator) {
		l.system = slices.Clone(roots)
		l.darwinSystem = nil
	}
}

// WithSearchPaths sets the configured search paths probed after the contract tiers.
func WithSearchPaths(paths ...string) Option {
	return func(l *Locator) { l.searchPaths = slices.Clone(paths) }
}

// New creates a Locator reading the real process environment unless
// overridden by options.
func New(opts ...Option) *Locator {
	l := &Locator{
		lookupEnv:    os.LookupEnv,
		executable:   os.Executable,
		goos:         runtime.GOOS,
		system:       slices.Clone(SystemRoots),
		darwinSystem: slices.Clone(DarwinSystemRoots),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// OverrideRoot returns the value of $RESEARCH_CLI_HOME. An empty value counts
// as unset.
func (l *Locator) OverrideRoot() (string, bool) {
	v, ok := l.lookupEnv(OverrideEnvVar)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// OverrideSet reports whether $RESEARCH_CLI_HOME is present in the
// environment at all. Unlike OverrideRoot, an empty value counts as set.
func (l *Locator) OverrideSet() bool {
	_, ok := l.lookupEnv(OverrideEnvVar)
	return ok
}

// Resolve evaluates the search tiers in order and returns the first existing
// candidate. Later tiers are never evaluated once a match is found. When
// nothing matches, the error is a *NotFoundError.
func (l *Locator) Resolve(ctx context.Context) (*ResolvedModule, error) {
	var searched []Candidate

	for _, tier := range l.Tiers() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("module resolution canceled: %w", err)
		}

		roots := tier.Roots()
		slog.Debug("evaluating search tier", "tier", tier.Kind, "roots", roots)

		for _, root := range roots {
			path, ok := probe(root, tier.Suffixes, func(path, suffix string, exists bool) {
				slog.Debug("probed candidate", "tier", tier.Kind, "path", path, "exists", exists)
				searched = append(searched, Candidate{
					Tier:   tier.Kind,
					Root:   root,
					Suffix: suffix,
					Path:   path,
					Exists: exists,
				})
			})
			if !ok {
				continue
			}

			abs, err := filepath.Abs(path)
			if err != nil {
				abs = path
			}
			slog.Debug("resolved module", "tier", tier.Kind, "path", abs)
			return &ResolvedModule{Path: abs, Tier: tier.Kind, Root: root}, nil
		}
	}

	return nil, &NotFoundError{Candidates: searched}
}

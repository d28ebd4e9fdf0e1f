// SPDX-License-Identifier: MPL-2.0

// Package discovery locates the Research CLI module (the Node.js entry point
// the launcher delegates to) and infers its install root.
//
// Resolution walks a fixed, ordered list of search tiers and stops at the
// first existing candidate:
//
//  1. Override: $RESEARCH_CLI_HOME
//  2. Executable-relative: the launcher binary's directory and its parent
//  3. System: /usr/local/lib, /opt, /usr/lib install roots
//  4. User: ~/.local/lib/research-cli, ~/.research-cli
//  5. Platform: %APPDATA%\research-cli (Windows only)
//  6. Configured: search_paths from the launcher configuration
//
// The relative layouts probed under each root are part of the launcher's
// external contract; changing them breaks existing installations.
//
// File organization:
//   - probe.go: existence probing of root + suffix candidates
//   - tiers.go: tier kinds, layout tables, and tier construction
//   - discovery.go: Locator, Resolve, and NotFoundError
//   - expand.go: ~ and $VAR expansion of configured search paths
//   - infer.go: upward walk for the install root
package discovery

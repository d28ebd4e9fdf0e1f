// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform helpers: GOOS name constants,
// executable naming, and detection of application sandboxes (Flatpak, Snap)
// that hide host install locations from the launcher.
package platform

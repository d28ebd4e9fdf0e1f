// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette for launcher diagnostics, tuned for dark terminal backgrounds.
const (
	// ColorMuted is gray - used for paths and secondary text.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorError is red - used for error headlines.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - used for warnings and hints.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorHighlight is blue - used for commands and environment variables.
	ColorHighlight = lipgloss.Color("#3B82F6")
)

var (
	// ErrorStyle is for error headlines.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning prefixes and hints.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// CmdStyle is for commands, variables and other literal text.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	// PathStyle is for searched locations.
	PathStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

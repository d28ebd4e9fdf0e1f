// SPDX-License-Identifier: MPL-2.0

// Package config loads the launcher's optional settings using Viper with CUE
// as the file format.
//
// The file lives at <config dir>/research-cli/config.cue (XDG_CONFIG_HOME or
// ~/.config on Linux, ~/Library/Application Support on macOS, %APPDATA% on
// Windows) or at the path named by $RESEARCH_LAUNCHER_CONFIG. Every key can be
// overridden with a RESEARCH_LAUNCHER_<KEY> environment variable. The file is
// validated against the embedded #Config schema (config_schema.cue).
//
// Configuration never changes the launcher contract: the search tiers, the
// forwarded arguments and the exit code passthrough are fixed.
package config

// SPDX-License-Identifier: MPL-2.0

// Package cmd implements the research launcher command.
//
// The launcher has no flags or subcommands of its own: every argument,
// including --help and --version, belongs to the Research CLI and is forwarded
// verbatim. The command locates the installed module, checks that Node.js is
// available, then runs the module with inherited standard streams and exits
// with the delegate's exit code.
package cmd

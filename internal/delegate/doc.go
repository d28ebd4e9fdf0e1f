// SPDX-License-Identifier: MPL-2.0

// Package delegate spawns the Node.js interpreter on the resolved Research CLI
// module and propagates its exit status.
//
// Run inherits the launcher's standard streams directly so interactive
// behavior and streaming output are preserved; Capture buffers them instead
// and is used for the interpreter version probe.
package delegate

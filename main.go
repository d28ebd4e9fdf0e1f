// SPDX-License-Identifier: MPL-2.0

// Command research locates the installed Research CLI and runs it on Node.js.
package main

import "github.com/iechor-research/research-launcher/cmd/research"

func main() {
	cmd.Execute()
}

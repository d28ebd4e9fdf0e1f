// SPDX-License-Identifier: MPL-2.0

//go:build windows

package delegate

import "strings"

// Environment variable names are case-insensitive on Windows.
func envKeyEqual(a, b string) bool { return strings.EqualFold(a, b) }

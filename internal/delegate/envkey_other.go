// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package delegate

func envKeyEqual(a, b string) bool { return a == b }

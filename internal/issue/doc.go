// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// It defines ActionableError (operation, resource, suggestions, cause) and a
// catalog of Markdown remediation pages, rendered with glamour, for the
// launcher's terminal failure states: delegate module not found, interpreter
// unavailable, interpreter startup failure, and unreadable configuration.
package issue

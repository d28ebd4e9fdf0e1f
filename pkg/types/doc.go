// SPDX-License-Identifier: MPL-2.0

// Package types defines small value types shared by the launcher packages
// (discovery, delegate, cmd). These carry semantic meaning and validation but
// have no domain-specific dependencies.
//
// This package is a leaf dependency: it imports only the standard library.
package types

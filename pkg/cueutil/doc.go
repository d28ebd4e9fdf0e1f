// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides the CUE parsing steps shared by configuration loading:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify with the schema definition
//  3. Validate and decode to a Go value
//
// Errors carry the file name and a JSON-style path to the offending field,
// for example "config.cue: precheck_timeout: invalid value".
package cueutil

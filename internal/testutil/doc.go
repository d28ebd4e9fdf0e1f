// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Helpers cover environment variables (MustSetenv, MustUnsetenv, SetHomeDir),
// filesystem fixtures for install layouts (MustMkdirAll, Touch, WriteExecutable),
// and cleanup (MustRemoveAll).
package testutil

// Package testutil provides utilities for testing concat components.
//
// Key components:
//   - Site: a types.Site over any afero.Fs, usually an in-memory one
//   - FailingFs: an afero.Fs wrapper that injects errors for chosen paths
//   - Files helpers: build and inspect types.Files fixtures inline
//
// All test data should be defined inline, not in external files.
package testutil

// Package filesystem provides the on-disk primitives concat relies on.
//
// Everything goes through an afero.Fs so the OS filesystem and in-memory
// test filesystems are interchangeable. Glob bridges afero to doublestar.
package filesystem

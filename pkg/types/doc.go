// Package types defines the core types and interfaces shared by concat.
// This includes the insertion-ordered Files map the build operates on, the
// Site a plugin runs against, and the Plugin function signature.
package types

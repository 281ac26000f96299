// Package paths provides path handling for concat.
//
// Virtual paths (keys of the build's Files map, user patterns, output names)
// are always slash-delimited; Normalize turns user input into that canonical
// form. On-disk paths go through ResolveRoot and Join so they stay absolute
// and platform native. The package also locates the XDG state directory
// used for the log file.
package paths

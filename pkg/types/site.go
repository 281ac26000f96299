package types

import (
	"context"

	"github.com/spf13/afero"
)

// Site is what a plugin knows about the build it runs in
type Site interface {
	// Directory returns the project root. Auxiliary lookups resolve against it.
	Directory() string

	// Fs returns the filesystem used for any on-disk access
	Fs() afero.Fs
}

// Plugin transforms the files of a build in place. It returns nil on
// success and the first error otherwise.
type Plugin func(ctx context.Context, files *Files, site Site) error

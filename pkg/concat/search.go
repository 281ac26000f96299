package concat

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/concat/pkg/filesystem"
	"github.com/arthur-debert/concat/pkg/logging"
	"github.com/arthur-debert/concat/pkg/paths"
	"github.com/spf13/afero"
)

// gatherFromSearchPaths globs pattern below every search path and returns
// the contents of the matching files, search path by search path. Leading
// ".." segments of pattern climb out of the search path. The
// first glob or read error is returned as-is and discards everything read.
func gatherFromSearchPaths(ctx context.Context, fsys afero.Fs, root string, searchPaths []string, pattern string) ([][]byte, error) {
	logger := logging.GetLogger("concat.search")
	var contents [][]byte

	for _, searchPath := range searchPaths {
		base, relPattern := filesystem.ResolvePattern(paths.Join(root, searchPath), pattern)

		matches, err := filesystem.Glob(fsys, base, relPattern)
		if err != nil {
			return nil, err
		}

		for _, match := range matches {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			full := filepath.Join(base, filepath.FromSlash(match))
			if isReserved(root, full) {
				continue
			}

			data, err := filesystem.ReadFile(fsys, full)
			if err != nil {
				return nil, err
			}
			contents = append(contents, data)
		}

		logger.Debug().
			Str("searchPath", searchPath).
			Str("pattern", pattern).
			Int("matches", len(matches)).
			Msg("Searched auxiliary directory")
	}

	return contents, nil
}

// isReserved reports whether full lies in the source subtree of root,
// hidden files included
func isReserved(root, full string) bool {
	rel, ok := paths.Rel(root, full)
	return ok && (rel == paths.ReservedSourceDir || strings.HasPrefix(rel, paths.ReservedSourceDir+"/"))
}

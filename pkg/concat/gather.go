package concat

import (
	"github.com/arthur-debert/concat/pkg/filesystem"
	"github.com/arthur-debert/concat/pkg/paths"
	"github.com/arthur-debert/concat/pkg/types"
)

// gatherFromFiles returns the contents of every entry of files matching
// pattern, in insertion order. Matched entries are removed unless keep is
// set. The keys are snapshotted first so removals never disturb the scan.
func gatherFromFiles(files *types.Files, pattern string, keep bool) [][]byte {
	var contents [][]byte

	for _, path := range files.Keys() {
		if !filesystem.Match(pattern, paths.Normalize(path)) {
			continue
		}

		file, _ := files.Get(path)
		contents = append(contents, file.Contents)

		if !keep {
			files.Delete(path)
		}
	}

	return contents
}

package filesystem

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// Glob returns the regular files below base matching pattern, sorted
// lexically. Matches are relative to base, in slash form. Names starting
// with a dot are only matched by a pattern segment that starts with a dot.
//
// pattern uses doublestar syntax and must not climb out of base, see
// ResolvePattern. A malformed pattern returns
// doublestar.ErrBadPattern and I/O errors are returned unchanged. A base
// directory that does not exist yields no matches.
func Glob(fsys afero.Fs, base, pattern string) ([]string, error) {
	if pattern == "" {
		return nil, nil
	}
	iofs := afero.NewIOFS(afero.NewBasePathFs(fsys, base))

	matches, err := doublestar.Glob(iofs, pattern,
		doublestar.WithFilesOnly(),
		doublestar.WithFailOnIOErrors(),
	)
	if err != nil {
		return nil, err
	}

	matches = slices.DeleteFunc(matches, func(name string) bool {
		return !dotsAllowed(pattern, name)
	})
	slices.Sort(matches)
	return matches, nil
}

// Match reports whether name matches pattern. A malformed pattern never
// matches, and neither does a name with a dot segment the pattern does not
// spell out.
func Match(pattern, name string) bool {
	matched, err := doublestar.Match(pattern, name)
	return err == nil && matched && dotsAllowed(pattern, name)
}

// ResolvePattern moves leading "." and ".." segments of pattern into base,
// so that "../vendor/*.css" below "site/assets" becomes "vendor/*.css" below
// "site".
func ResolvePattern(base, pattern string) (string, string) {
	for {
		switch {
		case pattern == "." || pattern == "..":
			if pattern == ".." {
				base = filepath.Dir(base)
			}
			return base, ""
		case strings.HasPrefix(pattern, "./"):
			pattern = pattern[2:]
		case strings.HasPrefix(pattern, "../"):
			base = filepath.Dir(base)
			pattern = pattern[3:]
		default:
			return base, pattern
		}
	}
}

// dotsAllowed reports whether every segment of name starting with a dot is
// matched by a pattern segment that starts with a dot itself. Wildcards,
// "**" included, never match hidden names on their own.
func dotsAllowed(pattern, name string) bool {
	var dotSegments []string
	for _, segment := range strings.Split(pattern, "/") {
		if strings.HasPrefix(segment, ".") {
			dotSegments = append(dotSegments, segment)
		}
	}

	for _, segment := range strings.Split(name, "/") {
		if !strings.HasPrefix(segment, ".") {
			continue
		}
		if !slices.ContainsFunc(dotSegments, func(p string) bool {
			matched, err := doublestar.Match(p, segment)
			return err == nil && matched
		}) {
			return false
		}
	}
	return true
}

// ReadFile reads a regular file, refusing directories
func ReadFile(fsys afero.Fs, name string) ([]byte, error) {
	info, err := fsys.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(fsys, name)
}

// WriteFile writes data to name, creating parent directories as needed
func WriteFile(fsys afero.Fs, name string, data []byte, perm fs.FileMode) error {
	if err := fsys.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return err
	}
	return afero.WriteFile(fsys, name, data, perm)
}

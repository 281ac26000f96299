package paths

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/concat/pkg/errors"
)

// Environment variable names
const (
	// EnvRoot overrides the project root used by the CLI
	EnvRoot = "CONCAT_ROOT"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for concat-specific files
	AppDirName = "concat"

	// LogFileName is the name of the log file
	LogFileName = "concat.log"

	// ReservedSourceDir is the subtree of the root that auxiliary search
	// never reads: the build already loaded it into the Files map. It stays
	// "src" even when the pipeline reads from another source directory.
	ReservedSourceDir = "src"
)

var separatorRun = regexp.MustCompile(`[\\/]+`)

// Normalize converts a user supplied path or pattern to the canonical
// slash-delimited form: every run of slashes or backslashes becomes a
// single "/". Normalize is idempotent.
func Normalize(path string) string {
	return separatorRun.ReplaceAllString(path, "/")
}

// NormalizeAll applies Normalize to every element, returning a new slice.
// A nil input stays nil.
func NormalizeAll(paths []string) []string {
	if paths == nil {
		return nil
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = Normalize(p)
	}
	return out
}

// ResolveRoot expands home, makes the path absolute, and cleans it
func ResolveRoot(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	abs, err := filepath.Abs(expandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", path)
	}

	return filepath.Clean(abs), nil
}

// Join resolves a normalized fragment against root. Absolute fragments are
// returned cleaned, as-is.
func Join(root, fragment string) string {
	native := filepath.FromSlash(fragment)
	if filepath.IsAbs(native) {
		return filepath.Clean(native)
	}
	return filepath.Join(root, native)
}

// Rel returns target relative to root in slash form. ok is false when
// target is not below root.
func Rel(root, target string) (rel string, ok bool) {
	r, err := filepath.Rel(root, target)
	if err != nil {
		return "", false
	}
	r = filepath.ToSlash(r)
	if r == ".." || strings.HasPrefix(r, "../") {
		return "", false
	}
	return r, true
}

// LogFilePath returns the path to the concat log file.
// Respects XDG_STATE_HOME if set.
func LogFilePath() string {
	xdg.Reload()
	return filepath.Join(xdg.StateHome, AppDirName, LogFileName)
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

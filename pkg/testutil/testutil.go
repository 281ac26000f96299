package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/concat/pkg/types"
	"github.com/spf13/afero"
)

// Site is a types.Site backed by an arbitrary afero filesystem
type Site struct {
	Root string
	FS   afero.Fs
}

// Directory implements types.Site
func (s *Site) Directory() string { return s.Root }

// Fs implements types.Site
func (s *Site) Fs() afero.Fs { return s.FS }

// NewMemorySite returns a site rooted at root on a fresh in-memory filesystem
func NewMemorySite(t *testing.T, root string) *Site {
	t.Helper()
	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll(root, 0755); err != nil {
		t.Fatalf("Failed to create site root %s: %v", root, err)
	}
	return &Site{Root: root, FS: fsys}
}

// WriteFile creates a file below the site root, relative name in slash form.
// It fails the test if the file cannot be created.
func (s *Site) WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	return CreateFile(t, s.FS, filepath.Join(s.Root, filepath.FromSlash(name)), content)
}

// CreateFile creates a file with the given content, creating parent
// directories. It fails the test if the file cannot be created.
func CreateFile(t *testing.T, fsys afero.Fs, path, content string) string {
	t.Helper()

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := afero.WriteFile(fsys, path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// ReadFile returns the content of path. It fails the test on error.
func ReadFile(t *testing.T, fsys afero.Fs, path string) string {
	t.Helper()

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(data)
}

// NewFiles builds a Files map from alternating path/content pairs, in order
func NewFiles(pairs ...string) *types.Files {
	if len(pairs)%2 != 0 {
		panic("testutil.NewFiles: odd number of arguments")
	}
	files := types.NewFiles()
	for i := 0; i < len(pairs); i += 2 {
		files.Set(pairs[i], &types.File{Contents: []byte(pairs[i+1])})
	}
	return files
}

// FilesFixture returns the three-entry map most concat tests start from
func FilesFixture() *types.Files {
	return NewFiles(
		"first/file", "lorem",
		"second/file", " ",
		"third/file", "ipsum",
	)
}

// Snapshot flattens files into path -> content, for assertions
func Snapshot(files *types.Files) map[string]string {
	out := make(map[string]string, files.Len())
	files.Each(func(path string, file *types.File) {
		out[path] = string(file.Contents)
	})
	return out
}

// Contents returns the content stored at path, or fails the test
func Contents(t *testing.T, files *types.Files, path string) string {
	t.Helper()

	file, ok := files.Get(path)
	if !ok {
		t.Fatalf("Expected file %s to exist, have %v", path, files.Keys())
	}
	return string(file.Contents)
}

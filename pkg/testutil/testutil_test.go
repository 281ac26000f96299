package testutil

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySite(t *testing.T) {
	site := NewMemorySite(t, "/project")

	path := site.WriteFile(t, "css/main.css", "body{}")

	assert.Equal(t, "/project", site.Directory())
	assert.Equal(t, "/project/css/main.css", path)
	assert.Equal(t, "body{}", ReadFile(t, site.Fs(), path))
}

func TestNewFilesKeepsOrder(t *testing.T) {
	files := NewFiles("b", "2", "a", "1")

	assert.Equal(t, []string{"b", "a"}, files.Keys())
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, Snapshot(files))
	assert.Equal(t, "2", Contents(t, files, "b"))
}

func TestNewFilesOddArguments(t *testing.T) {
	assert.Panics(t, func() { NewFiles("only-a-path") })
}

func TestFilesFixture(t *testing.T) {
	assert.Equal(t, []string{"first/file", "second/file", "third/file"}, FilesFixture().Keys())
}

func TestFailingFs(t *testing.T) {
	base := afero.NewMemMapFs()
	CreateFile(t, base, "/data/ok.txt", "ok")
	CreateFile(t, base, "/data/bad.txt", "bad")

	failing := NewFailingFs(base)
	injected := &fs.PathError{Op: "open", Path: "/data/bad.txt", Err: errors.New("disk on fire")}
	failing.FailOpen("/data/./bad.txt", injected)

	_, err := afero.ReadFile(failing, "/data/bad.txt")
	assert.Same(t, injected, err)

	data, err := afero.ReadFile(failing, "/data/ok.txt")
	require.NoError(t, err)
	assert.Equal(t, "ok", string(data))

	assert.Equal(t, 1, failing.Opens("/data/bad.txt"))
	assert.Equal(t, 1, failing.Opens("/data/ok.txt"))
}

package testutil

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// FailingFs wraps an afero.Fs and fails Open/OpenFile for selected paths.
// Use *fs.PathError values when the exact message matters: layers such as
// afero.IOFS leave them untouched.
type FailingFs struct {
	afero.Fs

	mu       sync.RWMutex
	failures map[string]error
	opens    map[string]int
}

// NewFailingFs wraps base
func NewFailingFs(base afero.Fs) *FailingFs {
	return &FailingFs{
		Fs:       base,
		failures: make(map[string]error),
		opens:    make(map[string]int),
	}
}

// FailOpen makes every open of path return err
func (f *FailingFs) FailOpen(path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[filepath.Clean(path)] = err
}

// Opens returns how often path was opened
func (f *FailingFs) Opens(path string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.opens[filepath.Clean(path)]
}

func (f *FailingFs) check(name string) error {
	name = filepath.Clean(name)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.opens[name]++
	return f.failures[name]
}

// Open implements afero.Fs
func (f *FailingFs) Open(name string) (afero.File, error) {
	if err := f.check(name); err != nil {
		return nil, err
	}
	return f.Fs.Open(name)
}

// OpenFile implements afero.Fs
func (f *FailingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if err := f.check(name); err != nil {
		return nil, err
	}
	return f.Fs.OpenFile(name, flag, perm)
}

// Name implements afero.Fs
func (f *FailingFs) Name() string {
	return "FailingFs"
}

package types

import (
	"io/fs"
	"slices"
)

// File is a single entry of the virtual filesystem a build works on
type File struct {
	Contents []byte
	// Mode is used when the file is written out. Zero means 0644.
	Mode fs.FileMode
}

// Files maps virtual paths to files, remembering insertion order.
//
// Replacing the file of an existing path keeps its position, new paths are
// appended. Files is not safe for concurrent mutation.
type Files struct {
	keys    []string
	entries map[string]*File
}

// NewFiles creates an empty Files map
func NewFiles() *Files {
	return &Files{entries: make(map[string]*File)}
}

// Len returns the number of entries
func (f *Files) Len() int {
	return len(f.keys)
}

// Keys returns a snapshot of the paths in insertion order
func (f *Files) Keys() []string {
	return slices.Clone(f.keys)
}

// Get returns the file stored at path
func (f *Files) Get(path string) (*File, bool) {
	file, ok := f.entries[path]
	return file, ok
}

// Has reports whether path is present
func (f *Files) Has(path string) bool {
	_, ok := f.entries[path]
	return ok
}

// Set stores file at path
func (f *Files) Set(path string, file *File) {
	if _, ok := f.entries[path]; !ok {
		f.keys = append(f.keys, path)
	}
	f.entries[path] = file
}

// Delete removes path. Deleting a missing path is a no-op.
func (f *Files) Delete(path string) {
	if _, ok := f.entries[path]; !ok {
		return
	}
	delete(f.entries, path)
	if i := slices.Index(f.keys, path); i >= 0 {
		f.keys = slices.Delete(f.keys, i, i+1)
	}
}

// Each calls fn for every entry in insertion order. fn may mutate f; the
// iteration runs over the paths present when Each was called and skips
// paths deleted in the meantime.
func (f *Files) Each(fn func(path string, file *File)) {
	for _, path := range f.Keys() {
		if file, ok := f.entries[path]; ok {
			fn(path, file)
		}
	}
}

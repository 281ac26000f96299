// Package pipeline runs a single-step static build: it reads the source
// directory of a project into a types.Files map, applies one plugin and
// writes the result to the destination directory.
package pipeline

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/concat/pkg/errors"
	"github.com/arthur-debert/concat/pkg/filesystem"
	"github.com/arthur-debert/concat/pkg/logging"
	"github.com/arthur-debert/concat/pkg/types"
	"github.com/spf13/afero"
)

// Default directories, relative to the root
const (
	DefaultSource      = "src"
	DefaultDestination = "build"
)

const defaultFileMode fs.FileMode = 0644

// Pipeline is a build rooted at a directory. It implements types.Site.
type Pipeline struct {
	root        string
	fsys        afero.Fs
	source      string
	destination string
	clean       bool
}

var _ types.Site = (*Pipeline)(nil)

// New creates a pipeline for root on fsys
func New(root string, fsys afero.Fs) *Pipeline {
	return &Pipeline{
		root:        root,
		fsys:        fsys,
		source:      DefaultSource,
		destination: DefaultDestination,
	}
}

// Source sets the directory files are read from
func (p *Pipeline) Source(dir string) *Pipeline {
	p.source = dir
	return p
}

// Destination sets the directory files are written to
func (p *Pipeline) Destination(dir string) *Pipeline {
	p.destination = dir
	return p
}

// Clean makes Write remove the destination first
func (p *Pipeline) Clean(clean bool) *Pipeline {
	p.clean = clean
	return p
}

// Directory implements types.Site
func (p *Pipeline) Directory() string { return p.root }

// Fs implements types.Site
func (p *Pipeline) Fs() afero.Fs { return p.fsys }

// SourcePath returns the absolute source directory
func (p *Pipeline) SourcePath() string { return p.resolve(p.source) }

// DestinationPath returns the absolute destination directory
func (p *Pipeline) DestinationPath() string { return p.resolve(p.destination) }

func (p *Pipeline) resolve(dir string) string {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(p.root, dir)
}

// Read loads every regular file below the source directory, in lexical
// walk order. Keys are slash paths relative to the source directory.
func (p *Pipeline) Read(ctx context.Context) (*types.Files, error) {
	logger := logging.GetLogger("pipeline")
	src := p.SourcePath()
	files := types.NewFiles()

	err := afero.Walk(p.fsys, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		data, err := afero.ReadFile(p.fsys, path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		files.Set(filepath.ToSlash(rel), &types.File{Contents: data, Mode: info.Mode().Perm()})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to read source directory %s", src).
			WithDetail("path", src)
	}

	logger.Debug().Str("source", src).Int("files", files.Len()).Msg("Read source files")
	return files, nil
}

// Write stores every entry of files below the destination directory
func (p *Pipeline) Write(ctx context.Context, files *types.Files) error {
	logger := logging.GetLogger("pipeline")
	dest := p.DestinationPath()

	if p.clean {
		if err := p.fsys.RemoveAll(dest); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to clean destination %s", dest)
		}
	}
	if err := p.fsys.MkdirAll(dest, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create destination %s", dest)
	}

	for _, key := range files.Keys() {
		if err := ctx.Err(); err != nil {
			return err
		}
		file, _ := files.Get(key)

		mode := file.Mode
		if mode == 0 {
			mode = defaultFileMode
		}

		target := filepath.Join(dest, filepath.FromSlash(key))
		if err := filesystem.WriteFile(p.fsys, target, file.Contents, mode); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", target).
				WithDetail("path", key)
		}
	}

	logger.Debug().Str("destination", dest).Int("files", files.Len()).Msg("Wrote build files")
	return nil
}

// Build reads the source, applies plugin and writes the destination. The
// plugin's error is returned unchanged and nothing is written.
func (p *Pipeline) Build(ctx context.Context, plugin types.Plugin) (*types.Files, error) {
	done := logging.LogOperationStart(logging.GetLogger("pipeline"), "build")
	defer done()

	files, err := p.Read(ctx)
	if err != nil {
		return nil, err
	}

	if err := plugin(ctx, files, p); err != nil {
		return files, err
	}

	if err := p.Write(ctx, files); err != nil {
		return files, err
	}
	return files, nil
}

package concat

import (
	"bytes"
	"context"

	"github.com/arthur-debert/concat/pkg/errors"
	"github.com/arthur-debert/concat/pkg/logging"
	"github.com/arthur-debert/concat/pkg/types"
	"golang.org/x/sync/errgroup"
)

// MsgErrOutputExists is the format of the error returned when the output
// path is already taken and ForceOutput is not set
const MsgErrOutputExists = `The file "%s" already exists`

// Concat merges build files into a single output file
type Concat struct {
	config Config
}

// New validates opts and returns a ready to run Concat
func New(opts Options) (*Concat, error) {
	config, err := opts.Resolve()
	if err != nil {
		return nil, err
	}

	logger := logging.WithFields(map[string]interface{}{
		"component":   "concat",
		"output":      config.Output,
		"patterns":    config.Patterns,
		"searchPaths": config.SearchPaths,
		"keep":        config.KeepConcatenated,
		"force":       config.ForceOutput,
	})
	logger.Debug().Msg("Resolved concat options")

	return &Concat{config: config}, nil
}

// Plugin returns the Run method of a new Concat as a types.Plugin
func Plugin(opts Options) (types.Plugin, error) {
	c, err := New(opts)
	if err != nil {
		return nil, err
	}
	return c.Run, nil
}

// Config returns the resolved configuration
func (c *Concat) Config() Config {
	return c.config
}

// Run concatenates the matching files into the output entry of files.
//
// Matching entries are removed from files as they are collected unless
// KeepConcatenated is set. When a search path lookup fails the error is
// returned unchanged and the output is not written; removals that already
// happened are kept.
func (c *Concat) Run(ctx context.Context, files *types.Files, site types.Site) error {
	logger := logging.GetLogger("concat")
	cfg := c.config

	if !cfg.ForceOutput && files.Has(cfg.Output) {
		return errors.Newf(errors.ErrAlreadyExists, MsgErrOutputExists, cfg.Output).
			WithDetails(map[string]interface{}{
				"output": cfg.Output,
				"hint":   "set force_output to overwrite it",
			})
	}

	done := logging.LogOperationStart(logger, "concat")
	defer done()

	fromFiles := make([][][]byte, len(cfg.Patterns))
	fromSearch := make([][][]byte, len(cfg.Patterns))

	group, groupCtx := errgroup.WithContext(ctx)
	if len(cfg.SearchPaths) > 0 {
		for i, pattern := range cfg.Patterns {
			i, pattern := i, pattern
			group.Go(func() error {
				contents, err := gatherFromSearchPaths(groupCtx, site.Fs(), site.Directory(), cfg.SearchPaths, pattern)
				if err != nil {
					return err
				}
				fromSearch[i] = contents
				return nil
			})
		}
	}

	// Only this goroutine touches files.
	for i, pattern := range cfg.Patterns {
		fromFiles[i] = gatherFromFiles(files, pattern, cfg.KeepConcatenated)
		logger.Debug().
			Str("pattern", pattern).
			Int("matches", len(fromFiles[i])).
			Msg("Gathered build files")
	}

	if err := group.Wait(); err != nil {
		logger.Debug().Err(err).Str("output", cfg.Output).Msg("Gathering failed")
		return err
	}

	var parts [][]byte
	for i := range cfg.Patterns {
		parts = append(parts, fromFiles[i]...)
		parts = append(parts, fromSearch[i]...)
	}
	// the trailing empty part terminates the output with one separator
	parts = append(parts, nil)

	contents := bytes.Join(parts, []byte(cfg.Separator))
	if contents == nil {
		contents = []byte{}
	}
	files.Set(cfg.Output, &types.File{Contents: contents, Mode: 0644})

	logger.Info().
		Str("output", cfg.Output).
		Int("files", len(parts)-1).
		Int("bytes", len(contents)).
		Msg("Concatenated files")

	return nil
}

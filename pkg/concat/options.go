package concat

import (
	"github.com/arthur-debert/concat/pkg/errors"
	"github.com/arthur-debert/concat/pkg/paths"
)

// DefaultPattern matches every file of the build
const DefaultPattern = "**/*"

// DefaultSeparator is appended after each file unless told otherwise
const DefaultSeparator = "\n"

// MsgErrOutputMandatory is returned when Options.Output is unusable
const MsgErrOutputMandatory = "`options.output` is mandatory and has to be a non-empty string"

// Options configures a Concat. The zero value of every field but Output
// selects the documented default.
type Options struct {
	// Output is the path the merged file is stored under. Required.
	Output string

	// Files lists the patterns to concatenate, in order. nil selects
	// DefaultPattern; an empty non-nil slice concatenates nothing.
	Files []string

	// InsertNewline controls the separator when Separator is nil: nil or
	// true selects "\n", false selects no separator.
	InsertNewline *bool

	// Separator, when set, is appended after each file verbatim.
	Separator *string

	// KeepConcatenated keeps the matched entries in the Files map.
	KeepConcatenated bool

	// ForceOutput replaces an existing entry at Output instead of failing.
	ForceOutput bool

	// SearchPaths are directories, relative to the site root unless
	// absolute, searched on disk for each pattern.
	SearchPaths []string
}

// Config is the validated, immutable form of Options
type Config struct {
	Output           string
	Patterns         []string
	Separator        string
	KeepConcatenated bool
	ForceOutput      bool
	SearchPaths      []string
}

// Resolve validates o and applies defaults
func (o Options) Resolve() (Config, error) {
	output := paths.Normalize(o.Output)
	if output == "" {
		return Config{}, errors.New(errors.ErrConfigInvalid, MsgErrOutputMandatory)
	}

	patterns := []string{DefaultPattern}
	if o.Files != nil {
		patterns = paths.NormalizeAll(o.Files)
	}

	searchPaths := []string{}
	if o.SearchPaths != nil {
		searchPaths = paths.NormalizeAll(o.SearchPaths)
	}

	return Config{
		Output:           output,
		Patterns:         patterns,
		Separator:        o.separator(),
		KeepConcatenated: o.KeepConcatenated,
		ForceOutput:      o.ForceOutput,
		SearchPaths:      searchPaths,
	}, nil
}

func (o Options) separator() string {
	switch {
	case o.Separator != nil:
		return *o.Separator
	case o.InsertNewline != nil && !*o.InsertNewline:
		return ""
	default:
		return DefaultSeparator
	}
}

// Bool returns a pointer to b, for Options.InsertNewline
func Bool(b bool) *bool { return &b }

// String returns a pointer to s, for Options.Separator
func String(s string) *string { return &s }

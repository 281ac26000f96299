package config

import (
	"bytes"
	"strings"

	"github.com/arthur-debert/concat/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Supported formats for GenerateConfigContent
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// sampleConfig is the starting point written by `concat genconfig`
type sampleConfig struct {
	Source           string   `toml:"source" yaml:"source"`
	Destination      string   `toml:"destination" yaml:"destination"`
	Clean            bool     `toml:"clean" yaml:"clean"`
	Output           string   `toml:"output" yaml:"output"`
	Files            []string `toml:"files" yaml:"files"`
	InsertNewline    bool     `toml:"insert_newline" yaml:"insert_newline"`
	KeepConcatenated bool     `toml:"keep_concatenated" yaml:"keep_concatenated"`
	ForceOutput      bool     `toml:"force_output" yaml:"force_output"`
	SearchPaths      []string `toml:"search_paths" yaml:"search_paths"`
}

const generatedHeader = `# concat configuration
#
# files and search_paths take a string or a list of strings.
# insert_newline takes true ("\n" after each file), false (nothing) or the
# string to append after each file.
`

// GenerateConfigContent renders a sample configuration in the given format
func GenerateConfigContent(format string) (string, error) {
	sample := sampleConfig{
		Source:        "src",
		Destination:   "build",
		Output:        "main.css",
		Files:         []string{"css/reset.css", "css/**/*.css"},
		InsertNewline: true,
		SearchPaths:   []string{},
	}

	var body []byte
	var err error
	switch strings.ToLower(format) {
	case FormatTOML, "":
		body, err = toml.Marshal(sample)
	case FormatYAML, "yml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(sample); err == nil {
			err = enc.Close()
		}
		body = buf.Bytes()
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unsupported format %q, use %s or %s", format, FormatTOML, FormatYAML)
	}
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}

	return generatedHeader + "\n" + string(body), nil
}

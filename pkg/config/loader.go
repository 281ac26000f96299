package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arthur-debert/concat/pkg/concat"
	"github.com/arthur-debert/concat/pkg/errors"
	"github.com/arthur-debert/concat/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read by Load
const EnvPrefix = "CONCAT_"

// Configuration keys
const (
	KeySource           = "source"
	KeyDestination      = "destination"
	KeyClean            = "clean"
	KeyOutput           = "output"
	KeyFiles            = "files"
	KeyInsertNewline    = "insert_newline"
	KeySeparator        = "separator"
	KeyKeepConcatenated = "keep_concatenated"
	KeyForceOutput      = "force_output"
	KeySearchPaths      = "search_paths"
)

// ConfigFileNames are looked up in the root, in order, when no config file
// is given explicitly
var ConfigFileNames = []string{"concat.toml", ".concat.toml", "concat.yaml", "concat.yml"}

// Config is the complete configuration of a build
type Config struct {
	Source      string `koanf:"source"`
	Destination string `koanf:"destination"`
	Clean       bool   `koanf:"clean"`

	// File is the config file that was loaded, empty when none was found
	File string `koanf:"-"`

	// Concat holds the options of the concat step
	Concat concat.Options `koanf:"-"`
}

// LoadOptions controls where Load looks for configuration
type LoadOptions struct {
	// Root is the project root config files are looked up in
	Root string

	// ConfigFile, when set, must exist and replaces the lookup in Root
	ConfigFile string

	// Overrides are applied last, typically from command line flags
	Overrides map[string]interface{}
}

// typedConfig mirrors the keys that decode without ambiguity
type typedConfig struct {
	Source           string `koanf:"source"`
	Destination      string `koanf:"destination"`
	Clean            bool   `koanf:"clean"`
	Output           string `koanf:"output"`
	KeepConcatenated bool   `koanf:"keep_concatenated"`
	ForceOutput      bool   `koanf:"force_output"`
}

// Load merges defaults, the config file, the environment and overrides
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Load system defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load the config file if there is one
	configPath, err := findConfigFile(opts)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		parser, err := parserFor(configPath)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(configPath), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configPath)
		}
		logger.Debug().Str("path", configPath).Msg("Loaded config file")
	}

	// 3. Load env vars
	envK := koanf.New(".")
	if err := envK.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}
	if err := k.Load(confmap.Provider(fromEnv(envK.All()), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to merge env vars")
	}

	// 4. Load overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to merge overrides")
		}
	}

	// 5. Unmarshal
	var typed typedConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &typed,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &typed, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigInvalid, "failed to unmarshal configuration")
	}

	// 6. Decode the keys accepting more than one shape
	concatOpts, err := decodeConcatOptions(k, typed)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Source:      typed.Source,
		Destination: typed.Destination,
		Clean:       typed.Clean,
		File:        configPath,
		Concat:      concatOpts,
	}

	logger.Debug().
		Str("source", cfg.Source).
		Str("destination", cfg.Destination).
		Str("output", cfg.Concat.Output).
		Msg("Configuration loaded")

	return cfg, nil
}

func findConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return "", errors.Wrapf(err, errors.ErrNotFound, "config file %s not found", opts.ConfigFile)
		}
		return opts.ConfigFile, nil
	}

	for _, name := range ConfigFileNames {
		path := filepath.Join(opts.Root, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unsupported config format: %s", path).
			WithDetail("path", path)
	}
}

// fromEnv converts environment strings: list keys are comma separated and
// insert_newline is a boolean when it parses as one
func fromEnv(raw map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(raw))
	for key, value := range raw {
		s, ok := value.(string)
		if !ok {
			out[key] = value
			continue
		}

		switch key {
		case KeyFiles, KeySearchPaths:
			out[key] = splitList(s)
		case KeyInsertNewline:
			if b, err := strconv.ParseBool(s); err == nil {
				out[key] = b
			} else {
				out[key] = s
			}
		default:
			out[key] = s
		}
	}
	return out
}

func splitList(s string) []interface{} {
	list := []interface{}{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}
	return list
}

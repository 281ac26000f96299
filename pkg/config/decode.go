package config

import (
	"github.com/arthur-debert/concat/pkg/concat"
	"github.com/arthur-debert/concat/pkg/errors"
	"github.com/knadh/koanf/v2"
)

func decodeConcatOptions(k *koanf.Koanf, typed typedConfig) (concat.Options, error) {
	opts := concat.Options{
		Output:           typed.Output,
		KeepConcatenated: typed.KeepConcatenated,
		ForceOutput:      typed.ForceOutput,
	}

	var err error
	if opts.Files, err = stringList(KeyFiles, k.Get(KeyFiles)); err != nil {
		return opts, err
	}
	if opts.SearchPaths, err = stringList(KeySearchPaths, k.Get(KeySearchPaths)); err != nil {
		return opts, err
	}
	if opts.InsertNewline, opts.Separator, err = newline(k.Get(KeyInsertNewline)); err != nil {
		return opts, err
	}

	if sep := k.Get(KeySeparator); sep != nil {
		s, ok := sep.(string)
		if !ok {
			return opts, invalid(KeySeparator, "a string", sep)
		}
		opts.Separator = &s
	}

	return opts, nil
}

// stringList accepts a single string or a list of strings. A missing key is
// nil; an empty list stays empty and non-nil.
func stringList(key string, value interface{}) ([]string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{v}, nil
	case []string:
		return append([]string{}, v...), nil
	case []interface{}:
		list := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, invalid(key, "a string or a list of strings", value)
			}
			list = append(list, s)
		}
		return list, nil
	default:
		return nil, invalid(key, "a string or a list of strings", value)
	}
}

// newline accepts a boolean or a separator string
func newline(value interface{}) (*bool, *string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil, nil
	case bool:
		return &v, nil, nil
	case string:
		return nil, &v, nil
	default:
		return nil, nil, invalid(KeyInsertNewline, "a boolean or a string", value)
	}
}

func invalid(key, want string, got interface{}) error {
	return errors.Newf(errors.ErrConfigInvalid, "%s must be %s, got %T", key, want, got).
		WithDetail("key", key)
}

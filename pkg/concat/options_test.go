package concat

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/concat/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRequiresOutput(t *testing.T) {
	_, err := Options{Output: ""}.Resolve()
	require.Error(t, err)
	assert.EqualError(t, err, "`options.output` is mandatory and has to be a non-empty string")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))

	_, err = New(Options{})
	assert.EqualError(t, err, MsgErrOutputMandatory)
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := Options{Output: "output/path"}.Resolve()
	require.NoError(t, err)

	assert.Equal(t, Config{
		Output:      "output/path",
		Patterns:    []string{"**/*"},
		Separator:   "\n",
		SearchPaths: []string{},
	}, cfg)
}

func TestResolvePatterns(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  []string
	}{
		{"nil selects catch-all", nil, []string{"**/*"}},
		{"empty list selects nothing", []string{}, []string{}},
		{"single pattern", []string{"first/*"}, []string{"first/*"}},
		{"order kept", []string{"third/*", "second/*", "first/*"}, []string{"third/*", "second/*", "first/*"}},
		{"normalized", []string{`js\jquery.js`, `foo//\\bar\\//baz`}, []string{"js/jquery.js", "foo/bar/baz"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Options{Output: "out", Files: tt.files}.Resolve()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Patterns)
		})
	}
}

func TestResolveSeparator(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"unset", Options{}, "\n"},
		{"insert newline true", Options{InsertNewline: Bool(true)}, "\n"},
		{"insert newline false", Options{InsertNewline: Bool(false)}, ""},
		{"custom separator", Options{Separator: String("\r\n")}, "\r\n"},
		{"empty custom separator", Options{Separator: String("")}, ""},
		{"separator wins", Options{InsertNewline: Bool(false), Separator: String(";")}, ";"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Output = "out"
			cfg, err := tt.opts.Resolve()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Separator)
		})
	}
}

func TestResolveNormalizesOutputAndSearchPaths(t *testing.T) {
	cfg, err := Options{
		Output:           `js\app.js`,
		SearchPaths:      []string{`vendor\\css`, "."},
		KeepConcatenated: true,
		ForceOutput:      true,
	}.Resolve()
	require.NoError(t, err)

	assert.Equal(t, "js/app.js", cfg.Output)
	assert.Equal(t, []string{"vendor/css", "."}, cfg.SearchPaths)
	assert.True(t, cfg.KeepConcatenated)
	assert.True(t, cfg.ForceOutput)
}

func TestResolveDoesNotAliasInput(t *testing.T) {
	files := []string{"a/*"}
	c, err := New(Options{Output: "out", Files: files})
	require.NoError(t, err)

	files[0] = "changed"
	assert.Equal(t, []string{"a/*"}, c.Config().Patterns)
}

func TestNewLogsResolvedOptions(t *testing.T) {
	var buf bytes.Buffer
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	_, err := New(Options{Output: "main.css", Files: []string{`css\*.css`}})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Resolved concat options")
	assert.Contains(t, out, `"output":"main.css"`)
	assert.Contains(t, out, `"patterns":["css/*.css"]`)
}

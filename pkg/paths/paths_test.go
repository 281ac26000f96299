package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/concat/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"canonical path unchanged", "js/app.js", "js/app.js"},
		{"backslashes", `js\app.js`, "js/app.js"},
		{"mixed runs", `foo//\\bar\\//baz`, "foo/bar/baz"},
		{"leading and trailing", `//foo\`, "/foo/"},
		{"glob pattern", `js\**\*.js`, "js/**/*.js"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Normalize(got), "normalize must be idempotent")
		})
	}
}

func TestNormalizeAll(t *testing.T) {
	assert.Nil(t, NormalizeAll(nil))
	assert.Equal(t, []string{}, NormalizeAll([]string{}))
	assert.Equal(t, []string{"a/b", "c/d"}, NormalizeAll([]string{`a\b`, "c//d"}))
}

func TestResolveRoot(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := ResolveRoot("")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("relative path becomes absolute", func(t *testing.T) {
		got, err := ResolveRoot("site/../site")
		require.NoError(t, err)
		cwd, _ := os.Getwd()
		assert.Equal(t, filepath.Join(cwd, "site"), got)
	})

	t.Run("home expansion", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		got, err := ResolveRoot("~/project")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "project"), got)
	})
}

func TestJoinAndRel(t *testing.T) {
	root := filepath.FromSlash("/site")

	assert.Equal(t, filepath.FromSlash("/site/lib"), Join(root, "lib"))
	assert.Equal(t, filepath.FromSlash("/site"), Join(root, "."))
	assert.Equal(t, filepath.FromSlash("/shared/css"), Join(root, "../shared/css"))

	rel, ok := Rel(root, filepath.FromSlash("/site/src/a.md"))
	assert.True(t, ok)
	assert.Equal(t, "src/a.md", rel)

	_, ok = Rel(root, filepath.FromSlash("/shared/a.md"))
	assert.False(t, ok)
}

func TestLogFilePath(t *testing.T) {
	stateDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateDir)

	assert.Equal(t, filepath.Join(stateDir, "concat", "concat.log"), LogFilePath())
}

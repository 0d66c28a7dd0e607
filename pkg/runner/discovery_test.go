package runner_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gorstlint/pkg/lint"
	"github.com/yaklabco/gorstlint/pkg/lint/checkers"
	"github.com/yaklabco/gorstlint/pkg/runner"
)

// writeTree creates files under dir; content defaults to a clean paragraph.
func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		if content == "" {
			content = "Hello.\n"
		}
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

func defaultCheckers() []lint.Checker {
	return checkers.NewRegistry().Defaults()
}

func sampleTree(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"docs/index.rst":       "",
		"docs/intro.po":        "msgid \"\"\nmsgstr \"\"\n",
		"docs/script.py":       "x = 1\n",
		"docs/notes.txt":       "",
		"docs/sub/b.rst":       "",
		"docs/.hidden/x.rst":   "",
		"docs/.secret.rst":     "",
		"build/out.rst":        "",
		"vendor/lib/lib.rst":   "",
		"third_party/tp/a.rst": "",
	})
	t.Chdir(dir)
}

func TestDiscover(t *testing.T) {
	sampleTree(t)

	tests := []struct {
		name string
		opts runner.Options
		want []string
	}{
		{
			name: "walks in lexical order and skips hidden and unserved files",
			opts: runner.Options{},
			want: []string{
				"build/out.rst",
				"docs/index.rst",
				"docs/intro.po",
				"docs/script.py",
				"docs/sub/b.rst",
				"third_party/tp/a.rst",
				"vendor/lib/lib.rst",
			},
		},
		{
			name: "strips leading dot slash",
			opts: runner.Options{Paths: []string{"./docs/sub", "./docs/index.rst"}},
			want: []string{"docs/sub/b.rst", "docs/index.rst"},
		},
		{
			name: "ignores by substring",
			opts: runner.Options{Paths: []string{"docs", "build"}, Ignore: []string{"sub"}},
			want: []string{"docs/index.rst", "docs/intro.po", "docs/script.py", "build/out.rst"},
		},
		{
			name: "ignores a whole explicit directory",
			opts: runner.Options{Paths: []string{"build", "docs/sub"}, Ignore: []string{"build"}},
			want: []string{"docs/sub/b.rst"},
		},
		{
			name: "ignores by glob",
			opts: runner.Options{Paths: []string{"docs"}, Ignore: []string{"*.po", "docs/**/*.rst"}},
			want: []string{"docs/index.rst", "docs/script.py"},
		},
		{
			name: "ignores explicit files",
			opts: runner.Options{Paths: []string{"docs/index.rst"}, Ignore: []string{"docs/index.rst"}},
			want: nil,
		},
		{
			name: "excludes vendored paths",
			opts: runner.Options{Paths: []string{"docs", "vendor", "third_party"}, ExcludeVendored: true},
			want: []string{"docs/index.rst", "docs/intro.po", "docs/script.py", "docs/sub/b.rst"},
		},
		{
			name: "lists a file reached twice once",
			opts: runner.Options{Paths: []string{"docs/index.rst", "docs/sub", "docs/index.rst"}},
			want: []string{"docs/index.rst", "docs/sub/b.rst"},
		},
		{
			name: "keeps unserved explicit files out",
			opts: runner.Options{Paths: []string{"docs/notes.txt"}},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := runner.Discover(context.Background(), tt.opts, defaultCheckers())
			require.NoError(t, err)
			assert.Equal(t, tt.want, files)
		})
	}
}

func TestDiscover_OnlyServedSuffixes(t *testing.T) {
	sampleTree(t)

	reg := checkers.NewRegistry()
	pythonOnly, ok := reg.Get("python-syntax")
	require.True(t, ok)

	files, err := runner.Discover(context.Background(), runner.Options{Paths: []string{"docs"}}, []lint.Checker{pythonOnly})
	require.NoError(t, err)
	assert.Equal(t, []string{"docs/script.py"}, files)
}

func TestDiscover_Errors(t *testing.T) {
	sampleTree(t)

	t.Run("missing path", func(t *testing.T) {
		_, err := runner.Discover(context.Background(), runner.Options{Paths: []string{"docs", "nope"}}, defaultCheckers())
		require.Error(t, err)
		assert.True(t, errors.Is(err, runner.ErrPathNotFound))
		assert.Contains(t, err.Error(), "nope")
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := runner.Discover(ctx, runner.Options{Paths: []string{"docs"}}, defaultCheckers())
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

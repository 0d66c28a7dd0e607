package configloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gorstlint/pkg/config"
)

// projectDir returns a temp directory marked as a VCS root, so discovery
// never climbs out of it.
func projectDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), LoadOptions{WorkingDir: projectDir(t), IgnoreEnv: true})
	require.NoError(t, err)

	assert.Empty(t, result.Path)
	assert.Equal(t, config.DefaultMaxLineLength, result.Config.MaxLineLength)
	assert.Equal(t, config.FormatText, result.Config.Format)
	assert.Equal(t, config.ColorAuto, result.Config.Color)
	assert.Empty(t, result.Config.KnownDirectives)
}

func TestLoad_SphinxTOML(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeFile(t, filepath.Join(dir, SphinxTOML), `[tool.sphinx-lint]
known_directives = [
    # Added by extensions or in conf.py:
    "autoclass",
    "testcode",
]
max_line_length = 100
disable = ["trailing-whitespace"]
`)

	result, err := Load(context.Background(), LoadOptions{WorkingDir: dir, IgnoreEnv: true})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, SphinxTOML), result.Path)
	assert.Equal(t, []string{"autoclass", "testcode"}, result.Config.KnownDirectives)
	assert.Equal(t, 100, result.Config.MaxLineLength)
	assert.Equal(t, []string{"trailing-whitespace"}, result.Config.Disable)
	assert.Empty(t, result.Warnings)
}

func TestLoad_SphinxTOMLTopLevel(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeFile(t, filepath.Join(dir, SphinxTOML), `known_directives = ["literalinclude2"]
sort_by = ["filename", "line"]
colour = "never"

[tool.black]
line-length = 88
`)

	result, err := Load(context.Background(), LoadOptions{WorkingDir: dir, IgnoreEnv: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"literalinclude2"}, result.Config.KnownDirectives)
	assert.Equal(t, []config.SortField{config.SortFilename, config.SortLine}, result.Config.SortBy)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], `unknown key "colour"`)
}

func TestLoad_PyprojectTOML(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeFile(t, filepath.Join(dir, PyprojectTOML), `[project]
name = "docs"

[tool.sphinx-lint]
enable = ["line-too-long"]
jobs = 3
`)
	sub := filepath.Join(dir, "Doc", "library")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	result, err := Load(context.Background(), LoadOptions{WorkingDir: sub, IgnoreEnv: true})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, PyprojectTOML), result.Path)
	assert.Equal(t, []string{"line-too-long"}, result.Config.Enable)
	assert.Equal(t, 3, result.Config.Jobs)
}

func TestLoad_PyprojectWithoutTableIsSkipped(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeFile(t, filepath.Join(dir, ".gorstlint.yml"), "max_line_length: 120\n")
	sub := filepath.Join(dir, "pkg")
	writeFile(t, filepath.Join(sub, PyprojectTOML), "[project]\nname = \"pkg\"\n")

	result, err := Load(context.Background(), LoadOptions{WorkingDir: sub, IgnoreEnv: true})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, ".gorstlint.yml"), result.Path)
	assert.Equal(t, 120, result.Config.MaxLineLength)
}

func TestLoad_SphinxTOMLPreferred(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeFile(t, filepath.Join(dir, SphinxTOML), "[tool.sphinx-lint]\nmax_line_length = 90\n")
	writeFile(t, filepath.Join(dir, PyprojectTOML), "[tool.sphinx-lint]\nmax_line_length = 70\n")

	result, err := Load(context.Background(), LoadOptions{WorkingDir: dir, IgnoreEnv: true})
	require.NoError(t, err)

	assert.Equal(t, 90, result.Config.MaxLineLength)
}

func TestLoad_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	outer := projectDir(t)
	writeFile(t, filepath.Join(outer, ".gorstlint.yml"), "jobs: 2\n")
	inner := filepath.Join(outer, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(inner, ".git"), 0o755))

	result, err := Load(context.Background(), LoadOptions{WorkingDir: inner, IgnoreEnv: true})
	require.NoError(t, err)

	assert.Empty(t, result.Path)
	assert.Zero(t, result.Config.Jobs)
}

func TestLoad_ExplicitAndNoConfig(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeFile(t, filepath.Join(dir, ".gorstlint.yml"), "max_line_length: 120\n")
	explicit := filepath.Join(dir, "ci", "lint.yaml")
	writeFile(t, explicit, "max_line_length: 99\nformat: json\n")

	result, err := Load(context.Background(), LoadOptions{WorkingDir: dir, ExplicitPath: explicit, IgnoreEnv: true})
	require.NoError(t, err)
	assert.Equal(t, explicit, result.Path)
	assert.Equal(t, 99, result.Config.MaxLineLength)
	assert.Equal(t, config.FormatJSON, result.Config.Format)

	result, err = Load(context.Background(), LoadOptions{WorkingDir: dir, IgnoreProjectConfig: true, IgnoreEnv: true})
	require.NoError(t, err)
	assert.Empty(t, result.Path)
	assert.Equal(t, config.DefaultMaxLineLength, result.Config.MaxLineLength)
}

func TestLoad_ParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", SphinxTOML, "[tool.sphinx-lint\nmax_line_length = 1\n"},
		{"toml type", SphinxTOML, "[tool.sphinx-lint]\nmax_line_length = \"long\"\n"},
		{"yaml", ".gorstlint.yml", "max_line_length: [1, 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := projectDir(t)
			writeFile(t, filepath.Join(dir, tt.file), tt.content)

			_, err := Load(context.Background(), LoadOptions{WorkingDir: dir, IgnoreEnv: true})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfigParse)
		})
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeFile(t, filepath.Join(dir, ".gorstlint.yaml"), "format: xml\n")

	_, err := Load(context.Background(), LoadOptions{WorkingDir: dir, IgnoreEnv: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidValue)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, filepath.Join(dir, ".gorstlint.yaml"), validationErr.FilePath)
	assert.Contains(t, err.Error(), `unsupported format "xml"`)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	explicit := filepath.Join(dir, "lint.json")
	writeFile(t, explicit, "{}")

	_, err := Load(context.Background(), LoadOptions{WorkingDir: dir, ExplicitPath: explicit, IgnoreEnv: true})
	require.ErrorIs(t, err, ErrConfigParse)
}

func TestLoad_Precedence(t *testing.T) {
	dir := projectDir(t)
	writeFile(t, filepath.Join(dir, ".gorstlint.yml"), "max_line_length: 120\njobs: 2\nignore: [build]\n")
	t.Setenv("GORSTLINT_JOBS", "6")
	t.Setenv("GORSTLINT_IGNORE", "venv, .tox")

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: dir,
		CLIConfig:  &config.Config{MaxLineLength: 79},
	})
	require.NoError(t, err)

	assert.Equal(t, 79, result.Config.MaxLineLength, "flags win")
	assert.Equal(t, 6, result.Config.Jobs, "environment beats the file")
	assert.Equal(t, []string{"venv", ".tox"}, result.Config.Ignore)
}

func TestLoad_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, LoadOptions{WorkingDir: projectDir(t), IgnoreEnv: true})
	require.ErrorIs(t, err, context.Canceled)
}

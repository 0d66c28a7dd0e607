package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gorstlint/pkg/config"
)

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("deep copies slices", func(t *testing.T) {
		original := config.NewConfig()
		original.KnownDirectives = []string{"my-directive"}
		original.Ignore = []string{"build/"}
		original.SortBy = []config.SortField{config.SortLine}

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, original, clone)
		assert.Equal(t, original, clone)

		clone.KnownDirectives[0] = "other"
		clone.Ignore = append(clone.Ignore, "dist/")
		clone.SortBy[0] = config.SortFilename

		assert.Equal(t, []string{"my-directive"}, original.KnownDirectives)
		assert.Equal(t, []string{"build/"}, original.Ignore)
		assert.Equal(t, []config.SortField{config.SortLine}, original.SortBy)
	})
}

func TestYAMLRoundTrip(t *testing.T) {
	original := config.NewConfig()
	original.KnownDirectives = []string{"literalinclude-ish", "my-code"}
	original.Disable = []string{"horizontal-tab"}
	original.Jobs = 4
	original.SortBy = []config.SortField{config.SortFilename, config.SortLine}

	data, err := original.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "known_directives:")
	assert.Contains(t, string(data), "max_line_length: 80")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestFromYAML(t *testing.T) {
	t.Run("partial document", func(t *testing.T) {
		cfg, err := config.FromYAML([]byte("known_directives:\n  - my-directive\nmax_line_length: 100\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"my-directive"}, cfg.KnownDirectives)
		assert.Equal(t, 100, cfg.MaxLineLength)
		assert.Empty(t, cfg.Format)
	})

	t.Run("malformed document", func(t *testing.T) {
		_, err := config.FromYAML([]byte("known_directives: [unterminated\n"))
		assert.Error(t, err)
	})
}

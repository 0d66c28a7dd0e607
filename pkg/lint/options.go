package lint

import (
	"slices"

	"github.com/yaklabco/gorstlint/pkg/config"
)

// Options are the run-wide settings checkers may consult. An Options value is
// never modified once a run starts.
type Options struct {
	// MaxLineLength is the threshold of line-too-long.
	MaxLineLength int

	// KnownDirectives lists project directives whose content is not markup.
	KnownDirectives []string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{MaxLineLength: config.DefaultMaxLineLength}
}

// OptionsFromConfig extracts checker options from cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	if cfg == nil {
		return opts
	}
	if cfg.MaxLineLength > 0 {
		opts.MaxLineLength = cfg.MaxLineLength
	}
	opts.KnownDirectives = slices.Clone(cfg.KnownDirectives)
	return opts
}

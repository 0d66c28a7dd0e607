// Package runner discovers files and runs checkers over them, in parallel
// once there are enough files.
package runner

import (
	"github.com/yaklabco/gorstlint/pkg/config"
	"github.com/yaklabco/gorstlint/pkg/lint"
)

// Options controls a multi-file run.
type Options struct {
	// Paths are the files or directories to check. Defaults to ".".
	Paths []string

	// Ignore holds path fragments or glob patterns. A path containing a
	// fragment, or matching a pattern, is skipped; so is a directory's whole
	// subtree.
	Ignore []string

	// ExcludeVendored skips vendored and third-party paths.
	ExcludeVendored bool

	// Jobs is the number of workers. 0 or negative means one per CPU; 1
	// always runs sequentially.
	Jobs int

	// SortBy orders the findings of the run. Empty keeps discovery order.
	SortBy []config.SortField

	// Verbose logs every checked file at info level instead of debug.
	Verbose bool
}

// OptionsFromConfig extracts run options from cfg.
func OptionsFromConfig(cfg *config.Config, paths []string) Options {
	opts := Options{Paths: paths}
	if cfg == nil {
		return opts
	}
	opts.Ignore = cfg.Ignore
	opts.ExcludeVendored = cfg.ExcludeVendored
	opts.Jobs = cfg.Jobs
	opts.SortBy = cfg.SortBy
	return opts
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

// Task is one file to check with the run's checkers and options.
type Task struct {
	Path     string
	Checkers []lint.Checker
	Options  lint.Options
}

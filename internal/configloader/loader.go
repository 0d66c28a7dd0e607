// Package configloader finds, reads and merges gorstlint configuration.
// Project settings come from sphinx.toml, pyproject.toml or .gorstlint.yml,
// found by walking up from the working directory; GORSTLINT_* environment
// variables and command-line flags override them.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/gorstlint/pkg/config"
)

// ErrConfigParse is returned when a config file cannot be decoded.
var ErrConfigParse = errors.New("cannot parse config file")

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreProjectConfig skips project config discovery (--no-config).
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Path is the config file that was loaded, if any.
	Path string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (GORSTLINT_*)
//  3. Explicit config file (opts.ExplicitPath) or discovered project config
//  4. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{}
	cfg := config.NewConfig()

	path := opts.ExplicitPath
	if path == "" && !opts.IgnoreProjectConfig {
		found, err := FindProjectConfig(ctx, opts.WorkingDir)
		if err != nil {
			return nil, fmt.Errorf("discover config: %w", err)
		}
		path = found
	}

	if path != "" {
		fileCfg, warnings, err := LoadFile(path)
		if err != nil {
			return nil, err
		}

		validation := ValidateWithFile(fileCfg, path)
		if !validation.Valid() {
			return nil, &validation.Errors[0]
		}

		cfg = merge(cfg, fileCfg)
		result.Path = path
		result.Warnings = append(result.Warnings, warnings...)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// LoadFile reads one config file, choosing the decoder by extension.
func LoadFile(path string) (*config.Config, []string, error) {
	switch {
	case IsTOMLConfig(path):
		return loadTOMLFile(path)
	case IsYAMLConfig(path):
		cfg, err := loadYAMLFile(path)
		return cfg, nil, err
	default:
		return nil, nil, fmt.Errorf("%w: %s: unsupported extension, expected .toml, .yml or .yaml", ErrConfigParse, path)
	}
}

// loadYAMLFile loads a configuration from a YAML file.
func loadYAMLFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigParse, path, err)
	}

	return cfg, nil
}

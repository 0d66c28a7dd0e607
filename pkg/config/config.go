// Package config defines core configuration types for gorstlint.
// These types are pure data structures; loading them from files and the
// environment is the job of internal/configloader.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Severity represents the severity level of a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// OutputFormat specifies the output format for findings.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatSARIF OutputFormat = "sarif"
)

// IsValid returns true if the output format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatTable, FormatJSON, FormatSARIF:
		return true
	default:
		return false
	}
}

// ColorMode controls colored terminal output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is known.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// DefaultMaxLineLength is the line-too-long threshold when none is configured.
const DefaultMaxLineLength = 80

// ErrInvalidValue is returned for configuration values outside their domain.
var ErrInvalidValue = errors.New("invalid configuration value")

// Config is the root configuration structure for gorstlint.
//
// The same field names are used in .gorstlint.yml and in the
// [tool.sphinx-lint] table of sphinx.toml or pyproject.toml.
type Config struct {
	// KnownDirectives lists project directives whose content is not markup.
	KnownDirectives []string `yaml:"known_directives,omitempty" toml:"known_directives"`

	// MaxLineLength is the threshold of the line-too-long checker.
	MaxLineLength int `yaml:"max_line_length,omitempty" toml:"max_line_length"`

	// Enable and Disable select checkers. They are applied before any
	// command-line selection, Enable first.
	Enable  []string `yaml:"enable,omitempty" toml:"enable"`
	Disable []string `yaml:"disable,omitempty" toml:"disable"`

	// Ignore holds path substrings or glob patterns to skip.
	Ignore []string `yaml:"ignore,omitempty" toml:"ignore"`

	// Jobs is the number of parallel workers. 0 means one per CPU.
	Jobs int `yaml:"jobs,omitempty" toml:"jobs"`

	// SortBy orders findings. Empty keeps checker order per file.
	SortBy []SortField `yaml:"sort_by,omitempty" toml:"sort_by"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"format,omitempty" toml:"format"`

	// Color controls colored output.
	Color ColorMode `yaml:"color,omitempty" toml:"color"`

	// ExcludeVendored skips vendored paths during discovery.
	ExcludeVendored bool `yaml:"exclude_vendored,omitempty" toml:"exclude_vendored"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		MaxLineLength: DefaultMaxLineLength,
		Format:        FormatText,
		Color:         ColorAuto,
		Jobs:          0, // 0 means use GOMAXPROCS
	}
}

// Validate checks every field against its domain.
func (c *Config) Validate() error {
	if c.MaxLineLength < 0 {
		return fmt.Errorf("%w: max_line_length must not be negative, got %d", ErrInvalidValue, c.MaxLineLength)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("%w: jobs must not be negative, got %d", ErrInvalidValue, c.Jobs)
	}
	if c.Format != "" && !c.Format.IsValid() {
		return fmt.Errorf("%w: unsupported format %q, supported values are text,table,json,sarif", ErrInvalidValue, c.Format)
	}
	if c.Color != "" && !c.Color.IsValid() {
		return fmt.Errorf("%w: unsupported color mode %q, supported values are auto,always,never", ErrInvalidValue, c.Color)
	}
	for _, field := range c.SortBy {
		if !field.IsValid() {
			return fmt.Errorf("%w: %w", ErrInvalidValue, unsupportedSortField(string(field)))
		}
	}
	for _, name := range c.KnownDirectives {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: known_directives contains an empty name", ErrInvalidValue)
		}
	}
	return nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	clone := *c
	clone.KnownDirectives = slices.Clone(c.KnownDirectives)
	clone.Enable = slices.Clone(c.Enable)
	clone.Disable = slices.Clone(c.Disable)
	clone.Ignore = slices.Clone(c.Ignore)
	clone.SortBy = slices.Clone(c.SortBy)

	return &clone
}

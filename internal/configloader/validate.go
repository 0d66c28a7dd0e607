package configloader

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/gorstlint/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the invalid field (e.g., "ignore[2]").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// Unwrap ties every validation error to config.ErrInvalidValue.
func (e *ValidationError) Unwrap() error {
	return config.ErrInvalidValue
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if err := cfg.Validate(); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Message: strings.TrimPrefix(err.Error(), config.ErrInvalidValue.Error()+": "),
		})
	}

	validateIgnorePatterns(cfg, result)

	return result
}

// validateIgnorePatterns warns about patterns that are not valid globs.
// Such patterns still match as substrings.
func validateIgnorePatterns(cfg *config.Config, result *ValidationResult) {
	for i, pattern := range cfg.Ignore {
		if pattern == "" {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: "empty pattern is skipped",
			})
			continue
		}
		if _, err := glob.Compile(pattern, '/'); err != nil {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   fmt.Sprintf("ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern, matched as a substring only: %v", err),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}

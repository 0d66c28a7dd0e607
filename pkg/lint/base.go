package lint

import (
	"slices"
	"strings"
)

// BaseChecker provides a default implementation of the Checker interface.
// Embed this in checker implementations and override methods as needed.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
// Use NewBaseChecker to build one.
type BaseChecker struct {
	name     string   // kebab-case name
	desc     string   // description, first line is the summary
	suffixes []string // served extensions
}

// NewBaseChecker creates a BaseChecker with the given properties.
func NewBaseChecker(name, desc string, suffixes ...string) BaseChecker {
	return BaseChecker{
		name:     name,
		desc:     desc,
		suffixes: suffixes,
	}
}

// Name returns the checker name.
func (c *BaseChecker) Name() string {
	return c.name
}

// Description returns what the checker looks for.
func (c *BaseChecker) Description() string {
	return c.desc
}

// Suffixes returns the file extensions the checker applies to.
func (c *BaseChecker) Suffixes() []string {
	return slices.Clone(c.suffixes)
}

// DefaultEnabled returns whether the checker is enabled by default.
// Override this method to change the default.
func (c *BaseChecker) DefaultEnabled() bool {
	return true
}

// NeedsRSTView returns whether the checker reads the rst-only view.
// Override this method for checkers that need raw lines.
func (c *BaseChecker) NeedsRSTView() bool {
	return true
}

// Check must be overridden by concrete checker implementations.
// The default implementation returns no issues.
func (c *BaseChecker) Check(_ *Context) []Issue {
	return nil
}

// Serves reports whether checker applies to files with extension ext.
func Serves(checker Checker, ext string) bool {
	return slices.Contains(checker.Suffixes(), ext)
}

// Summary returns the first line of the checker description.
func Summary(checker Checker) string {
	summary, _, _ := strings.Cut(checker.Description(), "\n")
	return summary
}

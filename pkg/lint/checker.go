// Package lint provides the checker interface, registry, selection and the
// per-file dispatch engine for gorstlint.
package lint

import (
	"github.com/yaklabco/gorstlint/pkg/rst"
	"github.com/yaklabco/gorstlint/pkg/rstdoc"
)

// Issue is one problem reported by a checker, before it is attributed to a
// file and a checker name.
type Issue struct {
	// Line is the 1-based line number. 0 refers to the whole file.
	Line int

	// Message is the human-readable description of the problem.
	Message string
}

// Checker defines the interface that all checkers must implement.
type Checker interface {
	// Name returns the unique kebab-case name of the checker
	// (e.g., "trailing-whitespace").
	Name() string

	// Description returns what the checker looks for. The first line is a
	// one-sentence summary.
	Description() string

	// Suffixes returns the file extensions, dot included, the checker applies to.
	Suffixes() []string

	// DefaultEnabled returns whether the checker runs without being enabled
	// explicitly.
	DefaultEnabled() bool

	// NeedsRSTView returns whether the checker expects the rst-only view,
	// where literal blocks and comments are blanked out, instead of raw lines.
	NeedsRSTView() bool

	// Check scans ctx.Lines and returns the issues found, in ascending line
	// order. It must not panic on any valid UTF-8 input.
	Check(ctx *Context) []Issue
}

// Context carries everything a checker needs to inspect one file.
type Context struct {
	// Filename is the path of the file being checked, for messages only.
	Filename string

	// Lines is the view the checker asked for, terminators included.
	Lines []string

	// Options are the run-wide checker options.
	Options Options

	// Cache memoizes derived views for the current file.
	Cache *rstdoc.Cache
}

// Paragraphs returns the paragraphs of ctx.Lines.
func (c *Context) Paragraphs() []rstdoc.Paragraph {
	return c.Cache.Paragraphs(c.Lines)
}

// Clean returns paragraph with every well-formed construct removed.
func (c *Context) Clean(paragraph string) string {
	return c.Cache.Clean(paragraph)
}

// EscapeToNull replaces escaping backslashes with the sentinel.
func (c *Context) EscapeToNull(text string) string {
	return c.Cache.EscapeToNull(text)
}

// Directives returns the directive set configured for this run.
func (c *Context) Directives() *rst.DirectiveSet {
	return c.Cache.Directives()
}

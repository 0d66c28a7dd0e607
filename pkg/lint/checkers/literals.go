package checkers

import (
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/gorstlint/pkg/lint"
	"github.com/yaklabco/gorstlint/pkg/rst"
)

// MissingSpaceAfterLiteralChecker reports inline literals glued to the next
// word.
type MissingSpaceAfterLiteralChecker struct {
	lint.BaseChecker
}

// NewMissingSpaceAfterLiteralChecker creates a new missing space after literal checker.
func NewMissingSpaceAfterLiteralChecker() *MissingSpaceAfterLiteralChecker {
	return &MissingSpaceAfterLiteralChecker{
		BaseChecker: lint.NewBaseChecker(
			"missing-space-after-literal",
			"Search for inline literals immediately followed by a character.\n\n"+
				"Bad:  ``items``s\n"+
				"Good: ``items``\\ s",
			markupSuffixes...,
		),
	}
}

// Check works on cleaned paragraphs: well-formed literals are gone, so any
// remaining ``...`` run failed to end properly.
func (c *MissingSpaceAfterLiteralChecker) Check(ctx *lint.Context) []lint.Issue {
	var issues []lint.Issue
	for _, p := range proseParagraphs(ctx) {
		text := ctx.Clean(p.Text)
		for _, m := range rst.LiteralFollowedByChar.FindAll(text) {
			last, _ := utf8.DecodeLastRuneInString(m.Text())
			if rst.EndsInlineMarkup(string(last)) {
				continue
			}
			issues = append(issues, issuef(lineAt(p.Line, text, m.Start),
				"inline literal missing (escaped) space after literal: %q", m.Text()))
		}
	}
	return issues
}

// UnbalancedInlineLiteralsChecker reports "``" left over once every
// well-formed literal is removed.
type UnbalancedInlineLiteralsChecker struct {
	lint.BaseChecker
}

// NewUnbalancedInlineLiteralsChecker creates a new unbalanced literal delimiters checker.
func NewUnbalancedInlineLiteralsChecker() *UnbalancedInlineLiteralsChecker {
	return &UnbalancedInlineLiteralsChecker{
		BaseChecker: lint.NewBaseChecker(
			"unbalanced-inline-literals-delimiters",
			"Search for unbalanced inline literals delimiters.\n\n"+
				"Bad:  ``hello`` world``\n"+
				"Good: ``hello`` world",
			markupSuffixes...,
		),
	}
}

func (c *UnbalancedInlineLiteralsChecker) Check(ctx *lint.Context) []lint.Issue {
	var issues []lint.Issue
	for _, p := range proseParagraphs(ctx) {
		text := ctx.Clean(p.Text)
		for _, m := range rst.LoneDoubleBacktick.FindAll(text) {
			issues = append(issues, lint.Issue{
				Line:    lineAt(p.Line, text, m.Start),
				Message: "found an unbalanced inline literal markup.",
			})
		}
	}
	return issues
}

// DefaultRoleChecker reports interpreted text without a role. Many projects
// allow it, so the checker is off by default.
type DefaultRoleChecker struct {
	lint.BaseChecker
}

// NewDefaultRoleChecker creates a new default role checker.
func NewDefaultRoleChecker() *DefaultRoleChecker {
	return &DefaultRoleChecker{
		BaseChecker: lint.NewBaseChecker(
			"default-role",
			"Search for default roles (but they are allowed in many projects).\n\n"+
				"Bad:  `print`\n"+
				"Good: ``print``",
			markupSuffixes...,
		),
	}
}

func (c *DefaultRoleChecker) DefaultEnabled() bool { return false }

func (c *DefaultRoleChecker) Check(ctx *lint.Context) []lint.Issue {
	var issues []lint.Issue
	for idx, line := range ctx.Lines {
		line = ctx.EscapeToNull(ctx.Clean(line))
		m, ok := rst.InterpretedText.Find(line)
		if !ok || rst.LineLooksLikeATable(line) {
			continue
		}
		switch {
		case rst.RoleTagAtEnd.MatchString(line[:m.Start]):
			continue // role tag before
		case rst.RoleTagAtStart.MatchString(line[m.End:]):
			continue // role tag after
		case strings.HasPrefix(m.Text(), "``") && strings.HasSuffix(m.Text(), "``"):
			continue // inline literal
		}
		issues = append(issues, lint.Issue{
			Line:    idx + 1,
			Message: "default role used (hint: for inline literals, use double backticks)",
		})
	}
	return issues
}

// gluedDefaultRole finds interpreted text preceded by anything but an
// underscore.
var gluedDefaultRole = rst.InlineMarkup("`", "`", "[^_]")

// MissingSpaceBeforeDefaultRoleChecker reports default roles glued to the
// previous word.
type MissingSpaceBeforeDefaultRoleChecker struct {
	lint.BaseChecker
}

// NewMissingSpaceBeforeDefaultRoleChecker creates a new missing space before default role checker.
func NewMissingSpaceBeforeDefaultRoleChecker() *MissingSpaceBeforeDefaultRoleChecker {
	return &MissingSpaceBeforeDefaultRoleChecker{
		BaseChecker: lint.NewBaseChecker(
			"missing-space-before-default-role",
			"Search for missing spaces before default role.\n\n"+
				"Bad:  the`sum`\n"+
				"Good: the `sum`",
			markupSuffixes...,
		),
	}
}

// Check quotes up to three characters before each span for context.
func (c *MissingSpaceBeforeDefaultRoleChecker) Check(ctx *lint.Context) []lint.Issue {
	var issues []lint.Issue
	for _, p := range proseParagraphs(ctx) {
		text := rst.InterpretedText.ReplaceAll(ctx.Clean(p.Text), "")
		for _, m := range gluedDefaultRole.FindAll(text) {
			around := text[backRunes(text, m.Start, 3):m.End]
			issues = append(issues, issuef(lineAt(p.Line, text, m.Start),
				"missing space before default role: %q.", around))
		}
	}
	return issues
}

// TripleBackticksChecker reports ```foo```, valid but almost always a typo.
type TripleBackticksChecker struct {
	lint.BaseChecker
}

// NewTripleBackticksChecker creates a new triple backticks checker.
func NewTripleBackticksChecker() *TripleBackticksChecker {
	return &TripleBackticksChecker{
		BaseChecker: lint.NewBaseChecker(
			"triple-backticks",
			"Check for triple backticks, like ```Point``` (but it's a valid syntax).\n\n"+
				"Bad:  ```Point```\n"+
				"Good: ``Point``\n\n"+
				"Triple backticks render as `Point`. Sphinx uses them to document\n"+
				"reST itself, elsewhere they are rare.",
			markupSuffixes...,
		),
	}
}

func (c *TripleBackticksChecker) DefaultEnabled() bool { return false }

func (c *TripleBackticksChecker) Check(ctx *lint.Context) []lint.Issue {
	var issues []lint.Issue
	for idx, line := range ctx.Lines {
		if rst.TripleBackticks.MatchString(line) {
			issues = append(issues, lint.Issue{Line: idx + 1, Message: "There's no rst syntax using triple backticks"})
		}
	}
	return issues
}

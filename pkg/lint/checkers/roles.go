package checkers

import (
	"strings"

	"github.com/yaklabco/gorstlint/pkg/lint"
	"github.com/yaklabco/gorstlint/pkg/rst"
	"github.com/yaklabco/gorstlint/pkg/rstdoc"
)

// MissingBacktickAfterRoleChecker reports roles whose payload is never closed.
type MissingBacktickAfterRoleChecker struct {
	lint.BaseChecker
}

// NewMissingBacktickAfterRoleChecker creates a new missing closing backtick checker.
func NewMissingBacktickAfterRoleChecker() *MissingBacktickAfterRoleChecker {
	return &MissingBacktickAfterRoleChecker{
		BaseChecker: lint.NewBaseChecker(
			"missing-backtick-after-role",
			"Search for roles missing their closing backticks.\n\n"+
				"Bad:  :fct:`foo\n"+
				"Good: :fct:`foo`",
			markupSuffixes...,
		),
	}
}

// Check reports at most one unclosed role per paragraph.
func (c *MissingBacktickAfterRoleChecker) Check(ctx *lint.Context) []lint.Issue {
	var issues []lint.Issue
	for _, p := range proseParagraphs(ctx) {
		if m, ok := rst.RoleMissingClosingBacktick.Find(p.Text); ok {
			issues = append(issues, issuef(lineAt(p.Line, p.Text, m.Start),
				"role missing closing backtick: %q", m.Text()))
		}
	}
	return issues
}

// The valid ":literal:`:exc:`Exceptions``" nests a role in a role, while
// ":literal:`:exc:`Exceptions``s" is glued to the next word.
var (
	roleBody       = "([^`]|\\s`+|\\\\`|:" + rst.SimpleName + ":`([^`]|\\s`+|\\\\`)+`)+"
	suspiciousRole = rst.MustCompile(":"+rst.SimpleName+":`"+roleBody+"`[^"+rst.AllowedAfterRole+"]", false)
)

// MissingSpaceAfterRoleChecker reports roles immediately followed by a word
// character.
type MissingSpaceAfterRoleChecker struct {
	lint.BaseChecker
}

// NewMissingSpaceAfterRoleChecker creates a new missing space after role checker.
func NewMissingSpaceAfterRoleChecker() *MissingSpaceAfterRoleChecker {
	return &MissingSpaceAfterRoleChecker{
		BaseChecker: lint.NewBaseChecker(
			"missing-space-after-role",
			"Search for roles immediately followed by a character.\n\n"+
				"Bad:  :exc:`Exception`s.\n"+
				"Good: :exc:`Exceptions`\\ s",
			markupSuffixes...,
		),
	}
}

func (c *MissingSpaceAfterRoleChecker) Check(ctx *lint.Context) []lint.Issue {
	var issues []lint.Issue
	for idx, line := range ctx.Lines {
		if m, ok := suspiciousRole.Find(ctx.Clean(line)); ok {
			issues = append(issues, issuef(idx+1, "role missing (escaped) space after role: %q", m.Text()))
		}
	}
	return issues
}

// RoleWithoutBackticksChecker reports roles whose payload is not quoted.
type RoleWithoutBackticksChecker struct {
	lint.BaseChecker
}

// NewRoleWithoutBackticksChecker creates a new role without backticks checker.
func NewRoleWithoutBackticksChecker() *RoleWithoutBackticksChecker {
	return &RoleWithoutBackticksChecker{
		BaseChecker: lint.NewBaseChecker(
			"role-without-backticks",
			"Search roles without backticks.\n\n"+
				"Bad:  :func:pdb.main\n"+
				"Good: :func:`pdb.main`",
			markupSuffixes...,
		),
	}
}

func (c *RoleWithoutBackticksChecker) Check(ctx *lint.Context) []lint.Issue {
	var issues []lint.Issue
	for idx, line := range ctx.Lines {
		if m, ok := rst.RoleWithNoBackticks.Find(line); ok {
			issues = append(issues, issuef(idx+1, "role with no backticks: %q", m.Text()))
		}
	}
	return issues
}

// BacktickBeforeRoleChecker reports a stray backtick in front of a role.
type BacktickBeforeRoleChecker struct {
	lint.BaseChecker
}

// NewBacktickBeforeRoleChecker creates a new backtick before role checker.
func NewBacktickBeforeRoleChecker() *BacktickBeforeRoleChecker {
	return &BacktickBeforeRoleChecker{
		BaseChecker: lint.NewBaseChecker(
			"backtick-before-role",
			"Search for roles preceded by a backtick.\n\n"+
				"Bad:  `:fct:`sum`\n"+
				"Good: :fct:`sum`",
			markupSuffixes...,
		),
	}
}

func (c *BacktickBeforeRoleChecker) Check(ctx *lint.Context) []lint.Issue {
	var issues []lint.Issue
	for idx, line := range ctx.Lines {
		if !strings.Contains(line, "`") {
			continue
		}
		if rst.BacktickBeforeRole.MatchString(line) {
			issues = append(issues, lint.Issue{Line: idx + 1, Message: "superfluous backtick in front of role"})
		}
	}
	return issues
}

// RoleWithDoubleBackticksChecker reports roles quoted with double backticks.
//
// ":fct:``sum``" is valid markup: plain text followed by an inline literal.
// The checker therefore looks for real inline literals preceded by a role tag.
type RoleWithDoubleBackticksChecker struct {
	lint.BaseChecker
}

// NewRoleWithDoubleBackticksChecker creates a new role with double backticks checker.
func NewRoleWithDoubleBackticksChecker() *RoleWithDoubleBackticksChecker {
	return &RoleWithDoubleBackticksChecker{
		BaseChecker: lint.NewBaseChecker(
			"role-with-double-backticks",
			"Search for roles with double backticks.\n\n"+
				"Bad:  :fct:``sum``\n"+
				"Good: :fct:`sum`",
			markupSuffixes...,
		),
	}
}

// Check peels inline literals off each paragraph, shortest first, and looks
// at what precedes each one.
func (c *RoleWithDoubleBackticksChecker) Check(ctx *lint.Context) []lint.Issue {
	var issues []lint.Issue
	for _, p := range proseParagraphs(ctx) {
		if !strings.Contains(p.Text, "`") {
			continue
		}
		text := ctx.EscapeToNull(p.Text)
		for {
			m, ok := rst.InlineLiteral.Shortest(text)
			if !ok {
				break
			}
			if rst.RoleTagAtEnd.MatchString(text[:m.Start]) {
				issues = append(issues, lint.Issue{
					Line:    lineAt(p.Line, text, m.Start),
					Message: "role use a single backtick, double backtick found.",
				})
			}
			text = text[:m.Start] + text[m.End:]
		}
	}
	return issues
}

// MissingSpaceBeforeRoleChecker reports roles glued to the previous word, or
// missing their leading colon.
type MissingSpaceBeforeRoleChecker struct {
	lint.BaseChecker
}

// NewMissingSpaceBeforeRoleChecker creates a new missing space before role checker.
func NewMissingSpaceBeforeRoleChecker() *MissingSpaceBeforeRoleChecker {
	return &MissingSpaceBeforeRoleChecker{
		BaseChecker: lint.NewBaseChecker(
			"missing-space-before-role",
			"Search for missing spaces before roles.\n\n"+
				"Bad:  the:fct:`sum`, issue:`123`, c:func:`foo`\n"+
				"Good: the :fct:`sum`, :issue:`123`, :c:func:`foo`",
			markupSuffixes...,
		),
	}
}

func (c *MissingSpaceBeforeRoleChecker) Check(ctx *lint.Context) []lint.Issue {
	var issues []lint.Issue
	for _, p := range proseParagraphs(ctx) {
		text := ctx.Clean(p.Text)
		m, ok := rst.RoleGluedWithWord.Find(text)
		if !ok {
			continue
		}
		line := lineAt(p.Line, text, m.Start)
		if rstdoc.LooksLikeGlued(m.Text()) {
			issues = append(issues, issuef(line, "missing space before role (%s).", m.Text()))
		} else {
			issues = append(issues, issuef(line, "role missing opening tag colon (%s).", m.Text()))
		}
	}
	return issues
}

// MissingColonInRoleChecker reports roles missing the colon after their name.
type MissingColonInRoleChecker struct {
	lint.BaseChecker
}

// NewMissingColonInRoleChecker creates a new missing colon in role checker.
func NewMissingColonInRoleChecker() *MissingColonInRoleChecker {
	return &MissingColonInRoleChecker{
		BaseChecker: lint.NewBaseChecker(
			"missing-colon-in-role",
			"Search for missing colons in roles.\n\n"+
				"Bad:  :issue`123`\n"+
				"Good: :issue:`123`",
			markupSuffixes...,
		),
	}
}

func (c *MissingColonInRoleChecker) Check(ctx *lint.Context) []lint.Issue {
	var issues []lint.Issue
	for idx, line := range ctx.Lines {
		if m, ok := rst.RoleMissingRightColon.Find(line); ok {
			issues = append(issues, issuef(idx+1, "role missing colon before first backtick (%s).", m.Text()))
		}
	}
	return issues
}

// UnnecessaryParenthesesChecker reports call parentheses inside :func: and
// :meth: roles, which Sphinx adds by itself.
type UnnecessaryParenthesesChecker struct {
	lint.BaseChecker
}

// NewUnnecessaryParenthesesChecker creates a new unnecessary parentheses checker.
func NewUnnecessaryParenthesesChecker() *UnnecessaryParenthesesChecker {
	return &UnnecessaryParenthesesChecker{
		BaseChecker: lint.NewBaseChecker(
			"unnecessary-parentheses",
			"Check for unnecessary parentheses in :func: and :meth: roles.\n\n"+
				"Bad:  :func:`test()`\n"+
				"Good: :func:`test`",
			markupSuffixes...,
		),
	}
}

func (c *UnnecessaryParenthesesChecker) DefaultEnabled() bool { return false }

func (c *UnnecessaryParenthesesChecker) Check(ctx *lint.Context) []lint.Issue {
	var issues []lint.Issue
	for idx, line := range ctx.Lines {
		if m, ok := rst.RoleWithUnnecessaryParentheses.Find(line); ok {
			issues = append(issues, issuef(idx+1, "unnecessary parentheses in %q", strings.TrimSpace(m.Text())))
		}
	}
	return issues
}

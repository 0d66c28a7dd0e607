package checkers

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/gorstlint/pkg/lint"
	"github.com/yaklabco/gorstlint/pkg/rst"
	"github.com/yaklabco/gorstlint/pkg/rstdoc"
)

// CarriageReturnChecker reports lines holding a carriage return.
type CarriageReturnChecker struct {
	lint.BaseChecker
}

// NewCarriageReturnChecker creates a new carriage return checker.
func NewCarriageReturnChecker() *CarriageReturnChecker {
	return &CarriageReturnChecker{
		BaseChecker: lint.NewBaseChecker(
			"carriage-return",
			`Check for carriage returns (\r) in lines.`,
			sourceSuffixes...,
		),
	}
}

// NeedsRSTView returns false: line terminators are only visible in raw lines.
func (c *CarriageReturnChecker) NeedsRSTView() bool { return false }

// Check reports every line containing "\r".
func (c *CarriageReturnChecker) Check(ctx *lint.Context) []lint.Issue {
	var issues []lint.Issue
	for idx, line := range ctx.Lines {
		if strings.Contains(line, "\r") {
			issues = append(issues, lint.Issue{Line: idx + 1, Message: `\r in line`})
		}
	}
	return issues
}

// HorizontalTabChecker reports lines holding a tab character.
type HorizontalTabChecker struct {
	lint.BaseChecker
}

// NewHorizontalTabChecker creates a new horizontal tab checker.
func NewHorizontalTabChecker() *HorizontalTabChecker {
	return &HorizontalTabChecker{
		BaseChecker: lint.NewBaseChecker(
			"horizontal-tab",
			`Check for horizontal tabs (\t) in lines.`,
			sourceSuffixes...,
		),
	}
}

func (c *HorizontalTabChecker) NeedsRSTView() bool { return false }

func (c *HorizontalTabChecker) Check(ctx *lint.Context) []lint.Issue {
	var issues []lint.Issue
	for idx, line := range ctx.Lines {
		if strings.Contains(line, "\t") {
			issues = append(issues, lint.Issue{Line: idx + 1, Message: "OMG TABS!!!1"})
		}
	}
	return issues
}

// TrailingWhitespaceChecker reports spaces and tabs before the end of a line.
type TrailingWhitespaceChecker struct {
	lint.BaseChecker
}

// NewTrailingWhitespaceChecker creates a new trailing whitespace checker.
func NewTrailingWhitespaceChecker() *TrailingWhitespaceChecker {
	return &TrailingWhitespaceChecker{
		BaseChecker: lint.NewBaseChecker(
			"trailing-whitespace",
			"Check for trailing whitespaces at end of lines.",
			sourceSuffixes...,
		),
	}
}

func (c *TrailingWhitespaceChecker) NeedsRSTView() bool { return false }

func (c *TrailingWhitespaceChecker) Check(ctx *lint.Context) []lint.Issue {
	var issues []lint.Issue
	for idx, line := range ctx.Lines {
		stripped := strings.TrimSuffix(line, "\n")
		if strings.TrimRight(stripped, " \t") != stripped {
			issues = append(issues, lint.Issue{Line: idx + 1, Message: "trailing whitespace"})
		}
	}
	return issues
}

// MissingFinalNewlineChecker reports files whose last line has no newline.
type MissingFinalNewlineChecker struct {
	lint.BaseChecker
}

// NewMissingFinalNewlineChecker creates a new final newline checker.
func NewMissingFinalNewlineChecker() *MissingFinalNewlineChecker {
	return &MissingFinalNewlineChecker{
		BaseChecker: lint.NewBaseChecker(
			"missing-final-newline",
			"Check that the last line of the file ends with a newline.",
			sourceSuffixes...,
		),
	}
}

func (c *MissingFinalNewlineChecker) NeedsRSTView() bool { return false }

func (c *MissingFinalNewlineChecker) Check(ctx *lint.Context) []lint.Issue {
	if len(ctx.Lines) == 0 || strings.HasSuffix(ctx.Lines[len(ctx.Lines)-1], "\n") {
		return nil
	}
	return []lint.Issue{{Line: len(ctx.Lines), Message: "No newline at end of file."}}
}

// Lines exempt from line-too-long.
var (
	longInterpretedText = rst.MustCompile("^\\s*\\W*(:(\\w+:)+)?`.*`\\W*$", false)
	longExplicitMarkup  = rst.MustCompile(`^\s*\.\. `, false)
	longAnonymousTarget = rst.MustCompile(`^\s*__ `, false)
	longLiteral         = rst.MustCompile("^\\s*``[^`]+``$", false)
)

// LineTooLongChecker reports lines longer than Options.MaxLineLength.
type LineTooLongChecker struct {
	lint.BaseChecker
}

// NewLineTooLongChecker creates a new line length checker.
func NewLineTooLongChecker() *LineTooLongChecker {
	return &LineTooLongChecker{
		BaseChecker: lint.NewBaseChecker(
			"line-too-long",
			"Check for line length; this checker is not run by default.\n\n"+
				"Table rows, lone interpreted text, explicit markup, anonymous\n"+
				"targets and lone literals are never reported.",
			markupSuffixes...,
		),
	}
}

func (c *LineTooLongChecker) DefaultEnabled() bool { return false }

// Check measures lines in characters, terminator excluded.
func (c *LineTooLongChecker) Check(ctx *lint.Context) []lint.Issue {
	limit := ctx.Options.MaxLineLength

	var issues []lint.Issue
	for idx, line := range ctx.Lines {
		length := utf8.RuneCountInString(rstdoc.TrimTerminator(line))
		if length <= limit || exemptFromLineLength(line) {
			continue
		}
		issues = append(issues, issuef(idx+1, "Line too long (%d/%d)", length, limit))
	}
	return issues
}

func exemptFromLineLength(line string) bool {
	if trimmed := strings.TrimLeftFunc(line, unicode.IsSpace); trimmed != "" && strings.ContainsRune("+|", rune(trimmed[0])) {
		return true // wide tables
	}
	return longInterpretedText.MatchString(line) ||
		longExplicitMarkup.MatchString(line) ||
		longAnonymousTarget.MatchString(line) ||
		longLiteral.MatchString(line)
}

// DanglingHyphenChecker reports lines ending with a word cut by a hyphen.
type DanglingHyphenChecker struct {
	lint.BaseChecker
}

// NewDanglingHyphenChecker creates a new dangling hyphen checker.
func NewDanglingHyphenChecker() *DanglingHyphenChecker {
	return &DanglingHyphenChecker{
		BaseChecker: lint.NewBaseChecker(
			"dangling-hyphen",
			"Check for lines ending in a hyphen.\n\n"+
				"Bad:  a well-\n"+
				"      known issue\n"+
				"Good: a well-known\n"+
				"      issue",
			".rst",
		),
	}
}

func (c *DanglingHyphenChecker) Check(ctx *lint.Context) []lint.Issue {
	var issues []lint.Issue
	for idx, line := range ctx.Lines {
		stripped := strings.TrimSuffix(line, "\n")
		n := len(stripped)
		if n >= 2 && stripped[n-1] == '-' && 'a' <= stripped[n-2] && stripped[n-2] <= 'z' {
			issues = append(issues, lint.Issue{Line: idx + 1, Message: "Line ends with dangling hyphen"})
		}
	}
	return issues
}

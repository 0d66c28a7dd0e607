package checkers

import (
	"strings"

	"github.com/yaklabco/gorstlint/pkg/lint"
	"github.com/yaklabco/gorstlint/pkg/rst"
)

// MissingSpaceInHyperlinkChecker reports `text<url>`_ with no space before <.
type MissingSpaceInHyperlinkChecker struct {
	lint.BaseChecker
}

// NewMissingSpaceInHyperlinkChecker creates a new missing space in hyperlink checker.
func NewMissingSpaceInHyperlinkChecker() *MissingSpaceInHyperlinkChecker {
	return &MissingSpaceInHyperlinkChecker{
		BaseChecker: lint.NewBaseChecker(
			"missing-space-in-hyperlink",
			"Search for hyperlinks missing a space.\n\n"+
				"Bad:  `Link text<https://example.com>_`\n"+
				"Good: `Link text <https://example.com>_`",
			markupSuffixes...,
		),
	}
}

func (c *MissingSpaceInHyperlinkChecker) Check(ctx *lint.Context) []lint.Issue {
	return hyperlinkIssues(ctx, 1, "missing space before < in hyperlink")
}

// MissingUnderscoreAfterHyperlinkChecker reports `text <url>` with no
// trailing underscore, which renders as interpreted text.
type MissingUnderscoreAfterHyperlinkChecker struct {
	lint.BaseChecker
}

// NewMissingUnderscoreAfterHyperlinkChecker creates a new missing underscore checker.
func NewMissingUnderscoreAfterHyperlinkChecker() *MissingUnderscoreAfterHyperlinkChecker {
	return &MissingUnderscoreAfterHyperlinkChecker{
		BaseChecker: lint.NewBaseChecker(
			"missing-underscore-after-hyperlink",
			"Search for hyperlinks missing underscore after their closing backtick.\n\n"+
				"Bad:  `Link text <https://example.com>`\n"+
				"Good: `Link text <https://example.com>`_",
			markupSuffixes...,
		),
	}
}

func (c *MissingUnderscoreAfterHyperlinkChecker) Check(ctx *lint.Context) []lint.Issue {
	return hyperlinkIssues(ctx, 2, "missing underscore after closing backtick in hyperlink")
}

// hyperlinkIssues reports message for every hyperlink-looking span whose
// numbered group is empty.
func hyperlinkIssues(ctx *lint.Context, group int, message string) []lint.Issue {
	var issues []lint.Issue
	for idx, line := range ctx.Lines {
		if !strings.Contains(line, "`") {
			continue
		}
		for _, m := range rst.SeemsHyperlink.FindAll(line) {
			if m.Group(group) == "" {
				issues = append(issues, lint.Issue{Line: idx + 1, Message: message})
			}
		}
	}
	return issues
}

// HyperlinkReferenceMissingBacktickChecker reports text <url>`_ with no
// opening backtick.
type HyperlinkReferenceMissingBacktickChecker struct {
	lint.BaseChecker
}

// NewHyperlinkReferenceMissingBacktickChecker creates a new hyperlink reference checker.
func NewHyperlinkReferenceMissingBacktickChecker() *HyperlinkReferenceMissingBacktickChecker {
	return &HyperlinkReferenceMissingBacktickChecker{
		BaseChecker: lint.NewBaseChecker(
			"hyperlink-reference-missing-backtick",
			"Search for missing backticks in front of hyperlink references.\n\n"+
				"Bad:  Misc/NEWS <https://example.com/Misc/NEWS>`_\n"+
				"Good: `Misc/NEWS <https://example.com/Misc/NEWS>`_",
			markupSuffixes...,
		),
	}
}

func (c *HyperlinkReferenceMissingBacktickChecker) Check(ctx *lint.Context) []lint.Issue {
	var issues []lint.Issue
	for _, p := range proseParagraphs(ctx) {
		text := rst.InterpretedText.ReplaceAll(ctx.Clean(p.Text), "")
		for _, m := range rst.HyperlinkMissingBacktick.FindAll(text) {
			issues = append(issues, issuef(lineAt(p.Line, text, m.Start),
				"missing backtick before hyperlink reference: %q.", m.Text()))
		}
	}
	return issues
}

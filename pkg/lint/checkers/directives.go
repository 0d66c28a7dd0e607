package checkers

import (
	"github.com/yaklabco/gorstlint/pkg/lint"
	"github.com/yaklabco/gorstlint/pkg/rst"
	"github.com/yaklabco/gorstlint/pkg/rstdoc"
)

// DirectiveWithThreeDotsChecker reports "... name::".
type DirectiveWithThreeDotsChecker struct {
	lint.BaseChecker
}

// NewDirectiveWithThreeDotsChecker creates a new three dots directive checker.
func NewDirectiveWithThreeDotsChecker() *DirectiveWithThreeDotsChecker {
	return &DirectiveWithThreeDotsChecker{
		BaseChecker: lint.NewBaseChecker(
			"directive-with-three-dots",
			"Search for directives with three dots instead of two.\n\n"+
				"Bad:  ... versionchanged:: 3.6\n"+
				"Good:  .. versionchanged:: 3.6",
			markupSuffixes...,
		),
	}
}

func (c *DirectiveWithThreeDotsChecker) Check(ctx *lint.Context) []lint.Issue {
	directives := ctx.Directives()

	var issues []lint.Issue
	for idx, line := range ctx.Lines {
		if directives.ThreeDotDirective(line) {
			issues = append(issues, lint.Issue{Line: idx + 1, Message: "directive should start with two dots, not three."})
		}
	}
	return issues
}

// DirectiveMissingColonsChecker reports comments that name a known directive,
// most likely a directive missing its "::".
type DirectiveMissingColonsChecker struct {
	lint.BaseChecker
}

// NewDirectiveMissingColonsChecker creates a new directive missing colons checker.
func NewDirectiveMissingColonsChecker() *DirectiveMissingColonsChecker {
	return &DirectiveMissingColonsChecker{
		BaseChecker: lint.NewBaseChecker(
			"directive-missing-colons",
			"Search for directive wrongly typed as comments.\n\n"+
				"Bad:  .. versionchanged 3.6.\n"+
				"Good: .. versionchanged:: 3.6",
			markupSuffixes...,
		),
	}
}

func (c *DirectiveMissingColonsChecker) NeedsRSTView() bool { return false }

// Check reads raw lines, since the rst-only view blanks comments out, and
// skips the lines nested inside hidden blocks.
func (c *DirectiveMissingColonsChecker) Check(ctx *lint.Context) []lint.Issue {
	directives := ctx.Directives()

	nested := make(map[int]bool)
	rstdoc.HideNonRSTBlocks(ctx.Lines, directives, func(block rstdoc.HiddenBlock) {
		for idx := range rstdoc.SplitLines(block.Text) {
			nested[block.Line+idx+1] = true
		}
	})

	var issues []lint.Issue
	for idx, line := range ctx.Lines {
		if !nested[idx+1] && directives.SeemsDirective(line) {
			issues = append(issues, lint.Issue{Line: idx + 1, Message: "comment seems to be intended as a directive"})
		}
	}
	return issues
}

// misalignedBlock matches a block line indented by a single space that opens
// a literal block of its own.
var misalignedBlock = rst.MustCompile(`^ [^ ].*::$`, false)

// BadDedentChecker reports literal blocks that look like they end early
// because of a one-space misalignment:
//
//	A 5 lines block::
//
//	    Hello!
//
//	 Looks like another block::
//
//	    But in fact it's not due to the leading space.
type BadDedentChecker struct {
	lint.BaseChecker
}

// NewBadDedentChecker creates a new bad dedent checker.
func NewBadDedentChecker() *BadDedentChecker {
	return &BadDedentChecker{
		BaseChecker: lint.NewBaseChecker(
			"bad-dedent",
			"Check for mis-alignment in indentation in code blocks.\n\n"+
				"A line indented by one space that ends with \"::\" inside a\n"+
				"literal block was most likely meant to start a new paragraph.",
			markupSuffixes...,
		),
	}
}

func (c *BadDedentChecker) NeedsRSTView() bool { return false }

// Check hides blocks itself to receive each hidden block's text.
func (c *BadDedentChecker) Check(ctx *lint.Context) []lint.Issue {
	var issues []lint.Issue
	rstdoc.HideNonRSTBlocks(ctx.Lines, ctx.Directives(), func(block rstdoc.HiddenBlock) {
		for idx, line := range rstdoc.SplitLines(block.Text) {
			if misalignedBlock.MatchString(rstdoc.TrimTerminator(line)) {
				issues = append(issues, lint.Issue{Line: block.Line + idx + 1, Message: "Bad dedent in block"})
			}
		}
	})
	return issues
}

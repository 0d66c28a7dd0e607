package checkers

import (
	"fmt"
	"unicode/utf8"

	"github.com/yaklabco/gorstlint/pkg/lint"
	"github.com/yaklabco/gorstlint/pkg/rst"
	"github.com/yaklabco/gorstlint/pkg/rstdoc"
)

var (
	markupSuffixes = []string{".rst", ".po"}
	sourceSuffixes = []string{".py", ".rst", ".po"}
)

// proseParagraphs returns the paragraphs of ctx that do not look like tables.
func proseParagraphs(ctx *lint.Context) []rstdoc.Paragraph {
	var out []rstdoc.Paragraph
	for _, p := range ctx.Paragraphs() {
		if !rst.ParagraphLooksLikeATable(p.Text) {
			out = append(out, p)
		}
	}
	return out
}

// lineAt returns the line of byte offset within text, a paragraph starting on
// line first.
func lineAt(first int, text string, offset int) int {
	return first + rstdoc.CountLines(text, offset)
}

func issuef(line int, format string, args ...any) lint.Issue {
	return lint.Issue{Line: line, Message: fmt.Sprintf(format, args...)}
}

// backRunes moves offset back by up to n runes.
func backRunes(text string, offset, n int) int {
	for ; n > 0 && offset > 0; n-- {
		_, size := utf8.DecodeLastRuneInString(text[:offset])
		offset -= size
	}
	return offset
}

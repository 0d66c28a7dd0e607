package rstdoc

import (
	"strings"

	"github.com/yaklabco/gorstlint/pkg/rst"
)

// HiddenBlock is a region blanked out of the rst-only view.
type HiddenBlock struct {
	// Line is the line that opened the block: the "::" line, the directive or the
	// comment marker. The hidden text starts on the next line.
	Line int

	// Text holds the hidden lines with the opening line's indentation removed.
	// Blank lines are kept.
	Text string
}

// HideNonRSTBlocks returns lines with literal blocks, opaque directive bodies and
// comments replaced by blank lines. The result always has len(lines) lines.
//
// When onBlock is not nil it is called once per hidden block, in order.
func HideNonRSTBlocks(lines []string, directives *rst.DirectiveSet, onBlock func(HiddenBlock)) []string {
	out := make([]string, 0, len(lines))

	var (
		inLiteral  = -1
		blockStart int
		excluded   []string
	)

	flush := func() {
		if onBlock != nil {
			onBlock(HiddenBlock{Line: blockStart, Text: strings.Join(excluded, "")})
		}
		excluded = excluded[:0]
	}

	for idx, line := range lines {
		if inLiteral >= 0 {
			switch {
			case IsBlank(line):
				excluded = append(excluded, line)
				line = "\n"
			case Indent(line) > inLiteral:
				excluded = append(excluded, line[inLiteral:])
				line = "\n"
			default:
				inLiteral = -1
				flush()
			}
		}

		if inLiteral < 0 && opensOpaqueBlock(line, directives) {
			inLiteral = Indent(line)
			blockStart = idx + 1
			if directives.IsComment(line) {
				line = "\n"
			}
		}

		out = append(out, line)
	}

	if len(excluded) > 0 {
		flush()
	}

	return out
}

// opensOpaqueBlock reports whether the lines indented under line are not markup.
func opensOpaqueBlock(line string, directives *rst.DirectiveSet) bool {
	switch {
	case rst.EmptyCommentStart.MatchString(line):
		return true
	case directives.ContainsRST(line):
		return false
	case directives.ContainsArbitraryContent(line):
		return true
	case rst.ProductionList.MatchString(line):
		return true
	case directives.IsComment(line):
		return true
	}

	// A paragraph ending in "::" introduces a literal block.
	return HasTerminator(line) && strings.HasSuffix(TrimTerminator(line), "::")
}

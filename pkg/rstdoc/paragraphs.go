package rstdoc

import "strings"

// Paragraph is a run of consecutive non-blank lines.
type Paragraph struct {
	// Line is the 1-based line number of the first line of Text.
	Line int

	// Text is the concatenation of the paragraph lines, terminators included.
	Text string
}

// Paragraphs groups lines into paragraphs. A blank line always ends the current
// paragraph.
func Paragraphs(lines []string) []Paragraph {
	var (
		out     []Paragraph
		current strings.Builder
		start   int
	)

	flush := func() {
		if current.Len() > 0 {
			out = append(out, Paragraph{Line: start, Text: current.String()})
			current.Reset()
		}
	}

	for idx, line := range lines {
		if IsBlank(line) {
			flush()
			continue
		}
		if current.Len() == 0 {
			start = idx + 1
		}
		current.WriteString(line)
	}
	flush()

	return out
}

package rst

import "strings"

var (
	gridTableBorder   = MustCompile(`^\+([-=]+\+)+$`, false)
	gridTableRow      = MustCompile(`^\|.*\|$`, false)
	simpleTableBorder = MustCompile(`^=+( +=+)+$`, false)
)

// LineLooksLikeATable reports whether line is part of a grid table or is the
// border of a simple table. A simple table border needs at least two columns, so
// section underlines do not qualify.
func LineLooksLikeATable(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	return gridTableBorder.MatchString(line) ||
		gridTableRow.MatchString(line) ||
		simpleTableBorder.MatchString(line)
}

// ParagraphLooksLikeATable reports whether any line of paragraph looks like a
// table.
func ParagraphLooksLikeATable(paragraph string) bool {
	for line := range strings.Lines(paragraph) {
		if LineLooksLikeATable(line) {
			return true
		}
	}
	return false
}

package lint

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/yaklabco/gorstlint/pkg/config"
)

// FileErrorChecker is the pseudo-checker name of findings about files that
// could not be read or decoded.
const FileErrorChecker = "file-error"

// Finding is one reported issue, attributed to a checker, a file and a line.
type Finding struct {
	// Filename is the path of the file, as discovered.
	Filename string `json:"filename"`

	// Line is the 1-based line number. 0 refers to the whole file.
	Line int `json:"line"`

	// Message is the human-readable description of the issue.
	Message string `json:"message"`

	// Checker is the name of the checker that produced the finding.
	Checker string `json:"checker"`

	// Severity indicates the importance of the finding.
	Severity config.Severity `json:"severity"`
}

// String formats the finding as "file:line: message (checker)".
func (f Finding) String() string {
	return fmt.Sprintf("%s:%d: %s (%s)", f.Filename, f.Line, f.Message, f.Checker)
}

// SortFindings sorts findings in place by fields, the first field being the
// primary key. The sort is stable, so findings that compare equal keep their
// relative order. An empty field list leaves findings untouched.
func SortFindings(findings []Finding, fields []config.SortField) {
	if len(fields) == 0 {
		return
	}

	slices.SortStableFunc(findings, func(a, b Finding) int {
		for _, field := range fields {
			var c int
			switch field {
			case config.SortFilename:
				c = cmp.Compare(a.Filename, b.Filename)
			case config.SortLine:
				c = cmp.Compare(a.Line, b.Line)
			case config.SortErrorType:
				c = cmp.Compare(a.Checker, b.Checker)
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})
}

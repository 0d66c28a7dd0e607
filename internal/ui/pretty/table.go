package pretty

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/gorstlint/pkg/lint"
)

// Table layout constants.
const (
	columnGap       = 2
	minMessageWidth = 10
	ellipsis        = "…"
	ruleChar        = "─"
)

// Table columns, in display order.
const (
	colFile = iota
	colLine
	colMessage
	colChecker
	columnCount
)

var tableHeaders = [columnCount]string{"FILE", "LINE", "MESSAGE", "CHECKER"}

// FormatTable renders findings as aligned FILE, LINE, MESSAGE and CHECKER
// columns, with a rule between files. A positive width truncates messages so
// rows fit in it. Findings of one file are expected to be adjacent.
func (s *Styles) FormatTable(findings []lint.Finding, width int) string {
	if len(findings) == 0 {
		return ""
	}

	rows := make([][columnCount]string, len(findings))
	var widths [columnCount]int
	for c, header := range tableHeaders {
		widths[c] = lipgloss.Width(header)
	}
	for i, finding := range findings {
		rows[i] = [columnCount]string{finding.Filename, strconv.Itoa(finding.Line), finding.Message, finding.Checker}
		for c, cell := range rows[i] {
			widths[c] = max(widths[c], lipgloss.Width(cell))
		}
	}

	if width > 0 {
		fixed := widths[colFile] + widths[colLine] + widths[colChecker] + (columnCount-1)*columnGap
		widths[colMessage] = min(widths[colMessage], max(width-fixed, minMessageWidth))
	}

	total := (columnCount - 1) * columnGap
	for _, w := range widths {
		total += w
	}
	rule := s.Dim.Render(strings.Repeat(ruleChar, total)) + "\n"

	var b strings.Builder
	b.WriteString(joinCells([columnCount]string{
		s.Bold.Render(padRight(tableHeaders[colFile], widths[colFile])),
		s.Bold.Render(padLeft(tableHeaders[colLine], widths[colLine])),
		s.Bold.Render(padRight(tableHeaders[colMessage], widths[colMessage])),
		s.Bold.Render(tableHeaders[colChecker]),
	}))
	b.WriteString(rule)

	for i, finding := range findings {
		if i > 0 && finding.Filename != findings[i-1].Filename {
			b.WriteString(rule)
		}
		row := rows[i]
		b.WriteString(joinCells([columnCount]string{
			s.FilePath.Render(padRight(row[colFile], widths[colFile])),
			s.Location.Render(padLeft(row[colLine], widths[colLine])),
			s.messageStyle(finding.Severity).Render(padRight(truncate(row[colMessage], widths[colMessage]), widths[colMessage])),
			s.Checker.Render(row[colChecker]),
		}))
	}
	b.WriteString(rule)

	return b.String()
}

func joinCells(cells [columnCount]string) string {
	return strings.Join(cells[:], strings.Repeat(" ", columnGap)) + "\n"
}

func padRight(text string, width int) string {
	return text + strings.Repeat(" ", max(width-lipgloss.Width(text), 0))
}

func padLeft(text string, width int) string {
	return strings.Repeat(" ", max(width-lipgloss.Width(text), 0)) + text
}

// truncate shortens text to width display cells, marking the cut with an
// ellipsis.
func truncate(text string, width int) string {
	if lipgloss.Width(text) <= width {
		return text
	}
	var b strings.Builder
	used := 0
	for _, r := range text {
		w := lipgloss.Width(string(r))
		if used+w > width-1 {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String() + ellipsis
}

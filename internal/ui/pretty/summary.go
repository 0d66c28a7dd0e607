package pretty

import (
	"fmt"
	"slices"
	"strings"

	"github.com/yaklabco/gorstlint/pkg/config"
	"github.com/yaklabco/gorstlint/pkg/runner"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 findings (1 error, 11 warnings) in 3 files, 40 files checked".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FindingsTotal == 0 {
		return s.Success.Render("No problems found") +
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesChecked, plural(stats.FilesChecked, wordFile, wordFiles))) + "\n"
	}

	var severityParts []string
	if errs := stats.FindingsBySeverity[config.SeverityError]; errs > 0 {
		severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d %s", errs, plural(errs, "error", "errors"))))
	}
	if warnings := stats.FindingsBySeverity[config.SeverityWarning]; warnings > 0 {
		severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d %s", warnings, plural(warnings, "warning", "warnings"))))
	}
	if infos := stats.FindingsBySeverity[config.SeverityInfo]; infos > 0 {
		severityParts = append(severityParts, s.Info.Render(fmt.Sprintf("%d info", infos)))
	}

	head := fmt.Sprintf("%d %s", stats.FindingsTotal, plural(stats.FindingsTotal, "finding", "findings"))
	if len(severityParts) > 0 {
		head += " (" + strings.Join(severityParts, ", ") + ")"
	}

	parts := []string{
		head + fmt.Sprintf(" in %d %s", stats.FilesWithIssues, plural(stats.FilesWithIssues, wordFile, wordFiles)),
		s.Dim.Render(fmt.Sprintf("%d %s checked", stats.FilesChecked, plural(stats.FilesChecked, wordFile, wordFiles))),
	}
	return strings.Join(parts, ", ") + "\n"
}

// FormatCheckerCounts lists the per-checker finding counts, busiest first.
// Ties are ordered by name.
func (s *Styles) FormatCheckerCounts(stats runner.Stats) string {
	type count struct {
		name string
		n    int
	}
	counts := make([]count, 0, len(stats.FindingsByChecker))
	width := 0
	for name, n := range stats.FindingsByChecker {
		counts = append(counts, count{name, n})
		width = max(width, len(name))
	}
	slices.SortFunc(counts, func(a, b count) int {
		if a.n != b.n {
			return b.n - a.n
		}
		return strings.Compare(a.name, b.name)
	})

	var builder strings.Builder
	for _, c := range counts {
		builder.WriteString("  " + s.Name.Render(c.name) + strings.Repeat(" ", width-len(c.name)) +
			fmt.Sprintf("  %d\n", c.n))
	}
	return builder.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

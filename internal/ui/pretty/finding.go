package pretty

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/gorstlint/pkg/config"
	"github.com/yaklabco/gorstlint/pkg/lint"
)

// FormatFinding renders a finding as "file:line: message (checker)". With
// color disabled the result equals finding.String().
func (s *Styles) FormatFinding(finding lint.Finding) string {
	return s.FilePath.Render(finding.Filename) + ":" +
		s.Location.Render(strconv.Itoa(finding.Line)) + ": " +
		s.messageStyle(finding.Severity).Render(finding.Message) + " " +
		s.Checker.Render("("+finding.Checker+")")
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// File errors stand out; ordinary findings keep the plain message style.
func (s *Styles) messageStyle(sev config.Severity) lipgloss.Style {
	if sev == config.SeverityError {
		return s.Error
	}
	return s.Message
}

package pretty_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gorstlint/internal/ui/pretty"
	"github.com/yaklabco/gorstlint/pkg/config"
	"github.com/yaklabco/gorstlint/pkg/lint"
	"github.com/yaklabco/gorstlint/pkg/runner"
)

func TestNewStyles_ColorDisabled(t *testing.T) {
	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	assert.Equal(t, "test", styles.Bold.Render("test"))
	assert.Equal(t, "test", styles.Error.Render("test"))
	assert.Equal(t, "test", styles.Name.Render("test"))
}

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, pretty.IsColorEnabled(config.ColorAlways, &buf))
	assert.False(t, pretty.IsColorEnabled(config.ColorNever, os.Stdout))
	assert.False(t, pretty.IsColorEnabled(config.ColorAuto, &buf), "a buffer is not a terminal")
	assert.False(t, pretty.IsColorEnabled("", &buf))
}

func TestIsColorEnabled_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.False(t, pretty.IsColorEnabled(config.ColorAuto, os.Stdout))
	assert.True(t, pretty.IsColorEnabled(config.ColorAlways, os.Stdout), "always wins over NO_COLOR")
}

func TestFormatFinding_Plain(t *testing.T) {
	styles := pretty.NewStyles(false)
	finding := lint.Finding{
		Filename: "docs/index.rst",
		Line:     12,
		Message:  "trailing whitespace",
		Checker:  "trailing-whitespace",
		Severity: config.SeverityWarning,
	}

	assert.Equal(t, "docs/index.rst:12: trailing whitespace (trailing-whitespace)", styles.FormatFinding(finding))
	assert.Equal(t, finding.String(), styles.FormatFinding(finding))
}

func TestFormatSeverity(t *testing.T) {
	styles := pretty.NewStyles(false)

	assert.Equal(t, "error", styles.FormatSeverity(config.SeverityError))
	assert.Equal(t, "warning", styles.FormatSeverity(config.SeverityWarning))
	assert.Equal(t, "info", styles.FormatSeverity(config.SeverityInfo))
	assert.Equal(t, "custom", styles.FormatSeverity("custom"))
}

func TestFormatSummaryOneLine(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name  string
		stats runner.Stats
		want  string
	}{
		{
			name:  "clean",
			stats: runner.Stats{FilesChecked: 1},
			want:  "No problems found (1 file checked)\n",
		},
		{
			name: "mixed severities",
			stats: runner.Stats{
				FilesChecked:    5,
				FilesWithIssues: 2,
				FindingsTotal:   3,
				FindingsBySeverity: map[config.Severity]int{
					config.SeverityError:   1,
					config.SeverityWarning: 2,
				},
			},
			want: "3 findings (1 error, 2 warnings) in 2 files, 5 files checked\n",
		},
		{
			name: "single warning",
			stats: runner.Stats{
				FilesChecked:       1,
				FilesWithIssues:    1,
				FindingsTotal:      1,
				FindingsBySeverity: map[config.Severity]int{config.SeverityWarning: 1},
			},
			want: "1 finding (1 warning) in 1 file, 1 file checked\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.stats))
		})
	}
}

func TestFormatCheckerCounts(t *testing.T) {
	styles := pretty.NewStyles(false)
	stats := runner.Stats{
		FindingsByChecker: map[string]int{
			"trailing-whitespace": 2,
			"default-role":        5,
			"carriage-return":     2,
		},
	}

	want := "  default-role         5\n" +
		"  carriage-return      2\n" +
		"  trailing-whitespace  2\n"
	assert.Equal(t, want, styles.FormatCheckerCounts(stats))
}

func TestFormatTable(t *testing.T) {
	styles := pretty.NewStyles(false)
	findings := []lint.Finding{
		{Filename: "a.rst", Line: 3, Message: "trailing whitespace", Checker: "trailing-whitespace", Severity: config.SeverityWarning},
		{Filename: "a.rst", Line: 12, Message: "OMG TABS!!!1", Checker: "horizontal-tab", Severity: config.SeverityWarning},
		{Filename: "b.rst", Line: 0, Message: "cannot open", Checker: "file-error", Severity: config.SeverityError},
	}

	t.Run("unbounded", func(t *testing.T) {
		rule := strings.Repeat("─", 53) + "\n"
		want := "FILE   LINE  MESSAGE              CHECKER\n" + rule +
			"a.rst     3  trailing whitespace  trailing-whitespace\n" +
			"a.rst    12  OMG TABS!!!1         horizontal-tab\n" + rule +
			"b.rst     0  cannot open          file-error\n" + rule
		assert.Equal(t, want, styles.FormatTable(findings, 0))
	})

	t.Run("truncates messages to fit", func(t *testing.T) {
		rule := strings.Repeat("─", 44) + "\n"
		want := "FILE   LINE  MESSAGE     CHECKER\n" + rule +
			"a.rst     3  trailing …  trailing-whitespace\n" +
			"a.rst    12  OMG TABS!…  horizontal-tab\n" + rule +
			"b.rst     0  cannot op…  file-error\n" + rule
		assert.Equal(t, want, styles.FormatTable(findings, 40))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, styles.FormatTable(nil, 80))
	})
}

func TestTerminalWidth(t *testing.T) {
	var buf bytes.Buffer
	assert.Zero(t, pretty.TerminalWidth(&buf))
}

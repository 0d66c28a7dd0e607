package runner

import (
	"github.com/yaklabco/gorstlint/pkg/config"
	"github.com/yaklabco/gorstlint/pkg/lint"
)

// FileOutcome holds the findings of one task.
type FileOutcome struct {
	// Path is the file that was checked.
	Path string

	// Findings are the file's findings in checker order.
	Findings []lint.Finding
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the number of files discovery returned.
	FilesDiscovered int

	// FilesChecked is the number of files whose check completed.
	FilesChecked int

	// FilesWithIssues is the number of files with at least one finding.
	FilesWithIssues int

	// FindingsTotal is the number of findings across all files.
	FindingsTotal int

	// FindingsBySeverity maps severity levels to counts.
	FindingsBySeverity map[config.Severity]int

	// FindingsByChecker maps checker names to counts.
	FindingsByChecker map[string]int

	// Parallel is set when the run used the worker pool.
	Parallel bool

	// Workers is the number of workers used; 1 for sequential runs.
	Workers int
}

// Result is the outcome of a run.
type Result struct {
	// Files holds one outcome per task, in task order.
	Files []FileOutcome

	// Findings are the findings of every file, in task order, then sorted
	// when the run asked for it.
	Findings []lint.Finding

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasIssues reports whether any finding was produced.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.FindingsTotal > 0
}

// HasErrors reports whether a file could not be read, decoded or parsed.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FindingsBySeverity[config.SeverityError] > 0
}

func newResult(capacity int) *Result {
	return &Result{
		Files: make([]FileOutcome, 0, capacity),
		Stats: Stats{
			FindingsBySeverity: make(map[config.Severity]int),
			FindingsByChecker:  make(map[string]int),
			Workers:            1,
		},
	}
}

// accumulate adds outcome to the result. Every count is a sum, so the
// totals do not depend on the order outcomes are added in.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)
	r.Findings = append(r.Findings, outcome.Findings...)

	r.Stats.FilesChecked++
	r.Stats.FindingsTotal += len(outcome.Findings)
	if len(outcome.Findings) > 0 {
		r.Stats.FilesWithIssues++
	}

	for _, finding := range outcome.Findings {
		severity := finding.Severity
		if severity == "" {
			severity = config.SeverityWarning
		}
		r.Stats.FindingsBySeverity[severity]++
		r.Stats.FindingsByChecker[finding.Checker]++
	}
}

package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gorstlint/pkg/lint"
	"github.com/yaklabco/gorstlint/pkg/runner"
)

// jsonSchemaVersion versions the JSON document layout.
const jsonSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version     string         `json:"version"`
	ToolVersion string         `json:"toolVersion"`
	Findings    []lint.Finding `json:"findings"`
	Summary     JSONSummary    `json:"summary"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered int            `json:"filesDiscovered"`
	FilesChecked    int            `json:"filesChecked"`
	FilesWithIssues int            `json:"filesWithIssues"`
	TotalFindings   int            `json:"totalFindings"`
	BySeverity      map[string]int `json:"bySeverity"`
	ByChecker       map[string]int `json:"byChecker"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil && flushErr != nil {
			err = fmt.Errorf("write report: %w", flushErr)
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalFindings, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version:     jsonSchemaVersion,
		ToolVersion: r.opts.ToolVersion,
		Findings:    make([]lint.Finding, 0),
		Summary: JSONSummary{
			BySeverity: make(map[string]int),
			ByChecker:  make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	output.Findings = append(output.Findings, result.Findings...)
	output.Summary.FilesDiscovered = result.Stats.FilesDiscovered
	output.Summary.FilesChecked = result.Stats.FilesChecked
	output.Summary.FilesWithIssues = result.Stats.FilesWithIssues
	output.Summary.TotalFindings = len(result.Findings)
	for severity, n := range result.Stats.FindingsBySeverity {
		output.Summary.BySeverity[string(severity)] = n
	}
	for checker, n := range result.Stats.FindingsByChecker {
		output.Summary.ByChecker[checker] = n
	}

	return output
}

package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/yaklabco/gorstlint/pkg/config"
	"github.com/yaklabco/gorstlint/pkg/lint"
	"github.com/yaklabco/gorstlint/pkg/runner"
)

// SARIF version used by this reporter.
const sarifVersion = "2.1.0"

// SARIF schema URI.
const sarifSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"

const (
	sarifToolName = "gorstlint"
	sarifToolURI  = "https://github.com/yaklabco/gorstlint"
)

// SARIFOutput represents the root SARIF document.
type SARIFOutput struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SARIFRun `json:"runs"`
}

// SARIFRun represents a single analysis run.
type SARIFRun struct {
	Tool    SARIFTool     `json:"tool"`
	Results []SARIFResult `json:"results"`
}

// SARIFTool describes the analysis tool.
type SARIFTool struct {
	Driver SARIFDriver `json:"driver"`
}

// SARIFDriver contains tool metadata and rules.
type SARIFDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []SARIFRule `json:"rules"`
}

// SARIFRule describes one checker.
type SARIFRule struct {
	ID               string               `json:"id"`
	ShortDescription SARIFMultiformatText `json:"shortDescription"`
	FullDescription  SARIFMultiformatText `json:"fullDescription"`
	DefaultConfig    SARIFRuleConfig      `json:"defaultConfiguration"`
}

// SARIFMultiformatText contains text in multiple formats.
type SARIFMultiformatText struct {
	Text string `json:"text"`
}

// SARIFRuleConfig contains rule configuration.
type SARIFRuleConfig struct {
	Level string `json:"level"`
}

// SARIFResult represents a single finding.
type SARIFResult struct {
	RuleID    string          `json:"ruleId"`
	RuleIndex *int            `json:"ruleIndex,omitempty"`
	Level     string          `json:"level"`
	Message   SARIFMessage    `json:"message"`
	Locations []SARIFLocation `json:"locations"`
}

// SARIFMessage contains the result message.
type SARIFMessage struct {
	Text string `json:"text"`
}

// SARIFLocation describes a code location.
type SARIFLocation struct {
	PhysicalLocation SARIFPhysicalLocation `json:"physicalLocation"`
}

// SARIFPhysicalLocation contains file path and region.
type SARIFPhysicalLocation struct {
	ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
	Region           *SARIFRegion          `json:"region,omitempty"`
}

// SARIFArtifactLocation contains the file URI.
type SARIFArtifactLocation struct {
	URI string `json:"uri"`
}

// SARIFRegion describes the affected lines. SARIF lines are 1-based, so
// whole-file findings carry no region.
type SARIFRegion struct {
	StartLine int `json:"startLine"`
}

// SARIFReporter formats results as SARIF.
type SARIFReporter struct {
	opts Options
}

// NewSARIFReporter creates a new SARIF reporter.
func NewSARIFReporter(opts Options) *SARIFReporter {
	return &SARIFReporter{opts: opts}
}

// Report implements Reporter.
func (r *SARIFReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
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
		return 0, fmt.Errorf("encode SARIF: %w", err)
	}

	return len(output.Runs[0].Results), nil
}

func (r *SARIFReporter) buildOutput(result *runner.Result) *SARIFOutput {
	rules, index := r.buildRules()
	run := SARIFRun{
		Tool: SARIFTool{
			Driver: SARIFDriver{
				Name:           sarifToolName,
				Version:        r.opts.ToolVersion,
				InformationURI: sarifToolURI,
				Rules:          rules,
			},
		},
		Results: make([]SARIFResult, 0),
	}

	if result != nil {
		for _, finding := range result.Findings {
			run.Results = append(run.Results, toSARIFResult(finding, index))
		}
	}

	return &SARIFOutput{
		Schema:  sarifSchemaURI,
		Version: sarifVersion,
		Runs:    []SARIFRun{run},
	}
}

// buildRules describes every checker that ran, in run order.
func (r *SARIFReporter) buildRules() ([]SARIFRule, map[string]int) {
	rules := make([]SARIFRule, 0, len(r.opts.Checkers))
	index := make(map[string]int, len(r.opts.Checkers))
	for _, checker := range r.opts.Checkers {
		index[checker.Name()] = len(rules)
		rules = append(rules, SARIFRule{
			ID:               checker.Name(),
			ShortDescription: SARIFMultiformatText{Text: lint.Summary(checker)},
			FullDescription:  SARIFMultiformatText{Text: checker.Description()},
			DefaultConfig:    SARIFRuleConfig{Level: severityToSARIFLevel(config.SeverityWarning)},
		})
	}
	return rules, index
}

func toSARIFResult(finding lint.Finding, index map[string]int) SARIFResult {
	location := SARIFPhysicalLocation{
		ArtifactLocation: SARIFArtifactLocation{URI: filepath.ToSlash(finding.Filename)},
	}
	if finding.Line > 0 {
		location.Region = &SARIFRegion{StartLine: finding.Line}
	}

	res := SARIFResult{
		RuleID:    finding.Checker,
		Level:     severityToSARIFLevel(finding.Severity),
		Message:   SARIFMessage{Text: finding.Message},
		Locations: []SARIFLocation{{PhysicalLocation: location}},
	}
	// file-error is not a registered checker and has no rule entry.
	if idx, ok := index[finding.Checker]; ok {
		res.RuleIndex = &idx
	}
	return res
}

// severityToSARIFLevel converts a severity to a SARIF level.
func severityToSARIFLevel(severity config.Severity) string {
	switch severity {
	case config.SeverityError:
		return "error"
	case config.SeverityInfo:
		return "note"
	default:
		return "warning"
	}
}

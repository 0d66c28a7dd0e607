// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldDuration   = "duration"

	// Configuration fields.
	FieldConfig  = "config"
	FieldSource  = "source"
	FieldJobs    = "jobs"
	FieldFormat  = "format"
	FieldLogFile = "log_file"

	// Run fields.
	FieldMode            = "mode"
	FieldCheckers        = "checkers"
	FieldFilesDiscovered = "files_discovered"
	FieldFilesChecked    = "files_checked"
	FieldFilesWithIssues = "files_with_issues"
	FieldFindingsTotal   = "findings_total"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Checker fields.
	FieldName     = "name"
	FieldChecker  = "checker"
	FieldSeverity = "severity"
	FieldEnabled  = "enabled"
)

package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/gorstlint/pkg/config"
	"github.com/yaklabco/gorstlint/pkg/lint"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer receives machine-readable output and the clean-run notice
	// (typically os.Stdout).
	Writer io.Writer

	// ErrorWriter receives text findings (typically os.Stderr).
	ErrorWriter io.Writer

	// Format specifies the output format.
	Format config.OutputFormat

	// Color controls colorized text output.
	Color config.ColorMode

	// ShowSummary appends aggregate statistics to text output.
	ShowSummary bool

	// Compact disables indentation of JSON and SARIF output.
	Compact bool

	// Checkers are the checkers that ran. SARIF output describes them as rules.
	Checkers []lint.Checker

	// ToolVersion is reported in machine-readable output.
	ToolVersion string

	// Width caps table rows. 0 uses the terminal width of Writer; a negative
	// value never truncates.
	Width int
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Format:      config.FormatText,
		Color:       config.ColorAuto,
		ToolVersion: "dev",
	}
}

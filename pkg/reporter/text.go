package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gorstlint/internal/ui/pretty"
	"github.com/yaklabco/gorstlint/pkg/runner"
)

// cleanRunNotice is printed on the standard writer when nothing was found.
const cleanRunNotice = "No problems found."

// TextReporter writes one "file:line: message (checker)" line per finding
// to the error writer.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
}

// NewTextReporter creates a new text reporter. Color is decided against the
// error writer, where findings go.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.ErrorWriter)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	if result == nil || len(result.Findings) == 0 {
		if _, err := fmt.Fprintln(r.opts.Writer, cleanRunNotice); err != nil {
			return 0, fmt.Errorf("write report: %w", err)
		}
		if r.opts.ShowSummary && result != nil {
			_, err = fmt.Fprint(r.opts.ErrorWriter, r.styles.FormatSummaryOneLine(result.Stats))
		}
		return 0, err
	}

	bw := bufio.NewWriterSize(r.opts.ErrorWriter, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil && flushErr != nil {
			err = fmt.Errorf("write report: %w", flushErr)
		}
	}()

	for _, finding := range result.Findings {
		fmt.Fprintln(bw, r.styles.FormatFinding(finding))
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(bw)
		fmt.Fprint(bw, r.styles.FormatCheckerCounts(result.Stats))
		fmt.Fprint(bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return len(result.Findings), nil
}

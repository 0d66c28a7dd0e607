package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gorstlint/internal/ui/pretty"
	"github.com/yaklabco/gorstlint/pkg/runner"
)

// TableReporter writes findings to the standard writer as columns grouped
// by file.
type TableReporter struct {
	opts   Options
	styles *pretty.Styles
	width  int
}

// NewTableReporter creates a new table reporter. Rows are fitted to the
// terminal width of the writer unless Options.Width says otherwise.
func NewTableReporter(opts Options) *TableReporter {
	width := opts.Width
	if width == 0 {
		width = pretty.TerminalWidth(opts.Writer)
	}
	return &TableReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		width:  width,
	}
}

// Report implements Reporter.
func (r *TableReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil && flushErr != nil {
			err = fmt.Errorf("write report: %w", flushErr)
		}
	}()

	if result == nil || len(result.Findings) == 0 {
		fmt.Fprintln(bw, r.styles.Success.Render(cleanRunNotice))
		if r.opts.ShowSummary && result != nil {
			fmt.Fprint(bw, r.styles.FormatSummaryOneLine(result.Stats))
		}
		return 0, nil
	}

	fmt.Fprint(bw, r.styles.FormatTable(result.Findings, r.width))
	if r.opts.ShowSummary {
		fmt.Fprint(bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return len(result.Findings), nil
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gorstlint/internal/ui/pretty"
	"github.com/yaklabco/gorstlint/pkg/config"
	"github.com/yaklabco/gorstlint/pkg/lint"
	"github.com/yaklabco/gorstlint/pkg/lint/checkers"
)

// Output formats of the checkers command.
const (
	listFormatText  = "text"
	listFormatTable = "table"
	listFormatJSON  = "json"
)

// checkerInfo represents a checker in JSON output.
type checkerInfo struct {
	Name        string   `json:"name"`
	Summary     string   `json:"summary"`
	Description string   `json:"description"`
	Suffixes    []string `json:"suffixes"`
	Enabled     bool     `json:"enabledByDefault"`
	View        string   `json:"view"`
}

func newCheckersCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "checkers",
		Short: "List every available checker",
		Long: `List every registered checker with the file suffixes it serves, whether it
runs by default, and whether it reads raw lines or the view where literal
blocks and comments are blanked out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all := checkers.NewRegistry().Checkers()
			out := cmd.OutOrStdout()

			switch format {
			case listFormatJSON:
				return writeCheckersJSON(out, all)
			case listFormatTable:
				writeCheckersTable(out, all, pretty.TerminalWidth(out))
				return nil
			case listFormatText:
				colorEnabled := pretty.IsColorEnabled(config.ColorMode(a.global.color), out)
				return writeCheckersText(out, pretty.NewStyles(colorEnabled), all, a.global.verbose, pretty.TerminalWidth(out))
			default:
				return usageErrorf("invalid format %q: must be text, table or json", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", listFormatText, "output format: text, table, json")

	return cmd
}

func view(checker lint.Checker) string {
	if checker.NeedsRSTView() {
		return "rst"
	}
	return "raw"
}

func writeCheckersJSON(w io.Writer, all []lint.Checker) error {
	infos := make([]checkerInfo, 0, len(all))
	for _, checker := range all {
		infos = append(infos, checkerInfo{
			Name:        checker.Name(),
			Summary:     lint.Summary(checker),
			Description: checker.Description(),
			Suffixes:    checker.Suffixes(),
			Enabled:     checker.DefaultEnabled(),
			View:        view(checker),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding checkers: %w", err)
	}
	return nil
}

func writeCheckersTable(w io.Writer, all []lint.Checker, width int) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	if width > 0 {
		t.SetAllowedRowLength(width)
	}

	t.AppendHeader(table.Row{"Checker", "Suffixes", "Default", "View", "Summary"})
	for _, checker := range all {
		enabled := "off"
		if checker.DefaultEnabled() {
			enabled = "on"
		}
		t.AppendRow(table.Row{
			checker.Name(),
			strings.Join(checker.Suffixes(), " "),
			enabled,
			view(checker),
			lint.Summary(checker),
		})
	}
	t.Render()
}

func writeCheckersText(w io.Writer, styles *pretty.Styles, all []lint.Checker, verbose bool, width int) error {
	var b strings.Builder
	for _, checker := range all {
		name := styles.Name.Render(checker.Name())
		if !checker.DefaultEnabled() {
			name += " " + styles.Disabled.Render("(disabled by default)")
		}
		fmt.Fprintf(&b, "%s\n", name)

		description := lint.Summary(checker)
		if verbose {
			description = checker.Description()
		}
		for _, line := range strings.Split(description, "\n") {
			fmt.Fprintf(&b, "    %s\n", wrap(line, width-4))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// wrap breaks prose longer than width at word boundaries, indenting the
// continuation lines to match. Non-positive widths leave line alone.
func wrap(line string, width int) string {
	if width <= 0 || len(line) <= width {
		return line
	}
	words := strings.Fields(line)
	var b strings.Builder
	col := 0
	for _, word := range words {
		if col > 0 && col+1+len(word) > width {
			b.WriteString("\n    ")
			col = 0
		} else if col > 0 {
			b.WriteByte(' ')
			col++
		}
		b.WriteString(word)
		col += len(word)
	}
	return b.String()
}

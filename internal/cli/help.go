package cli

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/gorstlint/internal/ui/pretty"
	"github.com/yaklabco/gorstlint/pkg/config"
)

const helpTemplate = `{{with (or .Long .Short)}}{{ trimRight . }}

{{end}}{{ heading "Usage:" }}{{if .Runnable}}
  {{ name .UseLine }}{{end}}{{if .HasAvailableSubCommands}}
  {{ name .CommandPath }} [command]{{end}}{{if .HasExample}}

{{ heading "Examples:" }}
{{ dim .Example }}{{end}}{{if .HasAvailableSubCommands}}

{{ heading "Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ name (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}{{end}}{{if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}{{end}}{{if .HasAvailableSubCommands}}

Use "{{ .CommandPath }} [command] --help" for more information about a command.{{end}}
`

// HelpFormatter renders command help with the same styles as lint output.
// Color follows the --color flag and the help writer.
type HelpFormatter struct{}

// NewHelpFormatter returns a HelpFormatter.
func NewHelpFormatter() *HelpFormatter {
	return &HelpFormatter{}
}

// ApplyToCommand installs the styled help and usage functions on cmd. Cobra
// inherits them in subcommands.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := h.render(command); err != nil {
			command.PrintErrln(err)
		}
	})
	cmd.SetUsageFunc(h.render)
}

func (h *HelpFormatter) render(command *cobra.Command) error {
	out := command.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorModeOf(command), out))

	tmpl, err := template.New("help").Funcs(template.FuncMap{
		"heading":   styles.Bold.Render,
		"name":      styles.Name.Render,
		"dim":       styles.Dim.Render,
		"trimRight": func(s string) string { return strings.TrimRightFunc(s, isSpace) },
		"rpad":      func(s string, n int) string { return fmt.Sprintf("%-*s", n, s) },
		"flags":     func(fs *pflag.FlagSet) string { return styleFlags(styles, fs) },
	}).Parse(helpTemplate)
	if err != nil {
		return fmt.Errorf("parse help template: %w", err)
	}
	if err := tmpl.Execute(out, command); err != nil {
		return fmt.Errorf("render help: %w", err)
	}
	return nil
}

func colorModeOf(command *cobra.Command) config.ColorMode {
	flag := command.Root().PersistentFlags().Lookup("color")
	if flag == nil {
		return config.ColorAuto
	}
	return config.ColorMode(flag.Value.String())
}

// styleFlags colors the flag names in pflag's usage block, leaving the
// alignment pflag computed untouched.
func styleFlags(styles *pretty.Styles, fs *pflag.FlagSet) string {
	usages := strings.TrimRight(fs.FlagUsages(), "\n")
	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		if !strings.HasPrefix(trimmed, "-") {
			continue
		}
		end := strings.Index(trimmed, "   ")
		if end < 0 {
			end = len(trimmed)
		}
		indent := line[:len(line)-len(trimmed)]
		lines[i] = indent + styles.Name.Render(trimmed[:end]) + trimmed[end:]
	}
	return strings.Join(lines, "\n")
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

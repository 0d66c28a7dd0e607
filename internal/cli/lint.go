package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gorstlint/internal/configloader"
	"github.com/yaklabco/gorstlint/internal/logging"
	"github.com/yaklabco/gorstlint/internal/ui/pretty"
	"github.com/yaklabco/gorstlint/pkg/config"
	"github.com/yaklabco/gorstlint/pkg/lint"
	"github.com/yaklabco/gorstlint/pkg/lint/checkers"
	"github.com/yaklabco/gorstlint/pkg/reporter"
	"github.com/yaklabco/gorstlint/pkg/runner"
)

type lintFlags struct {
	ops             []lint.SelectionOp
	list            bool
	version         bool
	maxLineLength   int
	sortBy          string
	jobs            int
	ignore          []string
	excludeVendored bool
	format          string
}

func addLintFlags(cmd *cobra.Command, flags *lintFlags) {
	fs := cmd.Flags()

	fs.VarP(&selectionValue{enable: true, ops: &flags.ops}, "enable", "e",
		`comma-separated list of checkers to enable, or "all"; evaluated left to right with --disable`)
	fs.VarP(&selectionValue{enable: false, ops: &flags.ops}, "disable", "d",
		`comma-separated list of checkers to disable, or "all"; evaluated left to right with --enable`)
	fs.BoolVar(&flags.list, "list", false, "list the selected checkers and exit")
	fs.IntVar(&flags.maxLineLength, "max-line-length", config.DefaultMaxLineLength,
		"maximum number of characters on a single line")
	fs.StringVarP(&flags.sortBy, "sort-by", "s", "",
		"sort findings by a comma-separated list of: "+config.SortFieldNames)
	fs.VarP(&jobsValue{jobs: &flags.jobs}, "jobs", "j", `number of parallel workers, or "auto" for one per CPU`)
	fs.StringArrayVarP(&flags.ignore, "ignore", "i", nil, "ignore a path fragment or glob pattern (repeatable)")
	fs.BoolVar(&flags.excludeVendored, "exclude-vendored", false, "skip vendored and third-party directories")
	fs.StringVarP(&flags.format, "format", "f", string(config.FormatText), "output format: text, table, json, sarif")
	fs.BoolVarP(&flags.version, "version", "V", false, "print the version and exit")
}

func (a *app) runLint(cmd *cobra.Command, args []string, flags *lintFlags) error {
	if flags.version {
		fmt.Fprintf(cmd.OutOrStdout(), "gorstlint %s\n", a.info.Version)
		return nil
	}

	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	cfg, err := a.loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	selected, err := selectCheckers(checkers.NewRegistry(), cfg, flags.ops)
	if err != nil {
		return err
	}

	if flags.list {
		styles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, cmd.OutOrStdout()))
		return printSelection(cmd.OutOrStdout(), styles, selected, a.global.verbose)
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			return usageErrorf("Error: path %s does not exist", path)
		}
	}

	runOpts := runner.OptionsFromConfig(cfg, paths)
	runOpts.Verbose = a.global.verbose

	logger.Debug("starting lint run",
		logging.FieldPaths, paths,
		logging.FieldCheckers, len(selected),
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.New(selected, lint.OptionsFromConfig(cfg)).Run(ctx, runOpts)
	if err != nil {
		if errors.Is(err, runner.ErrPathNotFound) {
			return wrapUsage(err)
		}
		return fmt.Errorf("lint run failed: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      cfg.Format,
		Color:       cfg.Color,
		ShowSummary: a.global.verbose,
		Checkers:    selected,
		ToolVersion: a.info.Version,
	})
	if err != nil {
		return wrapUsage(err)
	}

	count, err := rep.Report(ctx, result)
	if err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	logger.Info("lint complete",
		logging.FieldFilesChecked, result.Stats.FilesChecked,
		logging.FieldFilesWithIssues, result.Stats.FilesWithIssues,
		logging.FieldFindingsTotal, count,
	)

	if count > 0 {
		return ErrLintIssuesFound
	}
	return nil
}

// loadConfig merges the project config, the environment and the flags that
// were set explicitly.
func (a *app) loadConfig(cmd *cobra.Command, flags *lintFlags) (*config.Config, error) {
	logger := logging.FromContext(cmd.Context())
	changed := cmd.Flags().Changed

	cliCfg := &config.Config{ExcludeVendored: flags.excludeVendored}
	if changed("max-line-length") {
		if flags.maxLineLength <= 0 {
			return nil, usageErrorf("invalid --max-line-length %d: must be positive", flags.maxLineLength)
		}
		cliCfg.MaxLineLength = flags.maxLineLength
	}
	if changed("sort-by") {
		fields, err := config.ParseSortFields(flags.sortBy)
		if err != nil {
			return nil, wrapUsage(err)
		}
		cliCfg.SortBy = fields
	}
	if changed("format") {
		cliCfg.Format = config.OutputFormat(flags.format)
	}
	if changed("color") {
		cliCfg.Color = config.ColorMode(a.global.color)
	}

	loaded, err := configloader.Load(cmd.Context(), configloader.LoadOptions{
		ExplicitPath:        a.global.configPath,
		IgnoreProjectConfig: a.global.noConfig,
		CLIConfig:           cliCfg,
	})
	if err != nil {
		return nil, wrapUsage(err)
	}

	for _, warning := range loaded.Warnings {
		logger.Warn(warning)
	}

	cfg := loaded.Config
	// "auto" is stored as 0, which merging cannot tell from unset.
	if changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	cfg.Ignore = append(cfg.Ignore, flags.ignore...)

	logger.Debug("configuration loaded",
		logging.FieldConfig, loaded.Path,
		logging.FieldFormat, cfg.Format,
		logging.FieldJobs, cfg.Jobs,
	)
	return cfg, nil
}

// selectCheckers applies the config file's enable and disable lists, then
// the command line operations, to the default set.
func selectCheckers(reg *lint.Registry, cfg *config.Config, cliOps []lint.SelectionOp) ([]lint.Checker, error) {
	var ops []lint.SelectionOp
	if len(cfg.Enable) > 0 {
		ops = append(ops, lint.EnableOp(cfg.Enable...))
	}
	if len(cfg.Disable) > 0 {
		ops = append(ops, lint.DisableOp(cfg.Disable...))
	}
	ops = append(ops, cliOps...)

	selected, err := lint.Resolve(reg, ops)
	if err != nil {
		var unknown *lint.UnknownCheckerError
		if errors.As(err, &unknown) {
			return nil, &usageError{msg: fmt.Sprintf("Unknown checker: %s.", unknown.Name), err: err}
		}
		return nil, fmt.Errorf("select checkers: %w", err)
	}
	return selected, nil
}

// printSelection writes the --list output.
func printSelection(w io.Writer, styles *pretty.Styles, selected []lint.Checker, verbose bool) error {
	if len(selected) == 0 {
		_, err := fmt.Fprintln(w, "No checkers selected.")
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d checkers selected:\n", len(selected))
	for _, checker := range selected {
		description := lint.Summary(checker)
		if verbose {
			description = checker.Description()
		}
		fmt.Fprintf(&b, "- %s: %s\n", styles.Name.Render(checker.Name()), description)
	}
	if !verbose {
		b.WriteString("\n(Use `--list --verbose` to know more about each check)\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

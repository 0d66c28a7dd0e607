// Package cli provides the Cobra command structure for gorstlint.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gorstlint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are shared by every command.
type globalFlags struct {
	debug      bool
	verbose    bool
	logFile    string
	configPath string
	noConfig   bool
	color      string
}

// app owns the command tree and the resources its commands open.
type app struct {
	info      BuildInfo
	root      *cobra.Command
	global    globalFlags
	logCloser io.Closer
}

// NewRootCommand creates the root gorstlint command with all subcommands.
// The root command itself lints the given paths.
func NewRootCommand(info BuildInfo) *cobra.Command {
	return newApp(info).root
}

// Execute runs gorstlint with args and returns the process exit code.
// Usage errors are printed to stderr as they are; other failures are logged.
func Execute(ctx context.Context, info BuildInfo, args []string, stdout, stderr io.Writer) int {
	a := newApp(info)
	a.root.SetArgs(args)
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)

	err := a.root.ExecuteContext(ctx)
	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}

	switch {
	case err == nil, errors.Is(err, ErrLintIssuesFound):
	case errors.Is(err, ErrUsage):
		fmt.Fprintln(stderr, err)
	default:
		logging.NewWithWriter(stderr, "error").Error("command failed", logging.FieldError, err)
	}
	return ExitCode(err)
}

func newApp(info BuildInfo) *app {
	a := &app{info: info}
	flags := &lintFlags{}

	rootCmd := &cobra.Command{
		Use:   "gorstlint [flags] [paths...]",
		Short: "A fast linter for reStructuredText and Sphinx documentation",
		Long: `gorstlint checks reStructuredText sources, translation catalogs and the
Python files that embed them for the markup mistakes Sphinx silently accepts:
roles missing a backtick, literals glued to the next word, directives with
three dots, stray tabs and trailing whitespace.

Paths default to the current directory. Directories are walked recursively;
only files served by an enabled checker are read.

Examples:
  gorstlint                                   # Check the current directory
  gorstlint Doc/ -i Doc/build                 # Skip a build directory
  gorstlint --disable all --enable default-role Doc/
  gorstlint --list --verbose                  # Describe the selected checkers
  gorstlint -f sarif Doc/ > lint.sarif        # Output for code scanning`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setupLogging(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLint(cmd, args, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return wrapUsage(err)
	})

	persistent := rootCmd.PersistentFlags()
	persistent.BoolVar(&a.global.debug, "debug", false, "enable debug logging")
	persistent.BoolVarP(&a.global.verbose, "verbose", "v", false,
		"verbose: log every checked file, describe checkers in --list")
	persistent.StringVar(&a.global.logFile, "log-file", "", "also write logs to this file, rotated by size")
	persistent.StringVar(&a.global.configPath, "config", "", "path to config file (.toml, .yml or .yaml)")
	persistent.BoolVar(&a.global.noConfig, "no-config", false, "do not look for a project config file")
	persistent.StringVar(&a.global.color, "color", "auto", "colorize output: auto, always, never")

	addLintFlags(rootCmd, flags)

	rootCmd.AddCommand(newCheckersCommand(a))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	NewHelpFormatter().ApplyToCommand(rootCmd)

	a.root = rootCmd
	return a
}

// setupLogging attaches a logger to the command context. --debug wins over
// --verbose, which logs at info level.
func (a *app) setupLogging(cmd *cobra.Command) error {
	level := "warn"
	switch {
	case a.global.debug:
		level = "debug"
	case a.global.verbose:
		level = "info"
	}

	logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)
	if a.global.logFile != "" {
		logger, a.logCloser = logging.NewWithFile(cmd.ErrOrStderr(), a.global.logFile, level)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.WithLogger(ctx, logger))

	logger.Debug("starting",
		logging.FieldVersion, a.info.Version,
		logging.FieldCommit, a.info.Commit,
		logging.FieldLogFile, a.global.logFile,
	)
	return nil
}

package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gorstlint/internal/configloader"
	"github.com/yaklabco/gorstlint/internal/logging"
	"github.com/yaklabco/gorstlint/pkg/config"
	"github.com/yaklabco/gorstlint/pkg/lint"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

const (
	initFormatTOML = "toml"
	initFormatYAML = "yaml"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force           bool
	format          string
	output          string
	knownDirectives string
}

// starterTable is the [tool.sphinx-lint] table written by init. Empty lists
// are kept so the file shows what can be set.
type starterTable struct {
	KnownDirectives []string `toml:"known_directives"`
	MaxLineLength   int      `toml:"max_line_length"`
	Enable          []string `toml:"enable"`
	Disable         []string `toml:"disable"`
	Ignore          []string `toml:"ignore"`
}

type starterDocument struct {
	Tool struct {
		SphinxLint starterTable `toml:"sphinx-lint"`
	} `toml:"tool"`
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter configuration file",
		Long: `Create a sphinx.toml with a [tool.sphinx-lint] table in the current
directory, or a .gorstlint.yml with --format yaml.

Directives that projects add through Sphinx extensions or conf.py should be
listed in known_directives so their content is not checked as markup.

Examples:
  gorstlint init
  gorstlint init --known-directives autoclass,testcode
  gorstlint init --format yaml --output ci/gorstlint.yml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.force, "force", false, "overwrite an existing configuration file")
	cmd.Flags().StringVar(&flags.format, "format", initFormatTOML, "file format: toml or yaml")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default: sphinx.toml or .gorstlint.yml)")
	cmd.Flags().StringVar(&flags.knownDirectives, "known-directives", "", "comma-separated directives to record")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.FromContext(cmd.Context())

	outputPath := flags.output
	switch flags.format {
	case initFormatTOML:
		if outputPath == "" {
			outputPath = configloader.SphinxTOML
		}
	case initFormatYAML:
		if outputPath == "" {
			outputPath = ".gorstlint.yml"
		}
	default:
		return usageErrorf("invalid format %q: must be toml or yaml", flags.format)
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return usageErrorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	directives := lint.ParseNames(flags.knownDirectives)
	var content []byte
	if flags.format == initFormatTOML {
		content, err = starterTOML(directives)
	} else {
		content, err = starterYAML(directives)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", outputPath)
	return nil
}

func starterTOML(directives []string) ([]byte, error) {
	var doc starterDocument
	doc.Tool.SphinxLint = starterTable{
		KnownDirectives: append([]string{}, directives...),
		MaxLineLength:   config.DefaultMaxLineLength,
		Enable:          []string{},
		Disable:         []string{},
		Ignore:          []string{},
	}

	var buf bytes.Buffer
	buf.WriteString("# gorstlint configuration, also read by sphinx-lint.\n\n")
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

func starterYAML(directives []string) ([]byte, error) {
	cfg := config.NewConfig()
	cfg.KnownDirectives = directives

	body, err := cfg.ToYAML()
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return append([]byte("# gorstlint configuration\n\n"), body...), nil
}

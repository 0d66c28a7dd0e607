package configloader

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/yaklabco/gorstlint/pkg/config"
)

// tomlDocument is the part of sphinx.toml and pyproject.toml gorstlint reads.
type tomlDocument struct {
	Tool struct {
		SphinxLint *config.Config `toml:"sphinx-lint"`
	} `toml:"tool"`
}

// loadTOMLFile reads the [tool.sphinx-lint] table of path. sphinx.toml may
// also hold the settings at the top level. Unknown keys are returned as
// warnings.
func loadTOMLFile(path string) (*config.Config, []string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	var doc tomlDocument
	meta, err := toml.Decode(string(content), &doc)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrConfigParse, path, err)
	}

	if meta.IsDefined(toolTableKey, sphinxLintKey) {
		cfg := doc.Tool.SphinxLint
		if cfg == nil {
			cfg = &config.Config{}
		}
		return cfg, undecodedWarnings(path, meta, sphinxLintPath+"."), nil
	}

	if !strings.HasSuffix(path, SphinxTOML) {
		return &config.Config{}, nil, nil
	}

	cfg := &config.Config{}
	meta, err = toml.Decode(string(content), cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrConfigParse, path, err)
	}
	return cfg, undecodedWarnings(path, meta, ""), nil
}

// undecodedWarnings lists keys under prefix that no config field consumed.
func undecodedWarnings(path string, meta toml.MetaData, prefix string) []string {
	var warnings []string
	for _, key := range meta.Undecoded() {
		name := key.String()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		// Other tools' tables share the file.
		if prefix == "" && key[0] == toolTableKey {
			continue
		}
		warnings = append(warnings, fmt.Sprintf("%s: unknown key %q", path, strings.TrimPrefix(name, prefix)))
	}
	return warnings
}

// hasSphinxLintTable reports whether path decodes as TOML with a
// [tool.sphinx-lint] table.
func hasSphinxLintTable(path string) bool {
	var doc map[string]any
	meta, err := toml.DecodeFile(path, &doc)
	if err != nil {
		// Surface the parse error when the file is loaded.
		return true
	}
	return meta.IsDefined(toolTableKey, sphinxLintKey)
}

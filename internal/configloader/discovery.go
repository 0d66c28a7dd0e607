package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Config file names, in order of preference within one directory.
const (
	SphinxTOML     = "sphinx.toml"
	PyprojectTOML  = "pyproject.toml"
	gorstlintYML   = ".gorstlint.yml"
	gorstlintYAML  = ".gorstlint.yaml"
	sphinxLintKey  = "sphinx-lint"
	toolTableKey   = "tool"
	sphinxLintPath = toolTableKey + "." + sphinxLintKey
)

// projectConfigFiles are the config file names searched for in each directory.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigFiles = []string{
	SphinxTOML,
	PyprojectTOML,
	gorstlintYML,
	gorstlintYAML,
}

// vcsRootMarkers are directories that indicate a VCS root.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// FindProjectConfig searches upward from startDir for a project config file.
// It returns the first candidate found, or an empty string if none. The
// search stops at a VCS root, the home directory or the filesystem root.
//
// A pyproject.toml without a [tool.sphinx-lint] table belongs to some other
// tool and does not end the search.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		var err error
		startDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}

	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		homeDir = ""
	}

	currentDir := absDir
	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		for _, name := range projectConfigFiles {
			path := filepath.Join(currentDir, name)
			if !fileExists(path) {
				continue
			}
			if name == PyprojectTOML && !hasSphinxLintTable(path) {
				continue
			}
			return path, nil
		}

		if isVCSRoot(currentDir) {
			return "", nil
		}

		if homeDir != "" && currentDir == homeDir {
			return "", nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}

// isVCSRoot returns true if the directory contains a VCS root marker.
func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		info, err := os.Stat(filepath.Join(dir, marker))
		if err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsTOMLConfig returns true if the path is a TOML config file.
func IsTOMLConfig(path string) bool {
	return filepath.Ext(path) == ".toml"
}

// IsYAMLConfig returns true if the path is a YAML config file.
func IsYAMLConfig(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".yaml" || ext == ".yml"
}

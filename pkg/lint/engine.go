package lint

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/gorstlint/pkg/config"
	"github.com/yaklabco/gorstlint/pkg/fsutil"
	"github.com/yaklabco/gorstlint/pkg/pofile"
	"github.com/yaklabco/gorstlint/pkg/rst"
	"github.com/yaklabco/gorstlint/pkg/rstdoc"
)

// Engine dispatches checkers over files.
//
// An Engine owns the per-file cache, so it is not safe for concurrent use:
// parallel runs give each worker its own Engine.
type Engine struct {
	options Options
	cache   *rstdoc.Cache
}

// NewEngine creates an Engine for the given options.
func NewEngine(opts Options) *Engine {
	return &Engine{
		options: opts,
		cache:   rstdoc.NewCache(rst.Directives(opts.KnownDirectives)),
	}
}

// Options returns the options the engine was created with.
func (e *Engine) Options() Options {
	return e.options
}

// Ext returns the extension of filename used for checker dispatch. Leading
// dots of the base name do not start an extension, so ".bashrc" has none.
func Ext(filename string) string {
	base := strings.TrimLeft(filepath.Base(filename), ".")
	return filepath.Ext(base)
}

// ServesFile reports whether any of checkers applies to filename.
func ServesFile(checkers []Checker, filename string) bool {
	ext := Ext(filename)
	for _, checker := range checkers {
		if Serves(checker, ext) {
			return true
		}
	}
	return false
}

// CheckText runs checkers over text and returns their findings, tagged with
// filename and checker name. Checkers that do not serve the extension of
// filename are skipped. The rst-only view is computed at most once.
//
// CheckText does not reset the cache; CheckFile does.
func (e *Engine) CheckText(filename, text string, checkers []Checker) []Finding {
	ext := Ext(filename)

	selected := make([]Checker, 0, len(checkers))
	needsRST := false
	for _, checker := range checkers {
		if Serves(checker, ext) {
			selected = append(selected, checker)
			needsRST = needsRST || checker.NeedsRSTView()
		}
	}
	if len(selected) == 0 {
		return nil
	}

	lines := rstdoc.SplitLines(text)
	var rstLines []string
	if needsRST {
		rstLines = e.cache.HideNonRSTBlocks(lines)
	}

	var findings []Finding
	for _, checker := range selected {
		view := lines
		if checker.NeedsRSTView() {
			view = rstLines
		}

		ctx := &Context{
			Filename: filename,
			Lines:    view,
			Options:  e.options,
			Cache:    e.cache,
		}

		for _, issue := range checker.Check(ctx) {
			findings = append(findings, Finding{
				Filename: filename,
				Line:     issue.Line,
				Message:  issue.Message,
				Checker:  checker.Name(),
				Severity: config.SeverityWarning,
			})
		}
	}

	return findings
}

// CheckFile reads path and runs checkers over it. Translation catalogs are
// converted to markup first. A file that cannot be read, decoded or parsed
// yields a single file-error finding instead of an error; the returned error
// is non-nil only when ctx is done. The per-file cache is always reset before
// returning.
func (e *Engine) CheckFile(ctx context.Context, path string, checkers []Checker) ([]Finding, error) {
	defer e.cache.Reset()

	if !ServesFile(checkers, path) {
		return nil, nil
	}

	text, _, err := fsutil.ReadText(ctx, path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("check %s: %w", path, ctxErr)
		}
		if errors.Is(err, fsutil.ErrInvalidUTF8) {
			return []Finding{fileError(path, err.Error())}, nil
		}
		return []Finding{fileError(path, "cannot open: "+err.Error())}, nil
	}

	if Ext(path) == ".po" {
		text, err = pofile.ToRST(text)
		if err != nil {
			return []Finding{fileError(path, "cannot parse: "+err.Error())}, nil
		}
	}

	return e.CheckText(path, text, checkers), nil
}

func fileError(path, message string) Finding {
	return Finding{
		Filename: path,
		Line:     0,
		Message:  message,
		Checker:  FileErrorChecker,
		Severity: config.SeverityError,
	}
}

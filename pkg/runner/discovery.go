package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
	"github.com/gobwas/glob"

	"github.com/yaklabco/gorstlint/pkg/lint"
)

// ErrPathNotFound is returned when an explicit path does not exist.
var ErrPathNotFound = errors.New("path does not exist")

// Discover lists the files under opts.Paths that at least one of checkers
// applies to. Paths are visited in the given order and directories are
// walked in lexical order, so the result is deterministic. A file reached
// twice is listed once.
func Discover(ctx context.Context, opts Options, checkers []lint.Checker) ([]string, error) {
	paths := opts.effectivePaths()
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
			}
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
	}

	filter := newPathFilter(opts)
	seen := make(map[string]struct{})
	var files []string

	keep := func(path string) {
		path = stripDotSlash(path)
		if _, ok := seen[path]; ok {
			return
		}
		if !lint.ServesFile(checkers, path) {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if !info.IsDir() {
			if !filter.skip(path, false) {
				keep(path)
			}
			continue
		}

		if err := walkDirectory(ctx, path, filter, keep); err != nil {
			return nil, err
		}
	}

	return files, nil
}

// walkDirectory calls keep for every regular file under root that filter
// lets through. Hidden entries are skipped, and so are symlinks to
// directories.
func walkDirectory(ctx context.Context, root string, filter *pathFilter, keep func(string)) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrPermission) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			if path == root {
				if filter.ignored(path) {
					return filepath.SkipDir
				}
				return nil
			}
			if isHidden(entry.Name()) || filter.skip(path, true) {
				return filepath.SkipDir
			}
			return nil
		}

		if isHidden(entry.Name()) || filter.skip(path, false) {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil || info.IsDir() {
				return nil //nolint:nilerr // broken links and directory links are skipped
			}
		} else if !entry.Type().IsRegular() {
			return nil
		}

		keep(path)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", root, err)
	}
	return nil
}

func isHidden(name string) bool {
	return len(name) > 1 && strings.HasPrefix(name, ".")
}

func stripDotSlash(path string) string {
	for strings.HasPrefix(path, "./") && len(path) > 2 {
		path = path[2:]
	}
	return path
}

// pathFilter decides which paths the ignore list and vendoring rules drop.
type pathFilter struct {
	fragments       []string
	globs           []glob.Glob
	excludeVendored bool
}

func newPathFilter(opts Options) *pathFilter {
	f := &pathFilter{excludeVendored: opts.ExcludeVendored}
	for _, pattern := range opts.Ignore {
		if pattern == "" {
			continue
		}
		f.fragments = append(f.fragments, filepath.ToSlash(stripDotSlash(pattern)))
		if g, err := glob.Compile(filepath.ToSlash(pattern), '/'); err == nil {
			f.globs = append(f.globs, g)
		}
	}
	return f
}

// skip reports whether path, a directory when dir is set, is ignored or
// vendored.
func (f *pathFilter) skip(path string, dir bool) bool {
	if f.ignored(path) {
		return true
	}
	if !f.excludeVendored {
		return false
	}
	vendorPath := stripDotSlash(filepath.ToSlash(path))
	if dir {
		vendorPath += "/"
	}
	return enry.IsVendor(vendorPath)
}

// ignored reports whether an ignore pattern matches path: as a substring, or
// as a glob matching the whole path or its base name.
func (f *pathFilter) ignored(path string) bool {
	slashed := filepath.ToSlash(path)
	for _, fragment := range f.fragments {
		if strings.Contains(slashed, fragment) {
			return true
		}
	}

	stripped := stripDotSlash(slashed)
	base := filepath.Base(slashed)
	for _, g := range f.globs {
		if g.Match(slashed) || g.Match(stripped) || g.Match(base) {
			return true
		}
	}
	return false
}

package lint_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gorstlint/pkg/config"
	"github.com/yaklabco/gorstlint/pkg/lint"
	"github.com/yaklabco/gorstlint/pkg/rstdoc"
)

// fakeChecker records what it was given and reports one issue per line
// reading "bad", indentation ignored.
type fakeChecker struct {
	lint.BaseChecker
	enabled bool
	rstOnly bool

	calls int
	lines []string
	cache *rstdoc.Cache
}

func newFake(name string, enabled, rstOnly bool, suffixes ...string) *fakeChecker {
	if len(suffixes) == 0 {
		suffixes = []string{".rst", ".po"}
	}
	return &fakeChecker{
		BaseChecker: lint.NewBaseChecker(name, "Fake checker.\n\nLonger text.", suffixes...),
		enabled:     enabled,
		rstOnly:     rstOnly,
	}
}

func (f *fakeChecker) DefaultEnabled() bool { return f.enabled }
func (f *fakeChecker) NeedsRSTView() bool   { return f.rstOnly }

func (f *fakeChecker) Check(ctx *lint.Context) []lint.Issue {
	f.calls++
	f.lines = ctx.Lines
	f.cache = ctx.Cache
	ctx.Paragraphs()

	var issues []lint.Issue
	for idx, line := range ctx.Lines {
		if strings.TrimSpace(rstdoc.TrimTerminator(line)) == "bad" {
			issues = append(issues, lint.Issue{Line: idx + 1, Message: "bad line"})
		}
	}
	return issues
}

func TestRegistryBuild(t *testing.T) {
	t.Run("sorts checkers by name", func(t *testing.T) {
		reg, err := lint.NewRegistryBuilder().
			Add(newFake("zeta", true, false), newFake("alpha", false, false)).
			Build()
		require.NoError(t, err)

		assert.Equal(t, []string{"alpha", "zeta"}, reg.Names())
		assert.Equal(t, 2, reg.Len())
		require.Len(t, reg.Defaults(), 1)
		assert.Equal(t, "zeta", reg.Defaults()[0].Name())

		got, ok := reg.Get("alpha")
		require.True(t, ok)
		assert.Equal(t, "Fake checker.", lint.Summary(got))

		_, ok = reg.Get("missing")
		assert.False(t, ok)
	})

	tests := []struct {
		name    string
		checker lint.Checker
		wantErr error
	}{
		{"duplicate", newFake("same", true, false), lint.ErrDuplicateChecker},
		{"underscore name", newFake("bad_name", true, false), lint.ErrInvalidCheckerName},
		{"upper case name", newFake("Bad", true, false), lint.ErrInvalidCheckerName},
		{"reserved keyword", newFake("all", true, false), lint.ErrInvalidCheckerName},
		{"suffix without dot", newFake("no-dot", true, false, "rst"), lint.ErrInvalidChecker},
		{"nil", nil, lint.ErrInvalidChecker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lint.NewRegistryBuilder().
				Add(newFake("same", true, false), tt.checker).
				Build()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("MustBuild panics", func(t *testing.T) {
		assert.Panics(t, func() {
			lint.NewRegistryBuilder().Add(newFake("x", true, false), newFake("x", true, false)).MustBuild()
		})
	})
}

func names(checkers []lint.Checker) []string {
	out := make([]string, 0, len(checkers))
	for _, c := range checkers {
		out = append(out, c.Name())
	}
	return out
}

func TestResolve(t *testing.T) {
	reg := lint.NewRegistryBuilder().Add(
		newFake("one", true, false),
		newFake("two", true, false),
		newFake("three", false, false),
	).MustBuild()

	tests := []struct {
		name    string
		ops     []lint.SelectionOp
		want    []string
		wantErr bool
	}{
		{"defaults", nil, []string{"one", "two"}, false},
		{"enable all", []lint.SelectionOp{lint.EnableOp("all")}, []string{"one", "three", "two"}, false},
		{"disable all", []lint.SelectionOp{lint.DisableOp("all")}, nil, false},
		{
			"disable all then enable one",
			[]lint.SelectionOp{lint.DisableOp("all"), lint.EnableOp("three")},
			[]string{"three"}, false,
		},
		{
			"enable all then disable one",
			[]lint.SelectionOp{lint.EnableOp("all"), lint.DisableOp("two")},
			[]string{"one", "three"}, false,
		},
		{
			"order matters",
			[]lint.SelectionOp{lint.EnableOp("three"), lint.DisableOp("all")},
			nil, false,
		},
		{"unknown enable", []lint.SelectionOp{lint.EnableOp("four")}, nil, true},
		{"unknown disable", []lint.SelectionOp{lint.DisableOp("four")}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lint.Resolve(reg, tt.ops)
			if tt.wantErr {
				require.ErrorIs(t, err, lint.ErrUnknownChecker)
				assert.Contains(t, err.Error(), "four")
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestParseNames(t *testing.T) {
	assert.Equal(t, []string{"a", "b-c"}, lint.ParseNames(" a, ,b-c,"))
	assert.Nil(t, lint.ParseNames(""))
	assert.Equal(t, "--enable a,b", lint.EnableOp("a", "b").String())
	assert.Equal(t, "--disable all", lint.DisableOp("all").String())
}

func TestSortFindings(t *testing.T) {
	base := []lint.Finding{
		{Filename: "b.rst", Line: 2, Checker: "x"},
		{Filename: "a.rst", Line: 9, Checker: "y"},
		{Filename: "b.rst", Line: 1, Checker: "z"},
		{Filename: "a.rst", Line: 9, Checker: "a"},
	}

	t.Run("no fields keeps order", func(t *testing.T) {
		findings := append([]lint.Finding(nil), base...)
		lint.SortFindings(findings, nil)
		assert.Equal(t, base, findings)
	})

	t.Run("filename then line is stable", func(t *testing.T) {
		findings := append([]lint.Finding(nil), base...)
		lint.SortFindings(findings, []config.SortField{config.SortFilename, config.SortLine})
		assert.Equal(t, []lint.Finding{base[1], base[3], base[2], base[0]}, findings)
	})

	t.Run("error type", func(t *testing.T) {
		findings := append([]lint.Finding(nil), base...)
		lint.SortFindings(findings, []config.SortField{config.SortErrorType})
		assert.Equal(t, []lint.Finding{base[3], base[0], base[1], base[2]}, findings)
	})
}

func TestFindingString(t *testing.T) {
	f := lint.Finding{Filename: "doc/index.rst", Line: 3, Message: "trailing whitespace", Checker: "trailing-whitespace"}
	assert.Equal(t, "doc/index.rst:3: trailing whitespace (trailing-whitespace)", f.String())
}

func TestExt(t *testing.T) {
	assert.Equal(t, ".rst", lint.Ext("doc/index.rst"))
	assert.Equal(t, ".po", lint.Ext("locale/fr.po"))
	assert.Equal(t, "", lint.Ext("doc/.hidden"))
	assert.Equal(t, "", lint.Ext("Makefile"))
}

func TestCheckText(t *testing.T) {
	raw := newFake("raw", true, false)
	rstOnly := newFake("rst-only", true, true)
	pyOnly := newFake("py-only", true, false, ".py")

	engine := lint.NewEngine(lint.DefaultOptions())
	text := "Intro::\n\n   bad\n\nbad\n"
	findings := engine.CheckText("doc.rst", text, []lint.Checker{raw, rstOnly, pyOnly})

	assert.Equal(t, 0, pyOnly.calls)
	assert.Equal(t, 1, raw.calls)
	assert.Equal(t, 1, rstOnly.calls)

	assert.Equal(t, []string{"Intro::\n", "\n", "   bad\n", "\n", "bad\n"}, raw.lines)
	assert.Equal(t, []string{"Intro::\n", "\n", "\n", "\n", "bad\n"}, rstOnly.lines)

	assert.Equal(t, []lint.Finding{
		{Filename: "doc.rst", Line: 3, Message: "bad line", Checker: "raw", Severity: config.SeverityWarning},
		{Filename: "doc.rst", Line: 5, Message: "bad line", Checker: "raw", Severity: config.SeverityWarning},
		{Filename: "doc.rst", Line: 5, Message: "bad line", Checker: "rst-only", Severity: config.SeverityWarning},
	}, findings)

	assert.Nil(t, engine.CheckText("doc.txt", text, []lint.Checker{raw}))
}

func TestCheckFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("resets the cache after each file", func(t *testing.T) {
		checker := newFake("raw", true, false)
		engine := lint.NewEngine(lint.DefaultOptions())

		findings, err := engine.CheckFile(ctx, write("ok.rst", "fine\n\nbad\n"), []lint.Checker{checker})
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, 3, findings[0].Line)

		require.NotNil(t, checker.cache)
		assert.Equal(t, 0, checker.cache.Len())
	})

	t.Run("skips unserved extensions without reading", func(t *testing.T) {
		engine := lint.NewEngine(lint.DefaultOptions())
		findings, err := engine.CheckFile(ctx, filepath.Join(dir, "missing.txt"), []lint.Checker{newFake("raw", true, false)})
		require.NoError(t, err)
		assert.Empty(t, findings)
	})

	t.Run("unreadable file is a finding", func(t *testing.T) {
		engine := lint.NewEngine(lint.DefaultOptions())
		findings, err := engine.CheckFile(ctx, filepath.Join(dir, "missing.rst"), []lint.Checker{newFake("raw", true, false)})
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, lint.FileErrorChecker, findings[0].Checker)
		assert.Equal(t, config.SeverityError, findings[0].Severity)
		assert.Equal(t, 0, findings[0].Line)
		assert.Contains(t, findings[0].Message, "cannot open: ")
	})

	t.Run("undecodable file is a finding", func(t *testing.T) {
		engine := lint.NewEngine(lint.DefaultOptions())
		findings, err := engine.CheckFile(ctx, write("latin1.rst", "caf\xe9\n"), []lint.Checker{newFake("raw", true, false)})
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Contains(t, findings[0].Message, "cannot decode as UTF-8")
	})

	t.Run("translation catalogs are checked as markup", func(t *testing.T) {
		checker := newFake("raw", true, false)
		engine := lint.NewEngine(lint.DefaultOptions())
		path := write("fr.po", "msgid \"a\"\nmsgstr \"ok\"\n\nmsgid \"b\"\nmsgstr \"bad\"\n")

		findings, err := engine.CheckFile(ctx, path, []lint.Checker{checker})
		require.NoError(t, err)
		require.Len(t, findings, 1)
		assert.Equal(t, 4, findings[0].Line)
		assert.Equal(t, path, findings[0].Filename)
	})

	t.Run("cancelled context is an error", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		engine := lint.NewEngine(lint.DefaultOptions())
		_, err := engine.CheckFile(cancelled, write("c.rst", "x\n"), []lint.Checker{newFake("raw", true, false)})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

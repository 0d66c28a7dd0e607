package checkers

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/yaklabco/gorstlint/pkg/lint"
	"github.com/yaklabco/gorstlint/pkg/rst"
	"github.com/yaklabco/gorstlint/pkg/rstdoc"
)

// verbatimElements hold text where reST syntax is expected verbatim.
var verbatimElements = map[atom.Atom]bool{
	atom.Pre:    true,
	atom.Code:   true,
	atom.Script: true,
	atom.Style:  true,
	atom.Kbd:    true,
	atom.Samp:   true,
}

// LeakedMarkupChecker reports reST syntax that survived into built HTML.
type LeakedMarkupChecker struct {
	lint.BaseChecker
}

// NewLeakedMarkupChecker creates a new leaked markup checker.
func NewLeakedMarkupChecker() *LeakedMarkupChecker {
	return &LeakedMarkupChecker{
		BaseChecker: lint.NewBaseChecker(
			"leaked-markup",
			"Check HTML files for leaked reST markup.\n\n"+
				"This only works if the HTML files have been built. Only text\n"+
				"outside pre, code, kbd, samp, script and style elements is searched.",
			".html",
		),
	}
}

func (c *LeakedMarkupChecker) DefaultEnabled() bool { return false }
func (c *LeakedMarkupChecker) NeedsRSTView() bool   { return false }

// Check tokenizes the document and reports each source line whose visible
// text looks like reST, once.
func (c *LeakedMarkupChecker) Check(ctx *lint.Context) []lint.Issue {
	var (
		issues   []lint.Issue
		reported = make(map[int]bool)
		line     = 1
		verbatim = 0
	)

	z := html.NewTokenizer(strings.NewReader(strings.Join(ctx.Lines, "")))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				issues = append(issues, issuef(line, "cannot tokenize HTML: %v", err))
			}
			return issues
		}

		raw := string(z.Raw())

		switch tt {
		case html.StartTagToken:
			name, _ := z.TagName()
			if verbatimElements[atom.Lookup(name)] {
				verbatim++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if verbatimElements[atom.Lookup(name)] && verbatim > 0 {
				verbatim--
			}
		case html.TextToken:
			if verbatim == 0 {
				for offset, segment := range strings.Split(raw, "\n") {
					lno := line + offset
					if reported[lno] || !rst.LeakedMarkup.MatchString(html.UnescapeString(segment)) {
						continue
					}
					reported[lno] = true
					issues = append(issues, issuef(lno, "possibly leaked markup: %s", sourceLine(ctx.Lines, lno)))
				}
			}
		}

		line += strings.Count(raw, "\n")
	}
}

func sourceLine(lines []string, lno int) string {
	if lno < 1 || lno > len(lines) {
		return ""
	}
	return rstdoc.TrimTerminator(lines[lno-1])
}

package rst

import (
	"fmt"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// Pattern is a compiled recognizer. It is safe for concurrent use.
type Pattern struct {
	re     *regexp2.Regexp
	source string
}

// Compile compiles expr with .NET regex semantics. Dot matches newlines only when
// dotAll is set.
func Compile(expr string, dotAll bool) (*Pattern, error) {
	opts := regexp2.None
	if dotAll {
		opts |= regexp2.Singleline
	}

	re, err := regexp2.Compile(expr, opts)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expr, err)
	}

	return &Pattern{re: re, source: expr}, nil
}

// MustCompile is like Compile but panics on error. It is meant for the package
// level pattern catalogue, where a bad pattern is a programming error.
func MustCompile(expr string, dotAll bool) *Pattern {
	p, err := Compile(expr, dotAll)
	if err != nil {
		panic("rst: " + err.Error())
	}
	return p
}

// Source returns the pattern text.
func (p *Pattern) Source() string {
	return p.source
}

// Match is one match of a Pattern. Start and End are byte offsets into the subject.
type Match struct {
	Start int
	End   int

	m   *regexp2.Match
	sub *subject
}

// Text returns the matched text.
func (m Match) Text() string {
	return m.sub.text[m.Start:m.End]
}

// Group returns the text captured by the numbered group, or "" when the group did
// not participate in the match.
func (m Match) Group(n int) string {
	return m.sub.capture(m.m.GroupByNumber(n))
}

// Named returns the text captured by a named group.
func (m Match) Named(name string) string {
	return m.sub.capture(m.m.GroupByName(name))
}

// MatchString reports whether the pattern matches anywhere in s.
func (p *Pattern) MatchString(s string) bool {
	ok, err := p.re.MatchString(s)
	if err != nil {
		panic("rst: match: " + err.Error())
	}
	return ok
}

// Find returns the leftmost match in s.
func (p *Pattern) Find(s string) (Match, bool) {
	sub := newSubject(s)
	return p.findAt(sub, 0)
}

// FindAll returns successive non-overlapping matches, like Python's finditer.
func (p *Pattern) FindAll(s string) []Match {
	sub := newSubject(s)

	var out []Match
	m, err := p.re.FindRunesMatch(sub.runes)
	for ; m != nil; m, err = p.re.FindNextMatch(m) {
		out = append(out, sub.wrap(m))
	}
	if err != nil {
		panic("rst: match: " + err.Error())
	}

	return out
}

// FindOverlapped returns every match, including matches that overlap earlier
// ones. After a match starting at rune i the search resumes at rune i+1.
func (p *Pattern) FindOverlapped(s string) []Match {
	sub := newSubject(s)

	var out []Match
	for pos := 0; pos <= len(sub.runes); {
		match, ok := p.findAt(sub, pos)
		if !ok {
			break
		}
		out = append(out, match)
		pos = match.m.Index + 1
	}

	return out
}

// Shortest returns the overlapped match with the smallest span. Ties go to the
// leftmost candidate.
func (p *Pattern) Shortest(s string) (Match, bool) {
	var (
		best  Match
		found bool
	)
	for _, m := range p.FindOverlapped(s) {
		if !found || m.End-m.Start < best.End-best.Start {
			best, found = m, true
		}
	}
	return best, found
}

// ReplaceAll replaces every non-overlapping match with repl, taken literally.
func (p *Pattern) ReplaceAll(s, repl string) string {
	matches := p.FindAll(s)
	if len(matches) == 0 {
		return s
	}

	out := make([]byte, 0, len(s))
	last := 0
	for _, m := range matches {
		out = append(out, s[last:m.Start]...)
		out = append(out, repl...)
		last = m.End
	}
	out = append(out, s[last:]...)

	return string(out)
}

func (p *Pattern) findAt(sub *subject, runeIdx int) (Match, bool) {
	m, err := p.re.FindRunesMatchStartingAt(sub.runes, runeIdx)
	if err != nil {
		panic("rst: match: " + err.Error())
	}
	if m == nil {
		return Match{}, false
	}
	return sub.wrap(m), true
}

// subject keeps a string alongside its rune decoding, since regexp2 reports
// positions in runes.
type subject struct {
	text    string
	runes   []rune
	offsets []int // byte offset of each rune, plus len(text)
}

func newSubject(text string) *subject {
	n := utf8.RuneCountInString(text)
	sub := &subject{
		text:    text,
		runes:   make([]rune, 0, n),
		offsets: make([]int, 0, n+1),
	}
	for i, r := range text {
		sub.runes = append(sub.runes, r)
		sub.offsets = append(sub.offsets, i)
	}
	sub.offsets = append(sub.offsets, len(text))
	return sub
}

func (s *subject) wrap(m *regexp2.Match) Match {
	return Match{
		Start: s.offsets[m.Index],
		End:   s.offsets[m.Index+m.Length],
		m:     m,
		sub:   s,
	}
}

func (s *subject) capture(g *regexp2.Group) string {
	if g == nil || len(g.Captures) == 0 {
		return ""
	}
	return s.text[s.offsets[g.Index]:s.offsets[g.Index+g.Length]]
}

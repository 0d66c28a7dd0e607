package rstdoc

import (
	"strconv"
	"strings"

	"github.com/yaklabco/gorstlint/pkg/rst"
)

// Cache memoizes the derived views of one file.
//
// Checkers of the same file ask for the same paragraphs, cleaned paragraphs and
// rst-only view over and over; the cache computes each once. It is scoped to a
// single file: call Reset before moving to the next one so memory stays bounded
// and nothing leaks across files.
//
// A Cache is not safe for concurrent use. Give each worker its own.
type Cache struct {
	directives *rst.DirectiveSet

	escaped    map[string]string
	paragraphs map[string][]Paragraph
	cleaned    map[string]string
	hidden     map[string][]string
}

// NewCache returns an empty cache whose rst-only views use directives.
func NewCache(directives *rst.DirectiveSet) *Cache {
	c := &Cache{directives: directives}
	c.Reset()
	return c
}

// Reset drops every memoized value.
func (c *Cache) Reset() {
	c.escaped = make(map[string]string)
	c.paragraphs = make(map[string][]Paragraph)
	c.cleaned = make(map[string]string)
	c.hidden = make(map[string][]string)
}

// Directives returns the directive set used for block hiding.
func (c *Cache) Directives() *rst.DirectiveSet {
	return c.directives
}

// Len returns the number of memoized values.
func (c *Cache) Len() int {
	return len(c.escaped) + len(c.paragraphs) + len(c.cleaned) + len(c.hidden)
}

// EscapeToNull is a memoized rst.EscapeToNull.
func (c *Cache) EscapeToNull(text string) string {
	if v, ok := c.escaped[text]; ok {
		return v
	}
	v := rst.EscapeToNull(text)
	c.escaped[text] = v
	return v
}

// Paragraphs is a memoized Paragraphs. The returned slice is shared: do not
// modify it.
func (c *Cache) Paragraphs(lines []string) []Paragraph {
	key := linesKey(lines)
	if v, ok := c.paragraphs[key]; ok {
		return v
	}
	v := Paragraphs(lines)
	c.paragraphs[key] = v
	return v
}

// Clean is a memoized Clean.
func (c *Cache) Clean(paragraph string) string {
	if v, ok := c.cleaned[paragraph]; ok {
		return v
	}
	v := Clean(paragraph)
	c.cleaned[paragraph] = v
	return v
}

// HideNonRSTBlocks is a memoized HideNonRSTBlocks without block callback. The
// returned slice is shared: do not modify it.
func (c *Cache) HideNonRSTBlocks(lines []string) []string {
	key := linesKey(lines)
	if v, ok := c.hidden[key]; ok {
		return v
	}
	v := HideNonRSTBlocks(lines, c.directives, nil)
	c.hidden[key] = v
	return v
}

// linesKey encodes lines with a length prefix each, so different splits of
// the same text get different keys.
func linesKey(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(strconv.Itoa(len(line)))
		b.WriteByte(':')
		b.WriteString(line)
	}
	return b.String()
}

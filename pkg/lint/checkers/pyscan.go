package checkers

import (
	"fmt"
	"strings"
)

// pySyntaxError is the first problem found by scanPython.
type pySyntaxError struct {
	line int
	msg  string
}

var pyClosers = map[byte]byte{')': '(', ']': '[', '}': '{'}

type pyBracket struct {
	char byte
	line int
}

// pyScanner tokenizes just enough Python to find unterminated strings,
// unbalanced brackets and broken indentation. It does not parse grammar.
type pyScanner struct {
	src  string
	pos  int
	line int

	brackets []pyBracket
	indents  []int

	// Logical line state.
	atLineStart  bool
	continuation bool
	lastToken    byte // last significant character of the logical line
	expectIndent bool
	openerLine   int
}

// scanPython returns nil when code looks compilable.
func scanPython(code string) *pySyntaxError {
	s := &pyScanner{src: code, line: 1, indents: []int{0}, atLineStart: true}
	return s.run()
}

func (s *pyScanner) run() *pySyntaxError {
	for s.pos < len(s.src) {
		if s.atLineStart && len(s.brackets) == 0 && !s.continuation {
			if err := s.indentation(); err != nil {
				return err
			}
			if s.pos >= len(s.src) {
				break
			}
		}
		s.atLineStart = false

		c := s.src[s.pos]
		switch {
		case c == '\n':
			s.newline()
		case c == '#':
			for s.pos < len(s.src) && s.src[s.pos] != '\n' {
				s.pos++
			}
		case c == '\\':
			if s.pos+1 < len(s.src) && s.src[s.pos+1] == '\n' {
				s.pos += 2
				s.line++
				s.atLineStart = true
				s.continuation = true
				continue
			}
			return &pySyntaxError{line: s.line, msg: "unexpected character after line continuation character"}
		case c == '\'' || c == '"':
			if err := s.str(s.pos); err != nil {
				return err
			}
		case isPyIdentStart(c):
			if err := s.word(); err != nil {
				return err
			}
		case c == '(' || c == '[' || c == '{':
			s.brackets = append(s.brackets, pyBracket{char: c, line: s.line})
			s.token(c)
		case c == ')' || c == ']' || c == '}':
			if err := s.closeBracket(c); err != nil {
				return err
			}
		case c == ' ' || c == '\t' || c == '\f':
			s.pos++
		default:
			s.token(c)
		}
	}

	if len(s.brackets) > 0 {
		open := s.brackets[len(s.brackets)-1]
		return &pySyntaxError{line: open.line, msg: fmt.Sprintf("'%c' was never closed", open.char)}
	}
	if s.expectIndent || (s.lastToken == ':' && !s.continuation) {
		return &pySyntaxError{line: s.line, msg: fmt.Sprintf("expected an indented block after line %d", s.openerLineOr())}
	}
	return nil
}

func (s *pyScanner) openerLineOr() int {
	if s.openerLine > 0 {
		return s.openerLine
	}
	return s.line
}

func (s *pyScanner) token(c byte) {
	s.lastToken = c
	s.pos++
}

func (s *pyScanner) newline() {
	s.pos++
	if len(s.brackets) == 0 {
		if s.lastToken == ':' {
			s.expectIndent = true
			s.openerLine = s.line
		}
		s.lastToken = 0
		s.continuation = false
	}
	s.line++
	s.atLineStart = true
}

// indentation measures the indentation of a new logical line and checks it
// against the indentation stack. Blank and comment-only lines are skipped.
func (s *pyScanner) indentation() *pySyntaxError {
	col := 0
	i := s.pos
measure:
	for ; i < len(s.src); i++ {
		switch s.src[i] {
		case ' ':
			col++
		case '\t':
			col = (col/8 + 1) * 8
		case '\f':
			col = 0
		default:
			break measure
		}
	}

	if i >= len(s.src) || s.src[i] == '\n' || s.src[i] == '#' {
		s.pos = i
		s.atLineStart = false
		return nil
	}
	s.pos = i

	top := s.indents[len(s.indents)-1]
	switch {
	case col > top:
		if !s.expectIndent {
			return &pySyntaxError{line: s.line, msg: "unexpected indent"}
		}
		s.indents = append(s.indents, col)
	case col < top:
		if s.expectIndent {
			return &pySyntaxError{line: s.line, msg: fmt.Sprintf("expected an indented block after line %d", s.openerLine)}
		}
		for len(s.indents) > 1 && s.indents[len(s.indents)-1] > col {
			s.indents = s.indents[:len(s.indents)-1]
		}
		if s.indents[len(s.indents)-1] != col {
			return &pySyntaxError{line: s.line, msg: "unindent does not match any outer indentation level"}
		}
	default:
		if s.expectIndent {
			return &pySyntaxError{line: s.line, msg: fmt.Sprintf("expected an indented block after line %d", s.openerLine)}
		}
	}
	s.expectIndent = false
	return nil
}

func (s *pyScanner) closeBracket(c byte) *pySyntaxError {
	if len(s.brackets) == 0 {
		return &pySyntaxError{line: s.line, msg: fmt.Sprintf("unmatched '%c'", c)}
	}
	open := s.brackets[len(s.brackets)-1]
	if open.char != pyClosers[c] {
		msg := fmt.Sprintf("closing parenthesis '%c' does not match opening parenthesis '%c'", c, open.char)
		if open.line != s.line {
			msg += fmt.Sprintf(" on line %d", open.line)
		}
		return &pySyntaxError{line: s.line, msg: msg}
	}
	s.brackets = s.brackets[:len(s.brackets)-1]
	s.token(c)
	return nil
}

// word consumes an identifier or keyword, and the string it prefixes if any.
func (s *pyScanner) word() *pySyntaxError {
	start := s.pos
	for s.pos < len(s.src) && isPyIdentPart(s.src[s.pos]) {
		s.pos++
	}
	if s.pos < len(s.src) && (s.src[s.pos] == '\'' || s.src[s.pos] == '"') && isPyStringPrefix(s.src[start:s.pos]) {
		return s.str(s.pos)
	}
	s.lastToken = 'a'
	return nil
}

// str consumes a string literal whose opening quote is at start. A backslash
// always protects the next character, raw strings included.
func (s *pyScanner) str(start int) *pySyntaxError {
	quote := s.src[start]
	triple := strings.HasPrefix(s.src[start:], strings.Repeat(string(quote), 3))
	startLine := s.line

	if triple {
		s.pos = start + 3
		end := strings.Repeat(string(quote), 3)
		for s.pos < len(s.src) {
			switch {
			case s.src[s.pos] == '\\' && s.pos+1 < len(s.src):
				if s.src[s.pos+1] == '\n' {
					s.line++
				}
				s.pos += 2
			case strings.HasPrefix(s.src[s.pos:], end):
				s.pos += 3
				s.lastToken = '"'
				return nil
			default:
				if s.src[s.pos] == '\n' {
					s.line++
				}
				s.pos++
			}
		}
		return &pySyntaxError{
			line: startLine,
			msg:  fmt.Sprintf("unterminated triple-quoted string literal (detected at line %d)", s.line),
		}
	}

	s.pos = start + 1
	for s.pos < len(s.src) {
		switch c := s.src[s.pos]; {
		case c == '\\' && s.pos+1 < len(s.src):
			if s.src[s.pos+1] == '\n' {
				s.line++
			}
			s.pos += 2
		case c == quote:
			s.pos++
			s.lastToken = '"'
			return nil
		case c == '\n':
			return &pySyntaxError{
				line: startLine,
				msg:  fmt.Sprintf("unterminated string literal (detected at line %d)", startLine),
			}
		default:
			s.pos++
		}
	}
	return &pySyntaxError{
		line: startLine,
		msg:  fmt.Sprintf("unterminated string literal (detected at line %d)", startLine),
	}
}

func isPyIdentStart(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c >= 0x80
}

func isPyIdentPart(c byte) bool {
	return isPyIdentStart(c) || '0' <= c && c <= '9'
}

func isPyStringPrefix(prefix string) bool {
	switch strings.ToLower(prefix) {
	case "r", "u", "b", "f", "br", "rb", "fr", "rf", "t", "tr", "rt":
		return true
	default:
		return false
	}
}

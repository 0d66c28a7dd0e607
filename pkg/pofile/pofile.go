// Package pofile parses gettext translation catalogs and renders their
// translations as reStructuredText with line numbers preserved.
package pofile

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ErrSyntax is wrapped by every parse error.
var ErrSyntax = errors.New("invalid translation catalog")

// ParseError locates a syntax error in a catalog.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: line %d: %s", ErrSyntax, e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return ErrSyntax
}

// Entry is one message of a catalog.
type Entry struct {
	// Line is the 1-based line of the msgid keyword.
	Line int

	Context    string
	HasContext bool
	ID         string
	IDPlural   string
	Str        string
	StrPlural  []string

	TranslatorComments []string
	ExtractedComments  []string
	References         []string
	Flags              []string

	// Obsolete marks entries commented out with "#~".
	Obsolete bool

	seenID  bool
	seenStr bool
}

// IsHeader reports whether e is the catalog metadata entry.
func (e *Entry) IsHeader() bool {
	return e.ID == "" && !e.HasContext
}

// IsPlural reports whether e has plural forms.
func (e *Entry) IsPlural() bool {
	return e.IDPlural != "" || len(e.StrPlural) > 0
}

// Fuzzy reports whether e carries the fuzzy flag.
func (e *Entry) Fuzzy() bool {
	return slices.Contains(e.Flags, "fuzzy")
}

// Translated reports whether e is live, not fuzzy, and fully translated.
func (e *Entry) Translated() bool {
	if e.Obsolete || e.Fuzzy() {
		return false
	}
	if !e.IsPlural() {
		return e.Str != ""
	}
	if len(e.StrPlural) == 0 {
		return false
	}
	for _, form := range e.StrPlural {
		if form == "" {
			return false
		}
	}
	return true
}

// Translation returns the translated text. Plural forms are joined with
// newlines in index order.
func (e *Entry) Translation() string {
	if e.IsPlural() {
		return strings.Join(e.StrPlural, "\n")
	}
	return e.Str
}

// Catalog is a parsed translation catalog.
type Catalog struct {
	// Header is the metadata entry, nil when absent.
	Header *Entry

	// Entries holds every other entry in file order, obsolete ones included.
	Entries []*Entry
}

// TranslatedEntries returns the entries whose translation should be checked.
func (c *Catalog) TranslatedEntries() []*Entry {
	var out []*Entry
	for _, e := range c.Entries {
		if e.Translated() {
			out = append(out, e)
		}
	}
	return out
}

// Parse parses the text of a catalog.
func Parse(text string) (*Catalog, error) {
	p := &parser{catalog: &Catalog{}}
	lineNo := 0
	for raw := range strings.Lines(text) {
		lineNo++
		if err := p.line(lineNo, strings.TrimRight(raw, "\r\n")); err != nil {
			return nil, err
		}
	}
	if err := p.flush(lineNo); err != nil {
		return nil, err
	}
	return p.catalog, nil
}

type parser struct {
	catalog *Catalog
	cur     *Entry

	// appendTo receives continuation strings for the last keyword seen.
	appendTo func(string)
}

func (p *parser) entry() *Entry {
	if p.cur == nil {
		p.cur = &Entry{}
	}
	return p.cur
}

func (p *parser) flush(lineNo int) error {
	e := p.cur
	p.cur, p.appendTo = nil, nil
	if e == nil || !e.seenID {
		return nil
	}
	if !e.seenStr {
		return &ParseError{Line: lineNo, Msg: "msgid without msgstr"}
	}
	if e.IsHeader() && !e.Obsolete && p.catalog.Header == nil && len(p.catalog.Entries) == 0 {
		p.catalog.Header = e
		return nil
	}
	p.catalog.Entries = append(p.catalog.Entries, e)
	return nil
}

// startsEntry flushes the current entry when it is complete, so the next
// comment or keyword opens a new one.
func (p *parser) startsEntry(lineNo int) error {
	if p.cur != nil && p.cur.seenStr {
		return p.flush(lineNo)
	}
	return nil
}

func (p *parser) line(lineNo int, line string) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		if p.cur != nil && p.cur.seenStr {
			return p.flush(lineNo)
		}
		return nil
	}

	obsolete := false
	if rest, ok := strings.CutPrefix(trimmed, "#~"); ok {
		rest = strings.TrimSpace(rest)
		if strings.HasPrefix(rest, "|") || rest == "" {
			return nil
		}
		trimmed, obsolete = rest, true
	}

	if strings.HasPrefix(trimmed, "#") {
		if err := p.startsEntry(lineNo); err != nil {
			return err
		}
		p.comment(trimmed)
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		if p.appendTo == nil {
			return &ParseError{Line: lineNo, Msg: "string without keyword"}
		}
		value, err := unquote(trimmed)
		if err != nil {
			return &ParseError{Line: lineNo, Msg: err.Error()}
		}
		p.appendTo(value)
		return nil
	}

	keyword, rest, _ := strings.Cut(trimmed, " ")
	value, err := unquote(strings.TrimSpace(rest))
	if err != nil {
		return &ParseError{Line: lineNo, Msg: fmt.Sprintf("%s: %v", keyword, err)}
	}

	return p.keyword(lineNo, keyword, value, obsolete)
}

func (p *parser) comment(line string) {
	e := p.entry()
	switch {
	case strings.HasPrefix(line, "#,"):
		for flag := range strings.SplitSeq(line[2:], ",") {
			if flag = strings.TrimSpace(flag); flag != "" {
				e.Flags = append(e.Flags, flag)
			}
		}
	case strings.HasPrefix(line, "#:"):
		e.References = append(e.References, strings.Fields(line[2:])...)
	case strings.HasPrefix(line, "#."):
		e.ExtractedComments = append(e.ExtractedComments, strings.TrimSpace(line[2:]))
	case strings.HasPrefix(line, "#|"):
		// Previous msgid, not needed for checking.
	default:
		e.TranslatorComments = append(e.TranslatorComments, strings.TrimSpace(line[1:]))
	}
}

func (p *parser) keyword(lineNo int, keyword, value string, obsolete bool) error {
	switch {
	case keyword == "msgctxt":
		if err := p.startsEntry(lineNo); err != nil {
			return err
		}
		e := p.entry()
		if e.seenID {
			return &ParseError{Line: lineNo, Msg: "msgctxt after msgid"}
		}
		e.Context, e.HasContext, e.Obsolete = value, true, obsolete
		p.appendTo = func(s string) { e.Context += s }

	case keyword == "msgid":
		if err := p.startsEntry(lineNo); err != nil {
			return err
		}
		e := p.entry()
		if e.seenID {
			return &ParseError{Line: lineNo, Msg: "msgid without msgstr"}
		}
		e.ID, e.Line, e.seenID, e.Obsolete = value, lineNo, true, obsolete
		p.appendTo = func(s string) { e.ID += s }

	case keyword == "msgid_plural":
		e := p.cur
		if e == nil || !e.seenID || e.seenStr {
			return &ParseError{Line: lineNo, Msg: "msgid_plural without msgid"}
		}
		e.IDPlural = value
		p.appendTo = func(s string) { e.IDPlural += s }

	case keyword == "msgstr":
		e := p.cur
		if e == nil || !e.seenID {
			return &ParseError{Line: lineNo, Msg: "msgstr without msgid"}
		}
		e.Str, e.seenStr = value, true
		p.appendTo = func(s string) { e.Str += s }

	case strings.HasPrefix(keyword, "msgstr[") && strings.HasSuffix(keyword, "]"):
		e := p.cur
		if e == nil || !e.seenID {
			return &ParseError{Line: lineNo, Msg: keyword + " without msgid"}
		}
		idx, err := strconv.Atoi(keyword[len("msgstr[") : len(keyword)-1])
		if err != nil || idx < 0 || idx != len(e.StrPlural) {
			return &ParseError{Line: lineNo, Msg: "unexpected plural index in " + keyword}
		}
		e.StrPlural = append(e.StrPlural, value)
		e.seenStr = true
		p.appendTo = func(s string) { e.StrPlural[idx] += s }

	default:
		return &ParseError{Line: lineNo, Msg: fmt.Sprintf("unknown keyword %q", keyword)}
	}

	return nil
}

// unquote decodes a double-quoted PO string with C escapes.
func unquote(token string) (string, error) {
	if len(token) < 2 || token[0] != '"' || token[len(token)-1] != '"' {
		return "", errors.New("expected a double-quoted string")
	}
	body := token[1 : len(token)-1]

	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '"':
			return "", errors.New("unescaped quote inside string")
		case c != '\\':
			b.WriteByte(c)
		case i+1 == len(body):
			return "", errors.New("unterminated escape sequence")
		default:
			i++
			b.WriteString(unescape(body[i]))
		}
	}
	return b.String(), nil
}

func unescape(c byte) string {
	switch c {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	case 'a':
		return "\a"
	case 'b':
		return "\b"
	case 'f':
		return "\f"
	case 'v':
		return "\v"
	case '\\', '"':
		return string(c)
	default:
		return `\` + string(c)
	}
}

package rst

import (
	"strings"
	"sync"

	"github.com/dlclark/regexp2"
)

// Characters allowed around inline markup, as regex character class bodies.
const (
	asciiAllowedBefore   = `-:/'"<(\[{`
	unicodeAllowedBefore = `\p{Ps}\p{Pi}\p{Pf}\p{Pd}\p{Po}`
	asciiAllowedAfter    = `-.,:;!?/'")\]}>`
	unicodeAllowedAfter  = `\p{Pe}\p{Pi}\p{Pf}\p{Pd}\p{Po}`
)

// MarkupGroup names the capture holding a whole inline markup span, delimiters
// included.
const MarkupGroup = "inline_markup"

// quotePairs lists opener/closer pairs between which a lone start-string is not
// inline markup, for example »`» in Swedish typography.
var quotePairs = []string{
	"»»", // Swedish
	"‘‚", // Albanian/Greek/Turkish
	"’’", // Swedish
	"‚‘", // German
	"‚’", // Polish
	"“„", // Albanian/Greek/Turkish
	"„“", // German
	"„”", // Polish
	"””", // Swedish
	"››", // Swedish
	"''",
	`""`,
	"<>",
	"()",
	"[]",
	"{}",
}

var quotePairsLookbehind = buildQuotePairsLookbehind()

func buildQuotePairsLookbehind() string {
	var alts []string
	for _, pair := range quotePairs {
		r := []rune(pair)
		alts = append(alts, regexp2.Escape(string(r[0]))+"`"+regexp2.Escape(string(r[1])))
	}

	openers, closers := []rune(openers), []rune(closers)
	for i := range min(len(openers), len(closers)) {
		alts = append(alts, regexp2.Escape(string(openers[i]))+"`"+regexp2.Escape(string(closers[i])))
	}

	return "(?<!" + strings.Join(alts, "|") + ")"
}

// markupStart is the lookbehind every inline markup start-string must satisfy: not
// escaped, and at the start of text, after whitespace, or after allowed punctuation.
func markupStart(extraAllowedBefore string) string {
	if extraAllowedBefore != "" {
		extraAllowedBefore = "|" + extraAllowedBefore
	}
	return `(?<!\x00)(?<=^|\s|[` + asciiAllowedBefore + `]|[` + unicodeAllowedBefore + `]` +
		extraAllowedBefore + `)`
}

// literalStart is the start-string of inline literals, the one construct whose
// content is not subject to backslash escapes.
const literalStart = "``"

// inlineMarkupSource builds the pattern for start <payload> end. Both delimiters
// are regex fragments.
func inlineMarkupSource(start, end, extraAllowedBefore string) string {
	endNotEscaped := `(?<!\x00)`
	if start == literalStart {
		endNotEscaped = ""
	}

	return markupStart(extraAllowedBefore) +
		`(?<` + MarkupGroup + `>` +
		start + `\S` + quotePairsLookbehind +
		`.*?` +
		`(?<=\x00 |\S)` + endNotEscaped + end +
		`)` +
		`(?=$|\s|\x00|[` + asciiAllowedAfter + `]|[` + unicodeAllowedAfter + `])`
}

type markupKey struct {
	start, end, extra string
}

var markupCache sync.Map // markupKey -> *Pattern

// InlineMarkup returns the recognizer for inline markup delimited by start and end,
// which are regex fragments (pass `\*` for emphasis). extraAllowedBefore, when not
// empty, is an additional alternative for the character preceding start.
//
// Recognizers are compiled once per distinct argument triple and shared.
func InlineMarkup(start, end, extraAllowedBefore string) *Pattern {
	key := markupKey{start: start, end: end, extra: extraAllowedBefore}
	if p, ok := markupCache.Load(key); ok {
		return p.(*Pattern)
	}

	p := MustCompile(inlineMarkupSource(start, end, extraAllowedBefore), true)
	actual, _ := markupCache.LoadOrStore(key, p)
	return actual.(*Pattern)
}

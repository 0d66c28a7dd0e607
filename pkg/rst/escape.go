package rst

import (
	"strings"
	"unicode/utf8"
)

// Sentinel replaces escaping backslashes in normalized text.
const Sentinel = "\x00"

// EscapeToNull rewrites each escaping backslash into Sentinel followed by the
// escaped character. Backslashes are paired left to right, so `\\` becomes
// "\x00\" and the second backslash escapes nothing.
//
// The result must not be normalized a second time.
func EscapeToNull(text string) string {
	if !strings.Contains(text, `\`) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	start := 0
	for {
		found := strings.IndexByte(text[start:], '\\')
		if found == -1 {
			b.WriteString(text[start:])
			return b.String()
		}
		found += start
		b.WriteString(text[start:found])
		b.WriteString(Sentinel)

		// Copy the escaped character whole, even when it is multi-byte.
		next := found + 1
		if next < len(text) {
			_, size := utf8.DecodeRuneInString(text[next:])
			b.WriteString(text[next : next+size])
			next += size
		}
		start = next
	}
}

// NullToEscape is the display inverse of EscapeToNull.
func NullToEscape(text string) string {
	return strings.ReplaceAll(text, Sentinel, `\`)
}

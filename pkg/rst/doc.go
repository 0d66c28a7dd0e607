// Package rst holds the recognition grammar for reStructuredText inline markup and
// explicit markup blocks.
//
// Go's regexp package has no lookaround, which the docutils inline markup
// recognition rules are written in terms of, so every pattern here is compiled with
// github.com/dlclark/regexp2. Matches are reported with byte offsets into the
// subject string so callers can slice it directly.
//
// The patterns operate on escape-normalized text (see EscapeToNull): an escaping
// backslash is replaced by a NUL byte so "preceded by an unescaped backslash"
// becomes a single-character lookbehind.
package rst

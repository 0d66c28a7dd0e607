package rstdoc

import (
	"strings"

	"github.com/yaklabco/gorstlint/pkg/rst"
)

// cleanOrder is the order in which well formed constructs are peeled off.
// Literals go first: their content is not markup. Roles go last, since
// removing one can turn its neighbour into a well formed role.
var cleanOrder = []*rst.Pattern{
	rst.InlineLiteral,
	rst.InlineInternalTarget,
	rst.HyperlinkReference,
	rst.AnonymousHyperlinkReference,
	rst.NormalRole,
}

// Clean removes every well formed inline literal, internal target, hyperlink
// reference and role from paragraph, so detectors only see what is left.
// Backslashes are restored in the result.
func Clean(paragraph string) string {
	text := rst.EscapeToNull(paragraph)
	for _, pattern := range cleanOrder {
		text = removeShortestFirst(text, pattern)
	}

	return rst.NullToEscape(text)
}

// removeShortestFirst deletes matches of pattern one at a time, always the
// shortest candidate among overlapping matches. In "(abc (def) ghi" this removes
// "(def)" and leaves the lone "(".
func removeShortestFirst(text string, pattern *rst.Pattern) string {
	for {
		match, ok := pattern.Shortest(text)
		if !ok {
			return text
		}
		text = text[:match.Start] + text[match.End:]
	}
}

// knownRoleDomain matches role prefixes like "c:" and "py:" where a missing
// leading colon is likelier than a missing space.
var knownRoleDomain = rst.MustCompile(`^ *(c|py):`, false)

// LooksLikeGlued tells a role glued to the previous word ("the:issue:`1`") from
// a role missing its leading colon ("c:func:`foo`", "issue:`1`"). match is the
// text found by rst.RoleGluedWithWord.
func LooksLikeGlued(match string) bool {
	if strings.Count(match, ":") == 1 {
		return false
	}
	if knownRoleDomain.MatchString(match) {
		return false
	}
	return true
}

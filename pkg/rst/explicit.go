package rst

import (
	"strings"
	"unicode"
)

// ExplicitMarkup is the kind of a ".. " explicit markup block.
type ExplicitMarkup int

const (
	// Comment is any explicit markup block that matches no other kind.
	Comment ExplicitMarkup = iota
	// Directive is a ".. name::" block.
	Directive
	// Footnote is a numbered ".. [1]" block.
	Footnote
	// Citation is any other ".. [label]" block.
	Citation
	// Target is a ".. _name:" hyperlink target.
	Target
	// SubstitutionDefinition is a ".. |name| directive::" block.
	SubstitutionDefinition
)

func (k ExplicitMarkup) String() string {
	switch k {
	case Directive:
		return "directive"
	case Footnote:
		return "footnote"
	case Citation:
		return "citation"
	case Target:
		return "target"
	case SubstitutionDefinition:
		return "substitution_definition"
	default:
		return "comment"
	}
}

var (
	footnoteMarker     = MustCompile(`^\.\. \[[0-9]+\] `, false)
	citationMarker     = MustCompile(`^\.\. \[[^\]]+\] `, false)
	targetMarker       = MustCompile(`^\.\. _.*[^_]: `, false)
	substitutionMarker = MustCompile(`^\.\. \|[^\|]*\| `, false)

	// CommentStart matches a line opening an explicit markup block.
	CommentStart = MustCompile(`^ *\.\. `, false)

	// EmptyCommentStart matches a line made of ".." alone.
	EmptyCommentStart = MustCompile(`^\s*\.\.$`, false)

	// ProductionList matches a productionlist directive.
	ProductionList = MustCompile(`^ *.. productionlist::`, false)
)

// ExplicitMarkupType classifies line, ignoring its indentation. Anything that is
// not a directive, footnote, citation, target or substitution definition is a
// comment.
func (ds *DirectiveSet) ExplicitMarkupType(line string) ExplicitMarkup {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	switch {
	case ds.directiveMarker.MatchString(line):
		return Directive
	case footnoteMarker.MatchString(line):
		return Footnote
	case citationMarker.MatchString(line):
		return Citation
	case targetMarker.MatchString(line):
		return Target
	case substitutionMarker.MatchString(line):
		return SubstitutionDefinition
	default:
		return Comment
	}
}

// IsComment reports whether line opens an explicit markup block that is a plain
// comment.
func (ds *DirectiveSet) IsComment(line string) bool {
	return CommentStart.MatchString(line) && ds.ExplicitMarkupType(line) == Comment
}

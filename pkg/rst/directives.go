package rst

import (
	"slices"
	"strings"
	"sync"

	"github.com/dlclark/regexp2"
)

// directivesContainingRST are directives whose body is itself reStructuredText
// and must still be checked. Entries are regex fragments.
//
//nolint:gochecknoglobals // fixed table
var directivesContainingRST = []string{
	// docutils
	"admonition", "attention", "caution", "class", "compound", "container",
	"danger", "epigraph", "error", "figure", "footer", "header", "highlights",
	"hint", "image", "important", "include", "line-block", "list-table", "meta",
	"note", "parsed-literal", "pull-quote", "replace", "sidebar", "tip", "topic",
	"warning",
	// Sphinx and the Python documentation
	"acks", "attribute", "autoattribute", "autoclass", "autodata",
	"autoexception", "autofunction", "automethod", "automodule",
	"availability", "centered", "cfunction", "class", "classmethod", "cmacro",
	"cmdoption", "cmember", "confval", "cssclass", "ctype",
	"currentmodule", "cvar", "data", "decorator", "decoratormethod",
	"deprecated-removed", "deprecated(?!-removed)", "describe", "directive",
	"envvar", "event", "exception", "function", "glossary",
	"highlight", "highlightlang", "impl-detail", "index", "literalinclude",
	"method", "miscnews", "module", "moduleauthor", "opcode", "pdbcommand",
	"program", "role", "sectionauthor", "seealso",
	"sourcecode", "staticmethod", "tabularcolumns", "testcode", "testoutput",
	"testsetup", "toctree", "todo", "todolist", "versionadded",
	"versionchanged", "c:function", "coroutinefunction",
}

// directivesContainingArbitraryContent are directives whose body is opaque: it is
// hidden from markup checkers.
//
//nolint:gochecknoglobals // fixed table
var directivesContainingArbitraryContent = []string{
	// docutils
	"contents", "csv-table", "date", "default-role", "include", "raw",
	"restructuredtext-test-directive", "role", "rubric", "sectnum", "table",
	"target-notes", "title", "unicode",
	// Sphinx and the Python documentation
	"code-block", "doctest", "productionlist",
}

// DirectivesContainingRST returns a copy of the nested-markup directive table.
func DirectivesContainingRST() []string {
	return slices.Clone(directivesContainingRST)
}

// DirectivesContainingArbitraryContent returns a copy of the opaque directive
// table, without any project additions.
func DirectivesContainingArbitraryContent() []string {
	return slices.Clone(directivesContainingArbitraryContent)
}

// DirectiveSet holds the directive-dependent patterns for one list of project
// directives. Build it with Directives.
type DirectiveSet struct {
	known []string

	containingRST     *Pattern
	arbitraryContent  *Pattern
	directiveMarker   *Pattern
	seemsDirective    *Pattern
	threeDotDirective *Pattern
}

var directiveSets sync.Map // string -> *DirectiveSet

// Directives returns the directive set extended with known, the project's extra
// directives taking arbitrary content. Names are matched literally. Sets are
// cached per distinct list.
func Directives(known []string) *DirectiveSet {
	key := strings.Join(known, "\x00")
	if ds, ok := directiveSets.Load(key); ok {
		return ds.(*DirectiveSet)
	}

	arbitrary := DirectivesContainingArbitraryContent()
	for _, name := range known {
		arbitrary = append(arbitrary, regexp2.Escape(name))
	}
	all := `(` + strings.Join(append(DirectivesContainingRST(), arbitrary...), "|") + `)`

	ds := &DirectiveSet{
		known:             slices.Clone(known),
		containingRST:     MustCompile(`^\s*\.\. (`+strings.Join(directivesContainingRST, "|")+`)::`, false),
		arbitraryContent:  MustCompile(`^\s*\.\. (`+strings.Join(arbitrary, "|")+`)::`, false),
		directiveMarker:   MustCompile(`^\.\. `+all+`::`, false),
		seemsDirective:    MustCompile(`^\s*(?<!\.)\.\. `+all+`([^a-z:]|:(?!:))`, false),
		threeDotDirective: MustCompile(`\.\.\. `+all+`::`, false),
	}

	actual, _ := directiveSets.LoadOrStore(key, ds)
	return actual.(*DirectiveSet)
}

// Known returns the project directives the set was built with.
func (ds *DirectiveSet) Known() []string {
	return slices.Clone(ds.known)
}

// ContainsRST reports whether line opens a directive whose body is markup.
func (ds *DirectiveSet) ContainsRST(line string) bool {
	return ds.containingRST.MatchString(line)
}

// ContainsArbitraryContent reports whether line opens a directive whose body is
// opaque.
func (ds *DirectiveSet) ContainsArbitraryContent(line string) bool {
	return ds.arbitraryContent.MatchString(line)
}

// SeemsDirective reports whether line is a comment that was probably meant to be
// a directive, like ".. versionchanged 3.6".
func (ds *DirectiveSet) SeemsDirective(line string) bool {
	return ds.seemsDirective.MatchString(line)
}

// ThreeDotDirective reports whether line contains "... name::".
func (ds *DirectiveSet) ThreeDotDirective(line string) bool {
	return ds.threeDotDirective.MatchString(line)
}

package rst

// SimpleName matches a role or directive name: word segments joined by single
// separators, never starting with an underscore.
const SimpleName = `(?:(?!_)\w)+(?:[-._+:](?:(?!_)\w)+)*`

// RoleTag matches `:name:`.
const RoleTag = `:` + SimpleName + `:`

const (
	closingDelimiters = `\\.,;!?`
	beforeRole        = `(^|(?<=[\s(/'{\[*-]))`
	roleHead          = `(` + beforeRole + `:` + SimpleName + `:)`
)

// AllowedAfterRole is the character class body of what may follow a role.
const AllowedAfterRole = asciiAllowedAfter + unicodeAllowedAfter + `|\s`

// StartStringPrefix and EndStringSuffix are the docutils boundary rules for inline
// markup, used where a full InlineMarkup recognizer is too strict.
const (
	StartStringPrefix = `(^|(?<=\s|[` + openers + delimiters + `|]))`
	EndStringSuffix   = `($|(?=\s|[\x00` + closingDelimiters + delimiters + closers + `|]))`
)

// The docutils inline markup recognizers.
var (
	InterpretedText             = InlineMarkup("`", "`", "")
	InlineInternalTarget        = InlineMarkup("_`", "`", "")
	HyperlinkReference          = InlineMarkup("`", "`_", "")
	AnonymousHyperlinkReference = InlineMarkup("`", "`__", "")
	InlineLiteral               = InlineMarkup("``", "``", "")
)

var (
	// NormalRole matches a well formed role: :name:`text`.
	NormalRole = MustCompile(markupStart("")+`:`+SimpleName+`:`+InterpretedText.Source(), true)

	// BacktickBeforeRole matches `:name:`text`.
	BacktickBeforeRole = MustCompile("(^|\\s)`:"+SimpleName+":"+InterpretedText.Source(), true)

	// RoleTagAtEnd and RoleTagAtStart detect a role tag glued to a span.
	RoleTagAtEnd   = MustCompile(RoleTag+`$`, false)
	RoleTagAtStart = MustCompile(`^`+RoleTag, false)

	// RoleGluedWithWord matches the:fct:`x` as well as fct:`x`.
	RoleGluedWithWord = MustCompile(`(^|\s)(?<!:)`+SimpleName+":`(?!`)", false)

	// RoleWithNoBackticks matches :func:pdb.main.
	RoleWithNoBackticks = MustCompile(`(^|\s):`+SimpleName+":(?![`:])[^\\s`]+(\\s|$)", false)

	// RoleMissingRightColon matches :issue`123`.
	RoleMissingRightColon = MustCompile(`(^|\s):`+SimpleName+"`(?!`)", false)

	// RoleMissingClosingBacktick matches :fct:`foo with no closing backtick.
	RoleMissingClosingBacktick = MustCompile(`(`+roleHead+"`[^`]+?)[^`]*$", false)

	// RoleWithUnnecessaryParentheses matches :func:`foo()`.
	RoleWithUnnecessaryParentheses = MustCompile("(^|\\s):(func|meth):`[^`]+\\(\\)`", false)

	// SeemsHyperlink matches `text <https://...>`_ and its broken variants. Group 1
	// is the space before <, group 2 the trailing underscore.
	SeemsHyperlink = MustCompile("`[^`]+?(\\s?)<https?://[^`]+>`(_?)", false)

	// HyperlinkMissingBacktick matches text <https://...>`_ with no opening backtick.
	HyperlinkMissingBacktick = MustCompile("\\S* <https?://[^ ]+>`_", false)

	// LeakedMarkup matches reST syntax that survived into rendered HTML.
	LeakedMarkup = MustCompile("[a-z]::\\s|`|\\.\\.\\s*\\w+:", false)

	// TripleBackticks matches ```foo```.
	TripleBackticks = MustCompile(`(?:`+StartStringPrefix+")```[^`]+?(?<!"+StartStringPrefix+")```(?:"+
		EndStringSuffix+`)`, false)

	// LiteralFollowedByChar matches an inline literal and the character after it.
	LiteralFollowedByChar = MustCompile("``.+?``(?!`).", true)

	// LoneDoubleBacktick matches `` not part of a longer backtick run.
	LoneDoubleBacktick = MustCompile("(?<!`)``(?!`)", false)

	endStringSuffixAtStart = MustCompile(`\A`+EndStringSuffix, false)
)

// EndsInlineMarkup reports whether ch may directly follow an inline markup
// end-string.
func EndsInlineMarkup(ch string) bool {
	return endStringSuffixAtStart.MatchString(ch)
}

package checkers

import "github.com/yaklabco/gorstlint/pkg/lint"

// All returns one instance of every built-in checker.
func All() []lint.Checker {
	return []lint.Checker{
		// Python sources
		NewPythonSyntaxChecker(),

		// Roles
		NewMissingBacktickAfterRoleChecker(),
		NewMissingSpaceAfterRoleChecker(),
		NewRoleWithoutBackticksChecker(),
		NewBacktickBeforeRoleChecker(),
		NewRoleWithDoubleBackticksChecker(),
		NewMissingSpaceBeforeRoleChecker(),
		NewMissingColonInRoleChecker(),
		NewUnnecessaryParenthesesChecker(),

		// Literals and default roles
		NewMissingSpaceAfterLiteralChecker(),
		NewUnbalancedInlineLiteralsChecker(),
		NewDefaultRoleChecker(),
		NewMissingSpaceBeforeDefaultRoleChecker(),
		NewTripleBackticksChecker(),

		// Directives and blocks
		NewDirectiveWithThreeDotsChecker(),
		NewDirectiveMissingColonsChecker(),
		NewBadDedentChecker(),

		// Hyperlinks
		NewMissingSpaceInHyperlinkChecker(),
		NewMissingUnderscoreAfterHyperlinkChecker(),
		NewHyperlinkReferenceMissingBacktickChecker(),

		// Layout
		NewCarriageReturnChecker(),
		NewHorizontalTabChecker(),
		NewTrailingWhitespaceChecker(),
		NewMissingFinalNewlineChecker(),
		NewLineTooLongChecker(),
		NewDanglingHyphenChecker(),

		// Built HTML
		NewLeakedMarkupChecker(),
	}
}

// NewRegistry builds the registry of built-in checkers. It panics if the
// table above is inconsistent.
func NewRegistry() *lint.Registry {
	return lint.NewRegistryBuilder().Add(All()...).MustBuild()
}

// Package checkers provides the built-in checkers for gorstlint.
//
// # Checker Domains
//
//   - Layout, on every source file:
//
//   - carriage-return, horizontal-tab, trailing-whitespace, missing-final-newline
//
//   - line-too-long (off by default), dangling-hyphen
//
//   - Roles:
//
//   - missing-backtick-after-role, missing-space-after-role, role-without-backticks
//
//   - backtick-before-role, role-with-double-backticks, missing-space-before-role
//
//   - missing-colon-in-role, unnecessary-parentheses (off by default)
//
//   - Literals and default roles:
//
//   - missing-space-after-literal, unbalanced-inline-literals-delimiters
//
//   - default-role (off by default), missing-space-before-default-role
//
//   - triple-backticks (off by default)
//
//   - Hyperlinks:
//
//   - missing-space-in-hyperlink, missing-underscore-after-hyperlink
//
//   - hyperlink-reference-missing-backtick
//
//   - Directives and blocks:
//
//   - directive-with-three-dots, directive-missing-colons, bad-dedent
//
//   - Other sources:
//
//   - python-syntax on .py files, leaked-markup (off by default) on built .html files
//
// # Registration
//
// All returns every checker in a fixed order and NewRegistry builds the
// immutable lint.Registry from it.
package checkers

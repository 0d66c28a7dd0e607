// Package rstdoc turns reStructuredText into the views checkers consume: lines
// that keep their terminators, blank-line separated paragraphs, the "rst-only"
// view where literal blocks and comments are blanked, and cleaned paragraphs from
// which well formed inline markup has been removed.
//
// Every view keeps the original line numbering. Line numbers are 1-based.
package rstdoc

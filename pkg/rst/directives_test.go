package rst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gorstlint/pkg/rst"
)

func TestDirectiveSet(t *testing.T) {
	t.Parallel()

	ds := rst.Directives(nil)

	assert.True(t, ds.ContainsArbitraryContent(".. code-block:: python\n"))
	assert.True(t, ds.ContainsArbitraryContent("   .. raw:: html\n"))
	assert.False(t, ds.ContainsArbitraryContent(".. note::\n"))

	assert.True(t, ds.ContainsRST(".. note::\n"))
	assert.True(t, ds.ContainsRST(".. deprecated:: 3.1\n"))
	assert.True(t, ds.ContainsRST(".. deprecated-removed:: 3.1 3.3\n"))
	assert.False(t, ds.ContainsRST(".. code-block:: c\n"))

	assert.True(t, ds.SeemsDirective(".. versionchanged 3.6\n"))
	assert.True(t, ds.SeemsDirective(".. versionchanged: 3.6\n"))
	assert.False(t, ds.SeemsDirective(".. versionchanged:: 3.6\n"))
	assert.False(t, ds.SeemsDirective("... versionchanged 3.6\n"))

	assert.True(t, ds.ThreeDotDirective("... versionchanged:: 3.6\n"))
	assert.False(t, ds.ThreeDotDirective(".. versionchanged:: 3.6\n"))
}

func TestDirectivesKnownExtension(t *testing.T) {
	t.Parallel()

	base := rst.Directives(nil)
	extended := rst.Directives([]string{"my-directive", "c++"})

	assert.False(t, base.ContainsArbitraryContent(".. my-directive:: x\n"))
	assert.True(t, extended.ContainsArbitraryContent(".. my-directive:: x\n"))
	assert.True(t, extended.ContainsArbitraryContent(".. c++:: x\n"))
	assert.Equal(t, rst.Directive, extended.ExplicitMarkupType(".. my-directive:: x\n"))
	assert.Equal(t, rst.Comment, base.ExplicitMarkupType(".. my-directive:: x\n"))
	assert.Equal(t, []string{"my-directive", "c++"}, extended.Known())

	assert.Same(t, extended, rst.Directives([]string{"my-directive", "c++"}))
}

func TestExplicitMarkupType(t *testing.T) {
	t.Parallel()

	ds := rst.Directives(nil)

	tests := []struct {
		line string
		want rst.ExplicitMarkup
	}{
		{line: ".. note:: Be careful\n", want: rst.Directive},
		{line: "   .. code-block:: python\n", want: rst.Directive},
		{line: ".. [1] A footnote\n", want: rst.Footnote},
		{line: ".. [Ref2020] A citation\n", want: rst.Citation},
		{line: ".. _target: https://example.com\n", want: rst.Target},
		{line: ".. |name| replace:: text\n", want: rst.SubstitutionDefinition},
		{line: ".. just a comment\n", want: rst.Comment},
		{line: "..\n", want: rst.Comment},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ds.ExplicitMarkupType(tt.line), tt.line)
		})
	}

	assert.True(t, ds.IsComment("   .. a comment\n"))
	assert.False(t, ds.IsComment("..\n"))
	assert.False(t, ds.IsComment(".. _target: x\n"))
}

package checkers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeakedMarkup(t *testing.T) {
	page := "<html><body>\n" +
		"<p>Use :func:`foo` here</p>\n" +
		"<pre>a :: b `c`</pre>\n" +
		"<p>fine</p>\n" +
		"<p>.. note:: twice `a` and `b`</p>\n" +
		"</body></html>\n"

	findings := check(t, "index.html", page, "leaked-markup")
	require.Len(t, findings, 2)

	assert.Equal(t, 2, findings[0].Line)
	assert.Equal(t, "possibly leaked markup: <p>Use :func:`foo` here</p>", findings[0].Message)
	assert.Equal(t, 5, findings[1].Line)
	assert.Equal(t, "leaked-markup", findings[1].Checker)
}

func TestLeakedMarkup_Verbatim(t *testing.T) {
	tests := []struct {
		name string
		page string
	}{
		{"code", "<p>Call <code>f`x`</code> now.</p>\n"},
		{"kbd", "<p>Press <kbd>`</kbd>.</p>\n"},
		{"script", "<script>var s = `template`;</script>\n"},
		{"style", "<style>a::before { content: '`'; }</style>\n"},
		{"attributes", "<a title=\"`x`\" href=\"#\">link</a>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, check(t, "page.html", tt.page, "leaked-markup"))
		})
	}
}

func TestLeakedMarkup_OnlyHTML(t *testing.T) {
	assert.Empty(t, check(t, "page.rst", "Use :func:`foo` here\n", "leaked-markup"))
}

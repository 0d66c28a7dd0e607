package pofile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gorstlint/pkg/pofile"
)

const catalog = `# French translation.
msgid ""
msgstr ""
"Language: fr\n"
"Content-Type: text/plain; charset=UTF-8\n"

#: library/os.rst:12
#. Extracted comment
msgid "Open a file."
msgstr "Ouvre un fichier."

#, fuzzy
msgid "Close it."
msgstr "Ferme-le."

msgctxt "menu"
msgid "File"
msgstr ""

msgid "one file"
msgid_plural "%d files"
msgstr[0] "un fichier"
msgstr[1] "%d fichiers"

#~ msgid "Gone."
#~ msgstr "Parti."
`

func TestParse(t *testing.T) {
	cat, err := pofile.Parse(catalog)
	require.NoError(t, err)

	require.NotNil(t, cat.Header)
	assert.Equal(t, "Language: fr\nContent-Type: text/plain; charset=UTF-8\n", cat.Header.Str)
	assert.Equal(t, []string{"French translation."}, cat.Header.TranslatorComments)

	require.Len(t, cat.Entries, 5)

	open := cat.Entries[0]
	assert.Equal(t, 9, open.Line)
	assert.Equal(t, "Open a file.", open.ID)
	assert.Equal(t, []string{"library/os.rst:12"}, open.References)
	assert.Equal(t, []string{"Extracted comment"}, open.ExtractedComments)
	assert.True(t, open.Translated())

	closeIt := cat.Entries[1]
	assert.True(t, closeIt.Fuzzy())
	assert.False(t, closeIt.Translated())

	file := cat.Entries[2]
	assert.True(t, file.HasContext)
	assert.Equal(t, "menu", file.Context)
	assert.False(t, file.Translated())

	plural := cat.Entries[3]
	assert.True(t, plural.IsPlural())
	assert.Equal(t, []string{"un fichier", "%d fichiers"}, plural.StrPlural)
	assert.True(t, plural.Translated())
	assert.Equal(t, "un fichier\n%d fichiers", plural.Translation())

	gone := cat.Entries[4]
	assert.True(t, gone.Obsolete)
	assert.False(t, gone.Translated())

	assert.Len(t, cat.TranslatedEntries(), 2)
}

func TestParseEscapes(t *testing.T) {
	cat, err := pofile.Parse("msgid \"a\"\nmsgstr \"tab\\there \\\"quoted\\\" back\\\\slash\\nnext\"\n")
	require.NoError(t, err)
	require.Len(t, cat.Entries, 1)
	assert.Equal(t, "tab\there \"quoted\" back\\slash\nnext", cat.Entries[0].Str)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		line int
	}{
		{"msgstr without msgid", "msgstr \"x\"\n", 1},
		{"unknown keyword", "msgid \"a\"\nmsgfoo \"b\"\n", 2},
		{"unquoted value", "msgid a\n", 1},
		{"dangling string", "\"orphan\"\n", 1},
		{"missing msgstr", "msgid \"a\"\n\nmsgid \"b\"\nmsgstr \"c\"\n", 3},
		{"unescaped quote", "msgid \"a\"b\"\n", 1},
		{"bad plural index", "msgid \"a\"\nmsgid_plural \"b\"\nmsgstr[1] \"c\"\n", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pofile.Parse(tt.text)
			require.ErrorIs(t, err, pofile.ErrSyntax)

			var perr *pofile.ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.line, perr.Line)
		})
	}
}

func TestToRST(t *testing.T) {
	tests := []struct {
		name string
		po   string
		want string
	}{
		{
			name: "entries keep their line",
			po:   "msgid \"foo\"\nmsgstr \"bar\"\n\nmsgid \"test1\"\nmsgstr \"test2\"\n",
			want: "bar\n\n\ntest2\n",
		},
		{
			name: "continuation lines",
			po: "msgid \"foo\"\nmsgstr \"bar\"\n\nmsgid \"test1\"\nmsgstr \"\"\n\"test2\"\n\n" +
				"msgid \"test3\"\nmsgstr \"test4\"\n",
			want: "bar\n\n\ntest2\n\n\n\ntest4\n",
		},
		{
			name: "multiline translation",
			po:   "msgid \"a\"\nmsgstr \"\"\n\"first\\n\"\n\"second\\n\"\n",
			want: "first\nsecond\n",
		},
		{
			name: "untranslated and header are skipped",
			po:   "msgid \"\"\nmsgstr \"Language: fr\\n\"\n\nmsgid \"a\"\nmsgstr \"\"\n\nmsgid \"b\"\nmsgstr \"B\"\n",
			want: "\n\n\n\n\n\nB\n",
		},
		{
			name: "empty catalog",
			po:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pofile.ToRST(tt.po)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

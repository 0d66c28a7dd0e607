package checkers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanPython(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		wantLine int
		wantMsg  string
	}{
		{"unclosed bracket", "x = (1,\n", 1, "'(' was never closed"},
		{"unclosed bracket reported where it opens", "x = 1\ny = [1,\n     2,\n", 2, "'[' was never closed"},
		{"unmatched bracket", "x = 1)\n", 1, "unmatched ')'"},
		{
			"mismatched bracket", "x = [1, 2)\n", 1,
			"closing parenthesis ')' does not match opening parenthesis '['",
		},
		{
			"mismatched bracket on another line", "x = [1,\n  2)\n", 2,
			"closing parenthesis ')' does not match opening parenthesis '[' on line 1",
		},
		{"unterminated string", "s = 'abc\n", 1, "unterminated string literal (detected at line 1)"},
		{"unterminated string at end of file", "s = \"abc", 1, "unterminated string literal (detected at line 1)"},
		{
			"unterminated triple-quoted string", "x = 1\ns = \"\"\"abc\n\n", 2,
			"unterminated triple-quoted string literal (detected at line 4)",
		},
		{"unexpected indent", "x = 1\n    y = 2\n", 2, "unexpected indent"},
		{"bad dedent", "if x:\n    y = 1\n  z = 2\n", 3, "unindent does not match any outer indentation level"},
		{"missing block", "if x:\ny = 1\n", 2, "expected an indented block after line 1"},
		{"missing block at end of file", "if x:\n", 2, "expected an indented block after line 1"},
		{"missing block without newline", "x = 1\nif x:", 2, "expected an indented block after line 2"},
		{"stray continuation", "x = 1 \\ 2\n", 1, "unexpected character after line continuation character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := scanPython(tt.code)
			require.NotNil(t, err)
			assert.Equal(t, tt.wantLine, err.line)
			assert.Equal(t, tt.wantMsg, err.msg)
		})
	}
}

func TestScanPython_Valid(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"empty", ""},
		{"blank lines only", "\n\n\n"},
		{"simple statements", "x = 1\ny = x + 2\n"},
		{
			"nested blocks",
			"def f(a,\n      b):\n    return {'a': [a, b]}  # ok\n\n\nclass C:\n" +
				"    '''doc\n    string'''\n    x = r'\\d'\n",
		},
		{"comment with colon", "if x:  # why:\n    pass\n"},
		{"dedent to outer level", "for i in x:\n    if i:\n        pass\nprint(i)\n"},
		{"string prefixes", "a = b'x'\nb = f\"{a}\"\nc = rb'\\n'\n"},
		{"escaped quote", "s = 'it\\'s'\n"},
		{"line continuation", "x = 1 + \\\n    2\n"},
		{"brackets across lines", "x = [\n  1,\n    2,\n]\n"},
		{"colon inside brackets", "d = {\n    'a': 1,\n}\n"},
		{"tabs", "if x:\n\tpass\n"},
		{"comment lines ignore indentation", "if x:\n# note\n    pass\n"},
		{"no final newline", "x = 1"},
		{"triple quotes with inner quotes", "s = \"\"\"say \"hi\" \"\"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, scanPython(tt.code))
		})
	}
}

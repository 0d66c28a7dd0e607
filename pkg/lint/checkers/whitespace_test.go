package checkers_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gorstlint/pkg/lint"
)

func TestLayoutCheckers(t *testing.T) {
	tests := []struct {
		name     string
		checker  string
		filename string
		text     string
		want     []int
	}{
		{"carriage return", "carriage-return", "test.rst", "a\r\nb\n", []int{1}},
		{"carriage return in python", "carriage-return", "test.py", "a = 1\nb = 2\r\n", []int{2}},
		{"no carriage return", "carriage-return", "test.rst", "a\nb\n", []int{}},
		{"tab", "horizontal-tab", "test.rst", "a\tb\nc\n", []int{1}},
		{"no tab", "horizontal-tab", "test.rst", "a b\n", []int{}},
		{"trailing space", "trailing-whitespace", "test.rst", "Hello \nworld\n", []int{1}},
		{"trailing tab", "trailing-whitespace", "test.rst", "Hello\nworld\t\n", []int{2}},
		{"space inside last line", "trailing-whitespace", "test.rst", "Hell o", []int{}},
		{"missing final newline", "missing-final-newline", "test.rst", "Hello\nworld", []int{2}},
		{"final newline", "missing-final-newline", "test.rst", "Hello\nworld\n", []int{}},
		{"empty file", "missing-final-newline", "test.rst", "", []int{}},
		{"dangling hyphen", "dangling-hyphen", "test.rst", "a well-\nknown issue\n", []int{1}},
		{"lone hyphen", "dangling-hyphen", "test.rst", "Use the -\noption\n", []int{}},
		{"dangling hyphen in literal block", "dangling-hyphen", "test.rst", "Code::\n\n   a well-\n", []int{}},
		{"dangling hyphen is for markup only", "dangling-hyphen", "test.po", "a well-\n", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := check(t, tt.filename, tt.text, tt.checker)
			assert.Equal(t, tt.want, lineNumbers(findings))
		})
	}
}

func TestLineTooLong(t *testing.T) {
	long := strings.Repeat("x", 81)

	tests := []struct {
		name string
		text string
		want []int
	}{
		{"at the limit", strings.Repeat("x", 80) + "\n", []int{}},
		{"over the limit", "short\n" + long + "\n", []int{2}},
		{"terminator not counted", strings.Repeat("x", 80) + "\r\n", []int{}},
		{"characters not bytes", strings.Repeat("é", 80) + "\n", []int{}},
		{"grid table row", "| " + long + " |\n", []int{}},
		{"explicit markup", ".. _target: https://example.com/" + long + "\n", []int{}},
		{"anonymous target", "__ https://example.com/" + long + "\n", []int{}},
		{"lone interpreted text", "   :ref:`" + long + "`\n", []int{}},
		{"lone literal", "``" + long + "``\n", []int{}},
		{"inside literal block", "Code::\n\n   " + long + "\n", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := check(t, "test.rst", tt.text, "line-too-long")
			assert.Equal(t, tt.want, lineNumbers(findings))
		})
	}

	t.Run("message and custom limit", func(t *testing.T) {
		opts := lint.DefaultOptions()
		opts.MaxLineLength = 10

		findings := checkWith(t, opts, "test.rst", "Hello world!\n", "line-too-long")
		require.Len(t, findings, 1)
		assert.Equal(t, "Line too long (12/10)", findings[0].Message)
	})
}

package rst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gorstlint/pkg/rst"
)

func TestLineLooksLikeATable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want bool
	}{
		{line: "+-------+-------+\n", want: true},
		{line: "  +=======+=======+\n", want: true},
		{line: "| a     | b     |\n", want: true},
		{line: "=====  =====\n", want: true},
		{line: "==========\n", want: false},
		{line: "Some text | with a bar\n", want: false},
		{line: "\n", want: false},
		{line: "- a list item\n", want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, rst.LineLooksLikeATable(tt.line), tt.line)
	}
}

func TestParagraphLooksLikeATable(t *testing.T) {
	t.Parallel()

	table := "+---+---+\n| a | b |\n+---+---+\n"
	assert.True(t, rst.ParagraphLooksLikeATable(table))
	assert.False(t, rst.ParagraphLooksLikeATable("Title\n=====\n"))
}

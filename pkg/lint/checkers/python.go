package checkers

import (
	"strings"

	"github.com/yaklabco/gorstlint/pkg/lint"
)

// PythonSyntaxChecker reports Python files that would not compile.
type PythonSyntaxChecker struct {
	lint.BaseChecker
}

// NewPythonSyntaxChecker creates a new Python syntax checker.
func NewPythonSyntaxChecker() *PythonSyntaxChecker {
	return &PythonSyntaxChecker{
		BaseChecker: lint.NewBaseChecker(
			"python-syntax",
			"Search invalid syntax in Python examples.\n\n"+
				"Unterminated strings, unbalanced brackets and inconsistent\n"+
				"indentation are reported at the line where they are detected.",
			".py",
		),
	}
}

func (c *PythonSyntaxChecker) NeedsRSTView() bool { return false }

func (c *PythonSyntaxChecker) Check(ctx *lint.Context) []lint.Issue {
	var issues []lint.Issue

	code := strings.Join(ctx.Lines, "")
	if strings.Contains(code, "\r") {
		issues = append(issues, lint.Issue{Line: 0, Message: `\r in code file`})
		code = strings.ReplaceAll(code, "\r\n", "\n")
		code = strings.ReplaceAll(code, "\r", "")
	}

	if err := scanPython(code); err != nil {
		issues = append(issues, issuef(err.line, "not compilable: %s (%s, line %d)", err.msg, ctx.Filename, err.line))
	}
	return issues
}

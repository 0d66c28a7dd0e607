package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/yaklabco/gorstlint/pkg/lint"
)

// selectionValue is a flag that records enable or disable operations in the
// order they appear on the command line. --enable and --disable share one
// list so that "--disable all --enable trailing-whitespace" works.
type selectionValue struct {
	enable bool
	ops    *[]lint.SelectionOp
}

var _ pflag.Value = (*selectionValue)(nil)

func (v *selectionValue) String() string {
	if v.ops == nil {
		return ""
	}
	var names []string
	for _, op := range *v.ops {
		if op.Enable == v.enable {
			names = append(names, op.Names...)
		}
	}
	return strings.Join(names, ",")
}

func (v *selectionValue) Set(value string) error {
	names := lint.ParseNames(value)
	if len(names) == 0 {
		return fmt.Errorf("empty checker list")
	}
	*v.ops = append(*v.ops, lint.SelectionOp{Enable: v.enable, Names: names})
	return nil
}

func (v *selectionValue) Type() string { return "checkers" }

// jobsAuto is the --jobs value that picks one worker per CPU.
const jobsAuto = "auto"

// jobsValue parses --jobs: a positive worker count or "auto" (stored as 0).
type jobsValue struct {
	jobs *int
}

var _ pflag.Value = (*jobsValue)(nil)

func (v *jobsValue) String() string {
	if v.jobs == nil || *v.jobs == 0 {
		return jobsAuto
	}
	return strconv.Itoa(*v.jobs)
}

func (v *jobsValue) Set(value string) error {
	if strings.EqualFold(value, jobsAuto) {
		*v.jobs = 0
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return fmt.Errorf("expected a positive number or %q, got %q", jobsAuto, value)
	}
	*v.jobs = n
	return nil
}

func (v *jobsValue) Type() string { return "N|auto" }

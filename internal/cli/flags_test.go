package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gorstlint/pkg/lint"
)

func TestSelectionValue(t *testing.T) {
	t.Parallel()

	var ops []lint.SelectionOp
	enable := &selectionValue{enable: true, ops: &ops}
	disable := &selectionValue{enable: false, ops: &ops}

	require.NoError(t, disable.Set("all"))
	require.NoError(t, enable.Set("trailing-whitespace, horizontal-tab"))
	require.NoError(t, disable.Set("horizontal-tab"))

	assert.Equal(t, []lint.SelectionOp{
		{Enable: false, Names: []string{"all"}},
		{Enable: true, Names: []string{"trailing-whitespace", "horizontal-tab"}},
		{Enable: false, Names: []string{"horizontal-tab"}},
	}, ops)
	assert.Equal(t, "trailing-whitespace,horizontal-tab", enable.String())
	assert.Equal(t, "all,horizontal-tab", disable.String())
	assert.Equal(t, "checkers", enable.Type())

	assert.Error(t, enable.Set(" , "))
}

func TestJobsValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "auto", want: 0},
		{input: "AUTO", want: 0},
		{input: "4", want: 4},
		{input: "0", wantErr: true},
		{input: "-2", wantErr: true},
		{input: "many", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			jobs := -1
			value := &jobsValue{jobs: &jobs}
			err := value.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, -1, jobs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, jobs)
		})
	}

	jobs := 0
	assert.Equal(t, "auto", (&jobsValue{jobs: &jobs}).String())
	jobs = 3
	assert.Equal(t, "3", (&jobsValue{jobs: &jobs}).String())
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitIssuesFound, ExitCode(ErrLintIssuesFound))
	assert.Equal(t, ExitIssuesFound, ExitCode(fmt.Errorf("run: %w", ErrLintIssuesFound)))
	assert.Equal(t, ExitUsage, ExitCode(usageErrorf("bad")))
	assert.Equal(t, ExitUsage, ExitCode(errors.New("disk on fire")))
}

func TestUsageError(t *testing.T) {
	t.Parallel()

	cause := &lint.UnknownCheckerError{Name: "nope"}
	err := wrapUsage(cause)

	assert.Equal(t, "unknown checker: nope", err.Error())
	assert.ErrorIs(t, err, ErrUsage)
	assert.ErrorIs(t, err, lint.ErrUnknownChecker)
}

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		line  string
		width int
		want  string
	}{
		{name: "fits", line: "short line", width: 20, want: "short line"},
		{name: "no width", line: "a very long line indeed", width: 0, want: "a very long line indeed"},
		{name: "breaks at words", line: "one two three four", width: 9, want: "one two\n    three\n    four"},
		{name: "long word kept whole", line: "supercalifragilistic word", width: 5, want: "supercalifragilistic\n    word"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, wrap(tt.line, tt.width))
		})
	}
}

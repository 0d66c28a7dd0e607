package cli

import (
	"errors"
	"fmt"
)

// Exit codes for gorstlint.
const (
	// ExitSuccess indicates a run with no findings.
	ExitSuccess = 0

	// ExitIssuesFound indicates a run that reported findings.
	ExitIssuesFound = 1

	// ExitUsage indicates invalid usage or configuration, or a failed run.
	ExitUsage = 2
)

var (
	// ErrLintIssuesFound is returned when the run reported findings.
	ErrLintIssuesFound = errors.New("lint issues found")

	// ErrUsage marks errors caused by the command line or the configuration.
	ErrUsage = errors.New("usage error")
)

// usageError carries a message meant for the user verbatim.
type usageError struct {
	msg string
	err error
}

func (e *usageError) Error() string { return e.msg }

func (e *usageError) Unwrap() []error {
	if e.err == nil {
		return []error{ErrUsage}
	}
	return []error{ErrUsage, e.err}
}

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// wrapUsage marks err as a usage error, keeping its message.
func wrapUsage(err error) error {
	return &usageError{msg: err.Error(), err: err}
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrLintIssuesFound):
		return ExitIssuesFound
	default:
		return ExitUsage
	}
}

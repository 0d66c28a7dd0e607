package lint

import "errors"

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrUnknownChecker indicates a selection names a checker that is not registered.
	ErrUnknownChecker = errors.New("unknown checker")

	// ErrDuplicateChecker indicates two checkers share a name.
	ErrDuplicateChecker = errors.New("duplicate checker")

	// ErrInvalidCheckerName indicates a checker name is not kebab-case.
	ErrInvalidCheckerName = errors.New("invalid checker name")

	// ErrInvalidChecker indicates a malformed checker descriptor.
	ErrInvalidChecker = errors.New("invalid checker")
)

// UnknownCheckerError names the checker a selection could not find.
type UnknownCheckerError struct {
	Name string
}

func (e *UnknownCheckerError) Error() string {
	return ErrUnknownChecker.Error() + ": " + e.Name
}

// Unwrap returns ErrUnknownChecker.
func (e *UnknownCheckerError) Unwrap() error {
	return ErrUnknownChecker
}

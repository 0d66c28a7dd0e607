package lint

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var checkerNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// Registry holds the registered checkers. It is immutable once built and safe
// to share between goroutines.
type Registry struct {
	checkers []Checker // sorted by name
	byName   map[string]Checker
}

// Checkers returns all registered checkers sorted by name.
func (r *Registry) Checkers() []Checker {
	return slices.Clone(r.checkers)
}

// Get retrieves a checker by name.
func (r *Registry) Get(name string) (Checker, bool) {
	checker, ok := r.byName[name]
	return checker, ok
}

// Names returns the sorted checker names.
func (r *Registry) Names() []string {
	names := make([]string, len(r.checkers))
	for i, checker := range r.checkers {
		names[i] = checker.Name()
	}
	return names
}

// Defaults returns the checkers enabled by default, sorted by name.
func (r *Registry) Defaults() []Checker {
	var out []Checker
	for _, checker := range r.checkers {
		if checker.DefaultEnabled() {
			out = append(out, checker)
		}
	}
	return out
}

// Len returns the number of registered checkers.
func (r *Registry) Len() int {
	return len(r.checkers)
}

// RegistryBuilder collects checkers and validates them into a Registry.
type RegistryBuilder struct {
	checkers []Checker
}

// NewRegistryBuilder creates an empty builder.
func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{}
}

// Add queues checkers for registration.
func (b *RegistryBuilder) Add(checkers ...Checker) *RegistryBuilder {
	b.checkers = append(b.checkers, checkers...)
	return b
}

// Build validates the queued checkers and returns the registry. It fails on
// the first duplicate name, malformed name or malformed descriptor.
func (b *RegistryBuilder) Build() (*Registry, error) {
	reg := &Registry{
		checkers: make([]Checker, 0, len(b.checkers)),
		byName:   make(map[string]Checker, len(b.checkers)),
	}

	for _, checker := range b.checkers {
		if err := validateChecker(checker); err != nil {
			return nil, err
		}
		name := checker.Name()
		if _, exists := reg.byName[name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateChecker, name)
		}
		reg.byName[name] = checker
		reg.checkers = append(reg.checkers, checker)
	}

	// Sort by name for consistent, deterministic output.
	slices.SortFunc(reg.checkers, func(a, b Checker) int {
		return cmp.Compare(a.Name(), b.Name())
	})

	return reg, nil
}

// MustBuild is like Build but panics on error. Checker tables are fixed at
// compile time, so a failure here is a programming error.
func (b *RegistryBuilder) MustBuild() *Registry {
	reg, err := b.Build()
	if err != nil {
		panic("lint: " + err.Error())
	}
	return reg
}

func validateChecker(checker Checker) error {
	if checker == nil {
		return fmt.Errorf("%w: nil checker", ErrInvalidChecker)
	}

	name := checker.Name()
	if name == "all" || !checkerNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidCheckerName, name)
	}

	if strings.TrimSpace(checker.Description()) == "" {
		return fmt.Errorf("%w: %s has no description", ErrInvalidChecker, name)
	}

	suffixes := checker.Suffixes()
	if len(suffixes) == 0 {
		return fmt.Errorf("%w: %s serves no file suffix", ErrInvalidChecker, name)
	}
	for _, suffix := range suffixes {
		if len(suffix) < 2 || suffix[0] != '.' {
			return fmt.Errorf("%w: %s has malformed suffix %q", ErrInvalidChecker, name, suffix)
		}
	}

	return nil
}

package lint

import "strings"

// KeywordAll selects every registered checker.
const KeywordAll = "all"

// SelectionOp enables or disables a list of checkers. Operations are applied
// in order, starting from the default-enabled set.
type SelectionOp struct {
	Enable bool
	Names  []string
}

// EnableOp returns an operation enabling names.
func EnableOp(names ...string) SelectionOp {
	return SelectionOp{Enable: true, Names: names}
}

// DisableOp returns an operation disabling names.
func DisableOp(names ...string) SelectionOp {
	return SelectionOp{Enable: false, Names: names}
}

// String renders the operation the way it is spelled on the command line.
func (op SelectionOp) String() string {
	verb := "--disable"
	if op.Enable {
		verb = "--enable"
	}
	return verb + " " + strings.Join(op.Names, ",")
}

// ParseNames splits a comma-separated list of checker names. Surrounding
// spaces and empty items are dropped.
func ParseNames(value string) []string {
	var names []string
	for name := range strings.SplitSeq(value, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Resolve applies ops to the default-enabled checkers of reg and returns the
// resulting set sorted by name. The keyword "all" stands for every registered
// checker. Any other name must be registered.
func Resolve(reg *Registry, ops []SelectionOp) ([]Checker, error) {
	enabled := make(map[string]bool, reg.Len())
	for _, checker := range reg.Defaults() {
		enabled[checker.Name()] = true
	}

	for _, op := range ops {
		for _, name := range op.Names {
			if name == KeywordAll {
				for _, checker := range reg.checkers {
					enabled[checker.Name()] = op.Enable
				}
				continue
			}
			if _, ok := reg.Get(name); !ok {
				return nil, &UnknownCheckerError{Name: name}
			}
			enabled[name] = op.Enable
		}
	}

	var out []Checker
	for _, checker := range reg.checkers {
		if enabled[checker.Name()] {
			out = append(out, checker)
		}
	}
	return out, nil
}

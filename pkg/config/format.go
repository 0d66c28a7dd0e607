package config

import (
	"errors"
	"fmt"
	"strings"
)

// SortField names a key findings can be sorted by.
type SortField string

const (
	SortFilename  SortField = "filename"
	SortLine      SortField = "line"
	SortErrorType SortField = "error_type"
)

// ErrUnsupportedSortField is returned by ParseSortFields for unknown names.
var ErrUnsupportedSortField = errors.New("unsupported sort field")

// SortFieldNames lists the accepted sort field names, comma separated.
const SortFieldNames = "filename,line,error_type"

// IsValid returns true if the sort field is known.
func (f SortField) IsValid() bool {
	switch f {
	case SortFilename, SortLine, SortErrorType:
		return true
	default:
		return false
	}
}

// ParseSortFields parses a comma-separated list of sort fields. Names are
// case-insensitive.
func ParseSortFields(value string) ([]SortField, error) {
	var fields []SortField
	for name := range strings.SplitSeq(value, ",") {
		field := SortField(strings.ToLower(strings.TrimSpace(name)))
		if !field.IsValid() {
			return nil, unsupportedSortField(name)
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func unsupportedSortField(name string) error {
	return fmt.Errorf("%w: %s, supported values are %s", ErrUnsupportedSortField, name, SortFieldNames)
}

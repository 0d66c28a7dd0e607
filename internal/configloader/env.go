package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/gorstlint/pkg/config"
)

// envVarPrefix is the prefix for all gorstlint environment variables.
const envVarPrefix = "GORSTLINT_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
	help  string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"MAX_LINE_LENGTH":  {field: "max_line_length", typ: envTypeInt, help: "Threshold of the line-too-long checker"},
	"JOBS":             {field: "jobs", typ: envTypeInt, help: "Number of parallel workers (0 = auto)"},
	"IGNORE":           {field: "ignore", typ: envTypeSlice, help: "Comma-separated list of ignore patterns"},
	"KNOWN_DIRECTIVES": {field: "known_directives", typ: envTypeSlice, help: "Comma-separated list of project directives"},
	"ENABLE":           {field: "enable", typ: envTypeSlice, help: "Comma-separated list of checkers to enable"},
	"DISABLE":          {field: "disable", typ: envTypeSlice, help: "Comma-separated list of checkers to disable"},
	"SORT_BY":          {field: "sort_by", typ: envTypeString, help: "Sort keys: filename, line, error_type"},
	"FORMAT":           {field: "format", typ: envTypeString, help: "Output format: text, json or sarif"},
	"COLOR":            {field: "color", typ: envTypeString, help: "Color mode: auto, always or never"},
	"EXCLUDE_VENDORED": {field: "exclude_vendored", typ: envTypeBool, help: "Skip vendored paths: true or false"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GORSTLINT_ (e.g., GORSTLINT_JOBS).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value, envVar)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func setStringField(cfg *config.Config, field, value, envVar string) error {
	switch field {
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "color":
		cfg.Color = config.ColorMode(value)
	case "sort_by":
		fields, err := config.ParseSortFields(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", envVar, err)
		}
		cfg.SortBy = fields
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "exclude_vendored":
		cfg.ExcludeVendored = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	case "max_line_length":
		cfg.MaxLineLength = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	case "known_directives":
		cfg.KnownDirectives = value
	case "enable":
		cfg.Enable = value
	case "disable":
		cfg.Disable = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// ListEnvVars returns every supported environment variable with its description.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[envVarPrefix+suffix] = mapping.help
	}
	return vars
}

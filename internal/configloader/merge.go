package configloader

import "github.com/yaklabco/gorstlint/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - ExcludeVendored can be switched on but not off by a later source
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.MaxLineLength != 0 {
		result.MaxLineLength = override.MaxLineLength
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.ExcludeVendored {
		result.ExcludeVendored = true
	}

	if override.KnownDirectives != nil {
		result.KnownDirectives = override.KnownDirectives
	}
	if override.Enable != nil {
		result.Enable = override.Enable
	}
	if override.Disable != nil {
		result.Disable = override.Disable
	}
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}
	if override.SortBy != nil {
		result.SortBy = override.SortBy
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}

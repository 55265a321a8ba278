package configloader

import (
	"maps"

	"github.com/yaklabco/spellint/pkg/config"
)

// setIf replaces *dst with v unless v is the zero value.
func setIf[T comparable](dst *T, v T) {
	var zero T
	if v != zero {
		*dst = v
	}
}

// setSlice replaces *dst when v is non-nil, so an explicit empty list clears it.
func setSlice[T any](dst *[]T, v []T) {
	if v != nil {
		*dst = v
	}
}

// merge layers override on top of base and returns a new Config.
// Pointer fields are compared against nil so an explicit false or 0
// overrides; rule maps are merged per key; slices replace wholesale.
func merge(base, override *config.Config) *config.Config {
	switch {
	case base == nil:
		return override
	case override == nil:
		return base
	}

	out := base.Clone()

	setIf(&out.Flavor, override.Flavor)
	setIf(&out.SeverityDefault, override.SeverityDefault)
	setIf(&out.Format, override.Format)
	setIf(&out.RuleFormat, override.RuleFormat)
	setIf(&out.Jobs, override.Jobs)
	setIf(&out.Lint.Enabled, override.Lint.Enabled)

	setSlice(&out.Ignore, override.Ignore)
	setSlice(&out.EnableRules, override.EnableRules)
	setSlice(&out.DisableRules, override.DisableRules)

	sp, o := &out.Spelling, &override.Spelling
	setIf(&sp.Enabled, o.Enabled)
	setIf(&sp.Language, o.Language)
	setIf(&sp.MaxSuggestions, o.MaxSuggestions)
	setIf(&sp.IgnoreNumbers, o.IgnoreNumbers)
	setIf(&sp.MinLength, o.MinLength)
	setIf(&sp.SkipUnpositioned, o.SkipUnpositioned)
	setSlice(&sp.Words, o.Words)
	setSlice(&sp.Dictionaries, o.Dictionaries)

	if out.Rules == nil && override.Rules != nil {
		out.Rules = make(map[string]config.RuleConfig, len(override.Rules))
	}
	for id, rc := range override.Rules {
		out.Rules[id] = mergeRuleConfig(out.Rules[id], rc)
	}

	return out
}

// mergeRuleConfig layers one rule's settings; options merge per key.
func mergeRuleConfig(base, override config.RuleConfig) config.RuleConfig {
	out := base
	setIf(&out.Enabled, override.Enabled)
	setIf(&out.Severity, override.Severity)

	if override.Options != nil {
		out.Options = make(map[string]any, len(base.Options)+len(override.Options))
		maps.Copy(out.Options, base.Options)
		maps.Copy(out.Options, override.Options)
	}
	return out
}

package configloader

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/spellint/pkg/config"
	"github.com/yaklabco/spellint/pkg/dictionary"
	"github.com/yaklabco/spellint/pkg/lint"
)

// ValidationError describes one invalid configuration value.
type ValidationError struct {
	Field    string // dotted path, e.g. "spelling.min_length"
	Value    any
	Message  string
	FilePath string // config file, when known
	Line     int    // 1-based line in FilePath, when known
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	if e.FilePath != "" {
		b.WriteString(e.FilePath)
		if e.Line > 0 {
			fmt.Fprintf(&b, ":%d", e.Line)
		}
		b.WriteString(": ")
	}
	if e.Field != "" {
		b.WriteString(e.Field + ": ")
	}
	b.WriteString(e.Message)
	return b.String()
}

// ValidationResult collects fatal errors and non-fatal warnings.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// Valid reports whether no errors were found.
func (r *ValidationResult) Valid() bool { return len(r.Errors) == 0 }

func (r *ValidationResult) fail(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warn(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// oneOf records an error when value is set and not among allowed.
func (r *ValidationResult) oneOf(field, kind, value string, allowed ...string) {
	if value == "" || slices.Contains(allowed, value) {
		return
	}
	r.fail(field, value, "invalid %s %q; must be one of: %s", kind, value, strings.Join(allowed, ", "))
}

//nolint:gochecknoglobals // read-only
var severityNames = []string{
	string(config.SeverityError), string(config.SeverityWarning), string(config.SeverityInfo),
}

// Validate checks cfg. Unknown rule keys are warnings; everything else is an error.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	result.oneOf("flavor", "flavor", string(cfg.Flavor),
		string(config.FlavorCommonMark), string(config.FlavorGFM))
	result.oneOf("severity_default", "severity", cfg.SeverityDefault, severityNames...)
	result.oneOf("format", "format", string(cfg.Format),
		string(config.FormatText), string(config.FormatJSON), string(config.FormatSARIF), string(config.FormatSummary))
	result.oneOf("rule_format", "rule format", string(cfg.RuleFormat),
		string(config.RuleFormatName), string(config.RuleFormatID), string(config.RuleFormatCombined))

	if cfg.Jobs < 0 {
		result.fail("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	validateSpelling(&cfg.Spelling, result)
	validateRules(cfg, lint.DefaultRegistry, result)

	for i, pattern := range cfg.Ignore {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			result.fail(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob pattern: %v", err)
		}
	}

	return result
}

func validateSpelling(s *config.SpellingConfig, result *ValidationResult) {
	if s.Language != "" && !dictionary.Supported(s.Language) {
		result.fail("spelling.language", s.Language, "unsupported language %q", s.Language)
	}
	if s.MaxSuggestions != nil && *s.MaxSuggestions < 0 {
		result.fail("spelling.max_suggestions", *s.MaxSuggestions, "max_suggestions must be >= 0")
	}
	if s.MinLength != nil && *s.MinLength < 0 {
		result.fail("spelling.min_length", *s.MinLength, "min_length must be >= 0")
	}
	for i, path := range s.Dictionaries {
		if strings.TrimSpace(path) == "" {
			result.fail(fmt.Sprintf("spelling.dictionaries[%d]", i), path, "dictionary path must not be empty")
		}
	}
}

func validateRules(cfg *config.Config, registry *lint.Registry, result *ValidationResult) {
	for key, rc := range cfg.Rules {
		if _, ok := registry.Get(key); !ok {
			result.warn("rules."+key, key, "unknown rule %q; it will be ignored", key)
		}
		if rc.Severity != nil {
			result.oneOf("rules."+key+".severity", "severity", *rc.Severity, severityNames...)
		}
	}

	for _, key := range slices.Concat(cfg.EnableRules, cfg.DisableRules) {
		if _, _, ok := registry.Resolve(key); !ok {
			result.warn("rules", key, "unknown rule %q; it will be ignored", key)
		}
	}
}

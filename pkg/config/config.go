// Package config defines core configuration types for spellint.
// These types are pure data structures; loading and merging live in internal/configloader.
package config

// Severity represents the severity level of a lint diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Defaults for the spelling pass.
const (
	DefaultLanguage       = "en"
	DefaultMaxSuggestions = 5
	DefaultMinLength      = 1
)

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled,omitempty" toml:"enabled,omitempty"`
	Severity *string        `yaml:"severity,omitempty" toml:"severity,omitempty"`
	Options  map[string]any `yaml:"options,omitempty" toml:"options,omitempty"`
}

// OutputFormat specifies the output format for findings.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSARIF   OutputFormat = "sarif"
	FormatSummary OutputFormat = "summary"
)

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "no-trailing-spaces"
	RuleFormatID       RuleFormat = "id"       // "MD009"
	RuleFormatCombined RuleFormat = "combined" // "MD009/no-trailing-spaces"
)

// Flavor specifies the Markdown flavor to use for parsing.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// SpellingConfig configures the spelling pass and its dictionary.
// Pointer fields distinguish "unset" from the zero value so layered
// configuration files can override each other.
type SpellingConfig struct {
	// Enabled turns the spelling pass on or off.
	Enabled *bool `yaml:"enabled,omitempty" toml:"enabled,omitempty"`

	// Language selects the built-in word list.
	Language string `yaml:"language,omitempty" toml:"language,omitempty"`

	// Words are accepted in addition to the dictionary.
	Words []string `yaml:"words,omitempty" toml:"words,omitempty"`

	// Dictionaries are extra word list files, one word per line.
	Dictionaries []string `yaml:"dictionaries,omitempty" toml:"dictionaries,omitempty"`

	// MaxSuggestions caps the suggestions attached to each finding.
	MaxSuggestions *int `yaml:"max_suggestions,omitempty" toml:"max_suggestions,omitempty"`

	// IgnoreNumbers skips tokens without letters.
	IgnoreNumbers *bool `yaml:"ignore_numbers,omitempty" toml:"ignore_numbers,omitempty"`

	// MinLength skips tokens with fewer runes.
	MinLength *int `yaml:"min_length,omitempty" toml:"min_length,omitempty"`

	// SkipUnpositioned drops text that has no source position instead of failing.
	SkipUnpositioned *bool `yaml:"skip_unpositioned,omitempty" toml:"skip_unpositioned,omitempty"`
}

// LintConfig configures the structural lint pass.
type LintConfig struct {
	Enabled *bool `yaml:"enabled,omitempty" toml:"enabled,omitempty"`
}

// Config is the root configuration structure for spellint.
type Config struct {
	// Flavor specifies the Markdown flavor ("commonmark" or "gfm").
	Flavor Flavor `yaml:"flavor,omitempty" toml:"flavor,omitempty"`

	// SeverityDefault is the default severity for rules that don't specify one.
	SeverityDefault string `yaml:"severity_default,omitempty" toml:"severity_default,omitempty"`

	// Rules contains per-rule configuration keyed by rule ID, name or alias.
	Rules map[string]RuleConfig `yaml:"rules,omitempty" toml:"rules,omitempty"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore,omitempty" toml:"ignore,omitempty"`

	// Spelling configures the spelling pass.
	Spelling SpellingConfig `yaml:"spelling,omitempty" toml:"spelling,omitempty"`

	// Lint configures the structural lint pass.
	Lint LintConfig `yaml:"lint,omitempty" toml:"lint,omitempty"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-" toml:"-"`

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat RuleFormat `yaml:"-" toml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-" toml:"-"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `yaml:"-" toml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `yaml:"-" toml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Flavor:          FlavorCommonMark,
		SeverityDefault: string(SeverityError),
		Rules:           make(map[string]RuleConfig),
		Spelling: SpellingConfig{
			Enabled:          boolPtr(true),
			Language:         DefaultLanguage,
			MaxSuggestions:   intPtr(DefaultMaxSuggestions),
			IgnoreNumbers:    boolPtr(true),
			MinLength:        intPtr(DefaultMinLength),
			SkipUnpositioned: boolPtr(true),
		},
		Lint: LintConfig{
			Enabled: boolPtr(true),
		},
		Format:     FormatText,
		RuleFormat: RuleFormatID,
		Jobs:       0, // 0 means use GOMAXPROCS
	}
}

// SpellingEnabled reports whether the spelling pass runs.
func (c *Config) SpellingEnabled() bool {
	return boolOr(c.Spelling.Enabled, true)
}

// LintEnabled reports whether the structural lint pass runs.
func (c *Config) LintEnabled() bool {
	return boolOr(c.Lint.Enabled, true)
}

// LanguageOrDefault returns the configured dictionary language.
func (s SpellingConfig) LanguageOrDefault() string {
	if s.Language == "" {
		return DefaultLanguage
	}
	return s.Language
}

// MaxSuggestionsOrDefault returns the suggestion cap.
func (s SpellingConfig) MaxSuggestionsOrDefault() int {
	return intOr(s.MaxSuggestions, DefaultMaxSuggestions)
}

// MinLengthOrDefault returns the minimum checked token length.
func (s SpellingConfig) MinLengthOrDefault() int {
	return intOr(s.MinLength, DefaultMinLength)
}

// IgnoreNumbersOrDefault reports whether letterless tokens are skipped.
func (s SpellingConfig) IgnoreNumbersOrDefault() bool {
	return boolOr(s.IgnoreNumbers, true)
}

// SkipUnpositionedOrDefault reports whether text without a position is skipped.
func (s SpellingConfig) SkipUnpositionedOrDefault() bool {
	return boolOr(s.SkipUnpositioned, true)
}

func boolPtr(v bool) *bool { return &v }

func intPtr(v int) *int { return &v }

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

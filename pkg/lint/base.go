package lint

import "github.com/yaklabco/spellint/pkg/config"

// BaseRule provides a default implementation of the Rule interface.
// Embed this in rule implementations and override methods as needed.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
type BaseRule struct {
	id       string   // Unique identifier (e.g., "MD001")
	name     string   // Human-readable name
	desc     string   // One-line description
	tags     []string // Categorization tags
	aliases  []string // Extra configuration keys
	disabled bool     // Off unless enabled by configuration
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string, tags []string, aliases ...string) BaseRule {
	return BaseRule{
		id:      id,
		name:    name,
		desc:    desc,
		tags:    tags,
		aliases: aliases,
	}
}

// OffByDefault marks the rule as disabled unless configuration enables it.
func (r BaseRule) OffByDefault() BaseRule {
	r.disabled = true
	return r
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Aliases returns additional configuration keys for the rule.
func (r *BaseRule) Aliases() []string {
	return r.aliases
}

// Description returns a one-line description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// DefaultEnabled returns whether the rule is enabled by default.
func (r *BaseRule) DefaultEnabled() bool {
	return !r.disabled
}

// DefaultSeverity returns the default severity for this rule.
// Override this method to change the default.
func (r *BaseRule) DefaultSeverity() config.Severity {
	return config.SeverityError
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.tags
}

// Apply must be overridden by concrete rule implementations.
// The default implementation returns no diagnostics.
func (r *BaseRule) Apply(_ *RuleContext) ([]Diagnostic, error) {
	return nil, nil
}

package analysis

import (
	"slices"

	"github.com/yaklabco/spellint/pkg/config"
	"github.com/yaklabco/spellint/pkg/lint"
)

// SortField orders the ByFile, ByRule and ByWord views.
type SortField string

const (
	SortByCount    SortField = "count"
	SortByAlpha    SortField = "alpha"
	SortBySeverity SortField = "severity" // most errors first, then warnings, then infos
)

var sortFields = []SortField{SortByCount, SortByAlpha, SortBySeverity}

func (s SortField) IsValid() bool { return slices.Contains(sortFields, s) }

// Options selects which views Analyze builds and how they are ordered.
type Options struct {
	IncludeFindings bool
	IncludeByFile   bool
	IncludeByRule   bool
	IncludeByWord   bool

	SortBy SortField
	// SortDesc applies to SortByCount only.
	SortDesc bool

	// Registry supplies rule names. Without one, names are left empty.
	Registry *lint.Registry
}

// DefaultOptions builds every view, largest groups first.
func DefaultOptions() Options {
	return Options{
		IncludeFindings: true,
		IncludeByFile:   true,
		IncludeByRule:   true,
		IncludeByWord:   true,
		SortBy:          SortByCount,
		SortDesc:        true,
		Registry:        lint.DefaultRegistry,
	}
}

func (o Options) ruleName(id string) string {
	if id == SpellingRuleID {
		return SpellingRuleID
	}
	if o.Registry == nil {
		return ""
	}
	if rule, ok := o.Registry.GetByID(id); ok {
		return rule.Name()
	}
	return ""
}

// FormatRule renders the rule column in format. The spelling group always
// renders as SpellingRuleID.
func (r RuleAnalysis) FormatRule(format config.RuleFormat) string {
	if r.RuleID == SpellingRuleID {
		return SpellingRuleID
	}
	return config.FormatRuleID(format, r.RuleID, r.RuleName)
}

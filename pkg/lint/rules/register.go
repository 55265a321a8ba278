package rules

import (
	"github.com/yaklabco/spellint/pkg/config"
	"github.com/yaklabco/spellint/pkg/lint"
)

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	// Whitespace
	registry.Register(NewTrailingSpacesRule())     // MD009
	registry.Register(NewHardTabsRule())           // MD010
	registry.Register(NewMultipleBlankLinesRule()) // MD012
	registry.Register(NewFinalNewlineRule())       // MD047

	// Headings
	registry.Register(NewHeadingIncrementRule())      // MD001
	registry.Register(NewNoMissingSpaceATXRule())     // MD018
	registry.Register(NewNoMultipleSpaceATXRule())    // MD019
	registry.Register(NewHeadingBlankLinesRule())     // MD022
	registry.Register(NewHeadingStartLeftRule())      // MD023
	registry.Register(NewSingleTitleRule())           // MD025
	registry.Register(NewNoTrailingPunctuationRule()) // MD026
	registry.Register(NewFirstLineHeadingRule())      // MD041

	// Line length
	registry.Register(NewMaxLineLengthRule()) // MD013

	// Code blocks
	registry.Register(NewBlanksAroundFencesRule()) // MD031
	registry.Register(NewCodeBlockLanguageRule())  // MD040

	// Lists
	registry.Register(NewBlanksAroundListsRule()) // MD032

	// HTML
	registry.Register(NewInlineHTMLRule()) // MD033

	// Links
	registry.Register(NewNoBareURLsRule()) // MD034
	registry.Register(NewEmptyLinkRule())  // MD042
}

// RuleInfos describes every rule in registry for configuration templates.
func RuleInfos(registry *lint.Registry) []config.RuleInfo {
	all := registry.Rules()
	infos := make([]config.RuleInfo, 0, len(all))
	for _, rule := range all {
		infos = append(infos, config.RuleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Enabled:     rule.DefaultEnabled(),
		})
	}
	return infos
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
}

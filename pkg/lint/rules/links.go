package rules

import (
	"fmt"

	"github.com/yaklabco/spellint/pkg/lint"
	"github.com/yaklabco/spellint/pkg/mdast"
)

// EmptyLinkRule reports links that lead nowhere.
type EmptyLinkRule struct {
	lint.BaseRule
}

// NewEmptyLinkRule creates a new empty link rule.
func NewEmptyLinkRule() *EmptyLinkRule {
	return &EmptyLinkRule{
		BaseRule: lint.NewBaseRule(
			"MD042",
			"no-empty-links",
			"No empty links",
			[]string{"links"},
		),
	}
}

// Apply reports links whose destination is empty or a bare "#".
func (r *EmptyLinkRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic

	for _, link := range ctx.Links() {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}
		if lint.IsAutolink(link) {
			continue
		}

		dest := lint.LinkDestination(link)
		if dest != "" && dest != "#" {
			continue
		}

		diag := lint.NewDiagnostic(r.ID(), link, "Link has an empty destination").
			WithDetail(lint.Context("[" + mdast.TextContent(link) + "](" + dest + ")")).
			WithSuggestion("Point the link at a URL or remove it").
			Build()
		diags = append(diags, diag)
	}

	return diags, nil
}

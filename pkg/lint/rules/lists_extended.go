package rules

import (
	"fmt"

	"github.com/yaklabco/spellint/pkg/lint"
	"github.com/yaklabco/spellint/pkg/mdast"
)

// BlanksAroundListsRule checks that lists are surrounded by blank lines.
type BlanksAroundListsRule struct {
	lint.BaseRule
}

// NewBlanksAroundListsRule creates a new blanks-around-lists rule.
func NewBlanksAroundListsRule() *BlanksAroundListsRule {
	return &BlanksAroundListsRule{
		BaseRule: lint.NewBaseRule(
			"MD032",
			"blanks-around-lists",
			"Lists should be surrounded by blank lines",
			[]string{"bullet", "ul", "ol", "blank_lines"},
		),
	}
}

// Apply checks lists at document level and directly inside block quotes.
// Nested lists belong to their item and are not checked.
func (r *BlanksAroundListsRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil || ctx.File == nil {
		return nil, nil
	}

	lineCount := ctx.File.LineCount()

	var diags []lint.Diagnostic

	for _, list := range ctx.Lists() {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}
		if list.Parent == nil || (list.Parent.Kind != mdast.NodeDocument && list.Parent.Kind != mdast.NodeBlockquote) {
			continue
		}

		first, last, ok := lint.BlockLines(list)
		if !ok {
			continue
		}

		if first > 1 && list.Prev != nil && !lint.IsBlankInContainer(ctx.File, first-1) {
			diag := lint.NewDiagnosticAtLine(r.ID(), ctx.File, first, 1, "Missing blank line before list").
				WithDetail(lint.Context(string(ctx.File.LineContent(first)))).
				WithSuggestion("Add a blank line before the list").
				Build()
			diags = append(diags, diag)
		}

		if last < lineCount && list.Next != nil && !lint.IsBlankInContainer(ctx.File, last+1) {
			diag := lint.NewDiagnosticAtLine(r.ID(), ctx.File, last, 1, "Missing blank line after list").
				WithDetail(lint.Context(string(ctx.File.LineContent(last)))).
				WithSuggestion("Add a blank line after the list").
				Build()
			diags = append(diags, diag)
		}
	}

	return diags, nil
}

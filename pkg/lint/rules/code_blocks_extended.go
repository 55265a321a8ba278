package rules

import (
	"fmt"

	"github.com/yaklabco/spellint/pkg/lint"
	"github.com/yaklabco/spellint/pkg/mdast"
)

// BlanksAroundFencesRule checks that fenced code blocks are surrounded by blank lines.
type BlanksAroundFencesRule struct {
	lint.BaseRule
}

// NewBlanksAroundFencesRule creates a new blanks-around-fences rule.
func NewBlanksAroundFencesRule() *BlanksAroundFencesRule {
	return &BlanksAroundFencesRule{
		BaseRule: lint.NewBaseRule(
			"MD031",
			"blanks-around-fences",
			"Fenced code blocks should be surrounded by blank lines",
			[]string{"code", "blank_lines"},
		),
	}
}

// Apply checks the line before the opening fence and after the closing fence.
func (r *BlanksAroundFencesRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil || ctx.File == nil {
		return nil, nil
	}

	includeListItems := ctx.OptionBool("list_items", true)
	lineCount := ctx.File.LineCount()

	var diags []lint.Diagnostic

	for _, cb := range ctx.CodeBlocks() {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}
		if !lint.IsFencedCodeBlock(cb) {
			continue
		}
		if !includeListItems && inListItem(cb) {
			continue
		}

		openLine, closeLine, ok := lint.BlockLines(cb)
		if !ok {
			continue
		}

		// A fence that opens or closes its container shares the container's boundary.
		nested := cb.Parent != nil && cb.Parent.Kind != mdast.NodeDocument

		if openLine > 1 && !(nested && cb.Prev == nil) && !lint.IsBlankInContainer(ctx.File, openLine-1) {
			diag := lint.NewDiagnosticAtLine(r.ID(), ctx.File, openLine, 1,
				"Missing blank line before fenced code block").
				WithDetail(lint.Context(string(ctx.File.LineContent(openLine)))).
				WithSuggestion("Add a blank line before the fenced code block").
				Build()
			diags = append(diags, diag)
		}

		if closeLine < lineCount && !(nested && cb.Next == nil) && !lint.IsBlankInContainer(ctx.File, closeLine+1) {
			diag := lint.NewDiagnosticAtLine(r.ID(), ctx.File, closeLine, 1,
				"Missing blank line after fenced code block").
				WithDetail(lint.Context(string(ctx.File.LineContent(closeLine)))).
				WithSuggestion("Add a blank line after the fenced code block").
				Build()
			diags = append(diags, diag)
		}
	}

	return diags, nil
}

func inListItem(node *mdast.Node) bool {
	for parent := node.Parent; parent != nil; parent = parent.Parent {
		if parent.Kind == mdast.NodeListItem {
			return true
		}
	}
	return false
}

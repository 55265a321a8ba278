package rules

import (
	"fmt"
	"strconv"

	"github.com/yaklabco/spellint/pkg/lint"
	"github.com/yaklabco/spellint/pkg/mdast"
)

// HeadingIncrementRule reports a heading more than one level deeper than
// the heading before it. The first heading may have any level.
type HeadingIncrementRule struct {
	lint.BaseRule
}

func NewHeadingIncrementRule() *HeadingIncrementRule {
	return &HeadingIncrementRule{
		BaseRule: lint.NewBaseRule("MD001", "heading-increment",
			"Heading levels should only increment by one level at a time", []string{"headings"},
			"header-increment"),
	}
}

func (r *HeadingIncrementRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic
	prev := 0
	for h := range ctx.Each(ctx.Headings()) {
		level := lint.HeadingLevel(h)
		if level == 0 {
			continue
		}
		if prev > 0 && level > prev+1 {
			want := prev + 1
			diags = append(diags,
				lint.NewDiagnostic(r.ID(), h, fmt.Sprintf("Heading level jumped from h%d to h%d", prev, level)).
					WithDetail(lint.ExpectedActual("h"+strconv.Itoa(want), "h"+strconv.Itoa(level))).
					WithSuggestion(fmt.Sprintf("Use h%d instead", want)).
					Build())
		}
		prev = level
	}
	return diags, ctx.Err()
}

// SingleTitleRule reports further headings at the title level once the
// document has opened with a title.
type SingleTitleRule struct {
	lint.BaseRule
}

func NewSingleTitleRule() *SingleTitleRule {
	return &SingleTitleRule{
		BaseRule: lint.NewBaseRule("MD025", "single-h1",
			"Multiple top-level headings in the same document", []string{"headings"},
			"single-title"),
	}
}

// Apply honors the "level" option (default 1). A document that does not
// open with a heading at that level has no title and is not checked.
func (r *SingleTitleRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	level := ctx.OptionInt("level", 1)
	title := documentTitle(ctx.Root, level)
	if title == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic
	for h := range ctx.Each(ctx.Headings()) {
		if h == title || lint.HeadingLevel(h) != level {
			continue
		}
		diags = append(diags,
			lint.NewDiagnostic(r.ID(), h, "Multiple top-level headings in the same document").
				WithDetail(lint.Context(headingLine(ctx.File, h))).
				WithSuggestion(fmt.Sprintf("Demote this heading below h%d", level)).
				Build())
	}
	return diags, ctx.Err()
}

// documentTitle returns the first block of root when it is a heading at
// level. Leading HTML blocks, such as comments, are passed over.
func documentTitle(root *mdast.Node, level int) *mdast.Node {
	if root == nil {
		return nil
	}
	child := root.FirstChild
	for child != nil && child.Kind == mdast.NodeHTMLBlock {
		child = child.Next
	}
	if child != nil && lint.HeadingLevel(child) == level {
		return child
	}
	return nil
}

// headingLine is the source line a heading starts on, or its text when
// the heading has no position.
func headingLine(file *mdast.FileSnapshot, h *mdast.Node) string {
	if pos := h.SourcePosition(); file != nil && pos.IsValid() {
		return string(file.LineContent(pos.StartLine))
	}
	return lint.HeadingText(h)
}

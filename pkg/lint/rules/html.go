package rules

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/yaklabco/spellint/pkg/lint"
	"github.com/yaklabco/spellint/pkg/mdast"
)

// InlineHTMLRule reports raw HTML elements that are not explicitly allowed.
type InlineHTMLRule struct {
	lint.BaseRule
}

// NewInlineHTMLRule creates a new inline HTML rule.
func NewInlineHTMLRule() *InlineHTMLRule {
	return &InlineHTMLRule{
		BaseRule: lint.NewBaseRule(
			"MD033",
			"no-inline-html",
			"Inline HTML",
			[]string{"html"},
		),
	}
}

// Apply tokenizes every HTML block and inline HTML span and reports each
// opening tag. Closing tags and comments are ignored.
func (r *InlineHTMLRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil || ctx.File == nil {
		return nil, nil
	}

	allowed := make(map[string]bool)
	for _, el := range ctx.OptionStringSlice("allowed_elements", nil) {
		allowed[strings.ToLower(el)] = true
	}

	nodes := append(append([]*mdast.Node{}, ctx.HTMLBlocks()...), ctx.HTMLInlines()...)

	var diags []lint.Diagnostic

	for _, node := range nodes {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}
		if !node.HasPosition() {
			continue
		}

		start := node.Range.StartOffset
		for _, tag := range openingTags(ctx.File.Content[start:node.Range.EndOffset]) {
			if allowed[tag.name] {
				continue
			}

			line, col := ctx.File.LineAt(start + tag.offset)
			diag := lint.NewDiagnosticAt(r.ID(), ctx.File.Path, mdast.SourcePosition{
				StartLine:   line,
				StartColumn: col,
				EndLine:     line,
				EndColumn:   col + len([]rune(tag.name)) + 1,
			}, fmt.Sprintf("Inline HTML element <%s>", tag.name)).
				WithDetail("Element: " + tag.name).
				WithSuggestion("Replace the HTML with Markdown or allow the element").
				Build()
			diags = append(diags, diag)
		}
	}

	return diags, nil
}

// htmlTag is an opening tag found in raw HTML.
type htmlTag struct {
	name   string
	offset int
}

// openingTags returns the start and self-closing tags in src with their byte offsets.
func openingTags(src []byte) []htmlTag {
	var tags []htmlTag

	tokenizer := html.NewTokenizer(bytes.NewReader(src))
	offset := 0
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			return tags
		}
		raw := len(tokenizer.Raw())
		if tt == html.StartTagToken || tt == html.SelfClosingTagToken {
			name, _ := tokenizer.TagName()
			tags = append(tags, htmlTag{name: strings.ToLower(string(name)), offset: offset})
		}
		offset += raw
	}
}

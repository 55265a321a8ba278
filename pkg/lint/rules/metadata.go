package rules

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/yaklabco/spellint/pkg/lint"
	"github.com/yaklabco/spellint/pkg/mdast"
)

// FirstLineHeadingRule checks that files begin with a top-level heading.
type FirstLineHeadingRule struct {
	lint.BaseRule
}

func NewFirstLineHeadingRule() *FirstLineHeadingRule {
	return &FirstLineHeadingRule{
		BaseRule: lint.NewBaseRule("MD041", "first-line-heading",
			"First line in a file should be a top-level heading", []string{"headings"},
			"first-line-h1"),
	}
}

// Apply checks the first block that is not an HTML comment.
func (r *FirstLineHeadingRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil || ctx.File == nil || len(bytes.TrimSpace(ctx.File.Content)) == 0 {
		return nil, nil
	}

	level := ctx.OptionInt("level", 1)

	first := firstContentBlock(ctx.File, ctx.Root)
	if first == nil {
		return nil, nil
	}

	if lint.HeadingLevel(first) == level || isHTMLHeading(ctx.File, first, level) {
		return nil, nil
	}

	line, _, ok := lint.BlockLines(first)
	if !ok {
		line = 1
	}

	diag := lint.NewDiagnosticAtLine(r.ID(), ctx.File, line, 1,
		fmt.Sprintf("First line should be an h%d heading", level)).
		WithDetail(lint.Context(string(ctx.File.LineContent(line)))).
		WithSuggestion(fmt.Sprintf("Start the file with an h%d heading", level)).
		Build()
	return []lint.Diagnostic{diag}, nil
}

// firstContentBlock returns the first top-level block that is not a comment.
func firstContentBlock(file *mdast.FileSnapshot, root *mdast.Node) *mdast.Node {
	for child := root.FirstChild; child != nil; child = child.Next {
		if child.Kind == mdast.NodeHTMLBlock && bytes.HasPrefix(blockSource(file, child), []byte("<!--")) {
			continue
		}
		return child
	}
	return nil
}

// isHTMLHeading reports whether an HTML block opens with <hN>.
func isHTMLHeading(file *mdast.FileSnapshot, node *mdast.Node, level int) bool {
	if node.Kind != mdast.NodeHTMLBlock {
		return false
	}
	src := bytes.ToLower(blockSource(file, node))
	return bytes.HasPrefix(src, []byte("<h"+strconv.Itoa(level)))
}

// blockSource returns a node's source text with leading whitespace removed.
func blockSource(file *mdast.FileSnapshot, node *mdast.Node) []byte {
	if file == nil || !node.Range.IsKnown() {
		return nil
	}
	start, end := node.Range.StartOffset, node.Range.EndOffset
	if start < 0 || end > len(file.Content) || start > end {
		return nil
	}
	return bytes.TrimLeft(file.Content[start:end], " \t\r\n")
}

// HeadingBlankLinesRule wants blank lines above and below every heading.
// A heading at the very start or end of the file needs none on that side.
type HeadingBlankLinesRule struct {
	lint.BaseRule
}

func NewHeadingBlankLinesRule() *HeadingBlankLinesRule {
	return &HeadingBlankLinesRule{
		BaseRule: lint.NewBaseRule("MD022", "blanks-around-headings",
			"Headings should be surrounded by blank lines", []string{"headings", "blank_lines"},
			"blanks-around-headers"),
	}
}

// headingSide is one direction MD022 looks in from a heading.
type headingSide struct {
	option, name, where, verb string
	step                      int
}

var headingSides = [...]headingSide{
	{option: "lines_above", name: "above", where: "Above", verb: "before", step: -1},
	{option: "lines_below", name: "below", where: "Below", verb: "after", step: 1},
}

// Apply honors lines_above and lines_below (default 1 each; 0 disables
// that side). Blank lines inside a block quote count when the quote marker
// is all the line holds.
func (r *HeadingBlankLinesRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.File == nil {
		return nil, nil
	}
	lineCount := ctx.File.LineCount()
	var want [len(headingSides)]int
	for i, side := range headingSides {
		want[i] = ctx.OptionInt(side.option, 1)
	}

	var diags []lint.Diagnostic
	for h := range ctx.Each(ctx.Headings()) {
		first, last, ok := lint.BlockLines(h)
		if !ok {
			continue
		}
		for i, side := range headingSides {
			edge := first
			if side.step > 0 {
				edge = last
			}
			next := edge + side.step
			if want[i] <= 0 || next < 1 || next > lineCount {
				continue
			}
			got := countBlank(ctx.File, next, side.step, want[i])
			// Blank lines running into the file edge satisfy the rule.
			if beyond := edge + side.step*(got+1); got >= want[i] || beyond < 1 || beyond > lineCount {
				continue
			}
			diags = append(diags,
				lint.NewDiagnosticAtLine(r.ID(), ctx.File, first, 1,
					fmt.Sprintf("Heading needs %d blank line(s) %s", want[i], side.name)).
					WithDetail(lint.ExpectedActual(strconv.Itoa(want[i]), strconv.Itoa(got))+"; "+side.where).
					WithSuggestion("Add a blank line "+side.verb+" the heading").
					Build())
		}
	}
	return diags, ctx.Err()
}

// countBlank counts blank lines from start in direction step, stopping at
// limit or the first non-blank line.
func countBlank(file *mdast.FileSnapshot, start, step, limit int) int {
	count := 0
	for line := start; line >= 1 && line <= file.LineCount() && count < limit; line += step {
		if !lint.IsBlankInContainer(file, line) {
			break
		}
		count++
	}
	return count
}

package rules

import (
	"bytes"
	"strconv"

	"github.com/yaklabco/spellint/pkg/lint"
)

// TrailingSpacesRule reports lines ending in spaces, other than the exact
// run used for a hard line break.
type TrailingSpacesRule struct {
	lint.BaseRule
}

func NewTrailingSpacesRule() *TrailingSpacesRule {
	return &TrailingSpacesRule{
		BaseRule: lint.NewBaseRule("MD009", "no-trailing-spaces", "Trailing spaces", []string{"whitespace"}),
	}
}

// Apply skips code blocks. Options: br_spaces (default 2; below 2 allows
// none) and strict, which also reports hard-break runs.
func (r *TrailingSpacesRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	brSpaces := ctx.OptionInt("br_spaces", 2)
	if brSpaces < 2 {
		brSpaces = 0
	}
	strict := ctx.OptionBool("strict", false)
	allowed := "0"
	if brSpaces > 0 && !strict {
		allowed += " or " + strconv.Itoa(brSpaces)
	}

	inCode := ctx.CodeLines()
	var diags []lint.Diagnostic
	for n, line := range ctx.Lines() {
		trailing := len(line) - len(bytes.TrimRight(line, " "))
		if inCode[n] || trailing == 0 {
			continue
		}
		if trailing == brSpaces && !strict && !lint.IsBlankLine(ctx.File, n) {
			continue
		}
		col := lint.ColumnOf(line, len(line)-trailing)
		diags = append(diags,
			lint.NewDiagnosticAt(r.ID(), ctx.File.Path, lineSpan(n, col, col+trailing), "Trailing spaces").
				WithDetail(lint.ExpectedActual(allowed, strconv.Itoa(trailing))).
				WithSuggestion("Remove the trailing spaces").
				Build())
	}
	return diags, ctx.Err()
}

// MultipleBlankLinesRule reports each blank line past the allowed run.
type MultipleBlankLinesRule struct {
	lint.BaseRule
}

func NewMultipleBlankLinesRule() *MultipleBlankLinesRule {
	return &MultipleBlankLinesRule{
		BaseRule: lint.NewBaseRule("MD012", "no-multiple-blanks",
			"Multiple consecutive blank lines", []string{"whitespace", "blank_lines"}),
	}
}

// Apply honors the "maximum" option (default 1). Blank lines inside code
// blocks end a run instead of extending it.
func (r *MultipleBlankLinesRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	maximum := ctx.OptionInt("maximum", 1)
	inCode := ctx.CodeLines()

	var diags []lint.Diagnostic
	run := 0
	for n := range ctx.Lines() {
		if inCode[n] || !lint.IsBlankLine(ctx.File, n) {
			run = 0
			continue
		}
		if run++; run > maximum {
			diags = append(diags,
				lint.NewDiagnosticAtLine(r.ID(), ctx.File, n, 1, "Multiple consecutive blank lines").
					WithDetail(lint.ExpectedActual(strconv.Itoa(maximum), strconv.Itoa(run))).
					WithSuggestion("Remove the extra blank line").
					Build())
		}
	}
	return diags, ctx.Err()
}

// FinalNewlineRule reports a non-empty file whose last byte is not "\n".
type FinalNewlineRule struct {
	lint.BaseRule
}

func NewFinalNewlineRule() *FinalNewlineRule {
	return &FinalNewlineRule{
		BaseRule: lint.NewBaseRule("MD047", "single-trailing-newline",
			"Files should end with a single newline character", []string{"blank_lines"}),
	}
}

func (r *FinalNewlineRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.File == nil || len(ctx.File.Content) == 0 || bytes.HasSuffix(ctx.File.Content, []byte("\n")) {
		return nil, nil
	}
	last := ctx.File.LineCount()
	col := lint.LineLength(ctx.File, last) + 1
	return []lint.Diagnostic{
		lint.NewDiagnosticAt(r.ID(), ctx.File.Path, lineSpan(last, col, col), "File should end with a newline").
			WithSuggestion("Add a newline at the end of the file").
			Build(),
	}, nil
}

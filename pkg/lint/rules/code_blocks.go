package rules

import (
	"fmt"
	"strings"

	"github.com/yaklabco/spellint/pkg/langdetect"
	"github.com/yaklabco/spellint/pkg/lint"
)

// CodeBlockLanguageRule checks that fenced code blocks have a language specified.
type CodeBlockLanguageRule struct {
	lint.BaseRule
}

// NewCodeBlockLanguageRule creates a new code block language rule.
func NewCodeBlockLanguageRule() *CodeBlockLanguageRule {
	return &CodeBlockLanguageRule{
		BaseRule: lint.NewBaseRule(
			"MD040",
			"fenced-code-language",
			"Fenced code blocks should have a language specified",
			[]string{"code", "language"},
		),
	}
}

// Apply checks that fenced code blocks have an info string. When the body
// looks like a known language, the suggestion names it.
func (r *CodeBlockLanguageRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil || ctx.File == nil {
		return nil, nil
	}

	var allowed map[string]bool
	if langs := ctx.OptionStringSlice("allowed_languages", nil); len(langs) > 0 {
		allowed = make(map[string]bool, len(langs))
		for _, lang := range langs {
			allowed[strings.ToLower(lang)] = true
		}
	}

	var diags []lint.Diagnostic

	for _, cb := range ctx.CodeBlocks() {
		if ctx.Cancelled() {
			return diags, fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}
		if !lint.IsFencedCodeBlock(cb) {
			continue
		}

		fenceLine, _, ok := lint.BlockLines(cb)
		if !ok {
			continue
		}

		lang := infoLanguage(lint.CodeBlockInfo(cb))
		fence := string(ctx.File.LineContent(fenceLine))

		switch {
		case lang == "":
			suggestion := "Add a language identifier after the opening fence"
			if guess, confident := langdetect.Detect(lint.CodeBlockContent(cb)); confident {
				suggestion = fmt.Sprintf("Add a language identifier such as %q after the opening fence", guess)
			}
			diag := lint.NewDiagnosticAtLine(r.ID(), ctx.File, fenceLine, 1,
				"Fenced code block has no language specified").
				WithDetail(lint.Context(fence)).
				WithSuggestion(suggestion).
				Build()
			diags = append(diags, diag)

		case allowed != nil && !allowed[lang]:
			diag := lint.NewDiagnosticAtLine(r.ID(), ctx.File, fenceLine, 1,
				fmt.Sprintf("Language %q is not in the allowed list", lang)).
				WithDetail(lint.Context(fence)).
				WithSuggestion("Use one of the allowed language identifiers").
				Build()
			diags = append(diags, diag)
		}
	}

	return diags, nil
}

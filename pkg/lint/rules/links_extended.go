package rules

import (
	"bytes"
	"regexp"

	"github.com/yaklabco/spellint/pkg/lint"
)

// NoBareURLsRule checks for URLs and email addresses that are not links.
type NoBareURLsRule struct {
	lint.BaseRule
}

func NewNoBareURLsRule() *NoBareURLsRule {
	return &NoBareURLsRule{BaseRule: lint.NewBaseRule("MD034", "no-bare-urls", "Bare URL used", []string{"links", "url"})}
}

var (
	// bareURLPattern matches URLs and emails without consuming boundary characters.
	bareURLPattern = regexp.MustCompile(`https?://[^\s<>\[\]()"'` + "`" + `]+|[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

	// linkDefinitionPattern matches a link reference definition line.
	linkDefinitionPattern = regexp.MustCompile(`^ {0,3}\[[^\]]+\]:\s`)
)

// Apply scans lines outside code blocks. GFM turns bare URLs into
// positionless autolinks, so the source text is the reliable place to look.
func (r *NoBareURLsRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	inCode := ctx.CodeLines()
	var diags []lint.Diagnostic
	for n, line := range ctx.Lines() {
		if inCode[n] || linkDefinitionPattern.Match(line) {
			continue
		}

		for _, match := range bareURLPattern.FindAllIndex(line, -1) {
			start, end := match[0], match[1]
			end = start + len(bytes.TrimRight(line[start:end], ".,;:!?*_~"))

			if isWrapped(line, start, end) || insideCodeSpan(line, start) {
				continue
			}

			url := string(line[start:end])
			col := lint.ColumnOf(line, start)
			diag := lint.NewDiagnosticAt(r.ID(), ctx.File.Path, lineSpan(n, col, lint.ColumnOf(line, end)), "Bare URL used").
				WithDetail(lint.Context(url)).
				WithSuggestion("Wrap the URL in angle brackets: <" + url + ">").
				Build()
			diags = append(diags, diag)
		}
	}
	return diags, ctx.Err()
}

// isWrapped reports whether a match is part of a link, autolink or HTML attribute.
func isWrapped(line []byte, start, end int) bool {
	if start > 0 {
		switch line[start-1] {
		case '<', '(', '[', '"', '\'', '/', '=':
			return true
		}
	}
	if end < len(line) {
		switch line[end] {
		case '>', ')', ']':
			return true
		}
	}
	return false
}

// insideCodeSpan reports whether pos falls after an odd number of backticks.
func insideCodeSpan(line []byte, pos int) bool {
	return bytes.Count(line[:pos], []byte("`"))%2 == 1
}

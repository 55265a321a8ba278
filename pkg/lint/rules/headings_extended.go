package rules

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/spellint/pkg/lint"
	"github.com/yaklabco/spellint/pkg/mdast"
)

// atxLine splits an ATX heading line into its parts: the byte offset of the
// first hash, the offset just past the hashes, and the offset just past the
// whitespace that follows. ok is false when the line has no hash.
func atxLine(line []byte) (hashStart, hashEnd, textStart int, ok bool) {
	hashStart = bytes.IndexByte(line, '#')
	if hashStart < 0 {
		return 0, 0, 0, false
	}
	hashEnd = hashStart
	for hashEnd < len(line) && line[hashEnd] == '#' {
		hashEnd++
	}
	textStart = hashEnd
	for textStart < len(line) && (line[textStart] == ' ' || line[textStart] == '\t') {
		textStart++
	}
	return hashStart, hashEnd, textStart, true
}

// isClosedATX reports whether line ends in a closing hash sequence.
func isClosedATX(line []byte) bool {
	return bytes.HasSuffix(bytes.TrimRight(line, " \t"), []byte("#"))
}

// trimClosingHashes strips an ATX closing sequence and the whitespace before it.
// Hashes glued to the text are content and stay.
func trimClosingHashes(line []byte) []byte {
	body := bytes.TrimRight(line, "#")
	switch {
	case len(body) == len(line):
		return line
	case len(body) == 0:
		return body
	}
	if last := body[len(body)-1]; last == ' ' || last == '\t' {
		return bytes.TrimRight(body, " \t")
	}
	return line
}

// eachHeadingLine calls fn with every positioned heading and its first source line.
func eachHeadingLine(ctx *lint.RuleContext, fn func(h *mdast.Node, lineNum int, line []byte) *lint.Diagnostic) ([]lint.Diagnostic, error) {
	if ctx.Root == nil || ctx.File == nil {
		return nil, nil
	}

	var diags []lint.Diagnostic
	for _, h := range ctx.Headings() {
		if ctx.Cancelled() {
			return diags, ctx.Err()
		}
		pos := h.SourcePosition()
		if !pos.IsValid() {
			continue
		}
		if d := fn(h, pos.StartLine, ctx.File.LineContent(pos.StartLine)); d != nil {
			diags = append(diags, *d)
		}
	}
	return diags, nil
}

func lineSpan(lineNum, startCol, endCol int) mdast.SourcePosition {
	return mdast.SourcePosition{StartLine: lineNum, StartColumn: startCol, EndLine: lineNum, EndColumn: endCol}
}

// NoMissingSpaceATXRule reports "#Heading": hashes followed directly by text.
type NoMissingSpaceATXRule struct {
	lint.BaseRule
}

// NewNoMissingSpaceATXRule creates the MD018 rule.
func NewNoMissingSpaceATXRule() *NoMissingSpaceATXRule {
	return &NoMissingSpaceATXRule{
		BaseRule: lint.NewBaseRule("MD018", "no-missing-space-atx",
			"No space after hash on atx style heading", []string{"headings", "atx", "spaces"}),
	}
}

var missingSpaceATX = regexp.MustCompile(`^#{1,6}[^#\s]`)

// Apply works on raw lines: such a line parses as a paragraph, not a heading.
func (r *NoMissingSpaceATXRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	inCode := ctx.CodeLines()
	var diags []lint.Diagnostic
	for n, line := range ctx.Lines() {
		if inCode[n] || !missingSpaceATX.Match(line) || isClosedATX(line) {
			continue
		}
		diags = append(diags,
			lint.NewDiagnosticAtLine(r.ID(), ctx.File, n, 1, "No space after hash on atx style heading").
				WithDetail(lint.Context(string(line))).
				WithSuggestion("Add a space after the hash characters").
				Build())
	}
	return diags, ctx.Err()
}

// NoMultipleSpaceATXRule reports "#  Heading".
type NoMultipleSpaceATXRule struct {
	lint.BaseRule
}

// NewNoMultipleSpaceATXRule creates the MD019 rule.
func NewNoMultipleSpaceATXRule() *NoMultipleSpaceATXRule {
	return &NoMultipleSpaceATXRule{
		BaseRule: lint.NewBaseRule("MD019", "no-multiple-space-atx",
			"Multiple spaces after hash on atx style heading", []string{"headings", "atx", "spaces"}),
	}
}

// Apply skips setext, closed and empty headings.
func (r *NoMultipleSpaceATXRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	return eachHeadingLine(ctx, func(h *mdast.Node, n int, line []byte) *lint.Diagnostic {
		if lint.IsSetextHeading(h) || isClosedATX(line) {
			return nil
		}
		start, end, text, ok := atxLine(line)
		if !ok || text-end < 2 || text == len(line) {
			return nil
		}
		d := lint.NewDiagnosticAt(r.ID(), ctx.File.Path,
			lineSpan(n, lint.ColumnOf(line, start), lint.ColumnOf(line, text)),
			"Multiple spaces after hash on atx style heading").
			WithDetail(lint.Context(string(line))).
			WithSuggestion("Use a single space after the hash characters").
			Build()
		return &d
	})
}

// HeadingStartLeftRule reports indented top-level headings.
type HeadingStartLeftRule struct {
	lint.BaseRule
}

// NewHeadingStartLeftRule creates the MD023 rule.
func NewHeadingStartLeftRule() *HeadingStartLeftRule {
	return &HeadingStartLeftRule{
		BaseRule: lint.NewBaseRule("MD023", "heading-start-left",
			"Headings must start at the beginning of the line", []string{"headings", "spaces"},
			"header-start-left"),
	}
}

// Apply ignores headings nested in lists or block quotes.
func (r *HeadingStartLeftRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	return eachHeadingLine(ctx, func(h *mdast.Node, n int, line []byte) *lint.Diagnostic {
		if h.Parent == nil || h.Parent.Kind != mdast.NodeDocument {
			return nil
		}
		indent := len(line) - len(bytes.TrimLeft(line, " \t"))
		if indent == 0 {
			return nil
		}
		d := lint.NewDiagnosticAt(r.ID(), ctx.File.Path, lineSpan(n, 1, indent+1),
			fmt.Sprintf("Heading is indented by %d character(s)", indent)).
			WithDetail(lint.Context(string(line))).
			WithSuggestion("Remove leading whitespace from the heading").
			Build()
		return &d
	})
}

// NoTrailingPunctuationRule reports headings ending in punctuation.
type NoTrailingPunctuationRule struct {
	lint.BaseRule
}

// NewNoTrailingPunctuationRule creates the MD026 rule.
func NewNoTrailingPunctuationRule() *NoTrailingPunctuationRule {
	return &NoTrailingPunctuationRule{
		BaseRule: lint.NewBaseRule("MD026", "no-trailing-punctuation",
			"Trailing punctuation in heading", []string{"headings"}),
	}
}

// defaultPunctuation includes full-width CJK forms.
const defaultPunctuation = ".,;:!。，；：！"

var trailingEntity = regexp.MustCompile(`&(?:[a-zA-Z]+|#[0-9]+|#x[0-9a-fA-F]+);$`)

// Apply honors the "punctuation" option; an empty string disables the rule.
// A trailing HTML entity such as "&copy;" is not punctuation.
func (r *NoTrailingPunctuationRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	punctuation := ctx.OptionString("punctuation", defaultPunctuation)
	if punctuation == "" {
		return nil, nil
	}

	return eachHeadingLine(ctx, func(h *mdast.Node, n int, line []byte) *lint.Diagnostic {
		text := bytes.TrimRight(line, " \t")
		if !lint.IsSetextHeading(h) {
			text = trimClosingHashes(text)
		}
		if len(text) == 0 || trailingEntity.Match(text) {
			return nil
		}

		last, size := utf8.DecodeLastRune(text)
		if last == utf8.RuneError || !strings.ContainsRune(punctuation, last) {
			return nil
		}

		col := lint.ColumnOf(line, len(text)-size)
		d := lint.NewDiagnosticAt(r.ID(), ctx.File.Path, lineSpan(n, col, col+1),
			fmt.Sprintf("Heading ends with trailing punctuation %q", string(last))).
			WithDetail("Punctuation: '" + string(last) + "'").
			WithSuggestion("Remove trailing punctuation from the heading").
			Build()
		return &d
	})
}

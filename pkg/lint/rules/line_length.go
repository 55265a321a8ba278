package rules

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/yaklabco/spellint/pkg/lint"
)

// MaxLineLengthRule checks that lines do not exceed a maximum length.
// It is off unless configuration enables it.
type MaxLineLengthRule struct {
	lint.BaseRule
}

// NewMaxLineLengthRule creates a new max line length rule.
func NewMaxLineLengthRule() *MaxLineLengthRule {
	return &MaxLineLengthRule{
		BaseRule: lint.NewBaseRule("MD013", "line-length", "Line length", []string{"line_length"}).OffByDefault(),
	}
}

const defaultMaxLineLength = 80

// Apply measures every line in runes. Outside strict mode a line may run
// long when nothing past the limit could be wrapped, such as a long URL.
// Code block and heading lines have their own limits and switches.
func (r *MaxLineLengthRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	limit := ctx.OptionInt("line_length", defaultMaxLineLength)
	strict := ctx.OptionBool("strict", false)

	limitFor := make(map[int]int)
	if ctx.OptionBool("code_blocks", true) {
		codeLimit := ctx.OptionInt("code_block_line_length", limit)
		for n := range ctx.CodeLines() {
			limitFor[n] = codeLimit
		}
	} else {
		for n := range ctx.CodeLines() {
			limitFor[n] = -1
		}
	}
	headingLimit := -1
	if ctx.OptionBool("headings", true) {
		headingLimit = ctx.OptionInt("heading_line_length", limit)
	}
	for _, h := range ctx.Headings() {
		if first, _, ok := lint.BlockLines(h); ok {
			if _, code := limitFor[first]; !code {
				limitFor[first] = headingLimit
			}
		}
	}

	var diags []lint.Diagnostic
	for n, line := range ctx.Lines() {
		maxLen, special := limitFor[n]
		switch {
		case !special:
			maxLen = limit
		case maxLen < 0:
			continue
		}

		length := lint.LineLength(ctx.File, n)
		if length <= maxLen || (!strict && !wrappableBeyond(line, maxLen)) {
			continue
		}
		diags = append(diags,
			lint.NewDiagnosticAt(r.ID(), ctx.File.Path, lineSpan(n, maxLen+1, length+1),
				fmt.Sprintf("Line is %d characters long, limit is %d", length, maxLen)).
				WithDetail(lint.ExpectedActual(strconv.Itoa(maxLen), strconv.Itoa(length))).
				WithSuggestion("Wrap the line").
				Build())
	}
	return diags, ctx.Err()
}

// wrappableBeyond reports whether whitespace appears after the first limit runes.
func wrappableBeyond(line []byte, limit int) bool {
	runes := bytes.Runes(line)
	if len(runes) <= limit {
		return false
	}
	return bytes.ContainsAny([]byte(string(runes[limit:])), " \t")
}

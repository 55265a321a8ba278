package rules

import (
	"bytes"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/spellint/pkg/lint"
	"github.com/yaklabco/spellint/pkg/mdast"
)

// HardTabsRule checks for hard tab characters in the document.
type HardTabsRule struct {
	lint.BaseRule
}

func NewHardTabsRule() *HardTabsRule {
	return &HardTabsRule{
		BaseRule: lint.NewBaseRule("MD010", "no-hard-tabs", "Hard tabs", []string{"whitespace", "hard_tab"}),
	}
}

// Apply reports each run of tabs once. Options: code_blocks (default true)
// and ignore_code_languages, matched against the fence info's first word.
func (r *HardTabsRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	includeCode := ctx.OptionBool("code_blocks", true)
	ignored := ctx.OptionStringSlice("ignore_code_languages", nil)
	codeLangs := codeLineLanguages(ctx.CodeBlocks())

	var diags []lint.Diagnostic
	for n, line := range ctx.Lines() {
		if lang, inCode := codeLangs[n]; inCode &&
			(!includeCode || slices.ContainsFunc(ignored, func(l string) bool { return strings.EqualFold(l, lang) })) {
			continue
		}

		for rest, offset := line, 0; ; {
			idx := bytes.IndexByte(rest, '\t')
			if idx < 0 {
				break
			}
			run := len(rest[idx:]) - len(bytes.TrimLeft(rest[idx:], "\t"))
			col := lint.ColumnOf(line, offset+idx)
			diags = append(diags,
				lint.NewDiagnosticAt(r.ID(), ctx.File.Path, lineSpan(n, col, col+run), "Hard tabs").
					WithDetail("Column: "+strconv.Itoa(col)).
					WithSuggestion("Replace tabs with spaces").
					Build())
			offset += idx + run
			rest = rest[idx+run:]
		}
	}
	return diags, ctx.Err()
}

// codeLineLanguages maps each line of a code block to its lowercased language.
func codeLineLanguages(blocks []*mdast.Node) map[int]string {
	langs := make(map[int]string)
	for _, block := range blocks {
		first, last, ok := lint.BlockLines(block)
		if !ok {
			continue
		}
		lang := infoLanguage(lint.CodeBlockInfo(block))
		for line := first; line <= last; line++ {
			langs[line] = lang
		}
	}
	return langs
}

// infoLanguage returns the first word of a fence info string, lowercased.
func infoLanguage(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

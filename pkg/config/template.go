package config

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Starter file formats accepted by GenerateTemplate.
const (
	TemplateYAML = "yaml"
	TemplateTOML = "toml"
)

const ruleListWidth = 70

// RuleInfo describes one lint rule in a generated file.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Enabled     bool
}

// TemplateOptions selects the starter file to generate.
type TemplateOptions struct {
	Format string

	// Rules, when set, are listed as commented-out entries after the settings.
	Rules []RuleInfo
}

const yamlBody = `
# Parser dialect, commonmark or gfm.
flavor: commonmark

# Paths skipped during discovery, as glob patterns.
# ignore:
#   - "vendor/**"
#   - "build/**"

spelling:
  enabled: true
  language: en
  max_suggestions: 5
  # words: [spellint]
  # dictionaries: [.spellint-words.txt]

lint:
  enabled: true

# Per-rule settings. A rule may be keyed by its ID, name or alias.
# rules:
#   line-length:
#     enabled: true
#     options:
#       line_length: 100
`

const tomlBody = `
# Parser dialect, commonmark or gfm.
flavor = "commonmark"

# Paths skipped during discovery, as glob patterns.
# ignore = ["vendor/**", "build/**"]

[spelling]
enabled = true
language = "en"
max_suggestions = 5
# words = ["spellint"]
# dictionaries = [".spellint-words.txt"]

[lint]
enabled = true

# Per-rule settings. A rule may be keyed by its ID, name or alias.
# [rules.line-length]
# enabled = true
# options = { line_length = 100 }
`

// GenerateTemplate renders a commented starter configuration.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	var (
		body     string
		ruleLine func(RuleInfo) string
	)
	switch opts.Format {
	case "", TemplateYAML:
		body = yamlBody
		ruleLine = func(r RuleInfo) string {
			return fmt.Sprintf("#   %s: { enabled: %t }  # %s", r.ID, r.Enabled, r.Name)
		}
	case TemplateTOML:
		body = tomlBody
		ruleLine = func(r RuleInfo) string {
			return fmt.Sprintf("# [rules.%s] enabled = %t  # %s", r.ID, r.Enabled, r.Name)
		}
	default:
		return nil, fmt.Errorf("unsupported template format %q (expected yaml or toml)", opts.Format)
	}

	var buf bytes.Buffer
	buf.WriteString(TemplateHeader())
	buf.WriteString(body)

	if len(opts.Rules) > 0 {
		buf.WriteString("\n# Rules and their default state:\n")
		rules := slices.SortedFunc(slices.Values(opts.Rules), func(a, b RuleInfo) int {
			return cmp.Compare(a.ID, b.ID)
		})
		for _, r := range rules {
			buf.WriteString(ruleLine(r))
			buf.WriteByte('\n')
			for _, line := range wrapWords(r.Description, ruleListWidth) {
				fmt.Fprintf(&buf, "#     %s\n", line)
			}
		}
	}
	return buf.Bytes(), nil
}

// wrapWords splits text into lines no wider than width, except where a
// single word is longer.
func wrapWords(text string, width int) []string {
	var (
		lines []string
		cur   strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// TemplateHeader is the banner at the top of generated files.
func TemplateHeader() string {
	return "# spellint configuration\n# https://github.com/yaklabco/spellint\n"
}

package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/spellint/pkg/config"
	"github.com/yaklabco/spellint/pkg/lint"
	"github.com/yaklabco/spellint/pkg/parser/goldmark"
)

// runRule parses input as CommonMark and applies a single rule to it.
func runRule(t *testing.T, rule lint.Rule, input string, options map[string]any) []lint.Diagnostic {
	t.Helper()
	return runRuleFlavor(t, rule, config.FlavorCommonMark, input, options)
}

func runRuleFlavor(
	t *testing.T,
	rule lint.Rule,
	flavor config.Flavor,
	input string,
	options map[string]any,
) []lint.Diagnostic {
	t.Helper()

	parser := goldmark.New(string(flavor))
	snapshot, err := parser.Parse(context.Background(), "test.md", []byte(input))
	require.NoError(t, err)

	var ruleCfg *config.RuleConfig
	if options != nil {
		ruleCfg = &config.RuleConfig{Options: options}
	}

	ctx := lint.NewRuleContext(context.Background(), snapshot, config.NewConfig(), ruleCfg)
	diags, err := rule.Apply(ctx)
	require.NoError(t, err)
	return diags
}

// lines returns the start line of every diagnostic.
func lines(diags []lint.Diagnostic) []int {
	out := make([]int, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.StartLine)
	}
	return out
}

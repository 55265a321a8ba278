package lint_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/spellint/pkg/config"
	"github.com/yaklabco/spellint/pkg/lint"
	"github.com/yaklabco/spellint/pkg/mdast"
	"github.com/yaklabco/spellint/pkg/parser/goldmark"
)

func parseDoc(t *testing.T, content string) *mdast.FileSnapshot {
	t.Helper()

	snapshot, err := goldmark.New(goldmark.FlavorCommonMark).Parse(context.Background(), "doc.md", []byte(content))
	require.NoError(t, err)
	return snapshot
}

func TestNewRuleContext(t *testing.T) {
	t.Parallel()

	file := parseDoc(t, "# Hello\n")
	cfg := config.NewConfig()
	ruleCfg := &config.RuleConfig{}

	rc := lint.NewRuleContext(context.Background(), file, cfg, ruleCfg)
	assert.Same(t, file, rc.File)
	assert.Same(t, file.Root, rc.Root)
	assert.Same(t, cfg, rc.Config)
	assert.Same(t, ruleCfg, rc.RuleConfig)

	empty := lint.NewRuleContext(context.Background(), nil, nil, nil)
	assert.Nil(t, empty.Root)
	assert.Empty(t, empty.Headings())
	assert.Empty(t, empty.CodeLines())
}

func TestRuleContext_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	rc := lint.NewRuleContext(ctx, nil, nil, nil)

	assert.False(t, rc.Cancelled())
	require.NoError(t, rc.Err())
	cancel()
	assert.True(t, rc.Cancelled())
	assert.ErrorIs(t, rc.Err(), context.Canceled)
}

func TestRuleContext_Lines(t *testing.T) {
	t.Parallel()

	file := mdast.NewFileSnapshot("doc.md", []byte("one\r\ntwo\nthree"))
	rc := lint.NewRuleContext(context.Background(), file, nil, nil)

	var got []string
	for n, line := range rc.Lines() {
		got = append(got, fmt.Sprintf("%d:%s", n, line))
	}
	assert.Equal(t, []string{"1:one", "2:two", "3:three"}, got)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var seen int
	for range lint.NewRuleContext(ctx, file, nil, nil).Lines() {
		seen++
	}
	assert.Zero(t, seen)
}

func TestRuleContext_Options(t *testing.T) {
	t.Parallel()

	rc := lint.NewRuleContext(context.Background(), nil, nil, &config.RuleConfig{
		Options: map[string]any{
			"yaml_int":   100,
			"toml_int":   int64(120),
			"json_int":   float64(80),
			"style":      "consistent",
			"strict":     true,
			"names":      []string{"go", "bash"},
			"toml_names": []any{"json", 3, "yaml"},
			"wrong_type": "nope",
		},
	})

	assert.Equal(t, 100, rc.OptionInt("yaml_int", 0))
	assert.Equal(t, 120, rc.OptionInt("toml_int", 0))
	assert.Equal(t, 80, rc.OptionInt("json_int", 0))
	assert.Equal(t, 7, rc.OptionInt("wrong_type", 7))
	assert.Equal(t, 7, rc.OptionInt("missing", 7))

	assert.Equal(t, "consistent", rc.OptionString("style", "x"))
	assert.Equal(t, "x", rc.OptionString("strict", "x"))

	assert.True(t, rc.OptionBool("strict", false))
	assert.True(t, rc.OptionBool("missing", true))

	assert.Equal(t, []string{"go", "bash"}, rc.OptionStringSlice("names", nil))
	assert.Equal(t, []string{"json", "yaml"}, rc.OptionStringSlice("toml_names", nil))
	assert.Equal(t, []string{"d"}, rc.OptionStringSlice("missing", []string{"d"}))

	noConfig := lint.NewRuleContext(context.Background(), nil, nil, nil)
	assert.Equal(t, "default", noConfig.Option("anything", "default"))
}

func TestRuleContext_NodeAccessors(t *testing.T) {
	t.Parallel()

	file := parseDoc(t, "# One\n\n## Two\n\n- item with [link](u)\n\n<div>\nblock\n</div>\n\nInline <b>x</b>.\n\n```go\nx := 1\n```\n")
	rc := lint.NewRuleContext(context.Background(), file, nil, nil)

	assert.Len(t, rc.Headings(), 2)
	assert.Len(t, rc.Lists(), 1)
	assert.Len(t, rc.Links(), 1)
	assert.Len(t, rc.HTMLBlocks(), 1)
	assert.Len(t, rc.HTMLInlines(), 2)
	assert.Len(t, rc.CodeBlocks(), 1)
}

func TestRuleContext_SharedCache(t *testing.T) {
	t.Parallel()

	file := parseDoc(t, "# One\n\n## Two\n")
	cache := lint.NewNodeCache()

	first := lint.NewRuleContext(context.Background(), file, nil, nil).WithCache(cache)
	second := lint.NewRuleContext(context.Background(), file, nil, nil).WithCache(cache)

	require.Len(t, first.Headings(), 2)
	assert.Same(t, &first.Headings()[0], &second.Headings()[0])
}

func TestRuleContext_CodeLines(t *testing.T) {
	t.Parallel()

	file := parseDoc(t, "text\n\n```go\ncode\n```\n\nmore\n")
	lines := lint.NewRuleContext(context.Background(), file, nil, nil).CodeLines()

	for line := 1; line <= 7; line++ {
		assert.Equal(t, line >= 3 && line <= 5, lines[line], "line %d", line)
	}
}

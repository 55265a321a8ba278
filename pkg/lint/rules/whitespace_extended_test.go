package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHardTabsRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		options   map[string]any
		wantLines []int
	}{
		{"no tabs", "Hello world\n", nil, []int{}},
		{"leading tab", "\tIndented\n", nil, []int{1}},
		{"run counts once", "a\t\tb\n", nil, []int{1}},
		{"two runs", "a\tb\tc\n", nil, []int{1, 1}},
		{"code block included by default", "```\n\tx\n```\n", nil, []int{2}},
		{
			"code block excluded",
			"```\n\tx\n```\n",
			map[string]any{"code_blocks": false},
			[]int{},
		},
		{
			"ignored language",
			"```make\nall:\n\tgo build\n```\n",
			map[string]any{"ignore_code_languages": []any{"Make"}},
			[]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := runRule(t, NewHardTabsRule(), tt.input, tt.options)
			assert.Equal(t, tt.wantLines, lines(diags))
		})
	}
}

func TestHardTabsRule_Column(t *testing.T) {
	t.Parallel()

	diags := runRule(t, NewHardTabsRule(), "café\tbar\n", nil)
	require.Len(t, diags, 1)
	assert.Equal(t, 5, diags[0].StartColumn)
	assert.Equal(t, "Column: 5", diags[0].Detail)
}

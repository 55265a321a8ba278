package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeBlockLanguageRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		options   map[string]any
		wantLines []int
	}{
		{"with language", "```go\nfunc main() {}\n```\n", nil, []int{}},
		{"without language", "Text.\n\n```\nplain\n```\n", nil, []int{3}},
		{"tilde fence", "~~~\nplain\n~~~\n", nil, []int{1}},
		{"indented code ignored", "    indented code\n", nil, []int{}},
		{
			"allowed languages",
			"```go\nx\n```\n\n```ruby\ny\n```\n",
			map[string]any{"allowed_languages": []any{"go"}},
			[]int{5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := runRule(t, NewCodeBlockLanguageRule(), tt.input, tt.options)
			assert.Equal(t, tt.wantLines, lines(diags))
		})
	}
}

func TestCodeBlockLanguageRule_SuggestsLanguage(t *testing.T) {
	t.Parallel()

	diags := runRule(t, NewCodeBlockLanguageRule(), "```\npackage main\n\nfunc main() {}\n```\n", nil)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Suggestion, `"go"`)
	assert.Equal(t, "Context: \"```\"", diags[0].Detail)
}

func TestBlanksAroundFencesRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		options   map[string]any
		wantLines []int
	}{
		{"surrounded", "Text.\n\n```\ncode\n```\n\nMore.\n", nil, []int{}},
		{"start of file", "```\ncode\n```\n", nil, []int{}},
		{"missing before", "Text.\n```\ncode\n```\n\nMore.\n", nil, []int{2}},
		{"missing after", "```\ncode\n```\nMore.\n", nil, []int{3}},
		{"first in list item", "- ```\n  code\n  ```\n", nil, []int{}},
		{
			"list item after paragraph",
			"- item\n  ```\n  code\n  ```\n",
			map[string]any{"list_items": false},
			[]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := runRule(t, NewBlanksAroundFencesRule(), tt.input, tt.options)
			assert.Equal(t, tt.wantLines, lines(diags))
		})
	}
}

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstLineHeadingRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		options   map[string]any
		wantLines []int
	}{
		{"starts with h1", "# Title\n\nText.\n", nil, []int{}},
		{"starts with setext h1", "Title\n=====\n", nil, []int{}},
		{"starts with paragraph", "Some text.\n\n# Title\n", nil, []int{1}},
		{"starts with h2", "## Section\n", nil, []int{1}},
		{"leading blank lines", "\n\nText.\n", nil, []int{3}},
		{"comment before heading", "<!-- generated -->\n# Title\n", nil, []int{}},
		{"html heading", "<h1 align=\"center\">Title</h1>\n", nil, []int{}},
		{"custom level", "## Section\n", map[string]any{"level": 2}, []int{}},
		{"empty file", "", nil, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := runRule(t, NewFirstLineHeadingRule(), tt.input, tt.options)
			assert.Equal(t, tt.wantLines, lines(diags))
		})
	}
}

func TestHeadingBlankLinesRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantLines []int
	}{
		{"surrounded", "Text.\n\n# Heading\n\nMore.\n", []int{}},
		{"first line", "# Heading\n\nText.\n", []int{}},
		{"last line without newline", "Text.\n\n# Heading", []int{}},
		{"nothing above", "Text.\n# Heading\n\nMore.\n", []int{2}},
		{"nothing below", "# Heading\nText.\n", []int{1}},
		{"adjacent headings", "# One\n## Two\n", []int{1, 2}},
		{"inside blockquote", "> Text.\n>\n> # Heading\n>\n> More.\n", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := runRule(t, NewHeadingBlankLinesRule(), tt.input, nil)
			assert.Equal(t, tt.wantLines, lines(diags))
		})
	}
}

func TestHeadingBlankLinesRule_Detail(t *testing.T) {
	t.Parallel()

	diags := runRule(t, NewHeadingBlankLinesRule(), "# Heading\nText.\n", nil)
	require.Len(t, diags, 1)
	assert.Equal(t, "Expected: 1; Actual: 0; Below", diags[0].Detail)
}

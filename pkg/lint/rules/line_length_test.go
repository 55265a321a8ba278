package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxLineLengthRule(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("word ", 20) + "end\n"
	url := "See " + "https://example.com/" + strings.Repeat("a", 90) + "\n"

	tests := []struct {
		name      string
		input     string
		options   map[string]any
		wantLines []int
	}{
		{"short line", "Short.\n", nil, []int{}},
		{"long prose", long, nil, []int{1}},
		{"long url without spaces", url, nil, []int{}},
		{"long url strict", url, map[string]any{"strict": true}, []int{1}},
		{"custom limit", long, map[string]any{"line_length": 200}, []int{}},
		{"code block skipped", "```\n" + long + "```\n", map[string]any{"code_blocks": false}, []int{}},
		{"code block checked", "```\n" + long + "```\n", nil, []int{2}},
		{"heading skipped", "# " + long, map[string]any{"headings": false}, []int{}},
		{"multibyte counted as runes", strings.Repeat("é ", 40) + "\n", nil, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := runRule(t, NewMaxLineLengthRule(), tt.input, tt.options)
			assert.Equal(t, tt.wantLines, lines(diags))
		})
	}
}

func TestMaxLineLengthRule_Detail(t *testing.T) {
	t.Parallel()

	diags := runRule(t, NewMaxLineLengthRule(), strings.Repeat("ab ", 30)+"\n", nil)
	require.Len(t, diags, 1)
	assert.Equal(t, "Expected: 80; Actual: 90", diags[0].Detail)
	assert.Equal(t, 81, diags[0].StartColumn)
}

func TestMaxLineLengthRule_OffByDefault(t *testing.T) {
	t.Parallel()

	assert.False(t, NewMaxLineLengthRule().DefaultEnabled())
}

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInlineHTMLRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		options   map[string]any
		wantLines []int
	}{
		{"no html", "Just **markdown**.\n", nil, []int{}},
		{"html block", "<div>\ncontent\n</div>\n", nil, []int{1}},
		{"inline element", "Line one\nPress <kbd>Ctrl</kbd> now.\n", nil, []int{2}},
		{"self closing", "Break<br/>here.\n", nil, []int{1}},
		{"comment ignored", "<!-- note -->\n\nText.\n", nil, []int{}},
		{"allowed element", "Press <kbd>Ctrl</kbd>.\n", map[string]any{"allowed_elements": []any{"KBD"}}, []int{}},
		{"nested block elements", "<details>\n<summary>More</summary>\n</details>\n", nil, []int{1, 2}},
		{"code span ignored", "Use `<div>` here.\n", nil, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := runRule(t, NewInlineHTMLRule(), tt.input, tt.options)
			assert.ElementsMatch(t, tt.wantLines, lines(diags))
		})
	}
}

func TestInlineHTMLRule_Position(t *testing.T) {
	t.Parallel()

	diags := runRule(t, NewInlineHTMLRule(), "Café <b>bold</b>\n", nil)
	require.Len(t, diags, 1)
	assert.Equal(t, 1, diags[0].StartLine)
	assert.Equal(t, 6, diags[0].StartColumn)
	assert.Equal(t, "Element: b", diags[0].Detail)
}

func TestOpeningTags(t *testing.T) {
	t.Parallel()

	tags := openingTags([]byte(`<p class="x">text <img src="a.png"/></p><!-- c -->`))
	require.Len(t, tags, 2)
	assert.Equal(t, htmlTag{name: "p", offset: 0}, tags[0])
	assert.Equal(t, htmlTag{name: "img", offset: 18}, tags[1])
}

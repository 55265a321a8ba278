package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/spellint/pkg/config"
)

func TestNoBareURLsRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantLines []int
	}{
		{"bare url", "Visit https://example.com today.\n", []int{1}},
		{"autolink", "Visit <https://example.com> today.\n", []int{}},
		{"inline link", "Visit [site](https://example.com).\n", []int{}},
		{"link text is url", "[https://example.com](https://example.com)\n", []int{}},
		{"code span", "Run `curl https://example.com` now.\n", []int{}},
		{"code block", "```\nhttps://example.com\n```\n", []int{}},
		{"reference definition", "[site]: https://example.com\n", []int{}},
		{"html attribute", "<a href=\"https://example.com\">x</a>\n", []int{}},
		{"bare email", "Mail user@example.com please.\n", []int{1}},
		{"two urls", "http://a.example and http://b.example\n", []int{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := runRule(t, NewNoBareURLsRule(), tt.input, nil)
			assert.Equal(t, tt.wantLines, lines(diags))
		})
	}
}

func TestNoBareURLsRule_TrailingPunctuation(t *testing.T) {
	t.Parallel()

	diags := runRuleFlavor(t, NewNoBareURLsRule(), config.FlavorGFM, "See https://example.com.\n", nil)
	require.Len(t, diags, 1)
	assert.Equal(t, `Context: "https://example.com"`, diags[0].Detail)
	assert.Equal(t, 5, diags[0].StartColumn)
	assert.Equal(t, 24, diags[0].EndColumn)
}

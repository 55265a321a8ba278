package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyLinkRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantLines []int
	}{
		{"valid link", "[text](https://example.com)\n", []int{}},
		{"empty destination", "[text]()\n", []int{1}},
		{"fragment only", "Intro\n[text](#)\n", []int{2}},
		{"named fragment", "[text](#section)\n", []int{}},
		{"autolink", "<https://example.com>\n", []int{}},
		{"reference to empty fragment", "[text][ref]\n\n[ref]: #\n", []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := runRule(t, NewEmptyLinkRule(), tt.input, nil)
			assert.Equal(t, tt.wantLines, lines(diags))
		})
	}
}

func TestEmptyLinkRule_Detail(t *testing.T) {
	t.Parallel()

	diags := runRule(t, NewEmptyLinkRule(), "See [docs](#) here.\n", nil)
	require.Len(t, diags, 1)
	assert.Equal(t, `Context: "[docs](#)"`, diags[0].Detail)
	assert.Equal(t, 5, diags[0].StartColumn)
}

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoMissingSpaceATXRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantLines []int
	}{
		{"proper heading", "# Heading\n", []int{}},
		{"missing space", "#Heading\n", []int{1}},
		{"level three", "###Heading\n", []int{1}},
		{"closed heading ignored", "#Heading#\n", []int{}},
		{"in code block", "```\n#include <stdio.h>\n```\n", []int{}},
		{"hash alone", "#\n", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := runRule(t, NewNoMissingSpaceATXRule(), tt.input, nil)
			assert.Equal(t, tt.wantLines, lines(diags))
		})
	}
}

func TestNoMultipleSpaceATXRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantLines []int
	}{
		{"single space", "# Heading\n", []int{}},
		{"two spaces", "#  Heading\n", []int{1}},
		{"tab and space", "##\t Heading\n", []int{1}},
		{"closed heading ignored", "#  Heading #\n", []int{}},
		{"setext ignored", "Heading\n=======\n", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := runRule(t, NewNoMultipleSpaceATXRule(), tt.input, nil)
			assert.Equal(t, tt.wantLines, lines(diags))
		})
	}
}

func TestHeadingStartLeftRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantLines []int
	}{
		{"flush left", "# Heading\n", []int{}},
		{"one space", " # Heading\n", []int{1}},
		{"three spaces", "   ## Heading\n", []int{1}},
		{"four spaces is code", "    # Heading\n", []int{}},
		{"inside list item", "- item\n\n  # Heading\n", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := runRule(t, NewHeadingStartLeftRule(), tt.input, nil)
			assert.Equal(t, tt.wantLines, lines(diags))
		})
	}
}

func TestNoTrailingPunctuationRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		options   map[string]any
		wantLines []int
	}{
		{"no punctuation", "# Heading\n", nil, []int{}},
		{"period", "# Heading.\n", nil, []int{1}},
		{"colon in setext", "Heading:\n========\n", nil, []int{1}},
		{"question mark allowed", "# Why?\n", nil, []int{}},
		{"full width", "# 見出し。\n", nil, []int{1}},
		{"closed heading", "## Heading! ##\n", nil, []int{1}},
		{"entity ignored", "# Copyright &copy;\n", nil, []int{}},
		{"custom set", "# Why?\n", map[string]any{"punctuation": "?"}, []int{1}},
		{"disabled", "# Heading.\n", map[string]any{"punctuation": ""}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := runRule(t, NewNoTrailingPunctuationRule(), tt.input, tt.options)
			assert.Equal(t, tt.wantLines, lines(diags))
		})
	}
}

func TestNoTrailingPunctuationRule_Position(t *testing.T) {
	t.Parallel()

	diags := runRule(t, NewNoTrailingPunctuationRule(), "# Héading.\n", nil)
	require.Len(t, diags, 1)
	assert.Equal(t, 10, diags[0].StartColumn)
	assert.Equal(t, "Punctuation: '.'", diags[0].Detail)
}

package spell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/spellint/pkg/mdast"
	"github.com/yaklabco/spellint/pkg/spell"
)

func pos(line, column int) mdast.Position {
	return mdast.Position{Line: line, Column: column}
}

func TestLocateWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		seg  spell.TextSegment
		want []spell.WordOccurrence
	}{
		{
			name: "repeated tokens get their own columns",
			seg:  spell.TextSegment{Text: "teh cat teh dog teh", Start: pos(1, 1)},
			want: []spell.WordOccurrence{
				{Word: "teh", Position: pos(1, 1)},
				{Word: "cat", Position: pos(1, 5)},
				{Word: "teh", Position: pos(1, 9)},
				{Word: "dog", Position: pos(1, 13)},
				{Word: "teh", Position: pos(1, 17)},
			},
		},
		{
			name: "first line offset by segment column",
			seg:  spell.TextSegment{Text: " and a ", Start: pos(3, 15)},
			want: []spell.WordOccurrence{
				{Word: "and", Position: pos(3, 16)},
				{Word: "a", Position: pos(3, 20)},
			},
		},
		{
			name: "later lines start at column one",
			seg:  spell.TextSegment{Text: "alpha beta\ngamma delta\n  epsilon", Start: pos(4, 7)},
			want: []spell.WordOccurrence{
				{Word: "alpha", Position: pos(4, 7)},
				{Word: "beta", Position: pos(4, 13)},
				{Word: "gamma", Position: pos(5, 1)},
				{Word: "delta", Position: pos(5, 7)},
				{Word: "epsilon", Position: pos(6, 3)},
			},
		},
		{
			name: "punctuation and underscores",
			seg:  spell.TextSegment{Text: "don't snake_case, x2!", Start: pos(1, 1)},
			want: []spell.WordOccurrence{
				{Word: "don", Position: pos(1, 1)},
				{Word: "t", Position: pos(1, 5)},
				{Word: "snake_case", Position: pos(1, 7)},
				{Word: "x2", Position: pos(1, 19)},
			},
		},
		{
			name: "columns count characters not bytes",
			seg:  spell.TextSegment{Text: "café naïve wrod", Start: pos(2, 1)},
			want: []spell.WordOccurrence{
				{Word: "café", Position: pos(2, 1)},
				{Word: "naïve", Position: pos(2, 6)},
				{Word: "wrod", Position: pos(2, 12)},
			},
		},
		{
			name: "carriage return is not a word character",
			seg:  spell.TextSegment{Text: "one\r\ntwo", Start: pos(1, 1)},
			want: []spell.WordOccurrence{
				{Word: "one", Position: pos(1, 1)},
				{Word: "two", Position: pos(2, 1)},
			},
		},
		{
			name: "empty and blank lines",
			seg:  spell.TextSegment{Text: "\n  \n...", Start: pos(1, 1)},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, spell.LocateWords(tt.seg))
		})
	}
}

func TestLocateWords_RepeatsStrictlyIncrease(t *testing.T) {
	t.Parallel()

	words := spell.LocateWords(spell.TextSegment{Text: "go go go go", Start: pos(1, 1)})
	require.Len(t, words, 4)

	for i := 1; i < len(words); i++ {
		assert.Greater(t, words[i].Position.Column, words[i-1].Position.Column)
	}
}

func TestLocateWords_FromParsedDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		word    string
		want    mdast.Position
	}{
		{"paragraph", "# Title\n\nThis is `code` and a *mispelled* wrod.\n", "wrod", pos(3, 34)},
		{"emphasis", "# Title\n\nThis is `code` and a *mispelled* wrod.\n", "mispelled", pos(3, 23)},
		{"soft wrapped", "Intro\n\nfirst line\nsecond wrod\n", "wrod", pos(4, 8)},
		{"block quote", "> quoted\n> more wrod\n", "wrod", pos(2, 8)},
		{"list item", "- item\n  wrod here\n", "wrod", pos(2, 3)},
		{"heading", "## Big wrod\n", "wrod", pos(1, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var found []mdast.Position
			for _, seg := range extract(t, tt.content) {
				for _, occ := range spell.LocateWords(seg) {
					if occ.Word == tt.word {
						found = append(found, occ.Position)
					}
				}
			}
			assert.Equal(t, []mdast.Position{tt.want}, found)
		})
	}
}

func TestIsNumeric(t *testing.T) {
	t.Parallel()

	assert.True(t, spell.IsNumeric("2024"))
	assert.True(t, spell.IsNumeric("1_000"))
	assert.False(t, spell.IsNumeric("x86"))
}

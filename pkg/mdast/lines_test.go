package mdast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/spellint/pkg/mdast"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []mdast.LineInfo
	}{
		{name: "empty", content: "", want: []mdast.LineInfo{}},
		{
			name:    "no trailing newline",
			content: "ab",
			want:    []mdast.LineInfo{{StartOffset: 0, NewlineStart: 2, EndOffset: 2}},
		},
		{
			name:    "lf",
			content: "a\nbc\n",
			want: []mdast.LineInfo{
				{StartOffset: 0, NewlineStart: 1, EndOffset: 2},
				{StartOffset: 2, NewlineStart: 4, EndOffset: 5},
				{StartOffset: 5, NewlineStart: 5, EndOffset: 5},
			},
		},
		{
			name:    "crlf",
			content: "a\r\nb",
			want: []mdast.LineInfo{
				{StartOffset: 0, NewlineStart: 1, EndOffset: 3},
				{StartOffset: 3, NewlineStart: 4, EndOffset: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, mdast.BuildLines([]byte(tt.content)))
		})
	}
}

func TestLineAt(t *testing.T) {
	t.Parallel()

	// "é" is two bytes but one column.
	file := mdast.NewFileSnapshot("doc.md", []byte("# Café teh\r\nsecond line\n"))

	tests := []struct {
		name     string
		offset   int
		wantLine int
		wantCol  int
	}{
		{name: "first byte", offset: 0, wantLine: 1, wantCol: 1},
		{name: "after multibyte rune", offset: 8, wantLine: 1, wantCol: 8},
		{name: "start of second line", offset: 13, wantLine: 2, wantCol: 1},
		{name: "end of content", offset: 25, wantLine: 3, wantCol: 1},
		{name: "negative", offset: -1},
		{name: "past end", offset: 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			line, col := file.LineAt(tt.offset)
			assert.Equal(t, tt.wantLine, line)
			assert.Equal(t, tt.wantCol, col)
		})
	}
}

func TestLineContent(t *testing.T) {
	t.Parallel()

	file := mdast.NewFileSnapshot("doc.md", []byte("naïve\r\nline two\n"))

	assert.Equal(t, 3, file.LineCount())
	assert.Equal(t, "naïve", string(file.LineContent(1)))
	assert.Equal(t, 5, file.LineWidth(1))
	assert.Equal(t, "line two", string(file.LineContent(2)))
	assert.Empty(t, file.LineContent(3))
	assert.Nil(t, file.LineContent(0))
	assert.Nil(t, file.LineContent(4))
}

func TestOffset(t *testing.T) {
	t.Parallel()

	file := mdast.NewFileSnapshot("doc.md", []byte("# Café teh\r\nsecond line\n"))

	tests := []struct {
		name   string
		line   int
		col    int
		want   int
		wantOK bool
	}{
		{name: "first column", line: 1, col: 1, want: 0, wantOK: true},
		{name: "after multibyte rune", line: 1, col: 8, want: 8, wantOK: true},
		{name: "end of line", line: 1, col: 11, want: 11, wantOK: true},
		{name: "past end of line", line: 1, col: 12},
		{name: "second line", line: 2, col: 3, want: 15, wantOK: true},
		{name: "zero column", line: 2, col: 0},
		{name: "no such line", line: 4, col: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := file.Offset(tt.line, tt.col)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			if ok {
				line, col := file.LineAt(got)
				assert.Equal(t, []int{tt.line, tt.col}, []int{line, col})
			}
		})
	}
}

package mdast

import (
	"bytes"
	"sort"
	"unicode/utf8"
)

// BuildLines indexes the lines of content. A "\r\n" pair counts as one line
// break. Content ending in a newline gets a final empty line; empty content
// has no lines.
func BuildLines(content []byte) []LineInfo {
	lines := make([]LineInfo, 0, bytes.Count(content, []byte{'\n'})+1)
	if len(content) == 0 {
		return lines
	}

	for start := 0; ; {
		nl := bytes.IndexByte(content[start:], '\n')
		if nl < 0 {
			return append(lines, LineInfo{StartOffset: start, NewlineStart: len(content), EndOffset: len(content)})
		}
		end := start + nl
		body := end
		if body > start && content[body-1] == '\r' {
			body--
		}
		lines = append(lines, LineInfo{StartOffset: start, NewlineStart: body, EndOffset: end + 1})
		start = end + 1
	}
}

// LineCount reports how many lines the file has.
func (f *FileSnapshot) LineCount() int { return len(f.Lines) }

// LineAt maps a byte offset to a 1-based line and a 1-based rune column.
// Offsets outside the content yield (0, 0).
func (f *FileSnapshot) LineAt(offset int) (line, col int) {
	if offset < 0 || offset > len(f.Content) || len(f.Lines) == 0 {
		return 0, 0
	}
	idx := sort.Search(len(f.Lines), func(i int) bool { return f.Lines[i].StartOffset > offset }) - 1
	start := f.Lines[idx].StartOffset
	return idx + 1, utf8.RuneCount(f.Content[start:offset]) + 1
}

// LineContent returns line n without its line break, or nil when n is out of range.
func (f *FileSnapshot) LineContent(n int) []byte {
	if n < 1 || n > len(f.Lines) {
		return nil
	}
	li := f.Lines[n-1]
	return f.Content[li.StartOffset:li.NewlineStart]
}

// LineWidth is the rune count of line n.
func (f *FileSnapshot) LineWidth(n int) int {
	return utf8.RuneCount(f.LineContent(n))
}

// Offset is the inverse of LineAt: the byte offset of a 1-based line and
// rune column. Column LineWidth+1 addresses the end of the line.
func (f *FileSnapshot) Offset(line, col int) (int, bool) {
	if line < 1 || line > len(f.Lines) || col < 1 {
		return 0, false
	}
	offset := f.Lines[line-1].StartOffset
	body := f.LineContent(line)
	for i := 1; i < col; i++ {
		if len(body) == 0 {
			return 0, false
		}
		_, size := utf8.DecodeRune(body)
		body = body[size:]
		offset += size
	}
	return offset, true
}

package lint

import (
	"bytes"
	"strings"

	"github.com/yaklabco/spellint/pkg/mdast"
)

// HeadingLevel returns 1 to 6 for a heading and 0 for anything else.
func HeadingLevel(n *mdast.Node) int {
	if h := headingAttrs(n); h != nil {
		return h.HeadingLevel
	}
	return 0
}

// IsSetextHeading reports whether a heading is underlined rather than hash-prefixed.
func IsSetextHeading(n *mdast.Node) bool {
	h := headingAttrs(n)
	return h != nil && h.Setext
}

// HeadingText is the plain text of a heading, or "" for other nodes.
func HeadingText(n *mdast.Node) string {
	if n == nil || n.Kind != mdast.NodeHeading {
		return ""
	}
	return mdast.TextContent(n)
}

func headingAttrs(n *mdast.Node) *mdast.BlockAttrs {
	if n == nil || n.Kind != mdast.NodeHeading {
		return nil
	}
	return n.Block
}

func codeAttrs(n *mdast.Node) *mdast.CodeBlockAttrs {
	if n == nil || n.Kind != mdast.NodeCodeBlock || n.Block == nil {
		return nil
	}
	return n.Block.CodeBlock
}

// CodeBlockInfo returns a fence's info string.
func CodeBlockInfo(n *mdast.Node) string {
	if c := codeAttrs(n); c != nil {
		return c.Info
	}
	return ""
}

// CodeBlockContent returns the code between the fences or the de-indented block.
func CodeBlockContent(n *mdast.Node) []byte {
	if c := codeAttrs(n); c != nil {
		return c.Content
	}
	return nil
}

// IsFencedCodeBlock is false for indented blocks and non-code nodes.
func IsFencedCodeBlock(n *mdast.Node) bool {
	c := codeAttrs(n)
	return c != nil && !c.Indented
}

func linkAttrs(n *mdast.Node) *mdast.LinkAttrs {
	if n == nil || n.Inline == nil {
		return nil
	}
	return n.Inline.Link
}

// LinkDestination is the URL of a link or image.
func LinkDestination(n *mdast.Node) string {
	if l := linkAttrs(n); l != nil {
		return l.Destination
	}
	return ""
}

// IsAutolink reports whether a link was written as <url> or a bare GFM URL.
func IsAutolink(n *mdast.Node) bool {
	l := linkAttrs(n)
	return l != nil && l.Autolink
}

// Line-based helpers.

// BlockLines returns the first and last 1-based lines a block occupies.
// A range that stops right after a newline does not count the following line.
func BlockLines(n *mdast.Node) (int, int, bool) {
	pos := n.SourcePosition()
	if !pos.IsValid() {
		return 0, 0, false
	}
	end := pos.EndLine
	if pos.EndColumn == 1 && end > pos.StartLine {
		end--
	}
	return pos.StartLine, end, true
}

// LineLength counts the runes of a 1-based line; a nil file has none.
func LineLength(file *mdast.FileSnapshot, n int) int {
	if file == nil {
		return 0
	}
	return file.LineWidth(n)
}

// IsBlankLine reports whether a line holds only whitespace. Missing lines are blank.
func IsBlankLine(file *mdast.FileSnapshot, n int) bool {
	return file == nil || len(bytes.TrimSpace(file.LineContent(n))) == 0
}

// StripContainerPrefix removes block quote markers from the start of a line so
// blank-line checks inside quotes see the quoted content.
func StripContainerPrefix(line []byte) []byte {
	trimmed := bytes.TrimLeft(line, " ")
	for len(trimmed) > 0 && trimmed[0] == '>' {
		trimmed = bytes.TrimLeft(trimmed[1:], " ")
	}
	return trimmed
}

// IsBlankInContainer reports whether a line is blank once quote markers are removed.
func IsBlankInContainer(file *mdast.FileSnapshot, lineNum int) bool {
	if file == nil || lineNum < 1 || lineNum > file.LineCount() {
		return true
	}
	return len(bytes.TrimSpace(StripContainerPrefix(file.LineContent(lineNum)))) == 0
}

// ColumnOf returns the 1-based rune column of a byte index within a line.
func ColumnOf(line []byte, byteIdx int) int {
	if byteIdx > len(line) {
		byteIdx = len(line)
	}
	return len([]rune(string(line[:byteIdx]))) + 1
}

// ExpectedActual formats a markdownlint-style detail string.
func ExpectedActual(expected, actual string) string {
	return "Expected: " + expected + "; Actual: " + actual
}

// Context formats a markdownlint-style context detail, truncating long text.
func Context(text string) string {
	const maxContext = 30
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) > maxContext {
		text = string(runes[:maxContext]) + "..."
	}
	return "Context: \"" + text + "\""
}

// Package spell extracts checkable prose from a parsed Markdown tree, locates
// each word in document coordinates and provides the shared spelling oracle.
package spell

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/spellint/pkg/mdast"
)

// ErrUnpositioned is returned by ExtractTextSegments when a text node has no
// recoverable position and ExtractOptions.SkipUnpositioned is false.
var ErrUnpositioned = errors.New("text node has no source position")

// TextSegment is one contiguous run of prose with the position of its first
// character. Text may contain newlines when the source node spans lines.
type TextSegment struct {
	Text  string
	Start mdast.Position
}

// ExtractOptions controls segment extraction.
type ExtractOptions struct {
	// SkipUnpositioned drops text nodes whose position cannot be recovered.
	// When false such a node fails the extraction with ErrUnpositioned.
	SkipUnpositioned bool
}

// DefaultExtractOptions returns the options used by the spelling pass.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{SkipUnpositioned: true}
}

// ExtractTextSegments walks root depth-first and returns the prose segments in
// document order. Code blocks and code spans are pruned with their subtrees.
func ExtractTextSegments(root *mdast.Node, opts ExtractOptions) ([]TextSegment, error) {
	var segments []TextSegment

	err := mdast.Walk(root, func(n *mdast.Node) error {
		if n.IsCode() {
			return mdast.SkipChildren
		}
		if n.Kind != mdast.NodeText {
			return nil
		}

		start, ok := n.StartPosition()
		if !ok {
			if opts.SkipUnpositioned {
				return nil
			}
			return fmt.Errorf("%w: %q", ErrUnpositioned, textOf(n))
		}

		segments = append(segments, TextSegment{
			Text:  blankEntities(string(n.Text())),
			Start: start,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return segments, nil
}

// entityRef matches named, decimal and hexadecimal character references.
var entityRef = regexp.MustCompile(`&(?:[A-Za-z][A-Za-z0-9]{1,31}|#[0-9]{1,7}|#[xX][0-9A-Fa-f]{1,6});`)

// blankEntities overwrites character references such as "&mdash;" with
// spaces, one per byte, so they are never read as words and the columns of
// the words after them do not move. A reference escaped as "\&" is text.
func blankEntities(text string) string {
	matches := entityRef.FindAllStringIndex(text, -1)
	if matches == nil {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, m := range matches {
		if m[0] > 0 && text[m[0]-1] == '\\' {
			continue
		}
		b.WriteString(text[last:m[0]])
		b.WriteString(strings.Repeat(" ", m[1]-m[0]))
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

func textOf(n *mdast.Node) []byte {
	if n.Inline == nil {
		return nil
	}
	return n.Inline.Text
}

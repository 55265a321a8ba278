package mdast_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/spellint/pkg/mdast"
)

// sampleTree builds "# Hi\n\nteh `code` end\n" by hand.
func sampleTree() (*mdast.FileSnapshot, map[string]*mdast.Node) {
	file := mdast.NewFileSnapshot("doc.md", []byte("# Hi\n\nteh `code` end\n"))

	doc := mdast.NewDocument()
	heading := mdast.NewNode(mdast.NodeHeading)
	title := textNode(2, 4, "Hi")
	para := mdast.NewNode(mdast.NodeParagraph)
	word := textNode(6, 10, "teh ")
	code := mdast.NewNode(mdast.NodeCodeSpan)
	code.Inline = &mdast.InlineAttrs{Text: []byte("code")}
	mdast.SetRange(code, 10, 16)
	tail := textNode(16, 20, " end")

	mdast.AppendChild(doc, heading)
	mdast.AppendChild(heading, title)
	mdast.AppendChild(doc, para)
	mdast.AppendChild(para, word)
	mdast.AppendChild(para, code)
	mdast.AppendChild(para, tail)

	mdast.SetRange(heading, 0, 4)
	mdast.SetRange(para, 6, 20)
	mdast.SetRange(doc, 0, len(file.Content))
	file.Root = doc
	mdast.SetFile(doc, file)

	return file, map[string]*mdast.Node{
		"doc": doc, "heading": heading, "title": title,
		"para": para, "word": word, "code": code, "tail": tail,
	}
}

func textNode(start, end int, text string) *mdast.Node {
	n := mdast.NewNode(mdast.NodeText)
	n.Inline = &mdast.InlineAttrs{Text: []byte(text)}
	mdast.SetRange(n, start, end)
	return n
}

func TestAppendChild_Links(t *testing.T) {
	t.Parallel()

	_, nodes := sampleTree()
	para := nodes["para"]

	assert.Same(t, nodes["word"], para.FirstChild)
	assert.Same(t, nodes["tail"], para.LastChild)
	assert.Same(t, nodes["code"], nodes["word"].Next)
	assert.Same(t, nodes["code"], nodes["tail"].Prev)
	assert.Same(t, para, nodes["code"].Parent)
	assert.Nil(t, nodes["word"].Prev)
	assert.Nil(t, nodes["tail"].Next)
}

func TestSetRange_Invalid(t *testing.T) {
	t.Parallel()

	n := mdast.NewNode(mdast.NodeText)
	mdast.SetRange(n, 5, 2)
	assert.Equal(t, mdast.NoRange, n.Range)

	mdast.SetRange(n, -1, 2)
	assert.False(t, n.Range.IsKnown())
}

func TestNodePositions(t *testing.T) {
	t.Parallel()

	file, nodes := sampleTree()

	pos, ok := nodes["word"].StartPosition()
	require.True(t, ok)
	assert.Equal(t, mdast.Position{Line: 3, Column: 1}, pos)

	sp := nodes["tail"].SourcePosition()
	assert.True(t, sp.IsValid())
	assert.Equal(t, mdast.SourcePosition{StartLine: 3, StartColumn: 11, EndLine: 3, EndColumn: 15}, sp)
	assert.Equal(t, "`code`", string(nodes["code"].Text()))

	detached := mdast.NewNode(mdast.NodeText)
	detached.File = file
	_, ok = detached.StartPosition()
	assert.False(t, ok)
	assert.Nil(t, detached.Text())
	assert.False(t, detached.SourcePosition().IsValid())
}

func TestWalk_OrderAndSkip(t *testing.T) {
	t.Parallel()

	_, nodes := sampleTree()

	var kinds []string
	err := mdast.Walk(nodes["doc"], func(n *mdast.Node) error {
		kinds = append(kinds, n.Kind.String())
		if n.Kind == mdast.NodeHeading {
			return mdast.SkipChildren
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"document", "heading", "paragraph", "text", "inlineCode", "text"}, kinds)
}

func TestWalk_StopsOnError(t *testing.T) {
	t.Parallel()

	_, nodes := sampleTree()
	boom := errors.New("boom")

	visited := 0
	err := mdast.Walk(nodes["doc"], func(n *mdast.Node) error {
		visited++
		if n.Kind == mdast.NodeParagraph {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 4, visited)
	assert.NoError(t, mdast.Walk(nil, func(*mdast.Node) error { return boom }))
}

func TestFindAndTextContent(t *testing.T) {
	t.Parallel()

	_, nodes := sampleTree()

	texts := mdast.FindByKind(nodes["doc"], mdast.NodeText)
	assert.Len(t, texts, 3)
	assert.Empty(t, mdast.FindByKind(nodes["doc"], mdast.NodeLink))

	assert.Equal(t, "teh  end", mdast.TextContent(nodes["para"]))
	assert.Equal(t, "Hi", mdast.TextContent(nodes["heading"]))
}

func TestNodeKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "inlineCode", mdast.NodeCodeSpan.String())
	assert.Equal(t, "softBreak", mdast.NodeSoftBreak.String())
	assert.Equal(t, "unknown", mdast.NodeKind(999).String())
	assert.True(t, mdast.NewNode(mdast.NodeCodeBlock).IsCode())
	assert.False(t, mdast.NewNode(mdast.NodeParagraph).IsCode())
}

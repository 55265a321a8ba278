package goldmark

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/yaklabco/spellint/pkg/mdast"
)

// mapper converts a goldmark AST into an mdast.Node tree.
type mapper struct {
	content []byte
}

// newMapper creates a new mapper for the given content.
func newMapper(content []byte) *mapper {
	return &mapper{content: content}
}

// mapDocument converts a goldmark document node to an mdast.Node tree.
func (m *mapper) mapDocument(gmDoc ast.Node) *mdast.Node {
	doc := mdast.NewDocument()
	m.mapChildren(gmDoc, doc)
	mdast.SetRange(doc, 0, len(m.content))
	return doc
}

// mapChildren maps all children of a goldmark node and appends them to parent.
//
// Consecutive goldmark text runs are folded into a single text node when their
// source is contiguous, or when they are joined by a soft line break and the
// continuation starts at column 1. Otherwise each run keeps its own span.
func (m *mapper) mapChildren(gmParent ast.Node, parent *mdast.Node) {
	var (
		open      *mdast.Node // text node that may still absorb the next run
		softBreak bool        // open ended with a soft line break
	)

	flushBreak := func() {
		if softBreak && open != nil {
			brk := mdast.NewNode(mdast.NodeSoftBreak)
			mdast.SetRange(brk, open.Range.EndOffset, m.lineEnd(open.Range.EndOffset))
			mdast.AppendChild(parent, brk)
		}
		softBreak = false
	}

	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		textNode, isText := child.(*ast.Text)
		if !isText {
			flushBreak()
			open = nil
			if mdNode := m.convert(child); mdNode != nil {
				mdast.AppendChild(parent, mdNode)
			}
			continue
		}

		seg := textNode.Segment
		switch {
		case open != nil && seg.Start == open.Range.EndOffset && !softBreak:
			m.extendText(open, seg.Stop)
		case open != nil && softBreak && m.joinsAcrossNewline(open.Range.EndOffset, seg.Start):
			m.extendText(open, seg.Stop)
			softBreak = false
		default:
			flushBreak()
			open = m.newText(seg.Start, seg.Stop)
			mdast.AppendChild(parent, open)
		}

		switch {
		case textNode.HardLineBreak():
			brk := mdast.NewNode(mdast.NodeHardBreak)
			mdast.SetRange(brk, seg.Stop, m.lineEnd(seg.Stop))
			mdast.AppendChild(parent, brk)
			open = nil
		case textNode.SoftLineBreak():
			softBreak = true
		}
	}

	flushBreak()
}

// newText creates a text node over content[start:stop].
func (m *mapper) newText(start, stop int) *mdast.Node {
	node := mdast.NewNode(mdast.NodeText)
	mdast.SetRange(node, start, stop)
	node.Inline = &mdast.InlineAttrs{}
	if node.Range.IsKnown() && stop <= len(m.content) {
		node.Inline.Text = m.content[start:stop]
	}
	return node
}

// extendText grows a text node so that it ends at stop.
func (m *mapper) extendText(node *mdast.Node, stop int) {
	node.Range.EndOffset = stop
	node.Inline.Text = m.content[node.Range.StartOffset:stop]
}

// joinsAcrossNewline reports whether the bytes between end and start are
// optional trailing blanks followed by exactly one line ending, with start at
// the beginning of the next line.
func (m *mapper) joinsAcrossNewline(end, start int) bool {
	if end < 0 || start <= end || start > len(m.content) {
		return false
	}

	gap := m.content[end:start]
	idx := 0
	for idx < len(gap) && (gap[idx] == ' ' || gap[idx] == '\t') {
		idx++
	}
	if idx < len(gap) && gap[idx] == '\r' {
		idx++
	}
	return idx == len(gap)-1 && gap[idx] == '\n'
}

// converter builds the mdast node for one goldmark node, children included.
type converter func(m *mapper, n ast.Node) *mdast.Node

var converters map[ast.NodeKind]converter

//nolint:gochecknoinits // the table refers back to mapChildren, which reads it
func init() {
	converters = map[ast.NodeKind]converter{
		ast.KindHeading:         (*mapper).heading,
		ast.KindParagraph:       (*mapper).paragraph,
		ast.KindTextBlock:       (*mapper).paragraph,
		ast.KindList:            (*mapper).list,
		ast.KindListItem:        container(mdast.NodeListItem, true),
		ast.KindBlockquote:      container(mdast.NodeBlockquote, true),
		ast.KindFencedCodeBlock: (*mapper).fencedCode,
		ast.KindCodeBlock:       (*mapper).indentedCode,
		ast.KindThematicBreak:   leaf(mdast.NodeThematicBreak),
		ast.KindHTMLBlock:       (*mapper).htmlBlock,
		ast.KindEmphasis:        (*mapper).emphasis,
		ast.KindCodeSpan:        (*mapper).codeSpan,
		ast.KindLink:            (*mapper).link,
		ast.KindImage:           (*mapper).link,
		ast.KindAutoLink:        (*mapper).autoLink,
		ast.KindRawHTML:         (*mapper).rawHTML,
		ast.KindString:          (*mapper).synthesized,
		east.KindStrikethrough:  container(mdast.NodeStrikethrough, false),
		east.KindTaskCheckBox:   leaf(mdast.NodeRaw),
		east.KindTable:          container(mdast.NodeTable, true),
		east.KindTableHeader:    container(mdast.NodeTableRow, false),
		east.KindTableRow:       container(mdast.NodeTableRow, false),
		east.KindTableCell:      container(mdast.NodeTableCell, false),
	}
}

// convert maps n through the converter table. Kinds without an entry become
// raw nodes spanning their children.
func (m *mapper) convert(n ast.Node) *mdast.Node {
	if conv, ok := converters[n.Kind()]; ok {
		return conv(m, n)
	}
	return container(mdast.NodeRaw, false)(m, n)
}

// container converts a node that only wraps its children. Its range is the
// union of theirs, widened to line start for block containers whose markers
// precede the content.
func container(kind mdast.NodeKind, wholeLine bool) converter {
	return func(m *mapper, n ast.Node) *mdast.Node {
		node := mdast.NewNode(kind)
		m.mapChildren(n, node)
		m.setChildrenRange(node)
		if wholeLine {
			m.extendToLineStart(node)
		}
		return node
	}
}

func leaf(kind mdast.NodeKind) converter {
	return func(*mapper, ast.Node) *mdast.Node { return mdast.NewNode(kind) }
}

func (m *mapper) paragraph(n ast.Node) *mdast.Node {
	node := mdast.NewNode(mdast.NodeParagraph)
	m.setLinesRange(node, n)
	m.mapChildren(n, node)
	return node
}

// synthesized maps text goldmark generated itself. It has no source span.
func (m *mapper) synthesized(n ast.Node) *mdast.Node {
	node := mdast.NewNode(mdast.NodeText)
	node.Inline = &mdast.InlineAttrs{Text: n.(*ast.String).Value}
	return node
}

// heading spans the whole heading line, or both lines of a setext heading.
func (m *mapper) heading(n ast.Node) *mdast.Node {
	h := n.(*ast.Heading)
	node := mdast.NewNode(mdast.NodeHeading)
	node.Block = &mdast.BlockAttrs{HeadingLevel: h.Level}
	m.mapChildren(h, node)

	lines := h.Lines()
	if lines.Len() == 0 {
		m.setChildrenRange(node)
		m.extendToLineStart(node)
		return node
	}

	start := m.lineStart(lines.At(0).Start)
	end := m.lineEnd(lines.At(lines.Len() - 1).Start)

	// A setext underline sits on the line after the text.
	if next := end + m.newlineWidth(end); !m.isATXLine(start) && next < len(m.content) && m.isSetextUnderline(next) {
		node.Block.Setext = true
		end = m.lineEnd(next)
	} else {
		// Only the closing sequence of an ATX heading may follow its text.
		end = m.lineEnd(lines.At(0).Start)
	}

	mdast.SetRange(node, start, end)
	return node
}

// isATXLine reports whether the line at offset opens with a # marker.
func (m *mapper) isATXLine(offset int) bool {
	pos := offset
	for pos < len(m.content) && pos-offset < 4 && m.content[pos] == ' ' {
		pos++
	}
	return pos < len(m.content) && m.content[pos] == '#'
}

// isSetextUnderline reports whether the line at offset is a run of = or -.
func (m *mapper) isSetextUnderline(offset int) bool {
	end := m.lineEnd(offset)
	pos := offset
	for pos < end && m.content[pos] == ' ' {
		pos++
	}
	if pos >= end || (m.content[pos] != '=' && m.content[pos] != '-') {
		return false
	}
	marker := m.content[pos]
	for pos < end && m.content[pos] == marker {
		pos++
	}
	for pos < end && (m.content[pos] == ' ' || m.content[pos] == '\t' || m.content[pos] == '\r') {
		pos++
	}
	return pos == end
}

func (m *mapper) list(n ast.Node) *mdast.Node {
	l := n.(*ast.List)
	attrs := &mdast.ListAttrs{Ordered: l.IsOrdered(), StartNumber: l.Start, Tight: l.IsTight}
	if !attrs.Ordered {
		attrs.BulletMarker = string(l.Marker)
	}
	node := container(mdast.NodeList, false)(m, n)
	node.Block = &mdast.BlockAttrs{List: attrs}
	return node
}

// linesValue concatenates the source of every line segment of n.
func (m *mapper) linesValue(n ast.Node) []byte {
	lines := n.Lines()
	var body []byte
	for i := range lines.Len() {
		seg := lines.At(i)
		body = append(body, seg.Value(m.content)...)
	}
	return body
}

// fencedCode spans the opening fence through the closing fence, if any.
func (m *mapper) fencedCode(n ast.Node) *mdast.Node {
	cb := n.(*ast.FencedCodeBlock)
	node := mdast.NewNode(mdast.NodeCodeBlock)
	attrs := &mdast.CodeBlockAttrs{FenceChar: '`', FenceLength: 3, Content: m.linesValue(cb)}
	node.Block = &mdast.BlockAttrs{CodeBlock: attrs}

	lines := cb.Lines()
	fenceLine := -1
	switch {
	case cb.Info != nil:
		attrs.Info = string(cb.Info.Segment.Value(m.content))
		fenceLine = m.lineStart(cb.Info.Segment.Start)
	case lines.Len() > 0:
		fenceLine = m.previousLineStart(m.lineStart(lines.At(0).Start))
	}
	if fenceLine < 0 {
		return node
	}

	attrs.FenceChar, attrs.FenceLength, _ = m.fenceAt(fenceLine)
	end := m.lineEnd(fenceLine)
	if lines.Len() > 0 {
		end = m.lineEnd(lines.At(lines.Len() - 1).Start)
	}
	if next := end + m.newlineWidth(end); next < len(m.content) && m.isClosingFence(next, attrs.FenceChar, attrs.FenceLength) {
		end = m.lineEnd(next)
	}
	mdast.SetRange(node, fenceLine, end)
	return node
}

// fenceAt reads the fence marker opening the line at offset. Lines that do
// not open with at least three backticks or tildes report a default fence
// with ok false.
func (m *mapper) fenceAt(offset int) (char byte, length int, ok bool) {
	if offset >= len(m.content) {
		return '`', 3, false
	}
	line := bytes.TrimLeft(m.content[offset:m.lineEnd(offset)], " \t")
	if len(line) == 0 || (line[0] != '`' && line[0] != '~') {
		return '`', 3, false
	}
	run := len(line) - len(bytes.TrimLeft(line, string(line[0])))
	return line[0], max(run, 3), run >= 3
}

// isClosingFence reports whether the line at offset closes a fence of char
// at least length long.
func (m *mapper) isClosingFence(offset int, char byte, length int) bool {
	c, n, ok := m.fenceAt(offset)
	return ok && c == char && n >= length
}

func (m *mapper) indentedCode(n ast.Node) *mdast.Node {
	node := mdast.NewNode(mdast.NodeCodeBlock)
	m.setLinesRange(node, n)
	m.extendToLineStart(node)
	node.Block = &mdast.BlockAttrs{CodeBlock: &mdast.CodeBlockAttrs{Indented: true, Content: m.linesValue(n)}}
	return node
}

// htmlBlock extends over the closure line, which goldmark keeps apart from
// the block's lines.
func (m *mapper) htmlBlock(n ast.Node) *mdast.Node {
	block := n.(*ast.HTMLBlock)
	node := mdast.NewNode(mdast.NodeHTMLBlock)
	m.setLinesRange(node, block)
	if !block.HasClosure() {
		return node
	}
	closure := block.ClosureLine
	switch {
	case !node.Range.IsKnown():
		mdast.SetRange(node, closure.Start, closure.Stop)
	case closure.Stop > node.Range.EndOffset:
		node.Range.EndOffset = closure.Stop
	}
	return node
}

// emphasis includes the delimiter runs around its children.
func (m *mapper) emphasis(n ast.Node) *mdast.Node {
	level := n.(*ast.Emphasis).Level
	kind := mdast.NodeEmphasis
	if level == 2 {
		kind = mdast.NodeStrong
	}
	node := container(kind, false)(m, n)
	node.Inline = &mdast.InlineAttrs{EmphasisLevel: level}
	m.expandDelimiters(node, level, '*', '_')
	return node
}

// codeSpan keeps the code as an attribute and has no text children, so
// spelling never sees it. The range includes the backtick runs.
func (m *mapper) codeSpan(n ast.Node) *mdast.Node {
	node := mdast.NewNode(mdast.NodeCodeSpan)

	var code []byte
	start, stop := -1, -1
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.Text:
			code = append(code, c.Segment.Value(m.content)...)
			if start < 0 {
				start = c.Segment.Start
			}
			start, stop = min(start, c.Segment.Start), max(stop, c.Segment.Stop)
		case *ast.String:
			code = append(code, c.Value...)
		}
	}
	if start >= 0 {
		for start > 0 && m.content[start-1] == '`' {
			start--
		}
		for stop < len(m.content) && m.content[stop] == '`' {
			stop++
		}
	}
	mdast.SetRange(node, start, stop)
	node.Inline = &mdast.InlineAttrs{Text: code}
	return node
}

// link handles both links and images; the range is widened back over "["
// or "![".
func (m *mapper) link(n ast.Node) *mdast.Node {
	kind, opening := mdast.NodeLink, "["
	var dest, title []byte
	switch l := n.(type) {
	case *ast.Link:
		dest, title = l.Destination, l.Title
	case *ast.Image:
		kind, opening = mdast.NodeImage, "!["
		dest, title = l.Destination, l.Title
	}
	node := container(kind, false)(m, n)
	node.Inline = &mdast.InlineAttrs{Link: &mdast.LinkAttrs{Destination: string(dest), Title: string(title)}}
	m.expandOpening(node, opening)
	return node
}

// autoLink gives its label an empty span, so the URL is never prose.
func (m *mapper) autoLink(n ast.Node) *mdast.Node {
	al := n.(*ast.AutoLink)
	node := mdast.NewNode(mdast.NodeLink)
	node.Inline = &mdast.InlineAttrs{Link: &mdast.LinkAttrs{Destination: string(al.URL(m.content)), Autolink: true}}

	label := mdast.NewNode(mdast.NodeText)
	label.Inline = &mdast.InlineAttrs{Text: al.Label(m.content)}
	mdast.AppendChild(node, label)
	return node
}

func (m *mapper) rawHTML(n ast.Node) *mdast.Node {
	node := mdast.NewNode(mdast.NodeHTMLInline)
	segs := n.(*ast.RawHTML).Segments
	if segs.Len() == 0 {
		return node
	}
	start, stop := segs.At(0).Start, segs.At(0).Stop
	for i := 1; i < segs.Len(); i++ {
		start, stop = min(start, segs.At(i).Start), max(stop, segs.At(i).Stop)
	}
	mdast.SetRange(node, start, stop)
	return node
}

// setLinesRange sets a block node's range from its goldmark line segments.
func (m *mapper) setLinesRange(node *mdast.Node, gmNode ast.Node) {
	lines := gmNode.Lines()
	if lines == nil || lines.Len() == 0 {
		return
	}
	mdast.SetRange(node, lines.At(0).Start, lines.At(lines.Len()-1).Stop)
}

// setChildrenRange derives a node's range from the union of its children.
func (m *mapper) setChildrenRange(node *mdast.Node) {
	start, stop := -1, -1
	for child := node.FirstChild; child != nil; child = child.Next {
		if !child.Range.IsKnown() {
			continue
		}
		if start == -1 || child.Range.StartOffset < start {
			start = child.Range.StartOffset
		}
		if child.Range.EndOffset > stop {
			stop = child.Range.EndOffset
		}
	}
	if start >= 0 {
		mdast.SetRange(node, start, stop)
	}
}

// extendToLineStart moves a block's start back over list markers,
// quote markers and indentation on its first line.
func (m *mapper) extendToLineStart(node *mdast.Node) {
	if !node.Range.IsKnown() {
		return
	}
	node.Range.StartOffset = m.lineStart(node.Range.StartOffset)
}

// expandDelimiters widens an inline range over matching delimiter runs.
func (m *mapper) expandDelimiters(node *mdast.Node, count int, chars ...byte) {
	if !node.Range.IsKnown() {
		return
	}
	start, stop := node.Range.StartOffset, node.Range.EndOffset
	if start < count || stop+count > len(m.content) {
		return
	}
	for _, char := range chars {
		if m.isRun(start-count, count, char) && m.isRun(stop, count, char) {
			mdast.SetRange(node, start-count, stop+count)
			return
		}
	}
}

// expandOpening widens an inline range back over an opening marker.
func (m *mapper) expandOpening(node *mdast.Node, marker string) {
	if !node.Range.IsKnown() {
		return
	}
	start := node.Range.StartOffset - len(marker)
	if start >= 0 && string(m.content[start:node.Range.StartOffset]) == marker {
		node.Range.StartOffset = start
	}
}

func (m *mapper) isRun(offset, count int, char byte) bool {
	for i := range count {
		if m.content[offset+i] != char {
			return false
		}
	}
	return true
}

// lineStart returns the offset of the first byte of the line containing offset.
func (m *mapper) lineStart(offset int) int {
	if offset > len(m.content) {
		offset = len(m.content)
	}
	for offset > 0 && m.content[offset-1] != '\n' {
		offset--
	}
	return offset
}

// lineEnd returns the offset of the line ending (or EOF) at or after offset.
func (m *mapper) lineEnd(offset int) int {
	for offset < len(m.content) && m.content[offset] != '\n' && m.content[offset] != '\r' {
		offset++
	}
	return offset
}

// newlineWidth returns the size of the line ending at offset (0, 1 or 2).
func (m *mapper) newlineWidth(offset int) int {
	switch {
	case offset >= len(m.content):
		return 0
	case m.content[offset] == '\r' && offset+1 < len(m.content) && m.content[offset+1] == '\n':
		return 2
	default:
		return 1
	}
}

// previousLineStart returns the start of the line before the line at offset.
func (m *mapper) previousLineStart(lineStart int) int {
	if lineStart == 0 {
		return -1
	}
	return m.lineStart(lineStart - 1)
}

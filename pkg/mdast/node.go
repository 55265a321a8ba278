package mdast

// NodeKind tells what a Node is.
type NodeKind uint16

const (
	NodeDocument NodeKind = iota

	// Blocks.
	NodeParagraph
	NodeHeading
	NodeList
	NodeListItem
	NodeBlockquote
	NodeCodeBlock
	NodeThematicBreak
	NodeHTMLBlock
	NodeTable
	NodeTableRow
	NodeTableCell

	// Inlines.
	NodeText
	NodeEmphasis
	NodeStrong
	NodeStrikethrough
	NodeCodeSpan
	NodeLink
	NodeImage
	NodeSoftBreak
	NodeHardBreak
	NodeHTMLInline

	// NodeRaw wraps goldmark nodes with no mdast counterpart.
	NodeRaw
)

// String returns the mdast type name, e.g. "inlineCode".
func (k NodeKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

//nolint:gochecknoglobals // read-only; names follow mdast
var kindNames = [...]string{
	NodeDocument:      "document",
	NodeParagraph:     "paragraph",
	NodeHeading:       "heading",
	NodeList:          "list",
	NodeListItem:      "listItem",
	NodeBlockquote:    "blockquote",
	NodeCodeBlock:     "code",
	NodeThematicBreak: "thematicBreak",
	NodeHTMLBlock:     "html",
	NodeTable:         "table",
	NodeTableRow:      "tableRow",
	NodeTableCell:     "tableCell",
	NodeText:          "text",
	NodeEmphasis:      "emphasis",
	NodeStrong:        "strong",
	NodeStrikethrough: "delete",
	NodeCodeSpan:      "inlineCode",
	NodeLink:          "link",
	NodeImage:         "image",
	NodeSoftBreak:     "softBreak",
	NodeHardBreak:     "break",
	NodeHTMLInline:    "htmlInline",
	NodeRaw:           "raw",
}

// Node is one element of a parsed document. Children form a doubly linked
// list between FirstChild and LastChild.
type Node struct {
	Kind NodeKind

	Parent, FirstChild, LastChild *Node
	Prev, Next                    *Node

	// Range is the byte span of the node in FileSnapshot.Content.
	// Both offsets are -1 when the parser could not recover a span.
	Range SourceRange

	// File is the snapshot the node was parsed from.
	File *FileSnapshot

	// At most one of Block and Inline is set, matching the kind.
	Block  *BlockAttrs
	Inline *InlineAttrs
}

// IsCode reports whether the node holds code that is never prose.
func (n *Node) IsCode() bool {
	return n.Kind == NodeCodeBlock || n.Kind == NodeCodeSpan
}

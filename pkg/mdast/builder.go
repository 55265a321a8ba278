package mdast

// NewNode creates a detached node of the given kind with no span.
func NewNode(kind NodeKind) *Node {
	return &Node{Kind: kind, Range: NoRange}
}

// NewDocument creates a new document root node.
func NewDocument() *Node {
	return NewNode(NodeDocument)
}

// AppendChild links child as the last child of parent. child must be
// detached.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}

	child.Parent = parent
	child.Prev = parent.LastChild
	child.Next = nil

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}
	parent.LastChild = child
}

// SetRange sets the byte span of n. An inverted or negative range clears it.
func SetRange(n *Node, start, end int) {
	if n == nil {
		return
	}
	if start < 0 || end < start {
		n.Range = NoRange
		return
	}
	n.Range = SourceRange{StartOffset: start, EndOffset: end}
}

// SetFile points node and all its descendants at file.
func SetFile(node *Node, file *FileSnapshot) {
	//nolint:errcheck,revive // the callback never fails
	Walk(node, func(child *Node) error {
		child.File = file
		return nil
	})
}

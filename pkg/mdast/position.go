package mdast

// SourceRange is a half-open byte range into FileSnapshot.Content.
type SourceRange struct {
	StartOffset int
	EndOffset   int
}

// NoRange marks a node whose span could not be recovered.
//
//nolint:gochecknoglobals // Immutable sentinel value.
var NoRange = SourceRange{StartOffset: -1, EndOffset: -1}

// IsKnown returns true if the range points into the content.
func (r SourceRange) IsKnown() bool {
	return r.StartOffset >= 0 && r.EndOffset >= r.StartOffset
}

// Position is a 1-based line and column. Columns count runes, not bytes.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// SourcePosition is a node's extent in line/column terms.
type SourcePosition struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// Start returns the start position.
func (sp SourcePosition) Start() Position {
	return Position{Line: sp.StartLine, Column: sp.StartColumn}
}

// IsValid returns true if both ends are set.
func (sp SourcePosition) IsValid() bool {
	return sp.StartLine > 0 && sp.StartColumn > 0 &&
		sp.EndLine > 0 && sp.EndColumn > 0
}

// HasPosition reports whether the node's location can be recovered.
func (n *Node) HasPosition() bool {
	return n.File != nil && n.Range.IsKnown() && n.Range.EndOffset <= len(n.File.Content)
}

// SourcePosition returns the line/column extent of n, or the zero value
// when n has no recoverable span.
func (n *Node) SourcePosition() SourcePosition {
	if !n.HasPosition() {
		return SourcePosition{}
	}

	startLine, startCol := n.File.LineAt(n.Range.StartOffset)
	endLine, endCol := n.File.LineAt(n.Range.EndOffset)

	return SourcePosition{
		StartLine:   startLine,
		StartColumn: startCol,
		EndLine:     endLine,
		EndColumn:   endCol,
	}
}

// StartPosition returns the position of the node's first character.
func (n *Node) StartPosition() (Position, bool) {
	sp := n.SourcePosition()
	if sp.StartLine == 0 {
		return Position{}, false
	}
	return sp.Start(), true
}

// Text returns the source bytes spanned by n, or nil without a span.
func (n *Node) Text() []byte {
	if !n.HasPosition() {
		return nil
	}
	return n.File.Content[n.Range.StartOffset:n.Range.EndOffset]
}

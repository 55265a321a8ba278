package mdast

// BlockAttrs holds attributes for block-level nodes.
type BlockAttrs struct {
	HeadingLevel int  // 1-6 for NodeHeading
	Setext       bool // underlined (=== / ---) heading

	List      *ListAttrs
	CodeBlock *CodeBlockAttrs
}

// ListAttrs holds attributes for NodeList.
type ListAttrs struct {
	Ordered      bool
	BulletMarker string // "-", "+" or "*" for bullet lists
	StartNumber  int
	Tight        bool
}

// CodeBlockAttrs holds attributes for NodeCodeBlock.
type CodeBlockAttrs struct {
	FenceChar   byte // '`' or '~'; zero for indented blocks
	FenceLength int
	Info        string
	Indented    bool
	Content     []byte
}

// InlineAttrs holds attributes for inline-level nodes.
type InlineAttrs struct {
	// Text is the source text of a NodeText, or the code of a NodeCodeSpan.
	Text []byte

	Link *LinkAttrs

	// EmphasisLevel is 1 for emphasis and 2 for strong.
	EmphasisLevel int
}

// LinkAttrs holds attributes for NodeLink and NodeImage.
type LinkAttrs struct {
	Destination string
	Title       string

	// Autolink is set for <https://...> and GFM bare-URL autolinks.
	Autolink bool
}

package lint

import "github.com/yaklabco/spellint/pkg/mdast"

// NodeCache groups a file's nodes by kind so each rule does not walk the
// tree again. One cache serves every rule run against the same file; it is
// not safe for concurrent use. The slices are shared and must not be
// modified.
type NodeCache struct {
	built bool

	headings    []*mdast.Node
	lists       []*mdast.Node
	codeBlocks  []*mdast.Node
	htmlBlocks  []*mdast.Node
	htmlInlines []*mdast.Node
	links       []*mdast.Node

	// codeLines marks lines inside code blocks, fences included.
	codeLines map[int]bool
}

// NewNodeCache creates an empty NodeCache for one file.
func NewNodeCache() *NodeCache {
	return &NodeCache{}
}

func (nc *NodeCache) build(root *mdast.Node) {
	if nc.built || root == nil {
		return
	}
	nc.built = true
	nc.codeLines = make(map[int]bool)

	//nolint:errcheck // the callback never fails
	mdast.Walk(root, func(node *mdast.Node) error {
		switch node.Kind {
		case mdast.NodeHeading:
			nc.headings = append(nc.headings, node)
		case mdast.NodeList:
			nc.lists = append(nc.lists, node)
		case mdast.NodeCodeBlock:
			nc.codeBlocks = append(nc.codeBlocks, node)
			if first, last, ok := BlockLines(node); ok {
				for line := first; line <= last; line++ {
					nc.codeLines[line] = true
				}
			}
		case mdast.NodeHTMLBlock:
			nc.htmlBlocks = append(nc.htmlBlocks, node)
		case mdast.NodeHTMLInline:
			nc.htmlInlines = append(nc.htmlInlines, node)
		case mdast.NodeLink:
			nc.links = append(nc.links, node)
		default:
		}
		return nil
	})
}

package mdast

import "errors"

// SkipChildren may be returned by a WalkFunc to continue the walk without
// descending into the current node's children.
//
//nolint:gochecknoglobals // Sentinel error, mirrors fs.SkipDir.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for each node visited by Walk.
type WalkFunc func(n *Node) error

// Walk visits root and its descendants in document order. An error other
// than SkipChildren stops the walk and is returned.
func Walk(root *Node, walkFunc WalkFunc) error {
	if root == nil {
		return nil
	}

	if err := walkFunc(root); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}

	for child := root.FirstChild; child != nil; child = child.Next {
		if err := Walk(child, walkFunc); err != nil {
			return err
		}
	}
	return nil
}

// FindAll returns all nodes matching the predicate, in document order.
func FindAll(root *Node, predicate func(n *Node) bool) []*Node {
	var result []*Node

	//nolint:errcheck,revive // the callback never fails
	Walk(root, func(node *Node) error {
		if predicate(node) {
			result = append(result, node)
		}
		return nil
	})

	return result
}

// FindByKind returns all nodes of the given kind.
func FindByKind(root *Node, kind NodeKind) []*Node {
	return FindAll(root, func(n *Node) bool { return n.Kind == kind })
}

// TextContent concatenates the text of n's text descendants. Code is
// skipped.
func TextContent(n *Node) string {
	var buf []byte

	//nolint:errcheck,revive // the callback only returns SkipChildren
	Walk(n, func(child *Node) error {
		if child.IsCode() {
			return SkipChildren
		}
		if child.Kind == NodeText && child.Inline != nil {
			buf = append(buf, child.Inline.Text...)
		}
		return nil
	})

	return string(buf)
}

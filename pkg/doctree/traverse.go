package doctree

// Walk visits n and its descendants in document order.
// Returning false from fn skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	// children may be extended during the walk; iterate a snapshot
	children := append([]*Node(nil), n.children...)
	for _, c := range children {
		c.Walk(fn)
	}
}

// Excluded reports whether n or any of its ancestors carries an excluded tag.
func (n *Node) Excluded() bool {
	for c := n; c != nil; c = c.parent {
		if c.Tags.Has(ExcludedTags) {
			return true
		}
	}
	return false
}

// TextNodes returns the text nodes eligible for validation, in document order.
// Subtrees under literal, raw, comment and excluded nodes are skipped.
func (n *Node) TextNodes() []*Node {
	var out []*Node
	if n.parent != nil && n.parent.Excluded() {
		return nil
	}
	n.Walk(func(c *Node) bool {
		if c.Tags.Has(ExcludedTags) {
			return false
		}
		if c.IsText() {
			out = append(out, c)
		}
		return true
	})
	return out
}

// EffectiveLine returns the node's own line, or the nearest ancestor's.
// It returns 0 when no node on the path has a line.
func (n *Node) EffectiveLine() int {
	for c := n; c != nil; c = c.parent {
		if c.Line > 0 {
			return c.Line
		}
	}
	return 0
}

// SourceBlock returns the nearest node, starting at n, that exposes raw source.
func (n *Node) SourceBlock() *Node {
	for c := n; c != nil; c = c.parent {
		if c.HasSource() {
			return c
		}
	}
	return nil
}

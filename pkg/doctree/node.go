// Package doctree is a small document tree that the linter walks.
//
// Nodes are not typed by a class hierarchy. Each node has a Kind for
// display and a set of capability Tags that decide how the linter treats it:
// any node tagged literal, raw, comment or excluded hides every text node
// below it from validation.
//
// Front ends (ParseText, ParseHTML) build trees from source files; hosts
// embedding the linter can build their own with New, NewText and Append.
package doctree

import (
	"strings"
)

// Kind names what a node represents in its source document.
type Kind string

// Node kinds produced by the bundled front ends.
const (
	KindDocument      Kind = "document"
	KindSection       Kind = "section"
	KindTitle         Kind = "title"
	KindParagraph     Kind = "paragraph"
	KindElement       Kind = "element"
	KindText          Kind = "text"
	KindLiteral       Kind = "literal"
	KindLiteralBlock  Kind = "literal_block"
	KindRaw           Kind = "raw"
	KindComment       Kind = "comment"
	KindTodo          Kind = "todo"
	KindSystemMessage Kind = "system_message"
)

// Tags is a bit set of node capabilities.
type Tags uint8

// Capability tags.
const (
	TagLiteral Tags = 1 << iota
	TagRaw
	TagComment
	TagExcluded
)

// ExcludedTags hides a subtree from validation when any of them is set.
const ExcludedTags = TagLiteral | TagRaw | TagComment | TagExcluded

// Has reports whether any tag in o is set.
func (t Tags) Has(o Tags) bool {
	return t&o != 0
}

// String lists the set tags, comma separated.
func (t Tags) String() string {
	var names []string
	for _, tn := range []struct {
		tag  Tags
		name string
	}{
		{TagLiteral, "literal"},
		{TagRaw, "raw"},
		{TagComment, "comment"},
		{TagExcluded, "excluded"},
	} {
		if t&tn.tag != 0 {
			names = append(names, tn.name)
		}
	}
	return strings.Join(names, ",")
}

// defaultTags maps kinds to the tags they always carry.
var defaultTags = map[Kind]Tags{
	KindLiteral:       TagLiteral,
	KindLiteralBlock:  TagLiteral,
	KindRaw:           TagRaw,
	KindComment:       TagComment,
	KindTodo:          TagExcluded,
	KindSystemMessage: TagExcluded,
}

// Node is one element of a document tree.
type Node struct {
	Kind Kind
	Tags Tags

	// Value is the content of a text node.
	Value string

	// Line is the 1-based source line, or 0 when unknown.
	Line int

	// Source is the raw, unprocessed source of a block-level node.
	Source string

	// Column is the 1-based column where Source starts on Line. Zero means
	// Source holds whole lines.
	Column int

	// Attrs holds free-form attributes (element tag, marker severity, ...).
	Attrs map[string]string

	parent   *Node
	children []*Node
}

// New creates a node of the given kind with its default tags plus extra.
func New(kind Kind, extra ...Tags) *Node {
	n := &Node{Kind: kind, Tags: defaultTags[kind]}
	for _, t := range extra {
		n.Tags |= t
	}
	return n
}

// NewDocument creates a document root named after its source.
func NewDocument(name string) *Node {
	n := New(KindDocument)
	n.SetAttr("source", name)
	return n
}

// NewText creates a text node.
func NewText(value string, line int) *Node {
	n := New(KindText)
	n.Value = value
	n.Line = line
	return n
}

// NewBlock creates a block-level node carrying its raw source.
func NewBlock(kind Kind, source string, line int) *Node {
	n := New(kind)
	n.Source = source
	n.Line = line
	return n
}

// Name returns the source name of the document this node belongs to.
func (n *Node) Name() string {
	return n.Root().Attr("source")
}

// Attr returns an attribute value or "".
func (n *Node) Attr(key string) string {
	if n.Attrs == nil {
		return ""
	}
	return n.Attrs[key]
}

// SetAttr sets an attribute and returns the node for chaining.
func (n *Node) SetAttr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
	return n
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child nodes. The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Root returns the topmost ancestor.
func (n *Node) Root() *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Append adds children to n and returns n.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		c.detach()
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// InsertAfter places sibling directly after n under n's parent.
// It returns false when n has no parent.
func (n *Node) InsertAfter(sibling *Node) bool {
	p := n.parent
	if p == nil {
		return false
	}
	sibling.detach()
	idx := p.indexOf(n)
	p.children = append(p.children, nil)
	copy(p.children[idx+2:], p.children[idx+1:])
	p.children[idx+1] = sibling
	sibling.parent = p
	return true
}

func (n *Node) indexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

func (n *Node) detach() {
	p := n.parent
	if p == nil {
		return
	}
	if i := p.indexOf(n); i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	n.parent = nil
}

// IsText reports whether n is a text-bearing leaf.
func (n *Node) IsText() bool {
	return n.Kind == KindText
}

// HasSource reports whether n exposes raw source text.
func (n *Node) HasSource() bool {
	return n.Source != ""
}

// Text returns the flattened text content of n.
func (n *Node) Text() string {
	if n.IsText() {
		return n.Value
	}
	var b strings.Builder
	n.Walk(func(c *Node) bool {
		if c.IsText() {
			b.WriteString(c.Value)
		}
		return true
	})
	return b.String()
}

package doctree

import (
	"sort"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

var markdown = goldmark.New(goldmark.WithParserOptions(
	parser.WithBlockParsers(util.Prioritized(containerParser{}, 50)),
))

// ParseText builds a tree from Markdown or plain text.
//
// Paragraphs and headings become blocks whose Source is the whole raw lines
// they span, so located columns are file columns. Inline code, autolinks,
// code blocks (fenced or indented), HTML and "::: todo" containers produce
// excluded subtrees. Emphasis and link markup are dropped from text nodes.
func ParseText(name string, src []byte) *Node {
	doc := NewDocument(name)
	s := strings.ReplaceAll(string(src), "\r\n", "\n")
	p := &mdBuilder{
		src:   []byte(s),
		lines: strings.Split(s, "\n"),
	}
	p.lineStarts = append(p.lineStarts, 0)
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			p.lineStarts = append(p.lineStarts, i+1)
		}
	}

	root := markdown.Parser().Parse(text.NewReader(p.src))
	p.children(root, doc)
	return doc
}

type mdBuilder struct {
	src        []byte
	lines      []string
	lineStarts []int

	// last source line claimed by a block
	lastLine int
}

// lineOf returns the 1-based line containing byte offset off.
func (p *mdBuilder) lineOf(off int) int {
	return sort.Search(len(p.lineStarts), func(i int) bool { return p.lineStarts[i] > off })
}

// span returns the first and last line covered by segs.
func (p *mdBuilder) span(segs *text.Segments) (first, last int, ok bool) {
	if segs == nil || segs.Len() == 0 {
		return 0, 0, false
	}
	head, tail := segs.At(0), segs.At(segs.Len()-1)
	end := tail.Stop - 1
	if end < tail.Start {
		end = tail.Start
	}
	return p.lineOf(head.Start), p.lineOf(end), true
}

// rawLines joins source lines first..last (1-based, inclusive).
func (p *mdBuilder) rawLines(first, last int) string {
	if first < 1 || last < first || first > len(p.lines) {
		return ""
	}
	if last > len(p.lines) {
		last = len(p.lines)
	}
	if last > p.lastLine {
		p.lastLine = last
	}
	return strings.Join(p.lines[first-1:last], "\n")
}

// sourceBlock creates a block whose Source is every line segs touch.
func (p *mdBuilder) sourceBlock(kind Kind, segs *text.Segments) *Node {
	first, last, ok := p.span(segs)
	if !ok {
		return New(kind)
	}
	return NewBlock(kind, p.rawLines(first, last), first)
}

func (p *mdBuilder) segmentText(segs *text.Segments) string {
	var b strings.Builder
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		b.Write(seg.Value(p.src))
	}
	return b.String()
}

func (p *mdBuilder) children(n ast.Node, parent *Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		p.block(c, parent)
	}
}

func (p *mdBuilder) block(n ast.Node, parent *Node) {
	switch n := n.(type) {
	case *ast.Heading:
		title := p.sourceBlock(KindTitle, n.Lines())
		title.SetAttr("level", strconv.Itoa(n.Level))
		title.Append(p.inlines(n)...)
		parent.Append(title)

	case *ast.Paragraph, *ast.TextBlock:
		para := p.sourceBlock(KindParagraph, n.Lines())
		para.Append(p.inlines(n)...)
		parent.Append(para)

	case *ast.FencedCodeBlock:
		parent.Append(p.fenced(n))

	case *ast.CodeBlock:
		block := p.sourceBlock(KindLiteralBlock, n.Lines())
		block.Append(NewText(strings.TrimSuffix(p.segmentText(n.Lines()), "\n"), block.Line))
		parent.Append(block)

	case *ast.HTMLBlock:
		parent.Append(p.htmlBlock(n))

	case *containerNode:
		kind := KindSection
		if strings.EqualFold(n.name, "todo") {
			kind = KindTodo
		}
		node := New(kind)
		node.Line = p.lineOf(n.offset)
		node.SetAttr("name", n.name)
		parent.Append(node)
		p.children(n, node)

	case *ast.List:
		tag := "ul"
		if n.IsOrdered() {
			tag = "ol"
		}
		p.element(n, parent, tag)

	case *ast.ListItem:
		p.element(n, parent, "li")

	case *ast.Blockquote:
		p.element(n, parent, "blockquote")

	default:
		p.children(n, parent)
	}
}

func (p *mdBuilder) element(n ast.Node, parent *Node, tag string) {
	el := New(KindElement)
	el.SetAttr("tag", tag)
	parent.Append(el)
	p.children(n, el)
}

func (p *mdBuilder) fenced(n *ast.FencedCodeBlock) *Node {
	first, last, hasBody := p.span(n.Lines())

	fence := 0
	switch {
	case n.Info != nil:
		fence = p.lineOf(n.Info.Segment.Start)
	case hasBody:
		fence = first - 1
	default:
		for i := p.lastLine; i < len(p.lines); i++ {
			if isFence(p.lines[i]) {
				fence = i + 1
				break
			}
		}
	}

	end := fence
	if hasBody {
		end = last
	}
	if end < len(p.lines) && isFence(p.lines[end]) {
		end++
	}

	block := NewBlock(KindLiteralBlock, p.rawLines(fence, end), fence)
	if lang := string(n.Language(p.src)); lang != "" {
		block.SetAttr("language", lang)
	}
	if hasBody {
		block.Append(NewText(strings.TrimSuffix(p.segmentText(n.Lines()), "\n"), first))
	}
	return block
}

func isFence(line string) bool {
	t := strings.TrimSpace(line)
	return strings.HasPrefix(t, "```") || strings.HasPrefix(t, "~~~")
}

func (p *mdBuilder) htmlBlock(n *ast.HTMLBlock) *Node {
	first, last, ok := p.span(n.Lines())
	if n.HasClosure() {
		closure := n.ClosureLine
		if end := p.lineOf(closure.Start); !ok || end > last {
			last = end
		}
		if !ok {
			first, ok = last, true
		}
	}
	if !ok {
		return New(KindRaw)
	}

	src := p.rawLines(first, last)
	trimmed := strings.TrimSpace(src)
	if strings.HasPrefix(trimmed, "<!--") {
		body := strings.TrimSuffix(strings.TrimPrefix(trimmed, "<!--"), "-->")
		node := NewBlock(KindComment, src, first)
		node.Append(NewText(strings.TrimSpace(body), first))
		return node
	}
	node := NewBlock(KindRaw, src, first)
	node.Append(NewText(src, first))
	return node
}

// inlines flattens inline content into text nodes. Adjacent text, including
// emphasis and link labels, merges into one node; line breaks stay as "\n".
// Text nodes carry no line of their own.
func (p *mdBuilder) inlines(n ast.Node) []*Node {
	var out []*Node
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			out = append(out, NewText(buf.String(), 0))
			buf.Reset()
		}
	}

	var walk func(ast.Node)
	walk = func(n ast.Node) {
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch c := c.(type) {
			case *ast.Text:
				buf.Write(c.Segment.Value(p.src))
				if c.SoftLineBreak() || c.HardLineBreak() {
					buf.WriteByte('\n')
				}
			case *ast.String:
				buf.Write(c.Value)
			case *ast.CodeSpan:
				flush()
				out = append(out, New(KindLiteral).Append(NewText(p.plain(c), 0)))
			case *ast.AutoLink:
				flush()
				out = append(out, New(KindLiteral).Append(NewText(string(c.Label(p.src)), 0)))
			case *ast.RawHTML:
				flush()
				out = append(out, New(KindRaw).Append(NewText(p.segmentText(c.Segments), 0)))
			default:
				walk(c)
			}
		}
	}
	walk(n)
	flush()
	return out
}

// plain returns the literal text under n.
func (p *mdBuilder) plain(n ast.Node) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(p.src))
		case *ast.String:
			b.Write(c.Value)
		}
	}
	return b.String()
}

// kindContainer is the goldmark node kind of "::: name" containers.
var kindContainer = ast.NewNodeKind("Container")

type containerNode struct {
	ast.BaseBlock
	name   string
	offset int
}

func (n *containerNode) Kind() ast.NodeKind { return kindContainer }

func (n *containerNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Name": n.name}, nil)
}

// containerParser opens a container on "::: name" and closes it on a bare ":::".
type containerParser struct{}

var containerFence = []byte(":::")

func (containerParser) Trigger() []byte { return []byte{':'} }

func (containerParser) Open(_ ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	if pc.BlockIndent() > 3 {
		return nil, parser.NoChildren
	}
	line, seg := reader.PeekLine()
	trimmed := strings.TrimSpace(string(line))
	if !strings.HasPrefix(trimmed, string(containerFence)) {
		return nil, parser.NoChildren
	}
	name := strings.TrimSpace(strings.TrimLeft(trimmed, ":"))
	if name == "" {
		return nil, parser.NoChildren
	}
	node := &containerNode{name: name, offset: seg.Start}
	reader.Advance(restOfLine(line, seg))
	return node, parser.HasChildren
}

func (containerParser) Continue(_ ast.Node, reader text.Reader, _ parser.Context) parser.State {
	line, seg := reader.PeekLine()
	if strings.TrimSpace(string(line)) == string(containerFence) {
		reader.Advance(restOfLine(line, seg))
		return parser.Close
	}
	return parser.Continue | parser.HasChildren
}

func (containerParser) Close(ast.Node, text.Reader, parser.Context) {}

func (containerParser) CanInterruptParagraph() bool { return true }

func (containerParser) CanAcceptIndentedLine() bool { return false }

// restOfLine is the advance that consumes a line up to its newline.
func restOfLine(line []byte, seg text.Segment) int {
	newline := 0
	if len(line) > 0 && line[len(line)-1] == '\n' {
		newline = 1
	}
	return seg.Stop - seg.Start - newline + seg.Padding
}

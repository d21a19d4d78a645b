package doctree

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

var (
	htmlSourceBlocks = map[string]Kind{
		"p": KindParagraph, "li": KindParagraph, "dt": KindParagraph, "dd": KindParagraph,
		"td": KindParagraph, "th": KindParagraph, "blockquote": KindParagraph,
		"caption": KindParagraph, "figcaption": KindParagraph,
		"h1": KindTitle, "h2": KindTitle, "h3": KindTitle,
		"h4": KindTitle, "h5": KindTitle, "h6": KindTitle,
	}
	htmlKinds = map[string]Kind{
		"code": KindLiteral, "kbd": KindLiteral, "samp": KindLiteral, "tt": KindLiteral, "var": KindLiteral,
		"pre":    KindLiteralBlock,
		"script": KindRaw, "style": KindRaw, "template": KindRaw,
	}
	htmlVoid = map[string]bool{
		"area": true, "base": true, "br": true, "col": true, "embed": true, "hr": true, "img": true,
		"input": true, "link": true, "meta": true, "param": true, "source": true, "track": true, "wbr": true,
	}
	// a new start tag of the same name implicitly closes these
	htmlAutoClose = map[string]bool{"p": true, "li": true, "dt": true, "dd": true, "td": true, "th": true}
)

type htmlFrame struct {
	tag  string
	node *Node
	src  *strings.Builder
}

type htmlParser struct {
	stack []*htmlFrame
	line  int
	col   int
}

// ParseHTML builds a tree from an HTML document.
//
// Paragraph-like elements keep their inner HTML as Source so diagnostics can
// be positioned. Code, pre, script, style, comments and elements with a
// "todo" class are excluded from validation.
func ParseHTML(name string, r io.Reader) (*Node, error) {
	doc := NewDocument(name)
	p := &htmlParser{stack: []*htmlFrame{{node: doc}}, line: 1, col: 1}
	z := html.NewTokenizer(r)

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("failed to parse %s: %w", name, err)
			}
			break
		}
		raw := string(z.Raw())
		tok := z.Token()
		line := p.line
		nextLine, nextCol := advance(p.line, p.col, raw)

		switch tt {
		case html.StartTagToken:
			if htmlAutoClose[tok.Data] && p.top().tag == tok.Data {
				p.pop()
			}
			p.appendRaw(raw)
			p.open(tok, line, nextLine, nextCol)
		case html.EndTagToken:
			p.close(tok.Data)
			p.appendRaw(raw)
		case html.TextToken:
			p.appendRaw(raw)
			if strings.TrimSpace(tok.Data) != "" {
				p.top().node.Append(NewText(tok.Data, line))
			}
		case html.CommentToken:
			p.appendRaw(raw)
			c := NewBlock(KindComment, raw, line)
			c.Append(NewText(tok.Data, line))
			p.top().node.Append(c)
		default:
			p.appendRaw(raw)
		}
		p.line, p.col = nextLine, nextCol
	}

	for len(p.stack) > 1 {
		p.pop()
	}
	return doc, nil
}

func (p *htmlParser) top() *htmlFrame {
	return p.stack[len(p.stack)-1]
}

func (p *htmlParser) appendRaw(raw string) {
	for _, f := range p.stack {
		if f.src != nil {
			f.src.WriteString(raw)
		}
	}
}

// advance returns the position just after raw when it starts at line:col.
func advance(line, col int, raw string) (int, int) {
	i := strings.LastIndexByte(raw, '\n')
	if i < 0 {
		return line, col + utf8.RuneCountInString(raw)
	}
	return line + strings.Count(raw, "\n"), utf8.RuneCountInString(raw[i+1:]) + 1
}

// open pushes an element. srcLine and srcCol locate the first byte after
// the start tag, where a source block's Source begins.
func (p *htmlParser) open(tok html.Token, line, srcLine, srcCol int) {
	tag := tok.Data
	if htmlVoid[tag] {
		return
	}
	kind, isBlock := htmlSourceBlocks[tag]
	if !isBlock {
		var ok bool
		if kind, ok = htmlKinds[tag]; !ok {
			kind = KindElement
		}
	}

	node := New(kind)
	node.Line = line
	node.SetAttr("tag", tag)
	for _, a := range tok.Attr {
		if a.Key == "class" && hasClass(a.Val, "todo") {
			node.Tags |= TagExcluded
			if kind == KindElement {
				node.Kind = KindTodo
			}
		}
	}

	f := &htmlFrame{tag: tag, node: node}
	if isBlock {
		f.src = &strings.Builder{}
		node.Line = srcLine
		node.Column = srcCol
	}
	p.top().node.Append(node)
	p.stack = append(p.stack, f)
}

// close pops frames up to the nearest open element named tag.
// Stray end tags are ignored.
func (p *htmlParser) close(tag string) {
	for i := len(p.stack) - 1; i > 0; i-- {
		if p.stack[i].tag == tag {
			for len(p.stack) > i {
				p.pop()
			}
			return
		}
	}
}

func (p *htmlParser) pop() {
	f := p.top()
	if f.src != nil {
		f.node.Source = f.src.String()
	}
	p.stack = p.stack[:len(p.stack)-1]
}

func hasClass(list, class string) bool {
	for _, c := range strings.Fields(list) {
		if strings.EqualFold(c, class) {
			return true
		}
	}
	return false
}

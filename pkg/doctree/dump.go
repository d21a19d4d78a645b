package doctree

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Dump writes an indented pseudo-XML rendering of the tree to w.
func Dump(w io.Writer, n *Node) error {
	return dump(w, n, 0)
}

func dump(w io.Writer, n *Node, depth int) error {
	indent := strings.Repeat("    ", depth)
	if n.IsText() {
		for _, line := range strings.Split(n.Value, "\n") {
			if _, err := fmt.Fprintf(w, "%s%s\n", indent, line); err != nil {
				return err
			}
		}
		return nil
	}

	var attrs []string
	if _, ok := n.Attrs["line"]; !ok && n.Line > 0 {
		attrs = append(attrs, fmt.Sprintf("line=%q", fmt.Sprint(n.Line)))
	}
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, fmt.Sprintf("%s=%q", k, n.Attrs[k]))
	}

	open := string(n.Kind)
	if len(attrs) > 0 {
		open += " " + strings.Join(attrs, " ")
	}
	if _, err := fmt.Fprintf(w, "%s<%s>\n", indent, open); err != nil {
		return err
	}
	for _, c := range n.children {
		if err := dump(w, c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

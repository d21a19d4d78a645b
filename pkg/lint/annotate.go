package lint

import (
	"strconv"

	"github.com/leapstack-labs/termlint/pkg/doctree"
)

// Annotate inserts one system_message marker per diagnostic as a sibling
// after the offending node and returns the number inserted.
//
// Markers for the same node follow diagnostic order. Diagnostics whose node
// has no parent are skipped. Markers are excluded from validation, so
// annotating before a second analysis does not produce new findings.
func Annotate(diags []Diagnostic) int {
	last := make(map[*doctree.Node]*doctree.Node)
	inserted := 0
	for _, d := range diags {
		if d.Node == nil || d.Node.Parent() == nil {
			continue
		}
		anchor := d.Node
		if prev, ok := last[d.Node]; ok {
			anchor = prev
		}
		marker := NewMarker(d)
		if anchor.InsertAfter(marker) {
			last[d.Node] = marker
			inserted++
		}
	}
	return inserted
}

// NewMarker builds the system_message node describing d.
func NewMarker(d Diagnostic) *doctree.Node {
	line := d.Line
	if d.Located() && d.Pos.Line > 0 {
		line = d.Pos.Line
	}

	summary := d.Summary()
	marker := doctree.New(doctree.KindSystemMessage)
	marker.Line = line
	marker.SetAttr("severity", d.Severity.String())
	marker.SetAttr("rule", d.RuleID)
	marker.SetAttr("message", summary)
	if line > 0 {
		marker.SetAttr("line", strconv.Itoa(line))
	}
	if d.Located() {
		marker.SetAttr("column", strconv.Itoa(d.Pos.Column))
	}
	marker.Append(doctree.NewText(summary, line))
	return marker
}

package lint

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
)

// InlineThreshold is the rune length below which both target and
// suggestion are rendered inline instead of as a diff.
const InlineThreshold = 20

// Summary returns the one-line "kind: target -> suggestion" form.
func (d Diagnostic) Summary() string {
	return fmt.Sprintf("%s: %s -> %s", d.Kind, d.Target, d.Suggestion)
}

// Render formats the diagnostic for the log sink.
//
// Short target and suggestion render as "kind: (target -> suggestion)"
// followed by the indented node text. Longer ones render as a unified diff.
func (d Diagnostic) Render() string {
	if utf8.RuneCountInString(d.Target) < InlineThreshold &&
		utf8.RuneCountInString(d.Suggestion) < InlineThreshold {
		return d.renderInline()
	}
	return d.renderDiff()
}

func (d Diagnostic) renderInline() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: (%s -> %s)", d.Kind, d.Target, d.Suggestion)
	if d.Node != nil {
		for _, line := range strings.Split(d.Node.Text(), "\n") {
			b.WriteString("\n    ")
			b.WriteString(line)
		}
	}
	return b.String()
}

func (d Diagnostic) renderDiff() string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(d.Target),
		B:        difflib.SplitLines(d.Suggestion),
		FromFile: "original",
		ToFile:   "suggested",
		Context:  3,
	})
	if err != nil {
		return d.Summary()
	}
	return d.Kind + ":\n" + strings.TrimRight(diff, "\n")
}

// Locate resolves the position of Target in the raw source of the nearest
// enclosing block and reports whether it was found.
//
// Columns on the first source line are shifted by the block's Column.
// Line always falls back to the node's own line or the nearest ancestor's.
// When the block source does not contain Target verbatim, Pos and EndPos
// stay unset.
func (d *Diagnostic) Locate() bool {
	d.Pos, d.EndPos = Position{}, Position{}
	if d.Node == nil {
		return false
	}
	d.Line = d.Node.EffectiveLine()

	block := d.Node.SourceBlock()
	if block == nil || d.Target == "" {
		return false
	}
	base := block.EffectiveLine()

	for i, line := range strings.Split(block.Source, "\n") {
		idx := strings.Index(line, d.Target)
		if idx < 0 {
			continue
		}
		col := utf8.RuneCountInString(line[:idx]) + 1
		if i == 0 && block.Column > 1 {
			col += block.Column - 1
		}
		lineNo := 0
		if base > 0 {
			lineNo = base + i
			d.Line = lineNo
		}
		d.Pos = Position{Line: lineNo, Column: col}
		d.EndPos = Position{Line: lineNo, Column: col + utf8.RuneCountInString(d.Target)}
		return true
	}
	return false
}

// Located reports whether Locate resolved a column position.
func (d Diagnostic) Located() bool {
	return d.Pos.IsValid()
}

// Location formats "path:line:col", "path:line" or "path:" for the sink.
func (d Diagnostic) Location(path string) string {
	switch {
	case d.Located() && d.Pos.Line > 0:
		return fmt.Sprintf("%s:%d:%d", path, d.Pos.Line, d.Pos.Column)
	case d.Line > 0:
		return fmt.Sprintf("%s:%d", path, d.Line)
	default:
		return path + ":"
	}
}

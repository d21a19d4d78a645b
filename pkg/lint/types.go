package lint

import (
	"github.com/leapstack-labs/termlint/pkg/core"
	"github.com/leapstack-labs/termlint/pkg/doctree"
)

// Position is a 1-based line and column. Columns count runes.
type Position struct {
	Line   int
	Column int
}

// IsValid reports whether the position has been resolved.
func (p Position) IsValid() bool {
	return p.Column > 0
}

// Diagnostic represents one detected issue.
type Diagnostic struct {
	RuleID   string
	Kind     string // rule name, e.g. "parenthesis"
	Severity core.Severity
	Message  string

	// Target is the offending text; Suggestion is its replacement or an instruction.
	Target     string
	Suggestion string

	// Node is the text node the issue was found in. Set by the Analyzer.
	Node *doctree.Node

	// Line is the best-effort line of the node, 0 when unknown.
	Line int

	Pos    Position // Start of Target in the enclosing block source
	EndPos Position // Exclusive end of Target

	DocumentationURL string
}

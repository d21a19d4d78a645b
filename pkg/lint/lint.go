package lint

import (
	"github.com/leapstack-labs/termlint/pkg/core"
	"github.com/leapstack-labs/termlint/pkg/lint/dictionary"
)

// RuleDef is a data-driven rule definition.
// Rules are stateless - all context comes via the Check function parameters.
type RuleDef struct {
	ID          string        // Unique identifier, e.g., "TV01"
	Name        string        // Rule kind, e.g., "half_width_katakana"
	Group       string        // Category, e.g., "width", "punctuation"
	Description string        // Human-readable description
	Severity    core.Severity // Documented default; Config.LogLevel applies at run time
	Check       CheckFunc     // The check function
	ConfigKeys  []string      // Configuration keys this rule accepts (for rule-specific options)

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Text showing the anti-pattern
	GoodExample string // Text showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// CheckFunc inspects the text of one node and returns diagnostics.
// The opts parameter contains rule-specific options from configuration.
type CheckFunc func(text string, env *Env, opts map[string]any) []Diagnostic

// Env carries per-document state shared by all rules.
type Env struct {
	// Dictionary is the NG word dictionary loaded for the current document.
	Dictionary *dictionary.Dictionary
}

// ConfigFlag returns the configuration switch that enables the rule.
func (r RuleDef) ConfigFlag() string {
	return "enable_" + r.Name
}

// Info extracts metadata for documentation/tooling.
func (r RuleDef) Info() core.RuleInfo {
	return core.RuleInfo{
		ID:              r.ID,
		Name:            r.Name,
		Group:           r.Group,
		Description:     r.Description,
		DefaultSeverity: r.Severity,
		ConfigKeys:      r.ConfigKeys,
		ConfigFlag:      r.ConfigFlag(),
		Rationale:       r.Rationale,
		BadExample:      r.BadExample,
		GoodExample:     r.GoodExample,
		Fix:             r.Fix,
	}
}

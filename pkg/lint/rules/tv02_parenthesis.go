package rules

import (
	"regexp"
	"strings"

	"github.com/leapstack-labs/termlint/pkg/core"
	"github.com/leapstack-labs/termlint/pkg/lint"
	"github.com/leapstack-labs/termlint/pkg/textwidth"
)

// Parenthesis flags half-width parentheses that enclose wide text.
var Parenthesis = lint.RuleDef{
	ID:          "TV02",
	Name:        "parenthesis",
	Group:       "width",
	Description: "Half-width parentheses include a wide string.",
	Severity:    core.SeverityWarning,
	Check:       checkParenthesis,
	Rationale:   "Parentheses around Japanese text should match the width of their content.",
	BadExample:  "設定ファイル(config.yaml)を開く(任意)",
	GoodExample: "設定ファイル(config.yaml)を開く（任意）",
}

var parenPattern = regexp.MustCompile(`\(([^)]*)\)`)

func checkParenthesis(text string, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, m := range parenPattern.FindAllStringSubmatch(text, -1) {
		term := m[1]
		if textwidth.IsNarrow(term) {
			continue
		}
		diags = append(diags, lint.Diagnostic{
			Target:     m[0],
			Suggestion: "（" + term + "）",
		})
	}
	return diags
}

// NormalizeParenthesis returns text with every half-width parenthesis pair
// around wide text replaced by fullwidth parentheses.
func NormalizeParenthesis(text string) string {
	fixed := text
	for _, d := range checkParenthesis(text, nil, nil) {
		fixed = strings.ReplaceAll(fixed, d.Target, d.Suggestion)
	}
	return fixed
}

package rules

import (
	"github.com/leapstack-labs/termlint/pkg/core"
	"github.com/leapstack-labs/termlint/pkg/lint"
)

// NGWords flags terms listed in the NG word dictionary.
var NGWords = lint.RuleDef{
	ID:          "TV06",
	Name:        "ng_words",
	Group:       "vocabulary",
	Description: "NG word found.",
	Severity:    core.SeverityWarning,
	Check:       checkNGWords,
	Rationale:   "House style discourages some words and phrasings; the dictionary lists them with a preferred alternative.",
	BadExample:  "これはペンだ。",
	GoodExample: "これはペンです。",
	Fix:         "Follow the suggestion recorded for the matching dictionary entry. Only the first match of each entry is reported.",
}

func checkNGWords(text string, env *lint.Env, _ map[string]any) []lint.Diagnostic {
	if text == "" || env == nil || env.Dictionary == nil {
		return nil
	}

	var diags []lint.Diagnostic
	for _, rule := range env.Dictionary.Rules {
		match, ok := rule.FindFirst(text)
		if !ok {
			continue
		}
		diags = append(diags, lint.Diagnostic{
			Target:     match,
			Suggestion: rule.Suggestion,
		})
	}
	return diags
}

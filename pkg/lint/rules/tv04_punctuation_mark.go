package rules

import (
	"regexp"

	"github.com/leapstack-labs/termlint/pkg/core"
	"github.com/leapstack-labs/termlint/pkg/lint"
	"github.com/leapstack-labs/termlint/pkg/textwidth"
)

// PunctuationMark flags ASCII periods and commas in Japanese text.
var PunctuationMark = lint.RuleDef{
	ID:          "TV04",
	Name:        "punctuation_mark",
	Group:       "punctuation",
	Description: "ASCII punctuation marks are found.",
	Severity:    core.SeverityWarning,
	Check:       checkPunctuationMark,
	Rationale:   "Japanese sentences end with 。 and separate clauses with 、.",
	BadExample:  "これはペンです. 次の文, です.",
	GoodExample: "これはペンです。次の文、です。",
	Fix:         "Decimal numbers such as 1.5 and 1,000 are not reported.",
}

type substitution struct {
	pattern *regexp.Regexp
	repl    string
}

// Order matters: each substitution must not re-match text rewritten by an
// earlier one. The character before the mark is part of the match.
var punctuationSubstitutions = []substitution{
	{regexp.MustCompile(`[^\p{Nd},.]\. `), "。"},
	{regexp.MustCompile(`[^\p{Nd},.]\.\n`), "。\n"},
	{regexp.MustCompile(`[^\p{Nd},.]\.$`), "。"},
	{regexp.MustCompile(`[^,.], `), "、"},
	{regexp.MustCompile(`[^,.],\n`), "、\n"},
	{regexp.MustCompile(`[^,.],$`), "、"},
}

func checkPunctuationMark(text string, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	fixed := NormalizePunctuation(text)
	if fixed == text {
		return nil
	}
	return []lint.Diagnostic{{Target: text, Suggestion: fixed}}
}

// NormalizePunctuation applies the period and comma substitutions.
// Empty and narrow text is returned unchanged.
func NormalizePunctuation(text string) string {
	if text == "" || textwidth.IsNarrow(text) {
		return text
	}
	for _, s := range punctuationSubstitutions {
		text = s.pattern.ReplaceAllLiteralString(text, s.repl)
	}
	return text
}

package rules

import "github.com/leapstack-labs/termlint/pkg/lint"

func init() {
	for _, rule := range All() {
		lint.Register(rule)
	}
}

// All returns the built-in rules in reporting order.
func All() []lint.RuleDef {
	return []lint.RuleDef{
		HalfWidthKatakana,
		Parenthesis,
		QuestionExclamation,
		PunctuationMark,
		SpaceInNumberOfUnit,
		NGWords,
	}
}

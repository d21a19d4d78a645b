package rules

import (
	"regexp"
	"strings"

	"github.com/leapstack-labs/termlint/pkg/core"
	"github.com/leapstack-labs/termlint/pkg/lint"
	"github.com/leapstack-labs/termlint/pkg/textwidth"
)

// QuestionExclamation flags half-width "!" and "?" following Japanese script.
var QuestionExclamation = lint.RuleDef{
	ID:          "TV03",
	Name:        "question_exclamation",
	Group:       "punctuation",
	Description: `Half-width "!" or "?" after a full-width character is found.`,
	Severity:    core.SeverityWarning,
	Check:       checkQuestionExclamation,
	Rationale:   "Marks following Japanese script are expected to be fullwidth.",
	BadExample:  "本当ですか?すごい!",
	GoodExample: "本当ですか？すごい！",
	Fix:         "The whole node is reported once, however many runs were rewritten.",
}

// hiragana, katakana with the prolonged sound mark, and common kanji
var wideMarkPattern = regexp.MustCompile(`[ぁ-んァ-ヶー一-龠]+[!?]+`)

var markWidener = strings.NewReplacer("!", "！", "?", "？")

func checkQuestionExclamation(text string, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	fixed := NormalizeQuestionExclamation(text)
	if fixed == text {
		return nil
	}
	return []lint.Diagnostic{{Target: text, Suggestion: fixed}}
}

// NormalizeQuestionExclamation widens the marks trailing each run of
// Japanese script. Narrow text is returned unchanged.
func NormalizeQuestionExclamation(text string) string {
	if textwidth.IsNarrow(text) {
		return text
	}
	return wideMarkPattern.ReplaceAllStringFunc(text, markWidener.Replace)
}

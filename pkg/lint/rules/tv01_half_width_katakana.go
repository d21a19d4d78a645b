package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/leapstack-labs/termlint/pkg/core"
	"github.com/leapstack-labs/termlint/pkg/lint"
)

// HalfWidthKatakana flags half-width katakana and fullwidth letters or digits.
var HalfWidthKatakana = lint.RuleDef{
	ID:          "TV01",
	Name:        "half_width_katakana",
	Group:       "width",
	Description: "Wide ASCII, wide numbers or half-width kana are found.",
	Severity:    core.SeverityWarning,
	Check:       checkHalfWidthKatakana,
	Rationale:   "Half-width katakana and fullwidth Latin letters or digits are legacy compatibility forms that render inconsistently and break search.",
	BadExample:  "ｶﾀｶﾅとＡＢＣ１２３",
	GoodExample: "カタカナとABC123",
	Fix:         "Replace the text with its NFKC form. Punctuation and symbols are left as written.",
}

func checkHalfWidthKatakana(text string, _ *lint.Env, _ map[string]any) []lint.Diagnostic {
	normalized := NormalizeWidth(text)
	if normalized == text {
		return nil
	}
	return []lint.Diagnostic{{Target: text, Suggestion: normalized}}
}

// NormalizeWidth applies NFKC to each letter and number of text and keeps
// every other rune, including invalid bytes, unchanged.
func NormalizeWidth(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		chunk := text[i : i+size]
		i += size

		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteString(norm.NFKC.String(chunk))
			continue
		}
		b.WriteString(chunk)
	}
	return b.String()
}

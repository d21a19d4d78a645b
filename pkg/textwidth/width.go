// Package textwidth measures how many terminal columns text occupies.
//
// Wide and fullwidth runes (East Asian Width W or F) count as two columns,
// combining marks as zero and everything else, including control characters,
// as one. Ambiguous-width runes are always narrow so results do not depend
// on the locale of the running process.
package textwidth

import (
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// condition is fixed instead of runewidth.DefaultCondition, which reads the locale.
var condition = &runewidth.Condition{
	EastAsianWidth:     false,
	StrictEmojiNeutral: true,
}

// IsWide reports whether r occupies two display columns.
func IsWide(r rune) bool {
	return condition.RuneWidth(r) == 2
}

// IsCombining reports whether r is a combining mark.
func IsCombining(r rune) bool {
	return unicode.In(r, unicode.Mn, unicode.Me)
}

// RuneWidth returns the display width of r: 0, 1 or 2.
func RuneWidth(r rune) int {
	switch {
	case IsCombining(r):
		return 0
	case IsWide(r):
		return 2
	default:
		return 1
	}
}

// ColumnWidth returns the display width of s.
func ColumnWidth(s string) int {
	width := 0
	for _, r := range s {
		width += RuneWidth(r)
	}
	return width
}

// IsNarrow reports whether the display width of s equals its rune count.
// Pure half-width text is narrow; text mixing in wide script is not.
func IsNarrow(s string) bool {
	return ColumnWidth(s) == utf8.RuneCountInString(s)
}

// Package rules provides the built-in term validation rules.
//
// Rules are registered in a fixed order, which is also the order their
// diagnostics are reported for a single node:
//   - TV01 half_width_katakana: NFKC-fold half-width kana and fullwidth alphanumerics
//   - TV02 parenthesis: half-width parentheses around wide text
//   - TV03 question_exclamation: half-width "!" and "?" after Japanese script
//   - TV04 punctuation_mark: ASCII "." and "," in Japanese text
//   - TV05 space_in_number_of_unit: missing space between a number and its unit
//   - TV06 ng_words: terms listed in the NG word dictionary
//
// To register all rules with the global lint registry, import this package
// with a blank identifier:
//
//	import _ "github.com/leapstack-labs/termlint/pkg/lint/rules"
package rules

package rules

import (
	"regexp"
	"strings"

	"github.com/leapstack-labs/termlint/pkg/core"
	"github.com/leapstack-labs/termlint/pkg/lint"
)

// SpaceInNumberOfUnit flags a number written directly against its unit.
var SpaceInNumberOfUnit = lint.RuleDef{
	ID:          "TV05",
	Name:        "space_in_number_of_unit",
	Group:       "spacing",
	Description: `Number of unit string needs a space before the unit, as in "12 Mbps".`,
	Severity:    core.SeverityWarning,
	Check:       checkSpaceInNumberOfUnit,
	ConfigKeys:  []string{"exempt_units"},
	Rationale:   "A space between a quantity and its unit keeps the unit readable.",
	BadExample:  "回線速度は 100Mbps です",
	GoodExample: "回線速度は 100 Mbps です",
	Fix:         "Insert a space. Units listed in exempt_units (default: html) are never reported.",
}

// SpaceInNumberOfUnitMessage is the suggestion attached to every finding.
const SpaceInNumberOfUnitMessage = "insert a space between the number and the unit"

var defaultExemptUnits = []string{"html"}

// delimiter, digits, letters, then a non-digit
var unitPattern = regexp.MustCompile(`([^\p{L}\p{N}_.%=()+\-])(\p{Nd}+)([A-Za-z]+)\P{Nd}`)

func checkSpaceInNumberOfUnit(text string, _ *lint.Env, opts map[string]any) []lint.Diagnostic {
	if text == "" {
		return nil
	}
	exempt := lint.GetStringSliceOption(opts, "exempt_units", defaultExemptUnits)

	var diags []lint.Diagnostic
	for _, m := range unitPattern.FindAllStringSubmatch(text, -1) {
		if isExemptUnit(m[3], exempt) {
			continue
		}
		diags = append(diags, lint.Diagnostic{
			Target:     m[1] + m[2] + m[3],
			Suggestion: SpaceInNumberOfUnitMessage,
		})
	}
	return diags
}

func isExemptUnit(unit string, exempt []string) bool {
	for _, e := range exempt {
		if strings.EqualFold(unit, e) {
			return true
		}
	}
	return false
}

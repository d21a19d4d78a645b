package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/termlint/pkg/lint"
	_ "github.com/leapstack-labs/termlint/pkg/lint/rules"
)

// groupDescriptions provides human-readable descriptions for rule groups.
var groupDescriptions = map[string]string{
	"width":       "Rules about full-width and half-width character forms.",
	"punctuation": "Rules about punctuation marks inside Japanese sentences.",
	"spacing":     "Rules about spacing between numbers and units.",
	"vocabulary":  "Rules driven by the NG word dictionary.",
}

// groupOrder is the order groups appear on the index page.
var groupOrder = []string{"width", "punctuation", "spacing", "vocabulary"}

// generateLintDocs writes index.md plus one page per rule. Page names follow
// lint.BuildDocURL so documentation links resolve against the output directory.
func generateLintDocs(outDir string) error {
	log.Printf("Generating rule docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	rules := lint.GetAll()

	if err := generateLintIndex(outDir, rules); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	for _, rule := range rules {
		w := NewMarkdownWriter()
		w.Frontmatter(rule.ID+" "+rule.Name, cleanDescription(rule.Description))
		w.GeneratedMarker()
		writeRuleDoc(w, rule)

		name := strings.ToLower(rule.ID) + ".md"
		if err := os.WriteFile(filepath.Join(outDir, name), w.Bytes(), 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		log.Printf("  Generated %s", name)
	}

	return nil
}

// generateLintIndex generates the rule overview page.
func generateLintIndex(outDir string, rules []lint.RuleDef) error {
	w := NewMarkdownWriter()

	w.Frontmatter("Lint Rules", "Japanese notation rules checked by termlint")
	w.GeneratedMarker()

	w.Header(1, "Lint Rules")
	w.Paragraph(fmt.Sprintf("termlint checks **%d rules**. Every finding is reported at the configured `log_level` unless a per-rule severity overrides it.", len(rules)))

	w.Header(2, "Configuration")
	w.Paragraph("Rules are switched on and off in `termlint.yaml`:")
	w.CodeBlock("yaml", `enable_ng_words: false        # disable a rule
log_level: warning            # severity of every finding
severity:
  TV02: error                 # override one rule
rules:
  TV05:
    exempt_units: [html, px]  # rule-specific option`)

	grouped := make(map[string][]lint.RuleDef)
	for _, r := range rules {
		grouped[r.Group] = append(grouped[r.Group], r)
	}

	for _, group := range groupOrder {
		groupRules := grouped[group]
		if len(groupRules) == 0 {
			continue
		}

		w.Header(2, capitalizeFirst(group))
		if desc, ok := groupDescriptions[group]; ok {
			w.Paragraph(desc)
		}

		var rows [][]string
		for _, r := range groupRules {
			rows = append(rows, []string{
				fmt.Sprintf("[%s](%s)", r.ID, strings.ToLower(r.ID)),
				InlineCode(r.ConfigFlag()),
				cleanDescription(r.Description),
			})
		}
		w.Table([]string{"Rule", "Switch", "Description"}, rows)
	}

	return os.WriteFile(filepath.Join(outDir, "index.md"), w.Bytes(), 0600)
}

// capitalizeFirst capitalizes the first letter of a string.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// writeRuleDoc writes detailed documentation for a single rule.
func writeRuleDoc(w *MarkdownWriter, rule lint.RuleDef) {
	w.Header(1, fmt.Sprintf("%s - %s", rule.ID, rule.Name))

	w.Line(fmt.Sprintf("**Group:** %s", rule.Group))
	w.Line(fmt.Sprintf("**Switch:** %s", InlineCode(rule.ConfigFlag())))
	w.Newline()

	w.Paragraph(cleanDescription(rule.Description))

	if rule.Rationale != "" {
		w.Header(2, "Why This Matters")
		w.Paragraph(rule.Rationale)
	}

	if rule.BadExample != "" {
		w.Header(2, "Bad")
		w.CodeBlock("text", rule.BadExample)
	}

	if rule.GoodExample != "" {
		w.Header(2, "Good")
		w.CodeBlock("text", rule.GoodExample)
	}

	if rule.Fix != "" {
		w.Header(2, "How to Fix")
		w.Paragraph(rule.Fix)
	}

	if len(rule.ConfigKeys) > 0 {
		w.Header(2, "Configuration")
		w.Paragraph(fmt.Sprintf("This rule accepts the following options under `rules.%s`: %s",
			rule.ID, InlineCode(strings.Join(rule.ConfigKeys, ", "))))
	}
}

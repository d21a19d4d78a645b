package commands

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/termlint/internal/cli/output"
	"github.com/leapstack-labs/termlint/pkg/core"
	"github.com/leapstack-labs/termlint/pkg/lint"
	_ "github.com/leapstack-labs/termlint/pkg/lint/rules" // register built-in rules
	"github.com/spf13/cobra"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group   string // Filter by group
	Verbose bool   // Show full documentation
	Format  string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available lint rules",
		Long: `List all available lint rules with their documentation.

Rules run in a fixed order (TV01 to TV06) and are grouped by concern
(width, punctuation, spacing, vocabulary). Each rule can be switched off
with its enable_<name> key in termlint.yaml.

Output adapts to environment:
  - Terminal: Table with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # List all rules
  termlint rules

  # Show details for a specific rule, by ID or name
  termlint rules TV05
  termlint rules ng_words

  # List rules in the punctuation group
  termlint rules --group punctuation

  # Output as JSON
  termlint rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	r := NewCommandContext(cmd, opts.Format).Renderer

	// Registration order is the execution order, so no sorting here.
	rules := lint.AllRules()
	if opts.Group != "" {
		var filtered []core.RuleInfo
		for _, rule := range rules {
			if rule.Group == opts.Group {
				filtered = append(filtered, rule)
			}
		}
		rules = filtered
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return listRulesJSON(r, rules)
	case output.ModeMarkdown:
		return listRulesMarkdown(r, rules, opts.Verbose)
	default:
		return listRulesText(r, rules, opts.Verbose)
	}
}

func showRule(cmd *cobra.Command, idOrName string, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	r := cmdCtx.Renderer

	def, ok := lint.DefaultRegistry().Lookup(idOrName)
	if !ok {
		def, ok = lint.DefaultRegistry().Lookup(strings.ToUpper(idOrName))
	}
	if !ok {
		return fmt.Errorf("rule %q not found", idOrName)
	}
	rule := def.Info()
	docURL := lint.BuildDocURL(cmdCtx.Cfg.DocsBaseURL, rule.ID)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(struct {
			core.RuleInfo
			DocumentationURL string `json:"documentation_url"`
		}{rule, docURL})
	case output.ModeMarkdown:
		return showRuleMarkdown(r, &rule, docURL)
	default:
		return showRuleText(r, &rule, docURL)
	}
}

// listRulesText outputs rules as a table.
func listRulesText(r *output.Renderer, rules []core.RuleInfo, verbose bool) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Lint Rules (%d)", len(rules))))
	r.Println("")

	header := []string{"ID", "Name", "Group", "Severity", "Config"}
	if verbose {
		header = append(header, "Description")
	}
	rows := make([][]string, 0, len(rules))
	for _, rule := range rules {
		row := []string{rule.ID, rule.Name, rule.Group, rule.DefaultSeverity.String(), rule.ConfigFlag}
		if verbose {
			row = append(row, rule.Description)
		}
		rows = append(rows, row)
	}
	r.Table(header, rows)

	r.Println("")
	r.Println(styles.Muted.Render("Use 'termlint rules <rule-id>' for detailed documentation"))
	r.Println("")

	return nil
}

// listRulesMarkdown outputs rules in markdown format.
func listRulesMarkdown(r *output.Renderer, rules []core.RuleInfo, verbose bool) error {
	r.Println("# Lint Rules")
	r.Println("")

	currentGroup := ""
	for _, rule := range rules {
		if rule.Group != currentGroup {
			if currentGroup != "" {
				r.Println("")
			}
			currentGroup = rule.Group
			r.Println("## " + capitalizeFirst(currentGroup))
			r.Println("")
		}

		r.Printf("- **%s** - %s (`%s`)\n", rule.ID, rule.Name, rule.DefaultSeverity.String())
		if verbose {
			r.Println("  " + rule.Description)
			if rule.Rationale != "" {
				r.Println("  > " + rule.Rationale)
			}
		}
	}

	r.Println("")
	return nil
}

// RulesJSONOutput is the JSON output structure for rules listing.
type RulesJSONOutput struct {
	Rules []core.RuleInfo `json:"rules"`
	Count int             `json:"count"`
}

func listRulesJSON(r *output.Renderer, rules []core.RuleInfo) error {
	if rules == nil {
		rules = []core.RuleInfo{}
	}
	return r.JSON(RulesJSONOutput{Rules: rules, Count: len(rules)})
}

// showRuleText displays detailed rule info in text format.
func showRuleText(r *output.Renderer, rule *core.RuleInfo, docURL string) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("%s - %s", rule.ID, rule.Name)))
	r.Println("")

	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), rule.Group)
	r.Printf("  %s: %s\n", styles.Bold.Render("Severity"), rule.DefaultSeverity.String())
	r.Printf("  %s: %s\n", styles.Bold.Render("Switch"), rule.ConfigFlag)
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println(styles.Bold.Render("Why This Matters"))
		r.Println("  " + rule.Rationale)
		r.Println("")
	}

	if rule.BadExample != "" {
		r.Println(styles.Bold.Render("Bad Example"))
		for _, line := range strings.Split(rule.BadExample, "\n") {
			r.Println(styles.Muted.Render("  " + line))
		}
		r.Println("")
	}

	if rule.GoodExample != "" {
		r.Println(styles.Bold.Render("Good Example"))
		for _, line := range strings.Split(rule.GoodExample, "\n") {
			r.Println(styles.Success.Render("  " + line))
		}
		r.Println("")
	}

	if rule.Fix != "" {
		r.Println(styles.Bold.Render("How to Fix"))
		r.Println("  " + rule.Fix)
		r.Println("")
	}

	if len(rule.ConfigKeys) > 0 {
		r.Println(styles.Bold.Render("Configuration"))
		r.Printf("  Options: %s\n", strings.Join(rule.ConfigKeys, ", "))
		r.Println("")
	}

	r.Println(styles.Muted.Render(docURL))
	return nil
}

// showRuleMarkdown displays detailed rule info in markdown format.
func showRuleMarkdown(r *output.Renderer, rule *core.RuleInfo, docURL string) error {
	r.Printf("# %s - %s\n\n", rule.ID, rule.Name)
	r.Printf("**Group:** %s | **Severity:** `%s` | **Switch:** `%s`\n\n", rule.Group, rule.DefaultSeverity.String(), rule.ConfigFlag)
	r.Println(rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println("## Why This Matters")
		r.Println("")
		r.Println(rule.Rationale)
		r.Println("")
	}

	if rule.BadExample != "" {
		r.Println("## Bad Example")
		r.Println("")
		r.Println(output.FormatCodeBlock("text", rule.BadExample))
		r.Println("")
	}

	if rule.GoodExample != "" {
		r.Println("## Good Example")
		r.Println("")
		r.Println(output.FormatCodeBlock("text", rule.GoodExample))
		r.Println("")
	}

	if rule.Fix != "" {
		r.Println("## How to Fix")
		r.Println("")
		r.Println(rule.Fix)
		r.Println("")
	}

	if len(rule.ConfigKeys) > 0 {
		r.Println("## Configuration")
		r.Println("")
		r.Printf("Options: `%s`\n", strings.Join(rule.ConfigKeys, "`, `"))
		r.Println("")
	}

	r.Printf("[Documentation](%s)\n", docURL)
	return nil
}

// capitalizeFirst capitalizes the first letter of a string.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

package commands

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/leapstack-labs/termlint/internal/cli/config"
	"github.com/leapstack-labs/termlint/internal/cli/output"
	"github.com/leapstack-labs/termlint/pkg/core"
	"github.com/leapstack-labs/termlint/pkg/lint"
	_ "github.com/leapstack-labs/termlint/pkg/lint/rules" // register built-in rules
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// ErrLintIssues is returned by lint when any diagnostic is reported.
var ErrLintIssues = errors.New("lint issues found")

// LintOptions holds options for the lint command.
type LintOptions struct {
	Format   string   // Output format: text, markdown, json
	Disable  []string // Rule IDs or names to disable
	Severity string   // Minimum severity: error, warning, info, hint
	Rules    []string // Run only specific rules
	Include  []string // Globs overriding the configured include list
	Exclude  []string // Globs overriding the configured exclude list
	Watch    bool     // Re-lint documents when they change
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Check Japanese documents for term and notation issues",
		Long: `Analyze Markdown, plain text and HTML documents for notation issues.

Six rules run on every text node outside code, comments and todo blocks:
half-width katakana, half-width parentheses, ASCII ?/!, ASCII punctuation,
missing number/unit spacing and NG words from a dictionary. Rules can be
configured in termlint.yaml.

Directories are expanded with the include/exclude globs. Use - to read a
document from standard input.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Lint every document under the current directory
  termlint lint

  # Lint specific files
  termlint lint README.md docs/guide.html

  # Output as JSON
  termlint lint --format json

  # Disable specific rules
  termlint lint --disable TV02,ng_words

  # Only run the NG word rule with a custom dictionary
  termlint lint --rule TV06 --dictionary ./ng.dic

  # Re-lint on save
  termlint lint docs --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs or names to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", "", "Minimum severity to report: error, warning, info, hint")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().StringSliceVar(&opts.Include, "include", nil, "Globs selecting documents inside directories")
	cmd.Flags().StringSliceVar(&opts.Exclude, "exclude", nil, "Globs skipped during discovery")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Watch documents and re-lint on change")

	_ = cmd.RegisterFlagCompletionFunc("severity", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"error", "warning", "info", "hint"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runLint(cmd *cobra.Command, args []string, opts *LintOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	if opts.Severity != "" {
		if _, ok := core.ParseSeverity(opts.Severity); !ok {
			return fmt.Errorf("invalid --severity %q", opts.Severity)
		}
	}

	lintCfg, err := buildLintConfig(cfg, opts)
	if err != nil {
		return err
	}

	include, exclude := cfg.Include, cfg.Exclude
	if len(opts.Include) > 0 {
		include = opts.Include
	}
	if len(opts.Exclude) > 0 {
		exclude = opts.Exclude
	}
	docs, err := discoverDocuments(args, include, exclude)
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("discovered documents", "count", len(docs))

	analyzer := lint.NewAnalyzer(lintCfg, cmdCtx.DiagnosticSink())

	if opts.Watch {
		return watchDocuments(cmd, cmdCtx, analyzer, docs, opts.Severity)
	}

	results, err := lintDocuments(cmd, analyzer, docs, cfg.Jobs)
	if err != nil {
		return err
	}
	results = filterBySeverity(results, opts.Severity)

	if renderLintResults(r, results, len(docs), cfg.Verbose) {
		return ErrLintIssues
	}
	return nil
}

func buildLintConfig(cfg *config.Config, opts *LintOptions) (*lint.Config, error) {
	// Project config first (lower precedence)
	lintCfg, err := cfg.ToLintConfig(lint.DefaultRegistry())
	if err != nil {
		return nil, err
	}

	// CLI overrides (higher precedence)
	for _, id := range opts.Disable {
		lintCfg.Disable(strings.TrimSpace(id))
	}

	// If --rule specified, disable all others
	if len(opts.Rules) > 0 {
		enabledSet := make(map[string]bool)
		for _, id := range opts.Rules {
			rule, ok := lint.DefaultRegistry().Lookup(strings.TrimSpace(id))
			if !ok {
				return nil, fmt.Errorf("unknown rule %q", id)
			}
			enabledSet[rule.ID] = true
		}
		for _, rule := range lint.GetAll() {
			if !enabledSet[rule.ID] {
				lintCfg.Disable(rule.ID)
			}
		}
	}

	return lintCfg, nil
}

// lintFileResult holds lint results for a single document.
type lintFileResult struct {
	Path        string
	Diagnostics []lint.Diagnostic
}

// lintDocuments analyzes docs in parallel, at most jobs at a time.
// Results come back sorted by path. The first failure cancels the rest.
func lintDocuments(cmd *cobra.Command, analyzer *lint.Analyzer, docs []string, jobs int) ([]lintFileResult, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	results := make([]lintFileResult, len(docs))
	for i, path := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			root, err := parseDocument(cmd, path)
			if err != nil {
				return err
			}
			diags, err := analyzer.AnalyzeDocument(path, root)
			if err != nil {
				return err
			}
			results[i] = lintFileResult{Path: path, Diagnostics: diags}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Sort results by path for consistent output
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})
	return results, nil
}

// filterBySeverity drops diagnostics less severe than the threshold.
// An empty threshold keeps everything.
func filterBySeverity(results []lintFileResult, severityThreshold string) []lintFileResult {
	threshold, ok := core.ParseSeverity(severityThreshold)
	if !ok {
		threshold = core.SeverityHint
	}

	var filtered []lintFileResult
	for _, r := range results {
		var diags []lint.Diagnostic
		for _, d := range r.Diagnostics {
			if d.Severity <= threshold {
				diags = append(diags, d)
			}
		}
		if len(diags) > 0 {
			filtered = append(filtered, lintFileResult{
				Path:        r.Path,
				Diagnostics: diags,
			})
		}
	}
	return filtered
}

func summarize(results []lintFileResult, analyzed int) output.LintSummary {
	summary := output.LintSummary{
		FilesAnalyzed: analyzed,
	}
	for _, res := range results {
		summary.TotalIssues += len(res.Diagnostics)
		for _, d := range res.Diagnostics {
			switch d.Severity {
			case core.SeverityError:
				summary.Errors++
			case core.SeverityWarning:
				summary.Warnings++
			case core.SeverityInfo:
				summary.Info++
			case core.SeverityHint:
				summary.Hints++
			}
		}
	}
	return summary
}

// renderLintResults prints results and reports whether any issue was found.
func renderLintResults(r *output.Renderer, results []lintFileResult, analyzed int, verbose bool) bool {
	summary := summarize(results, analyzed)

	if r.EffectiveMode() == output.ModeJSON {
		jsonOutput := output.LintOutput{
			Summary: summary,
			Files:   []output.LintFileResult{},
		}
		for _, res := range results {
			fileResult := output.LintFileResult{
				Path: res.Path,
			}
			for _, d := range res.Diagnostics {
				fileResult.Diagnostics = append(fileResult.Diagnostics, toLintDiagnostic(d))
			}
			jsonOutput.Files = append(jsonOutput.Files, fileResult)
		}
		_ = r.JSON(jsonOutput)
		return summary.TotalIssues > 0
	}

	if len(results) == 0 {
		r.Success(fmt.Sprintf("No lint issues found in %d files", analyzed))
		return false
	}

	// Text/Markdown output
	markdown := r.EffectiveMode() == output.ModeMarkdown
	for _, res := range results {
		if markdown {
			r.Println(output.FormatHeader(2, res.Path))
			r.Println("")
		} else {
			r.Println(r.Styles().FilePath.Render(res.Path))
		}
		for _, d := range res.Diagnostics {
			sevStyle := severityLabel(r, d.Severity)
			if markdown {
				r.Printf("- `%s` %s **%s** %s\n", positionLabel(d), d.Severity.String(), d.RuleID, d.Summary())
			} else {
				r.Printf("  %s  %s  %s  %s\n",
					r.Styles().Muted.Render(fmt.Sprintf("%-7s", positionLabel(d))),
					sevStyle,
					r.Styles().Bold.Render(d.RuleID),
					d.Summary(),
				)
			}
			if verbose {
				if markdown {
					r.Println(output.FormatCodeBlock("diff", d.Render()))
				} else {
					for _, line := range strings.Split(d.Render(), "\n") {
						r.Println(r.Styles().Muted.Render("           " + line))
					}
				}
			}
		}
		r.Println("")
	}

	// Print summary
	summaryParts := []string{fmt.Sprintf("%d issues", summary.TotalIssues)}
	if summary.Errors > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d errors", summary.Errors))
	}
	if summary.Warnings > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d warnings", summary.Warnings))
	}
	if summary.Info > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d info", summary.Info))
	}
	if summary.Hints > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d hints", summary.Hints))
	}
	r.Printf("Summary: %s in %d files\n", strings.Join(summaryParts, ", "), len(results))

	return true
}

func toLintDiagnostic(d lint.Diagnostic) output.LintDiagnostic {
	ld := output.LintDiagnostic{
		RuleID:     d.RuleID,
		Kind:       d.Kind,
		Severity:   d.Severity.String(),
		Message:    d.Message,
		Target:     d.Target,
		Suggestion: d.Suggestion,
		Line:       d.Line,
		DocURL:     d.DocumentationURL,
	}
	if d.Located() {
		ld.Column = d.Pos.Column
		ld.EndLine = d.EndPos.Line
		ld.EndColumn = d.EndPos.Column
	}
	return ld
}

// positionLabel formats line:col, falling back to the line or "-".
func positionLabel(d lint.Diagnostic) string {
	switch {
	case d.Located() && d.Line > 0:
		return fmt.Sprintf("%d:%d", d.Line, d.Pos.Column)
	case d.Line > 0:
		return fmt.Sprintf("%d", d.Line)
	default:
		return "-"
	}
}

func severityLabel(r *output.Renderer, sev core.Severity) string {
	return r.Styles().SeverityStyle(sev).Render(fmt.Sprintf("%-7s", sev.String()))
}

package commands

import (
	"github.com/leapstack-labs/termlint/pkg/doctree"
	"github.com/leapstack-labs/termlint/pkg/lint"
	"github.com/spf13/cobra"
)

// TreeOptions holds options for the tree command.
type TreeOptions struct {
	NoLint bool
}

// NewTreeCommand creates the tree command.
func NewTreeCommand() *cobra.Command {
	opts := &TreeOptions{}
	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Show the annotated document tree",
		Long: `Parse a document, lint it and print the resulting node tree.

Every finding appears as a system_message node right after the node it
was found in, carrying the rule, severity, line and column. Nodes that
are never checked (code, comments, todo blocks) are shown as well.`,
		Example: `  # Show where each finding lands
  termlint tree README.md

  # Show the parsed tree only
  termlint tree page.html --no-lint`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.NoLint, "no-lint", false, "Print the tree without running rules")

	return cmd
}

func runTree(cmd *cobra.Command, path string, opts *TreeOptions) error {
	cmdCtx := NewCommandContext(cmd, "")

	root, err := parseDocument(cmd, path)
	if err != nil {
		return err
	}

	if !opts.NoLint {
		lintCfg, err := cmdCtx.Cfg.ToLintConfig(lint.DefaultRegistry())
		if err != nil {
			return err
		}
		// The tree exists to show the markers.
		lintCfg.SuppressAnnotation = false
		analyzer := lint.NewAnalyzer(lintCfg, cmdCtx.DiagnosticSink())
		diags, err := analyzer.AnalyzeDocument(path, root)
		if err != nil {
			return err
		}
		cmdCtx.Logger.Debug("annotated document", "path", path, "diagnostics", len(diags))
	}

	return doctree.Dump(cmdCtx.Renderer.Writer(), root)
}

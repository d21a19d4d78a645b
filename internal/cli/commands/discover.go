package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/leapstack-labs/termlint/internal/cli/output"
	"github.com/spf13/cobra"
)

// DiscoverOptions holds options for the discover command.
type DiscoverOptions struct {
	Include []string
	Exclude []string
	Format  string
}

// NewDiscoverCommand creates the discover command.
func NewDiscoverCommand() *cobra.Command {
	opts := &DiscoverOptions{}
	cmd := &cobra.Command{
		Use:   "discover [paths...]",
		Short: "List the documents lint would check",
		Long: `List the documents selected by the include and exclude globs.

Directories are searched recursively with the include globs from
termlint.yaml (or --include). Files given explicitly are always listed.

Output adapts to environment:
  - Terminal: Styled list
  - Piped/Scripted: Markdown format (agent-friendly)
  - JSON: Machine-readable format`,
		Example: `  # Show what "termlint lint" would check here
  termlint discover

  # Only Markdown under docs/
  termlint discover docs --include '**/*.md'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiscover(cmd, args, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Include, "include", nil, "Globs selecting documents inside directories")
	cmd.Flags().StringSliceVar(&opts.Exclude, "exclude", nil, "Globs skipped during discovery")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")

	return cmd
}

func runDiscover(cmd *cobra.Command, args []string, opts *DiscoverOptions) error {
	cmdCtx := NewCommandContext(cmd, opts.Format)
	r := cmdCtx.Renderer

	include, exclude := cmdCtx.Cfg.Include, cmdCtx.Cfg.Exclude
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

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(struct {
			Count     int      `json:"count"`
			Documents []string `json:"documents"`
		}{len(docs), docs})
	case output.ModeMarkdown:
		r.Header(1, "Documents")
		for _, d := range docs {
			r.Printf("- %s\n", d)
		}
		r.Println("")
		r.Println(output.FormatKeyValue("Total", fmt.Sprintf("%d", len(docs))))
	default:
		for _, d := range docs {
			r.Println(r.Styles().FilePath.Render(d))
		}
		r.Println("")
		r.Muted(fmt.Sprintf("%d documents", len(docs)))
	}
	return nil
}

// discoverDocuments expands paths into a sorted, de-duplicated document list.
// No paths means the current directory. "-" is passed through for stdin.
func discoverDocuments(paths, include, exclude []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	seen := make(map[string]bool)
	var docs []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			docs = append(docs, p)
		}
	}

	for _, p := range paths {
		if p == stdinPath {
			add(p)
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("cannot lint %s: %w", p, err)
		}
		if !info.IsDir() {
			add(filepath.Clean(p))
			continue
		}
		found, err := globDir(p, include, exclude)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}

	sort.Strings(docs)
	return docs, nil
}

// globDir matches include globs inside dir and drops paths matching an exclude glob.
func globDir(dir string, include, exclude []string) ([]string, error) {
	fsys := os.DirFS(dir)
	var out []string
	for _, pattern := range include {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid include glob %q: %w", pattern, err)
		}
		for _, rel := range matches {
			excluded, err := matchesAny(exclude, rel)
			if err != nil {
				return nil, err
			}
			if !excluded {
				out = append(out, filepath.Join(dir, filepath.FromSlash(rel)))
			}
		}
	}
	return out, nil
}

func matchesAny(patterns []string, rel string) (bool, error) {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, rel)
		if err != nil {
			return false, fmt.Errorf("invalid exclude glob %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

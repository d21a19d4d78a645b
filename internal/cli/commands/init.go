package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/termlint/internal/cli/config"
	"github.com/leapstack-labs/termlint/internal/cli/output"
	"github.com/leapstack-labs/termlint/pkg/lint"
	"github.com/leapstack-labs/termlint/pkg/lint/dictionary"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// starterDictionary is the file name written by init --dictionary.
const starterDictionary = "ng.dic"

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool
	var withDictionary bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a termlint.yaml configuration",
		Long: `Write a termlint.yaml with every option at its default value.

An existing termlint.yaml is never replaced unless --force is given.
Use --dictionary to also write a copy of the built-in NG word dictionary
(ng.dic) and point ng_word_dictionary_path at it.`,
		Example: `  # Initialize in current directory
  termlint init

  # Start a project-specific NG word list
  termlint init --dictionary

  # Initialize in another directory
  termlint init docs`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			r := NewCommandContext(cmd, "").Renderer
			return runInit(r, dir, force, withDictionary)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")
	cmd.Flags().BoolVar(&withDictionary, "dictionary", false, "Also write a starter NG word dictionary")

	return cmd
}

func runInit(r *output.Renderer, dir string, force, withDictionary bool) error {
	// Create directory if specified and doesn't exist
	if dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, config.ConfigFileNames[0])
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", configPath)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", configPath, err)
	}

	var created []string
	dictPath := ""
	if withDictionary {
		dictPath = starterDictionary
		target := filepath.Join(dir, starterDictionary)
		if _, err := os.Stat(target); err == nil && !force {
			return fmt.Errorf("%s already exists. Use --force to overwrite", target)
		}
		if err := os.WriteFile(target, dictionary.DefaultSource(), 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
		created = append(created, target)
	}

	data, err := defaultConfigYAML(dictPath)
	if err != nil {
		return err
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}
	created = append([]string{configPath}, created...)

	for _, f := range created {
		r.Success("Created " + f)
	}
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Adjust rule switches and severities in " + config.ConfigFileNames[0])
	r.Println("  2. Run 'termlint lint' to check your documents")
	r.Println("  3. Run 'termlint rules' to read about each rule")

	return nil
}

// defaultConfigYAML renders the default configuration with a comment per key.
func defaultConfigYAML(dictPath string) ([]byte, error) {
	defaults := config.Default()
	doc := &yaml.Node{Kind: yaml.MappingNode}

	add := func(comment, key string, value any) error {
		var v yaml.Node
		if err := v.Encode(value); err != nil {
			return fmt.Errorf("failed to encode %s: %w", key, err)
		}
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key, HeadComment: comment},
			&v,
		)
		return nil
	}

	switches := defaults.RuleSwitches()
	for _, rule := range lint.GetAll() {
		if err := add(fmt.Sprintf("%s: %s", rule.ID, rule.Description), rule.ConfigFlag(), switches[rule.Name]); err != nil {
			return nil, err
		}
	}

	entries := []struct {
		comment string
		key     string
		value   any
	}{
		{"NG word dictionary (REGEX<TAB>SUGGESTION per line); empty uses the built-in list", "ng_word_dictionary_path", dictPath},
		{"Severity reported for findings: error, warning or info", "log_level", defaults.LogLevel},
		{"Do not insert marker nodes into the document tree", "suppress_inline_annotation", defaults.SuppressInlineAnnotation},
		{"Documents linted when a directory is given", "include", defaults.Include},
		{"Paths never linted", "exclude", defaults.Exclude},
		{"Documents analyzed in parallel (0 = number of CPUs)", "jobs", defaults.Jobs},
		{"Per-rule severity (error, warning, info, hint or off), keyed by ID or name", "severity", map[string]string{}},
		{"Per-rule options, keyed by ID or name", "rules", map[string]map[string]any{
			"space_in_number_of_unit": {"exempt_units": []string{"html"}},
		}},
	}
	for _, e := range entries {
		if err := add(e.comment, e.key, e.value); err != nil {
			return nil, err
		}
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to render configuration: %w", err)
	}
	return data, nil
}

package commands

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/termlint/internal/cli/config"
	"github.com/leapstack-labs/termlint/internal/cli/output"
	"github.com/leapstack-labs/termlint/pkg/doctree"
	"github.com/leapstack-labs/termlint/pkg/lint"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's context.
// A non-empty format overrides the configured output mode.
func NewCommandContext(cmd *cobra.Command, format string) *CommandContext {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	mode := output.Mode(cfg.OutputFormat)
	if format != "" {
		mode = output.Mode(format)
	}
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// DiagnosticSink forwards each finding to the logger in verbose mode.
// Otherwise findings are only rendered, not logged twice.
func (c *CommandContext) DiagnosticSink() lint.Sink {
	if c.Cfg.Verbose {
		return lint.NewSlogSink(c.Logger)
	}
	return lint.DiscardSink
}

// stdinPath is the path argument that reads a document from standard input.
const stdinPath = "-"

// isHTML reports whether path names an HTML document.
func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}

// parseDocument reads and parses the document at path.
// HTML files use the HTML front end; everything else is Markdown or plain text.
func parseDocument(cmd *cobra.Command, path string) (*doctree.Node, error) {
	var (
		src []byte
		err error
	)
	if path == stdinPath {
		src, err = io.ReadAll(cmd.InOrStdin())
	} else {
		src, err = os.ReadFile(path) //nolint:gosec // linting user-supplied paths is the point
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if isHTML(path) {
		root, err := doctree.ParseHTML(path, bytes.NewReader(src))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return root, nil
	}
	return doctree.ParseText(path, src), nil
}

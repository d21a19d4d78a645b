package commands

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/leapstack-labs/termlint/internal/cli/config"
	"github.com/leapstack-labs/termlint/internal/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandMetadata(t *testing.T) {
	tests := []struct {
		cmd   *cobra.Command
		use   string
		flags []string
	}{
		{NewLintCommand(), "lint [paths...]", []string{"format", "disable", "severity", "rule", "include", "exclude", "watch"}},
		{NewRulesCommand(), "rules [rule-id]", []string{"group", "verbose", "format"}},
		{NewTreeCommand(), "tree <file>", []string{"no-lint"}},
		{NewDiscoverCommand(), "discover [paths...]", []string{"include", "exclude", "format"}},
		{NewInitCommand(), "init [directory]", []string{"force", "dictionary"}},
		{NewVersionCommand("1", "c", "d"), "version", nil},
	}

	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short, "Short should not be empty")
			for _, flag := range tt.flags {
				assert.NotNil(t, tt.cmd.Flags().Lookup(flag), "flag %q should exist", flag)
			}
		})
	}
}

// execResult captures what a command wrote.
type execResult struct {
	out    string
	errOut string
	err    error
}

// execute runs cmd with args the way the root command would. A nil cfg
// uses the defaults.
func execute(t *testing.T, cmd *cobra.Command, cfg *config.Config, stdin io.Reader, args ...string) execResult {
	t.Helper()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	cmd.SetArgs(args)

	ctx := config.WithLogger(context.Background(), testutil.NewTestLogger(t))
	if cfg != nil {
		ctx = config.WithConfig(ctx, cfg)
	}
	err := cmd.ExecuteContext(ctx)
	return execResult{out: out.String(), errOut: errOut.String(), err: err}
}

func TestVersionCommand(t *testing.T) {
	res := execute(t, NewVersionCommand("1.2.3", "abc123", "2026-01-01"), nil, nil)
	require.NoError(t, res.err)

	assert.True(t, strings.HasPrefix(res.out, "termlint v1.2.3\n"))
	assert.Contains(t, res.out, "commit abc123, built 2026-01-01")
}

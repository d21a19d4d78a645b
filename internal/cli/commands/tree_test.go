package commands

import (
	"path/filepath"
	"strings"
	"testing"

	clitest "github.com/leapstack-labs/termlint/internal/cli/testutil"
	"github.com/leapstack-labs/termlint/internal/cli/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeCommand_ShowsMarkers(t *testing.T) {
	dir := clitest.WriteDocs(t, map[string]string{"a.md": "前文\n\n設定(オプション)を確認する。\n"})

	res := execute(t, NewTreeCommand(), nil, nil, filepath.Join(dir, "a.md"))
	require.NoError(t, res.err)

	assert.Contains(t, res.out, `<document source="`+filepath.Join(dir, "a.md")+`">`)
	assert.Contains(t, res.out, `<system_message column="3" line="3" message="parenthesis: (オプション) -> （オプション）" rule="TV02" severity="warning">`)
	assert.Equal(t, 1, strings.Count(res.out, "<system_message"))
}

func TestTreeCommand_SuppressedConfigStillAnnotates(t *testing.T) {
	dir := clitest.WriteDocs(t, map[string]string{"a.md": "ｱｲｳ\n"})
	cfg := config.Default()
	cfg.SuppressInlineAnnotation = true

	res := execute(t, NewTreeCommand(), cfg, nil, filepath.Join(dir, "a.md"))
	require.NoError(t, res.err)
	assert.Contains(t, res.out, `rule="TV01"`)
}

func TestTreeCommand_NoLint(t *testing.T) {
	dir := clitest.WriteDocs(t, map[string]string{"a.html": clitest.SampleHTML})

	res := execute(t, NewTreeCommand(), nil, nil, filepath.Join(dir, "a.html"), "--no-lint")
	require.NoError(t, res.err)
	assert.NotContains(t, res.out, "<system_message")
	assert.Contains(t, res.out, "<literal_block")
}

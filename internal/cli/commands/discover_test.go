package commands

import (
	"encoding/json"
	"path/filepath"
	"testing"

	clitest "github.com/leapstack-labs/termlint/internal/cli/testutil"
	"github.com/leapstack-labs/termlint/internal/cli/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverDocuments(t *testing.T) {
	dir := clitest.WriteDocs(t, map[string]string{
		"README.md":              "",
		"docs/guide.markdown":    "",
		"docs/page.html":         "",
		"docs/img/logo.png":      "",
		"node_modules/pkg/a.md":  "",
		".git/COMMIT_EDITMSG.md": "",
		"notes.txt":              "",
	})
	j := func(p string) string { return filepath.Join(dir, filepath.FromSlash(p)) }

	tests := []struct {
		name    string
		paths   []string
		include []string
		exclude []string
		want    []string
	}{
		{
			name:    "defaults",
			paths:   []string{dir},
			include: config.DefaultInclude,
			exclude: config.DefaultExclude,
			want:    []string{j("README.md"), j("docs/guide.markdown"), j("docs/page.html"), j("notes.txt")},
		},
		{
			name:    "custom include",
			paths:   []string{dir},
			include: []string{"docs/**/*.html"},
			want:    []string{j("docs/page.html")},
		},
		{
			name:    "explicit file bypasses globs",
			paths:   []string{j("docs/img/logo.png")},
			include: config.DefaultInclude,
			want:    []string{j("docs/img/logo.png")},
		},
		{
			name:    "duplicates collapse and stdin passes through",
			paths:   []string{j("README.md"), dir, "-"},
			include: []string{"*.md"},
			want:    []string{"-", j("README.md")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := discoverDocuments(tt.paths, tt.include, tt.exclude)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDiscoverDocuments_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := discoverDocuments([]string{filepath.Join(dir, "missing")}, nil, nil)
	require.Error(t, err)

	_, err = discoverDocuments([]string{dir}, []string{"[a"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid include glob")
}

func TestDiscoverCommand_JSON(t *testing.T) {
	dir := clitest.WriteDocs(t, map[string]string{"a.md": "", "b.txt": "", "c.go": ""})

	res := execute(t, NewDiscoverCommand(), nil, nil, dir, "--format", "json")
	require.NoError(t, res.err)

	var out struct {
		Count     int      `json:"count"`
		Documents []string `json:"documents"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.out), &out))
	assert.Equal(t, 2, out.Count)
	assert.Equal(t, []string{filepath.Join(dir, "a.md"), filepath.Join(dir, "b.txt")}, out.Documents)
}

func TestDiscoverCommand_Markdown(t *testing.T) {
	dir := clitest.WriteDocs(t, map[string]string{"a.md": ""})

	res := execute(t, NewDiscoverCommand(), nil, nil, dir)
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "# Documents")
	assert.Contains(t, res.out, "- "+filepath.Join(dir, "a.md"))
	assert.Contains(t, res.out, "- **Total:** 1")
	clitest.AssertValidMarkdown(t, res.out)
}

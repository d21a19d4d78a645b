package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/leapstack-labs/termlint/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMode(t *testing.T) {
	tests := []struct {
		in   string
		want OutputMode
	}{
		{"text", ModeText},
		{"MARKDOWN", ModeMarkdown},
		{" json ", ModeJSON},
		{"auto", ModeAuto},
		{"", ModeAuto},
		{"xml", ModeAuto},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Mode(tt.in), tt.in)
	}
}

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  OutputMode
		isTTY bool
		want  OutputMode
	}{
		{"auto on tty", ModeAuto, true, ModeText},
		{"auto piped", ModeAuto, false, ModeMarkdown},
		{"explicit text piped", ModeText, false, ModeText},
		{"explicit json on tty", ModeJSON, true, ModeJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, tt.isTTY, tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestNewRenderer_BufferIsNotTTY(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, nil, ModeAuto)
	assert.False(t, r.IsTTY())
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestRenderer_Messages(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	r := NewRendererWithTTY(out, errOut, false, ModeMarkdown)

	r.Success("done")
	r.Warning("careful")
	r.Error("broken")
	r.Header(1, "Rules")
	r.Muted("quiet")

	assert.Equal(t, "done\n# Rules\n\nquiet\n", out.String())
	assert.Equal(t, "Warning: careful\nError: broken\n", errOut.String())
}

func TestRenderer_JSON(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, nil, false, ModeJSON)

	require.NoError(t, r.JSON(LintOutput{
		Summary: LintSummary{FilesAnalyzed: 1, TotalIssues: 1, Warnings: 1},
		Files: []LintFileResult{{
			Path: "a.md",
			Diagnostics: []LintDiagnostic{{
				RuleID: "TV02", Kind: "parenthesis", Severity: "warning",
				Target: "(注)", Suggestion: "（注）", Line: 3, Column: 4,
			}},
		}},
	}))

	assert.Contains(t, out.String(), `"target": "(注)"`, "non-ASCII must not be escaped")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	summary := decoded["summary"].(map[string]any)
	assert.InDelta(t, 1, summary["total_issues"], 0)
}

func TestRenderer_Table(t *testing.T) {
	header := []string{"ID", "Name"}
	rows := [][]string{{"TV01", "half_width_katakana"}}

	out := &bytes.Buffer{}
	NewRendererWithTTY(out, nil, false, ModeMarkdown).Table(header, rows)
	assert.Contains(t, out.String(), "| TV01 | half_width_katakana |")

	out.Reset()
	NewRendererWithTTY(out, nil, true, ModeText).Table(header, rows)
	assert.Contains(t, out.String(), "TV01")
	assert.Contains(t, out.String(), "┌")
}

func TestStyles_PlainWithoutTTY(t *testing.T) {
	s := NewStyles(&bytes.Buffer{}, false)
	for _, sev := range []core.Severity{core.SeverityError, core.SeverityWarning, core.SeverityInfo, core.SeverityHint} {
		got := s.SeverityStyle(sev).Render(sev.String())
		assert.Equal(t, sev.String(), got)
		assert.False(t, strings.Contains(got, "\x1b["))
	}
}

func TestMarkdownHelpers(t *testing.T) {
	assert.Equal(t, "## Rules", FormatHeader(2, "Rules"))
	assert.Equal(t, "# Rules", FormatHeader(0, "Rules"))
	assert.Equal(t, "- **Files:** 3", FormatKeyValue("Files", "3"))
	assert.Equal(t, "```text\nあ\n```", FormatCodeBlock("text", "あ\n"))
}

package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesCommand_ListAll(t *testing.T) {
	res := execute(t, NewRulesCommand(), nil, nil)
	require.NoError(t, res.err)

	// Non-TTY output defaults to markdown.
	assert.Contains(t, res.out, "# Lint Rules")
	assert.Contains(t, res.out, "## Width")
	assert.Contains(t, res.out, "## Vocabulary")
	assert.Contains(t, res.out, "- **TV01** - half_width_katakana (`warning`)")
	assert.Less(t, strings.Index(res.out, "TV01"), strings.Index(res.out, "TV06"), "rules keep registration order")
}

func TestRulesCommand_TextTable(t *testing.T) {
	res := execute(t, NewRulesCommand(), nil, nil, "--format", "text", "-V")
	require.NoError(t, res.err)

	assert.Contains(t, res.out, "Lint Rules (6)")
	assert.Contains(t, res.out, "enable_space_in_number_of_unit")
	assert.Contains(t, res.out, "ASCII punctuation marks are found.")
	assert.Contains(t, res.out, "termlint rules <rule-id>")
}

func TestRulesCommand_FilterByGroup(t *testing.T) {
	res := execute(t, NewRulesCommand(), nil, nil, "--group", "punctuation", "--format", "json")
	require.NoError(t, res.err)

	var out RulesJSONOutput
	require.NoError(t, json.Unmarshal([]byte(res.out), &out))
	assert.Equal(t, 2, out.Count)
	require.Len(t, out.Rules, 2)
	assert.Equal(t, "TV03", out.Rules[0].ID)
	assert.Equal(t, "TV04", out.Rules[1].ID)
}

func TestRulesCommand_ShowRule(t *testing.T) {
	tests := []struct {
		name string
		arg  string
	}{
		{"by id", "TV05"},
		{"by lowercase id", "tv05"},
		{"by name", "space_in_number_of_unit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, NewRulesCommand(), nil, nil, tt.arg)
			require.NoError(t, res.err)

			assert.Contains(t, res.out, "# TV05 - space_in_number_of_unit")
			assert.Contains(t, res.out, "Options: `exempt_units`")
			assert.Contains(t, res.out, "(https://termlint.dev/docs/rules/tv05)")
		})
	}
}

func TestRulesCommand_ShowRuleJSON(t *testing.T) {
	res := execute(t, NewRulesCommand(), nil, nil, "TV06", "-f", "json")
	require.NoError(t, res.err)

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.out), &out))
	assert.Equal(t, "ng_words", out["name"])
	assert.Equal(t, "warning", out["default_severity"])
	assert.Equal(t, "enable_ng_words", out["config_flag"])
	assert.Equal(t, "https://termlint.dev/docs/rules/tv06", out["documentation_url"])
}

func TestRulesCommand_UnknownRule(t *testing.T) {
	res := execute(t, NewRulesCommand(), nil, nil, "XX99")
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), `rule "XX99" not found`)
}

func TestCapitalizeFirst(t *testing.T) {
	assert.Equal(t, "", capitalizeFirst(""))
	assert.Equal(t, "Width", capitalizeFirst("width"))
}

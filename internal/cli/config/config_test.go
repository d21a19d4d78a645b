package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/termlint/pkg/core"
	"github.com/leapstack-labs/termlint/pkg/lint"
	_ "github.com/leapstack-labs/termlint/pkg/lint/rules"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("dictionary", "", "")
	fs.String("log-level", "", "")
	fs.Bool("suppress-annotation", false, "")
	fs.IntP("jobs", "j", 0, "")
	fs.BoolP("verbose", "v", false, "")
	fs.StringP("output", "o", "", "")
	fs.String("unrelated", "", "")
	return fs
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, DefaultJobs, cfg.Jobs)
	assert.Equal(t, DefaultInclude, cfg.Include)
	assert.Empty(t, cfg.NGWordDictionaryPath)
	assert.Empty(t, cfg.ConfigFile)
	for name, enabled := range cfg.RuleSwitches() {
		assert.True(t, enabled, name)
	}
}

func TestLoadConfig_FileSearchedUpward(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "termlint.yaml"), `
enable_parenthesis: false
log_level: error
ng_word_dictionary_path: dicts/ng.dic
severity:
  TV05: info
rules:
  space_in_number_of_unit:
    exempt_units: [px, em]
`)
	sub := filepath.Join(root, "docs", "guide")
	require.NoError(t, os.MkdirAll(sub, 0o750))
	t.Chdir(sub)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "termlint.yaml"), cfg.ConfigFile)
	assert.False(t, cfg.EnableParenthesis)
	assert.True(t, cfg.EnableNGWords)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, filepath.Join(root, "dicts", "ng.dic"), cfg.NGWordDictionaryPath)
	assert.Equal(t, "info", cfg.Severity["TV05"])
	assert.Contains(t, cfg.Rules, "space_in_number_of_unit")
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "custom.yml")
	writeFile(t, cfgPath, "log_level: error\njobs: 2\noutput: markdown\n")
	t.Chdir(dir)
	t.Setenv("TERMLINT_LOG_LEVEL", "info")
	t.Setenv("TERMLINT_ENABLE_NG_WORDS", "false")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--output", "json", "--dictionary", "local.dic", "--unrelated", "x"}))

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)

	assert.Equal(t, cfgPath, cfg.ConfigFile)
	assert.Equal(t, 2, cfg.Jobs, "file beats defaults")
	assert.Equal(t, "info", cfg.LogLevel, "env beats file")
	assert.False(t, cfg.EnableNGWords)
	assert.Equal(t, "json", cfg.OutputFormat, "flag beats file")
	assert.Equal(t, "local.dic", cfg.NGWordDictionaryPath, "flag paths stay relative to the working directory")
}

func TestLoadConfig_UnchangedFlagsIgnored(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "termlint.yaml"), "output: markdown\n")
	t.Chdir(dir)

	flags := newFlags()
	require.NoError(t, flags.Parse(nil))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.OutputFormat)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"bad log level", "log_level: loud\n", "invalid log_level"},
		{"bad output", "output: xml\n", "invalid output"},
		{"negative jobs", "jobs: -1\n", "invalid jobs"},
		{"bad glob", "include: ['docs/[a']\n", "invalid glob pattern"},
		{"bad severity", "severity:\n  TV01: fatal\n", "invalid severity"},
		{"malformed yaml", "log_level: [\n", "error reading config file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "termlint.yaml")
			writeFile(t, path, tt.content)

			_, err := LoadConfig(path, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestEnvVarAndFlagFor(t *testing.T) {
	tests := []struct {
		key  string
		env  string
		flag string
	}{
		{"log_level", "TERMLINT_LOG_LEVEL", "log-level"},
		{"ng_word_dictionary_path", "TERMLINT_NG_WORD_DICTIONARY_PATH", "dictionary"},
		{"enable_ng_words", "TERMLINT_ENABLE_NG_WORDS", ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.env, EnvVar(tt.key))
			assert.Equal(t, tt.flag, FlagFor(tt.key))
		})
	}

	assert.Equal(t, DefaultOutput, Defaults()["output"])
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "termlint.yml"), "")
	deep := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(deep, 0o750))

	assert.Equal(t, filepath.Join(root, "termlint.yml"), FindConfigFile(deep))
	assert.Equal(t, filepath.Join(root, "termlint.yml"), FindConfigFile(root))
}

func TestResolvePathRelativeTo(t *testing.T) {
	assert.Equal(t, "", resolvePathRelativeTo("", "/base"))
	assert.Equal(t, "/abs/x.dic", resolvePathRelativeTo("/abs/x.dic", "/base"))
	assert.Equal(t, filepath.Join("/base", "x.dic"), resolvePathRelativeTo("x.dic", "/base"))
}

func TestToLintConfig(t *testing.T) {
	cfg := Default()
	cfg.EnableQuestionExclamation = false
	cfg.LogLevel = "info"
	cfg.NGWordDictionaryPath = "/tmp/ng.dic"
	cfg.SuppressInlineAnnotation = true
	cfg.Severity = map[string]string{
		"parenthesis": "error",
		"tv05":        "hint",
		"TV06":        "off",
	}
	cfg.Rules = map[string]map[string]any{
		"space_in_number_of_unit": {"exempt_units": []any{"px"}},
	}

	lc, err := cfg.ToLintConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, core.SeverityInfo, lc.LogLevel)
	assert.Equal(t, "/tmp/ng.dic", lc.DictionaryPath)
	assert.True(t, lc.SuppressAnnotation)
	assert.True(t, lc.IsDisabled("question_exclamation"))
	assert.True(t, lc.IsDisabled("TV06"))
	assert.False(t, lc.IsDisabled("parenthesis"))
	assert.Equal(t, core.SeverityError, lc.GetSeverity("TV02", core.SeverityWarning))
	assert.Equal(t, core.SeverityHint, lc.GetSeverity("TV05", core.SeverityWarning))
	assert.Equal(t, []string{"px"}, lint.GetStringSliceOption(lc.GetRuleOptions("TV05"), "exempt_units", nil))
}

func TestToLintConfig_UnknownRule(t *testing.T) {
	cfg := Default()
	cfg.Severity = map[string]string{"TV99": "error"}
	_, err := cfg.ToLintConfig(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TV99")

	cfg = Default()
	cfg.Rules = map[string]map[string]any{"nope": {}}
	_, err = cfg.ToLintConfig(nil)
	require.Error(t, err)
}

func TestGetLogger(t *testing.T) {
	fallback := GetLogger(context.Background())
	require.NotNil(t, fallback)

	logger := slog.New(slog.DiscardHandler)
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))
	assert.Same(t, logger, ctx.Value(LoggerKey()))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, false).Info("hidden")
	NewLogger(&buf, false).Warn("shown")
	NewLogger(&buf, true).Debug("debug shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "debug shown")
}

func TestFromContext(t *testing.T) {
	assert.Equal(t, Default(), FromContext(context.Background()))

	cfg := Default()
	cfg.Jobs = 9
	assert.Same(t, cfg, FromContext(WithConfig(context.Background(), cfg)))
}

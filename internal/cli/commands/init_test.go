package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/termlint/internal/cli/config"
	"github.com/leapstack-labs/termlint/pkg/lint/dictionary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommand(t *testing.T) {
	tests := []struct {
		name      string
		setupDir  func(t *testing.T, dir string)
		args      []string
		wantErr   string
		wantFiles []string
	}{
		{
			name:      "init empty directory",
			wantFiles: []string{"termlint.yaml"},
		},
		{
			name:      "init with dictionary",
			args:      []string{"--dictionary"},
			wantFiles: []string{"termlint.yaml", "ng.dic"},
		},
		{
			name: "existing config without force",
			setupDir: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "termlint.yaml"), []byte("existing"), 0o600))
			},
			wantErr: "already exists",
		},
		{
			name: "existing config with force",
			setupDir: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "termlint.yaml"), []byte("existing"), 0o600))
			},
			args:      []string{"--force"},
			wantFiles: []string{"termlint.yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.setupDir != nil {
				tt.setupDir(t, dir)
			}

			res := execute(t, NewInitCommand(), nil, nil, append([]string{dir}, tt.args...)...)
			if tt.wantErr != "" {
				require.Error(t, res.err)
				assert.Contains(t, res.err.Error(), tt.wantErr)
				data, _ := os.ReadFile(filepath.Join(dir, "termlint.yaml"))
				assert.Equal(t, "existing", string(data), "existing config must be kept")
				return
			}
			require.NoError(t, res.err)
			for _, f := range tt.wantFiles {
				assert.FileExists(t, filepath.Join(dir, f))
				assert.Contains(t, res.out, "Created "+filepath.Join(dir, f))
			}
		})
	}
}

func TestInitCommand_WritesLoadableDefaults(t *testing.T) {
	dir := t.TempDir()
	res := execute(t, NewInitCommand(), nil, nil, dir, "--dictionary")
	require.NoError(t, res.err)

	path := filepath.Join(dir, "termlint.yaml")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# TV01: Wide ASCII, wide numbers or half-width kana are found.")
	assert.Contains(t, string(data), "enable_half_width_katakana: true")
	assert.Contains(t, string(data), "ng_word_dictionary_path: ng.dic")

	cfg, err := config.LoadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, config.DefaultInclude, cfg.Include)
	assert.Equal(t, filepath.Join(dir, "ng.dic"), cfg.NGWordDictionaryPath)
	for name, enabled := range cfg.RuleSwitches() {
		assert.True(t, enabled, name)
	}

	dict, err := dictionary.Load(cfg.NGWordDictionaryPath)
	require.NoError(t, err)
	builtin, err := dictionary.Default()
	require.NoError(t, err)
	assert.Equal(t, builtin.Len(), dict.Len())
}

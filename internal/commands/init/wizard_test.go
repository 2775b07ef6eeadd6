package initcmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/inspector/internal/core/config"
)

func TestGenerateConfig(t *testing.T) {
	data, err := GenerateConfig(Answers{Theme: "gruvbox", Analytics: false})
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))

	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
	assert.False(t, cfg.Analytics.IsEnabled())
	assert.NotEmpty(t, cfg.Entity.Properties)
}

func TestWizard_yes_writes_loadable_config(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	w := NewWizard(WizardOptions{ConfigPath: path, Yes: true})
	require.NoError(t, w.Run(context.Background()))

	cfg, err := config.Load(path, dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultAnswers().Theme, cfg.TUI.Theme)
	assert.True(t, cfg.Analytics.IsEnabled())
}

func TestWizard_yes_refuses_overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tui: {}\n"), 0o644))

	w := NewWizard(WizardOptions{ConfigPath: path, Yes: true})
	err := w.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")
}

func TestWizard_force_backs_up(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tui: {}\n"), 0o644))

	w := NewWizard(WizardOptions{ConfigPath: path, Yes: true, Force: true})
	require.NoError(t, w.Run(context.Background()))

	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, "tui: {}\n", string(backup))
}

func TestBackupConfig_missing(t *testing.T) {
	path, err := BackupConfig(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Empty(t, path)
}

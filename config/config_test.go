package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cfg.DefaultEngine)
	assert.Equal(t, "claude", cfg.CommandFor("claude", "claude"))
	assert.Nil(t, cfg.ExtraArgsFor("claude"))
}

func TestLoad_ParsesOverrides(t *testing.T) {
	dir := t.TempDir()
	content := `default_engine: opencode
engines:
  claude:
    command: /opt/bin/claude
    extra_args: ["--dangerously-skip-permissions"]
  cursor:
    command: cursor-agent
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "opencode", cfg.DefaultEngine)
	assert.Equal(t, "/opt/bin/claude", cfg.CommandFor("claude", "claude"))
	assert.Equal(t, []string{"--dangerously-skip-permissions"}, cfg.ExtraArgsFor("claude"))
	assert.Equal(t, "cursor-agent", cfg.CommandFor("cursor", "agent"))
	// Unconfigured engines fall back.
	assert.Equal(t, "opencode", cfg.CommandFor("opencode", "opencode"))
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{invalid: [unclosed"), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := NewConfig()

	assert.Equal(t, ":17920", cfg.Server.HTTPPort)
	assert.Equal(t, "http://localhost:17920", cfg.Client.BaseURL)
	assert.Equal(t, 1024, cfg.WebSocket.ReadBufferSize)
	assert.Empty(t, cfg.Database.Path)
}

func TestNewConfigOverlay(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".todomate")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
server:
  http_port: ":28080"
log:
  level: debug
`), 0o644))

	cfg := NewConfig()

	// 文件中的字段覆盖默认值
	assert.Equal(t, ":28080", cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Log.Level)
	// 未出现的字段保持默认值
	assert.Equal(t, "http://localhost:17920", cfg.Client.BaseURL)
}

func TestNewConfigInvalidYAMLKeepsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".todomate")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{{ not yaml"), 0o644))

	cfg := NewConfig()
	assert.Equal(t, ":17920", cfg.Server.HTTPPort)
}

func TestDataDir(t *testing.T) {
	t.Setenv("HOME", "/tmp/todomate-test-home")

	dir, err := DataDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/todomate-test-home/.todomate", dir)

	path, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), path)
}

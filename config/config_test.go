package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.True(t, cfg.Window.VSync)
	assert.Equal(t, 4, cfg.Window.Samples)
	assert.False(t, cfg.Window.SRGBScene)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Trace.File)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "glgui.yaml")
	data := []byte("window:\n  width: 640\n  title: test\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "test", cfg.Window.Title)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Console)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: -1\n"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestReset(t *testing.T) {
	cfg := NewConfig()
	cfg.Window.Width = 1
	cfg.Log.Level = "error"
	cfg.Trace.Frames = 9
	cfg.Reset()
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoadDemoConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "demo", "config", "demo.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "glgui demo", cfg.Window.Title)
	assert.Equal(t, [4]float32{0.1, 0.1, 0.12, 1}, cfg.Window.ClearColor)
	assert.Equal(t, 2, cfg.Trace.Frames)
}

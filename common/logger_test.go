package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gorustyt/glgui/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerFile(t *testing.T) {
	cfg := config.NewConfig().Log
	cfg.Console = false
	cfg.File = filepath.Join(t.TempDir(), "glgui.log")

	l, err := NewLogger(cfg)
	require.NoError(t, err)
	l.Info("hello")
	_ = l.Sync()

	data, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestNewLoggerBadLevel(t *testing.T) {
	cfg := config.NewConfig().Log
	cfg.Level = "loud"
	_, err := NewLogger(cfg)
	assert.Error(t, err)
}

func TestNewLoggerNoSinks(t *testing.T) {
	cfg := config.NewConfig().Log
	cfg.Console = false
	l, err := NewLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, l)
	assert.NotNil(t, OrNop(nil))
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dgrm/shape"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	cfg, err = loadConfig("")
	require.NoError(t, err)
	assert.True(t, cfg.Confirmations)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, `
save_directory: `+dir+`
confirmations: false
font_size: 18
geometry:
  rhombus:
    w: 108
  labelrect:
    x: {min: 160, step: 80}
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.SaveDirectory)
	assert.False(t, cfg.Confirmations)
	assert.Equal(t, 18.0, cfg.FontSize)
	assert.Equal(t, 8.0, cfg.CellWidth)
	assert.Equal(t, 108.0, cfg.Geometry.Rhombus.W)
	// untouched keys keep their defaults
	assert.Equal(t, shape.Ladder{Min: 72, Step: 36}, cfg.Geometry.Rhombus.Ladder)
	assert.Equal(t, shape.Ladder{Min: 160, Step: 80}, cfg.Geometry.LabelRect.X)
	assert.Equal(t, shape.DefaultConfig().Ellipse, cfg.Geometry.Ellipse)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(writeConfig(t, "confirmations: [nope"))
	assert.Error(t, err)

	_, err = loadConfig(writeConfig(t, "cell_width: 0"))
	assert.ErrorContains(t, err, "cell size")
}

func TestGetSavePath(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, "a.png", cfg.GetSavePath("a.png"))

	cfg.SaveDirectory = filepath.Join(t.TempDir(), "out")
	assert.Equal(t, filepath.Join(cfg.SaveDirectory, "a.png"), cfg.GetSavePath("a.png"))
	info, err := os.Stat(cfg.SaveDirectory)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewLogger(t *testing.T) {
	cfg := defaultConfig()
	logger, err := newLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, logger)

	cfg.LogFile = filepath.Join(t.TempDir(), "dgrm.log")
	cfg.LogLevel = "debug"
	logger, err = newLogger(cfg)
	require.NoError(t, err)
	logger.Debug("hello")
	require.NoError(t, logger.Sync())
	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)

	cfg.LogLevel = "loud"
	_, err = newLogger(cfg)
	assert.Error(t, err)
}

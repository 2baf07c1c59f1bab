package sculptor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sculptor.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
debug = true

[window]
width = 1600
height = 900
title = "Sculpt"

[shape]
kind = "Sphere"
width = 12
depth = 10
height = 14

[camera]
zoom_sensitivity = 4.0
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 1600, cfg.Window.Width)
	assert.Equal(t, "Sculpt", cfg.Window.Title)
	assert.Equal(t, ShapeSphere, cfg.ShapeKindValue())
	assert.Equal(t, 12, cfg.Shape.Width)
	assert.Equal(t, float32(4.0), cfg.Camera.ZoomSensitivity)
	// untouched sections keep their defaults
	assert.Equal(t, float32(defaultRotateSensitivity), cfg.Camera.RotateSensitivity)
}

func TestLoadConfigClampsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
[window]
width = 10
height = -5

[shape]
kind = "Teapot"
width = 0
depth = 99
height = 8

[camera]
zoom_sensitivity = -1.0
min_distance = 50.0
max_distance = 10.0
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, cfg.Window.Width, 320)
	assert.GreaterOrEqual(t, cfg.Window.Height, 240)
	assert.Equal(t, ShapeCube, cfg.ShapeKindValue())
	assert.Equal(t, MinDimension, cfg.Shape.Width)
	assert.Equal(t, MaxDimension, cfg.Shape.Depth)
	assert.Equal(t, 8, cfg.Shape.Height)
	assert.Positive(t, cfg.Camera.ZoomSensitivity)
	assert.Greater(t, cfg.Camera.MaxDistance, cfg.Camera.MinDistance)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "[window\nwidth = ")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

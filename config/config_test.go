package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/posekit/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5.0, cfg.Camera.Distance)
	assert.Equal(t, 5.0, cfg.Transform.ReferenceDistance)
	assert.Equal(t, 0.01, cfg.Transform.TranslateSensitivity)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "editor.yaml", `
log:
  level: debug
camera:
  distance: 12
transform:
  rotate_sensitivity: 0.02
scene:
  path: scenes/demo.yaml
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 12.0, cfg.Camera.Distance)
	assert.Equal(t, 100.0, cfg.Camera.MaxDistance)
	assert.Equal(t, 0.02, cfg.Transform.RotateSensitivity)
	assert.Equal(t, 0.01, cfg.Transform.ScaleSensitivity)
	assert.Equal(t, "scenes/demo.yaml", cfg.Scene.Path)
	assert.Equal(t, 1280, cfg.Window.Width)
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.yaml", "")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeFile(t, t.TempDir(), "bad.yaml", "camera: [1, 2")
	_, err = config.Load(path)
	assert.ErrorContains(t, err, "config: parse")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		field  string
	}{
		{"log level", func(c *config.Config) { c.Log.Level = "trace" }, "log.level"},
		{"log format", func(c *config.Config) { c.Log.Format = "xml" }, "log.format"},
		{"log output", func(c *config.Config) { c.Log.Output = "file" }, "log.output"},
		{"window", func(c *config.Config) { c.Window.Width = 0 }, "window size"},
		{"distance above max", func(c *config.Config) { c.Camera.Distance = 200 }, "camera.distance"},
		{"min distance", func(c *config.Config) { c.Camera.MinDistance = 0 }, "camera.min_distance"},
		{"fov", func(c *config.Config) { c.Camera.FovDegrees = 180 }, "camera.fov_degrees"},
		{"pitch", func(c *config.Config) { c.Camera.PitchDegrees = 90 }, "camera.pitch_degrees"},
		{"reference distance", func(c *config.Config) { c.Transform.ReferenceDistance = 0 }, "transform.reference_distance"},
		{"scale sensitivity", func(c *config.Config) { c.Transform.ScaleSensitivity = -1 }, "transform.scale_sensitivity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, config.ErrInvalid)
			assert.ErrorContains(t, err, tt.field)
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "loud"
	cfg.Camera.OrbitSpeed = 0
	cfg.Transform.TranslateSensitivity = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "log.level")
	assert.ErrorContains(t, err, "camera.orbit_speed")
	assert.ErrorContains(t, err, "transform.translate_sensitivity")
}

func TestLoadAndValidate(t *testing.T) {
	dir := t.TempDir()
	_, err := config.LoadAndValidate(writeFile(t, dir, "bad.yaml", "camera: {distance: -1}"))
	assert.ErrorIs(t, err, config.ErrInvalid)

	cfg, err := config.LoadAndValidate(writeFile(t, dir, "ok.yaml", "window: {title: demo}"))
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Window.Title)
}

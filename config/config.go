// Package config loads the editor's YAML configuration and reloads it when
// the file changes.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the editor configuration.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Window    WindowConfig    `yaml:"window"`
	Camera    CameraConfig    `yaml:"camera"`
	Transform TransformConfig `yaml:"transform"`
	Scene     SceneConfig     `yaml:"scene"`
}

// LogConfig selects the zap logger setup.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// CameraConfig seeds the orbit camera. Angles are in degrees.
type CameraConfig struct {
	Distance     float64 `yaml:"distance"`
	MinDistance  float64 `yaml:"min_distance"`
	MaxDistance  float64 `yaml:"max_distance"`
	YawDegrees   float64 `yaml:"yaw_degrees"`
	PitchDegrees float64 `yaml:"pitch_degrees"`
	FovDegrees   float64 `yaml:"fov_degrees"`
	OrbitSpeed   float64 `yaml:"orbit_speed"`
	ZoomStep     float64 `yaml:"zoom_step"`
	PanSpeed     float64 `yaml:"pan_speed"`
}

// TransformConfig holds pointer-to-pose sensitivities.
type TransformConfig struct {
	ReferenceDistance    float64 `yaml:"reference_distance"`
	TranslateSensitivity float64 `yaml:"translate_sensitivity"`
	RotateSensitivity    float64 `yaml:"rotate_sensitivity"`
	ScaleSensitivity     float64 `yaml:"scale_sensitivity"`
}

// SceneConfig names the scene file opened at startup. Empty starts with the
// built-in demo scene.
type SceneConfig struct {
	Path string `yaml:"path"`
}

var ErrInvalid = errors.New("config: invalid")

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
			Output: "stdout",
		},
		Window: WindowConfig{
			Title:  "posekit",
			Width:  1280,
			Height: 720,
		},
		Camera: CameraConfig{
			Distance:     5,
			MinDistance:  0.5,
			MaxDistance:  100,
			YawDegrees:   45,
			PitchDegrees: 30,
			FovDegrees:   50,
			OrbitSpeed:   0.01,
			ZoomStep:     0.5,
			PanSpeed:     0.002,
		},
		Transform: TransformConfig{
			ReferenceDistance:    5,
			TranslateSensitivity: 0.01,
			RotateSensitivity:    0.01,
			ScaleSensitivity:     0.01,
		},
	}
}

// Load reads a YAML file over the defaults. Fields missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations. Errors wrap ErrInvalid.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		check(false, "log.level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		check(false, "log.format %q", c.Log.Format)
	}
	switch c.Log.Output {
	case "stdout", "stderr":
	default:
		check(false, "log.output %q", c.Log.Output)
	}

	check(c.Window.Width > 0 && c.Window.Height > 0,
		"window size %dx%d", c.Window.Width, c.Window.Height)

	cam := c.Camera
	check(cam.MinDistance > 0, "camera.min_distance %v must be positive", cam.MinDistance)
	check(cam.MinDistance <= cam.Distance && cam.Distance <= cam.MaxDistance,
		"camera.distance %v outside [%v, %v]", cam.Distance, cam.MinDistance, cam.MaxDistance)
	check(cam.FovDegrees > 0 && cam.FovDegrees < 180, "camera.fov_degrees %v", cam.FovDegrees)
	check(cam.PitchDegrees > -90 && cam.PitchDegrees < 90, "camera.pitch_degrees %v", cam.PitchDegrees)
	check(cam.OrbitSpeed > 0, "camera.orbit_speed %v must be positive", cam.OrbitSpeed)
	check(cam.ZoomStep > 0, "camera.zoom_step %v must be positive", cam.ZoomStep)
	check(cam.PanSpeed > 0, "camera.pan_speed %v must be positive", cam.PanSpeed)

	tr := c.Transform
	check(tr.ReferenceDistance > 0, "transform.reference_distance %v must be positive", tr.ReferenceDistance)
	check(tr.TranslateSensitivity > 0, "transform.translate_sensitivity %v must be positive", tr.TranslateSensitivity)
	check(tr.RotateSensitivity > 0, "transform.rotate_sensitivity %v must be positive", tr.RotateSensitivity)
	check(tr.ScaleSensitivity > 0, "transform.scale_sensitivity %v must be positive", tr.ScaleSensitivity)

	return errors.Join(errs...)
}

// LoadAndValidate loads path and validates the result.
func LoadAndValidate(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

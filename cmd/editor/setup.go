package main

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/posekit/config"
	"github.com/plus3/posekit/logging"
	"github.com/plus3/posekit/nav"
	"github.com/plus3/posekit/transform"
	"go.uber.org/zap"
)

func newCamera(c config.CameraConfig) *nav.OrbitCamera {
	cam := nav.NewOrbitCamera(c.Distance)
	cam.MinDistance = c.MinDistance
	cam.MaxDistance = c.MaxDistance
	cam.Yaw = mgl64.DegToRad(c.YawDegrees)
	cam.Pitch = mgl64.DegToRad(c.PitchDegrees)
	cam.FovY = mgl64.DegToRad(c.FovDegrees)
	applyCameraSpeeds(cam, c)
	return cam
}

func applyCameraSpeeds(cam *nav.OrbitCamera, c config.CameraConfig) {
	cam.OrbitSpeed = c.OrbitSpeed
	cam.ZoomStep = c.ZoomStep
	cam.PanSpeed = c.PanSpeed
	cam.MinDistance = c.MinDistance
	cam.MaxDistance = c.MaxDistance
}

func sensitivity(t config.TransformConfig) transform.Sensitivity {
	return transform.Sensitivity{
		ReferenceDistance: t.ReferenceDistance,
		Translate:         t.TranslateSensitivity,
		Rotate:            t.RotateSensitivity,
		Scale:             t.ScaleSensitivity,
	}
}

// applyReload takes the settings that can change while running. Window size,
// scene path and log format need a restart.
func applyReload(cfg *config.Config, engine *transform.Engine, cam *nav.OrbitCamera, level zap.AtomicLevel, logger *zap.Logger) {
	engine.SetSensitivity(sensitivity(cfg.Transform))
	applyCameraSpeeds(cam, cfg.Camera)
	if err := logging.SetLevel(level, cfg.Log.Level); err != nil {
		logger.Warn("log level not changed", zap.Error(err))
	}
	logger.Info("configuration applied",
		zap.Float64("translate_sensitivity", cfg.Transform.TranslateSensitivity),
		zap.String("log_level", cfg.Log.Level))
}

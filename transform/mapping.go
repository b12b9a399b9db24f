package transform

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/posekit/scene"
)

// Sensitivity scales pointer pixels into pose units.
type Sensitivity struct {
	// ReferenceDistance is the camera distance at which Translate applies
	// unscaled. Further away, drags move objects proportionally further.
	ReferenceDistance float64
	Translate         float64
	Rotate            float64 // radians per pixel
	Scale             float64 // scale factor change per pixel
}

// DefaultSensitivity matches a camera five units away and 0.01 per pixel.
func DefaultSensitivity() Sensitivity {
	return Sensitivity{
		ReferenceDistance: 5,
		Translate:         0.01,
		Rotate:            0.01,
		Scale:             0.01,
	}
}

func (s Sensitivity) distanceScale(cameraDistance float64) float64 {
	return s.Translate * (cameraDistance / s.ReferenceDistance)
}

// translateDelta maps pointer motion to a position offset. Unconstrained
// drags move in X and Y only; Z moves only when explicitly selected.
func translateDelta(axes AxisSet, dx, dy, distanceScale float64) mgl64.Vec3 {
	var d mgl64.Vec3
	if axes.Empty() || axes.Has(AxisX) {
		d[0] = dx * distanceScale
	}
	if axes.Empty() || axes.Has(AxisY) {
		d[1] = dy * distanceScale
	}
	if axes.Has(AxisZ) {
		d[2] = (dx + dy) * distanceScale
	}
	return d
}

// rotateDelta maps pointer motion to Euler angle offsets. Unconstrained
// drags turn around X with vertical motion and around Y with horizontal
// motion.
func rotateDelta(axes AxisSet, dx, dy, sensitivity float64) mgl64.Vec3 {
	var d mgl64.Vec3
	if axes.Empty() {
		d[0] = dy * sensitivity
		d[1] = dx * sensitivity
		return d
	}
	amount := (dx + dy) * sensitivity
	for i, a := range [...]Axis{AxisX, AxisY, AxisZ} {
		if axes.Has(a) {
			d[i] = amount
		}
	}
	return d
}

// scaleFactors returns per-component multipliers. Unconstrained drags scale
// uniformly.
func scaleFactors(axes AxisSet, dx, dy, sensitivity float64) mgl64.Vec3 {
	f := 1 + (dx+dy)*sensitivity
	if axes.Empty() {
		return mgl64.Vec3{f, f, f}
	}
	m := mgl64.Vec3{1, 1, 1}
	for i, a := range [...]Axis{AxisX, AxisY, AxisZ} {
		if axes.Has(a) {
			m[i] = f
		}
	}
	return m
}

// applyMotion adds one pointer event's worth of change to the live pose.
// dy must already be flipped so that up is positive.
func applyMotion(p *scene.Pose, mode Mode, axes AxisSet, dx, dy float64, sens Sensitivity, cameraDistance float64) {
	switch mode {
	case ModeTranslate:
		p.Position = p.Position.Add(translateDelta(axes, dx, dy, sens.distanceScale(cameraDistance)))
	case ModeRotate:
		p.Rotation = p.Rotation.Add(rotateDelta(axes, dx, dy, sens.Rotate))
	case ModeScale:
		f := scaleFactors(axes, dx, dy, sens.Scale)
		for i := range p.Scale {
			p.Scale[i] *= f[i]
		}
	}
}

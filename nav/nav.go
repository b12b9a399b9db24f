// Package nav is the camera navigation controller. The transform engine only
// toggles it and reads its distance; everything else is for the editor view.
package nav

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Gate is the part of the navigation controller the transform engine uses.
type Gate interface {
	SetEnabled(enabled bool)
	DistanceFromTarget() float64
}

const maxPitch = 89 * math.Pi / 180

// OrbitCamera orbits around Target at Distance. Orbit, Zoom and Pan do nothing
// while the camera is disabled.
type OrbitCamera struct {
	Target   mgl64.Vec3
	Distance float64
	Yaw      float64 // radians around +Y
	Pitch    float64 // radians above the XZ plane
	FovY     float64 // radians

	MinDistance float64
	MaxDistance float64
	OrbitSpeed  float64 // radians per pixel
	ZoomStep    float64 // distance units per wheel step
	PanSpeed    float64 // world units per pixel per distance unit

	enabled bool
}

// NewOrbitCamera returns an enabled camera with sensible limits.
func NewOrbitCamera(distance float64) *OrbitCamera {
	return &OrbitCamera{
		Distance:    distance,
		Yaw:         mgl64.DegToRad(45),
		Pitch:       mgl64.DegToRad(30),
		FovY:        mgl64.DegToRad(50),
		MinDistance: 0.5,
		MaxDistance: 100,
		OrbitSpeed:  0.01,
		ZoomStep:    0.5,
		PanSpeed:    0.002,
		enabled:     true,
	}
}

func (c *OrbitCamera) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *OrbitCamera) Enabled() bool {
	return c.enabled
}

func (c *OrbitCamera) DistanceFromTarget() float64 {
	return c.Distance
}

// Orbit rotates the eye around the target by a pointer delta in pixels.
func (c *OrbitCamera) Orbit(dx, dy float64) {
	if !c.enabled {
		return
	}
	c.Yaw -= dx * c.OrbitSpeed
	c.Pitch = clamp(c.Pitch+dy*c.OrbitSpeed, -maxPitch, maxPitch)
}

// Zoom moves the eye toward (positive steps) or away from the target.
func (c *OrbitCamera) Zoom(steps float64) {
	if !c.enabled {
		return
	}
	c.Distance = clamp(c.Distance-steps*c.ZoomStep, c.MinDistance, c.MaxDistance)
}

// Pan slides the target in the view plane by a pointer delta in pixels.
func (c *OrbitCamera) Pan(dx, dy float64) {
	if !c.enabled {
		return
	}
	forward := c.Target.Sub(c.Eye()).Normalize()
	right := forward.Cross(mgl64.Vec3{0, 1, 0}).Normalize()
	up := right.Cross(forward)

	scale := c.PanSpeed * c.Distance
	c.Target = c.Target.Add(right.Mul(-dx * scale)).Add(up.Mul(dy * scale))
}

// Eye returns the camera position in world space.
func (c *OrbitCamera) Eye() mgl64.Vec3 {
	cosPitch := math.Cos(c.Pitch)
	offset := mgl64.Vec3{
		c.Distance * cosPitch * math.Sin(c.Yaw),
		c.Distance * math.Sin(c.Pitch),
		c.Distance * cosPitch * math.Cos(c.Yaw),
	}
	return c.Target.Add(offset)
}

// View returns the world-to-camera matrix.
func (c *OrbitCamera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye(), c.Target, mgl64.Vec3{0, 1, 0})
}

// Projection returns a perspective matrix for the given width/height ratio.
func (c *OrbitCamera) Projection(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(c.FovY, aspect, 0.05, 1000)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

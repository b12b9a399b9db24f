package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/posekit/scene"
)

// Camera supplies view and projection matrices. *nav.OrbitCamera implements
// it.
type Camera interface {
	View() mgl64.Mat4
	Projection(aspect float64) mgl64.Mat4
}

// Model builds the object-to-world matrix T * Rz * Ry * Rx * S, so Euler
// angles apply X first.
func Model(p scene.Pose) mgl64.Mat4 {
	t := mgl64.Translate3D(p.Position.X(), p.Position.Y(), p.Position.Z())
	r := mgl64.HomogRotate3DZ(p.Rotation.Z()).
		Mul4(mgl64.HomogRotate3DY(p.Rotation.Y())).
		Mul4(mgl64.HomogRotate3DX(p.Rotation.X()))
	s := mgl64.Scale3D(p.Scale.X(), p.Scale.Y(), p.Scale.Z())
	return t.Mul4(r).Mul4(s)
}

// Viewport maps clip space to window pixels, y growing downward.
type Viewport struct {
	viewProj      mgl64.Mat4
	right         mgl64.Vec3
	width, height float64
}

// NewViewport captures cam's matrices for a width x height window.
func NewViewport(cam Camera, width, height int) Viewport {
	aspect := 1.0
	if height > 0 {
		aspect = float64(width) / float64(height)
	}
	view := cam.View()
	return Viewport{
		viewProj: cam.Projection(aspect).Mul4(view),
		right:    view.Row(0).Vec3(),
		width:    float64(width),
		height:   float64(height),
	}
}

// Project returns the pixel position of a world point and its clip-space w
// (distance along the view direction). ok is false behind the camera.
func (v Viewport) Project(p mgl64.Vec3) (x, y, depth float64, ok bool) {
	clip := v.viewProj.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 1e-9 {
		return 0, 0, w, false
	}
	ndcX, ndcY := clip.X()/w, clip.Y()/w
	x = (ndcX + 1) / 2 * v.width
	y = (1 - ndcY) / 2 * v.height
	return x, y, w, true
}

// boundingRadius is the radius of a sphere containing the unit-sized mesh
// after scaling.
func boundingRadius(g scene.Geometry, scale mgl64.Vec3) float64 {
	m := math.Max(math.Abs(scale.X()), math.Max(math.Abs(scale.Y()), math.Abs(scale.Z())))
	switch g {
	case scene.GeometrySphere:
		return 0.5 * m
	case scene.GeometryCylinder:
		return math.Sqrt(0.5) * m
	}
	return 0.5 * math.Sqrt(3) * m
}

// Pick returns the nearest item whose projected bounding circle contains the
// pixel (x, y), or scene.NoObject.
func Pick(items []Item, vp Viewport, x, y float64) scene.ObjectId {
	best := scene.NoObject
	bestDepth := math.Inf(1)
	for _, it := range items {
		cx, cy, depth, ok := vp.Project(it.Position)
		if !ok {
			continue
		}
		r := boundingRadius(it.Geometry, it.Scale)
		ex, ey, _, ok := vp.Project(it.Position.Add(vp.right.Mul(r)))
		if !ok {
			continue
		}
		screenR := math.Hypot(ex-cx, ey-cy)
		if math.Hypot(x-cx, y-cy) > screenR {
			continue
		}
		if depth < bestDepth {
			best, bestDepth = it.Id, depth
		}
	}
	return best
}

package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/posekit/scene"
)

// Segment is one wireframe edge in object space.
type Segment struct {
	A, B mgl64.Vec3
}

const ringSegments = 24

var meshes = map[scene.Geometry][]Segment{
	scene.GeometryBox:      boxMesh(),
	scene.GeometrySphere:   sphereMesh(),
	scene.GeometryCylinder: cylinderMesh(),
}

// Mesh returns the unit wireframe for g, centred on the origin and one unit
// across. Unknown geometry draws as a box.
func Mesh(g scene.Geometry) []Segment {
	if m, ok := meshes[g]; ok {
		return m
	}
	return meshes[scene.GeometryBox]
}

func boxMesh() []Segment {
	var corners [8]mgl64.Vec3
	for i := range corners {
		corners[i] = mgl64.Vec3{
			float64(i&1) - 0.5,
			float64(i>>1&1) - 0.5,
			float64(i>>2&1) - 0.5,
		}
	}
	var segs []Segment
	for i := range corners {
		for bit := 1; bit < 8; bit <<= 1 {
			if j := i | bit; j != i {
				segs = append(segs, Segment{corners[i], corners[j]})
			}
		}
	}
	return segs
}

// ring returns points on a circle of radius r. axis picks the normal: 0 X,
// 1 Y, 2 Z.
func ring(r float64, axis int, offset float64) []mgl64.Vec3 {
	pts := make([]mgl64.Vec3, ringSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / ringSegments
		u, v := r*math.Cos(a), r*math.Sin(a)
		switch axis {
		case 0:
			pts[i] = mgl64.Vec3{offset, u, v}
		case 1:
			pts[i] = mgl64.Vec3{u, offset, v}
		default:
			pts[i] = mgl64.Vec3{u, v, offset}
		}
	}
	return pts
}

func closed(pts []mgl64.Vec3) []Segment {
	segs := make([]Segment, len(pts))
	for i := range pts {
		segs[i] = Segment{pts[i], pts[(i+1)%len(pts)]}
	}
	return segs
}

func sphereMesh() []Segment {
	var segs []Segment
	for axis := range 3 {
		segs = append(segs, closed(ring(0.5, axis, 0))...)
	}
	return segs
}

func cylinderMesh() []Segment {
	bottom, top := ring(0.5, 1, -0.5), ring(0.5, 1, 0.5)
	segs := append(closed(bottom), closed(top)...)
	for i := 0; i < ringSegments; i += ringSegments / 4 {
		segs = append(segs, Segment{bottom[i], top[i]})
	}
	return segs
}

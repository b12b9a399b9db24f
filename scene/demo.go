package scene

import "github.com/go-gl/mathgl/mgl64"

// Demo returns the scene opened when no file is given: a box, a sphere and
// a cylinder side by side on the ground plane.
func Demo() *Store {
	s := NewStore()
	for i, obj := range []struct {
		x     float64
		color [3]uint8
		geom  Geometry
	}{
		{-2, [3]uint8{0xe0, 0x5a, 0x47}, GeometryBox},
		{0, [3]uint8{0x4a, 0x90, 0xd9}, GeometrySphere},
		{2, [3]uint8{0x7e, 0xc8, 0x50}, GeometryCylinder},
	} {
		pose := IdentityPose()
		pose.Position = mgl64.Vec3{obj.x, 0.5, 0}
		s.insert(Object{
			Id:         ObjectId(i + 1),
			Pose:       pose,
			Appearance: Appearance{Color: obj.color, Geometry: obj.geom},
		})
	}
	return s
}

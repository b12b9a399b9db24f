// Package scene holds the mutable pose of every object in an editable 3D scene.
// It is pure data: mutations go through Store methods, which publish a Change
// to subscribers so renderers know when to redraw.
package scene

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// ObjectId identifies an object for its whole lifetime. Valid ids are >= 1.
type ObjectId int64

// NoObject is the zero ObjectId, used for "no selection" and "nothing hit".
const NoObject ObjectId = 0

// Pose is the per-object transform. Rotation holds XYZ Euler angles in radians.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Scale    mgl64.Vec3
}

// IdentityPose returns a pose at the origin with unit scale.
func IdentityPose() Pose {
	return Pose{Scale: mgl64.Vec3{1, 1, 1}}
}

// Geometry selects the mesh the renderer draws for an object.
type Geometry int

const (
	GeometryBox Geometry = iota
	GeometrySphere
	GeometryCylinder
)

var geometryNames = [...]string{"box", "sphere", "cylinder"}

func (g Geometry) String() string {
	if g < 0 || int(g) >= len(geometryNames) {
		return fmt.Sprintf("Geometry(%d)", int(g))
	}
	return geometryNames[g]
}

// ParseGeometry maps a geometry name to its value, case-insensitively.
func ParseGeometry(name string) (Geometry, error) {
	for i, n := range geometryNames {
		if strings.EqualFold(n, name) {
			return Geometry(i), nil
		}
	}
	return 0, fmt.Errorf("scene: unknown geometry %q", name)
}

// Appearance is everything the renderer needs besides the pose.
type Appearance struct {
	Color    [3]uint8
	Geometry Geometry
}

// Object is a copy of one stored record.
type Object struct {
	Id         ObjectId
	Pose       Pose
	Appearance Appearance
}

// Package render turns the scene and the transform state into what gets
// drawn each frame.
package render

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/posekit/scene"
	"github.com/plus3/posekit/transform"
)

// Highlight is the outline drawn around the selected object.
type Highlight struct {
	Color   [3]uint8
	Opacity float64
}

// Alpha converts Opacity to an 8-bit alpha, clamped to [0, 255].
func (h Highlight) Alpha() uint8 {
	switch {
	case h.Opacity <= 0:
		return 0
	case h.Opacity >= 1:
		return 255
	}
	return uint8(h.Opacity*255 + 0.5)
}

// HighlightFor returns the outline for the selection while mode is active.
// Scale reports an opacity of 2; Alpha clamps it when drawing.
func HighlightFor(mode transform.Mode) Highlight {
	switch mode {
	case transform.ModeTranslate:
		return Highlight{Color: [3]uint8{255, 170, 0}, Opacity: 0.8}
	case transform.ModeRotate:
		return Highlight{Color: [3]uint8{0, 190, 255}, Opacity: 0.8}
	case transform.ModeScale:
		return Highlight{Color: [3]uint8{80, 230, 120}, Opacity: 2}
	}
	return Highlight{Color: [3]uint8{255, 255, 255}, Opacity: 1}
}

// Item is everything the drawer needs for one object.
type Item struct {
	Id        scene.ObjectId
	Position  mgl64.Vec3
	Rotation  mgl64.Vec3
	Scale     mgl64.Vec3
	Color     [3]uint8
	Geometry  scene.Geometry
	Selected  bool
	Highlight Highlight
}

// Pose returns the item's transform.
func (it Item) Pose() scene.Pose {
	return scene.Pose{Position: it.Position, Rotation: it.Rotation, Scale: it.Scale}
}

// Collect builds one item per object in ascending id order.
func Collect(store *scene.Store, state transform.State) []Item {
	items := make([]Item, 0, store.Len())
	for obj := range store.Objects() {
		it := Item{
			Id:       obj.Id,
			Position: obj.Pose.Position,
			Rotation: obj.Pose.Rotation,
			Scale:    obj.Pose.Scale,
			Color:    obj.Appearance.Color,
			Geometry: obj.Appearance.Geometry,
			Selected: obj.Id == state.Selection,
		}
		if it.Selected {
			it.Highlight = HighlightFor(state.Mode)
		}
		items = append(items, it)
	}
	return items
}

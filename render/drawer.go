package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/posekit/scene"
	"github.com/plus3/posekit/transform"
)

// Line is one projected edge in window pixels.
type Line struct {
	X0, Y0, X1, Y1 float32
	Width          float32
	Color          color.RGBA
}

var (
	gridColor       = color.RGBA{70, 70, 78, 255}
	backgroundColor = color.RGBA{32, 32, 38, 255}
)

const gridHalfExtent = 5

// Drawer draws the scene as wireframes. Projected lines are cached and only
// rebuilt after the store reports a change or the camera, viewport or
// transform state differs from the last frame.
type Drawer struct {
	store  *scene.Store
	camera Camera
	cancel func()

	dirty     bool
	lastState transform.State
	lastVP    Viewport
	items     []Item
	lines     []Line
	rebuilds  int
}

// NewDrawer subscribes to store changes.
func NewDrawer(store *scene.Store, camera Camera) *Drawer {
	d := &Drawer{store: store, camera: camera, dirty: true}
	d.cancel = store.Subscribe(func(scene.Change) {
		d.dirty = true
	})
	return d
}

// Close stops listening to the store.
func (d *Drawer) Close() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

// Dirty reports whether the next frame rebuilds the line cache.
func (d *Drawer) Dirty() bool {
	return d.dirty
}

// Rebuilds counts line cache rebuilds.
func (d *Drawer) Rebuilds() int {
	return d.rebuilds
}

// Items returns the render items of the last rebuild.
func (d *Drawer) Items() []Item {
	return d.items
}

// Viewport returns the viewport of the last rebuild.
func (d *Drawer) Viewport() Viewport {
	return d.lastVP
}

// Lines returns the projected wireframe for a width x height window.
func (d *Drawer) Lines(state transform.State, width, height int) []Line {
	vp := NewViewport(d.camera, width, height)
	if !d.dirty && state == d.lastState && vp == d.lastVP {
		return d.lines
	}

	d.items = Collect(d.store, state)
	d.lines = d.lines[:0]
	d.appendGrid(vp)
	for _, it := range d.items {
		c := color.RGBA{it.Color[0], it.Color[1], it.Color[2], 255}
		d.appendMesh(vp, it, c, 1)
	}
	// Outlines go last so they draw on top.
	for _, it := range d.items {
		if !it.Selected {
			continue
		}
		h := it.Highlight
		c := color.RGBA{h.Color[0], h.Color[1], h.Color[2], h.Alpha()}
		d.appendMesh(vp, it, c, 3)
	}

	d.dirty = false
	d.lastState = state
	d.lastVP = vp
	d.rebuilds++
	return d.lines
}

func (d *Drawer) appendGrid(vp Viewport) {
	for i := -gridHalfExtent; i <= gridHalfExtent; i++ {
		f := float64(i)
		d.appendWorld(vp, Segment{
			A: [3]float64{f, 0, -gridHalfExtent},
			B: [3]float64{f, 0, gridHalfExtent},
		}, gridColor, 1)
		d.appendWorld(vp, Segment{
			A: [3]float64{-gridHalfExtent, 0, f},
			B: [3]float64{gridHalfExtent, 0, f},
		}, gridColor, 1)
	}
}

func (d *Drawer) appendMesh(vp Viewport, it Item, c color.RGBA, width float32) {
	model := Model(it.Pose())
	for _, seg := range Mesh(it.Geometry) {
		a := model.Mul4x1(seg.A.Vec4(1)).Vec3()
		b := model.Mul4x1(seg.B.Vec4(1)).Vec3()
		d.appendWorld(vp, Segment{A: a, B: b}, c, width)
	}
}

// appendWorld drops segments with an endpoint behind the camera.
func (d *Drawer) appendWorld(vp Viewport, seg Segment, c color.RGBA, width float32) {
	x0, y0, _, ok0 := vp.Project(seg.A)
	x1, y1, _, ok1 := vp.Project(seg.B)
	if !ok0 || !ok1 {
		return
	}
	d.lines = append(d.lines, Line{
		X0: float32(x0), Y0: float32(y0),
		X1: float32(x1), Y1: float32(y1),
		Width: width,
		Color: c,
	})
}

// Draw clears screen and strokes the current wireframe.
func (d *Drawer) Draw(screen *ebiten.Image, state transform.State) {
	screen.Fill(backgroundColor)
	b := screen.Bounds()
	for _, l := range d.Lines(state, b.Dx(), b.Dy()) {
		vector.StrokeLine(screen, l.X0, l.Y0, l.X1, l.Y1, l.Width, l.Color, true)
	}
}

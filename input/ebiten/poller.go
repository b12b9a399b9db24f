package ebiten

import (
	"github.com/plus3/posekit/editor"
	"github.com/plus3/posekit/input"
	"github.com/plus3/posekit/scene"
	"go.uber.org/zap"
)

// Picker resolves a window pixel to the object under it.
type Picker interface {
	PickAt(x, y float64) scene.ObjectId
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(x, y float64) scene.ObjectId

func (f PickerFunc) PickAt(x, y float64) scene.ObjectId {
	return f(x, y)
}

// Camera is the navigation surface driven by right-drag, middle-drag and the
// wheel. Implementations ignore calls while navigation is disabled.
type Camera interface {
	Orbit(dx, dy float64)
	Pan(dx, dy float64)
	Zoom(steps float64)
}

// Capture reports whether an overlay UI currently owns the mouse and the
// keyboard.
type Capture func() (mouse, keyboard bool)

// Stats counts published events.
type Stats struct {
	Keys       int
	Consumed   int
	Clicks     int
	Motion     int
	PointerUps int
}

type Option func(*Poller)

func WithPicker(p Picker) Option {
	return func(pl *Poller) {
		pl.picker = p
	}
}

func WithCamera(c Camera) Option {
	return func(pl *Poller) {
		pl.camera = c
	}
}

func WithCapture(c Capture) Option {
	return func(pl *Poller) {
		pl.capture = c
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(pl *Poller) {
		if logger != nil {
			pl.logger = logger
		}
	}
}

// Poller translates device state into bus events once per frame.
type Poller struct {
	device  Device
	bus     *input.Bus
	picker  Picker
	camera  Camera
	capture Capture
	logger  *zap.Logger

	keys         []input.Key
	lastX, lastY int
	primed       bool
	stats        Stats
}

// NewPoller creates a poller publishing on bus.
func NewPoller(device Device, bus *input.Bus, opts ...Option) *Poller {
	p := &Poller{
		device: device,
		bus:    bus,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Stats returns event counters.
func (p *Poller) Stats() Stats {
	return p.stats
}

// Execute lets the poller run as the first system of a frame.
func (p *Poller) Execute(*editor.Frame) {
	p.Poll()
}

// Poll reads the device and publishes this frame's events. Keys are
// published before pointer events so that a mode key and a drag in the same
// frame start the gesture first.
func (p *Poller) Poll() {
	var mouseCaptured, keyboardCaptured bool
	if p.capture != nil {
		mouseCaptured, keyboardCaptured = p.capture()
	}

	if !keyboardCaptured {
		p.pollKeys()
	}
	p.pollPointer(mouseCaptured)
}

func (p *Poller) pollKeys() {
	p.keys = p.device.AppendJustPressedKeys(p.keys[:0])
	if len(p.keys) == 0 {
		return
	}
	shift, ctrl := p.device.ShiftPressed(), p.device.CtrlPressed()
	for _, k := range p.keys {
		ev := input.KeyEvent{Key: k, Shift: shift, Ctrl: ctrl}
		p.stats.Keys++
		if p.bus.PublishKey(ev) {
			p.stats.Consumed++
		}
	}
}

func (p *Poller) pollPointer(captured bool) {
	x, y := p.device.CursorPosition()
	if !p.primed {
		p.lastX, p.lastY, p.primed = x, y, true
	}
	dx, dy := float64(x-p.lastX), float64(y-p.lastY)
	p.lastX, p.lastY = x, y

	// A release always ends a drag, even over the overlay.
	defer func() {
		if p.device.JustReleased(ButtonLeft) {
			p.stats.PointerUps++
			p.bus.PublishPointerUp(input.PointerUp{})
		}
	}()

	if captured {
		return
	}

	if p.device.JustPressed(ButtonLeft) && p.picker != nil {
		id := p.picker.PickAt(float64(x), float64(y))
		p.logger.Debug("pointer click", zap.Int("x", x), zap.Int("y", y), zap.Int64("object", int64(id)))
		p.stats.Clicks++
		p.bus.PublishClick(input.Click{Object: id})
	}

	if dx != 0 || dy != 0 {
		p.stats.Motion++
		p.bus.PublishMotion(input.PointerMotion{DX: dx, DY: dy})
	}

	if p.camera == nil {
		return
	}
	if dx != 0 || dy != 0 {
		switch {
		case p.device.Pressed(ButtonRight):
			p.camera.Orbit(dx, dy)
		case p.device.Pressed(ButtonMiddle):
			p.camera.Pan(dx, dy)
		}
	}
	if _, wy := p.device.Wheel(); wy != 0 {
		p.camera.Zoom(wy)
	}
}

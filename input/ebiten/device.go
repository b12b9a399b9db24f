// Package ebiten feeds ebiten keyboard and mouse state into an input.Bus.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/posekit/input"
)

// Button is a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Device is the per-frame view of the keyboard and mouse the Poller reads.
type Device interface {
	// AppendJustPressedKeys appends keys pressed this frame, excluding
	// modifiers.
	AppendJustPressedKeys(keys []input.Key) []input.Key
	ShiftPressed() bool
	CtrlPressed() bool
	CursorPosition() (x, y int)
	Pressed(b Button) bool
	JustPressed(b Button) bool
	JustReleased(b Button) bool
	Wheel() (dx, dy float64)
}

var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyG:           input.KeyG,
	ebiten.KeyR:           input.KeyR,
	ebiten.KeyS:           input.KeyS,
	ebiten.KeyX:           input.KeyX,
	ebiten.KeyY:           input.KeyY,
	ebiten.KeyZ:           input.KeyZ,
	ebiten.KeyD:           input.KeyD,
	ebiten.KeyEscape:      input.KeyEscape,
	ebiten.KeyEnter:       input.KeyEnter,
	ebiten.KeyNumpadEnter: input.KeyEnter,
	ebiten.KeyDelete:      input.KeyDelete,
	ebiten.KeyBackspace:   input.KeyDelete,
}

func isModifier(k ebiten.Key) bool {
	switch k {
	case ebiten.KeyShift, ebiten.KeyShiftLeft, ebiten.KeyShiftRight,
		ebiten.KeyControl, ebiten.KeyControlLeft, ebiten.KeyControlRight,
		ebiten.KeyAlt, ebiten.KeyAltLeft, ebiten.KeyAltRight,
		ebiten.KeyMeta, ebiten.KeyMetaLeft, ebiten.KeyMetaRight:
		return true
	}
	return false
}

// MapKey converts an ebiten key. Keys the editor has no binding for map to
// input.KeyUnknown.
func MapKey(k ebiten.Key) input.Key {
	return keyMap[k]
}

var buttonMap = [...]ebiten.MouseButton{
	ButtonLeft:   ebiten.MouseButtonLeft,
	ButtonRight:  ebiten.MouseButtonRight,
	ButtonMiddle: ebiten.MouseButtonMiddle,
}

// Ebiten reads the live ebiten input state. It must be used from within
// ebiten's Update.
type Ebiten struct {
	scratch []ebiten.Key
}

func NewDevice() *Ebiten {
	return &Ebiten{}
}

func (d *Ebiten) AppendJustPressedKeys(keys []input.Key) []input.Key {
	d.scratch = inpututil.AppendJustPressedKeys(d.scratch[:0])
	for _, k := range d.scratch {
		if isModifier(k) {
			continue
		}
		keys = append(keys, MapKey(k))
	}
	return keys
}

func (d *Ebiten) ShiftPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyShift)
}

// CtrlPressed also accepts the Meta key so Cmd+D duplicates on macOS.
func (d *Ebiten) CtrlPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}

func (d *Ebiten) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (d *Ebiten) Pressed(b Button) bool {
	return ebiten.IsMouseButtonPressed(buttonMap[b])
}

func (d *Ebiten) JustPressed(b Button) bool {
	return inpututil.IsMouseButtonJustPressed(buttonMap[b])
}

func (d *Ebiten) JustReleased(b Button) bool {
	return inpututil.IsMouseButtonJustReleased(buttonMap[b])
}

func (d *Ebiten) Wheel() (float64, float64) {
	return ebiten.Wheel()
}

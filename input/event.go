// Package input defines the event shapes the transform engine consumes and a
// Bus that platform adapters publish them on.
package input

import (
	"strings"

	"github.com/plus3/posekit/scene"
)

// Key is a platform-independent key identifier.
type Key int

const (
	KeyUnknown Key = iota
	KeyG
	KeyR
	KeyS
	KeyX
	KeyY
	KeyZ
	KeyD
	KeyEscape
	KeyEnter
	KeyDelete
)

var keyNames = map[Key]string{
	KeyUnknown: "Unknown",
	KeyG:       "G",
	KeyR:       "R",
	KeyS:       "S",
	KeyX:       "X",
	KeyY:       "Y",
	KeyZ:       "Z",
	KeyD:       "D",
	KeyEscape:  "Escape",
	KeyEnter:   "Enter",
	KeyDelete:  "Delete",
}

var keyAliases = map[string]Key{
	"g":      KeyG,
	"r":      KeyR,
	"s":      KeyS,
	"x":      KeyX,
	"y":      KeyY,
	"z":      KeyZ,
	"d":      KeyD,
	"escape": KeyEscape,
	"esc":    KeyEscape,
	"enter":  KeyEnter,
	"return": KeyEnter,
	"delete": KeyDelete,
	"del":    KeyDelete,
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return keyNames[KeyUnknown]
}

// ParseKey maps a key name to a Key, ignoring case. Unrecognized names give
// KeyUnknown.
func ParseKey(name string) Key {
	return keyAliases[strings.ToLower(strings.TrimSpace(name))]
}

// KeyEvent is a single key press with the modifier state at press time.
type KeyEvent struct {
	Key   Key
	Shift bool
	Ctrl  bool
}

// PointerMotion is raw pointer movement in screen pixels since the previous
// event. DY grows downward, as on screen.
type PointerMotion struct {
	DX, DY float64
}

// PointerUp is the release of the primary pointer button.
type PointerUp struct{}

// Click is a primary-button press, already resolved to the object under the
// pointer. Object is scene.NoObject when empty space was clicked.
type Click struct {
	Object scene.ObjectId
}

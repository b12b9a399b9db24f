package transform

import "strings"

// Mode is the active transform gesture, or ModeNone when idle.
type Mode int

const (
	ModeNone Mode = iota
	ModeTranslate
	ModeRotate
	ModeScale
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeTranslate:
		return "translate"
	case ModeRotate:
		return "rotate"
	case ModeScale:
		return "scale"
	}
	return "unknown"
}

// Axis is one spatial axis.
type Axis uint8

const (
	AxisX Axis = 1 << iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return "?"
}

// AxisSet constrains a gesture to some axes. The empty set means
// unconstrained, which each mode interprets differently.
type AxisSet uint8

const allAxes = AxisSet(AxisX | AxisY | AxisZ)

// NewAxisSet builds a set from individual axes.
func NewAxisSet(axes ...Axis) AxisSet {
	var s AxisSet
	for _, a := range axes {
		s |= AxisSet(a)
	}
	return s
}

func (s AxisSet) Has(a Axis) bool {
	return s&AxisSet(a) != 0
}

func (s AxisSet) Empty() bool {
	return s == 0
}

func (s AxisSet) Len() int {
	n := 0
	for _, a := range [...]Axis{AxisX, AxisY, AxisZ} {
		if s.Has(a) {
			n++
		}
	}
	return n
}

// toggle clears the set if it is exactly {a}, otherwise replaces it with {a}.
func (s AxisSet) toggle(a Axis) AxisSet {
	if s == AxisSet(a) {
		return 0
	}
	return AxisSet(a)
}

// complement returns the two axes other than a.
func complement(a Axis) AxisSet {
	return allAxes &^ AxisSet(a)
}

func (s AxisSet) String() string {
	var names []string
	for _, a := range [...]Axis{AxisX, AxisY, AxisZ} {
		if s.Has(a) {
			names = append(names, a.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}

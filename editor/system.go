// Package editor runs per-frame systems over a scene.
package editor

import "github.com/plus3/posekit/scene"

// System is one step of the frame loop. Systems may keep state between
// frames; structural scene changes should go through frame.Commands.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(frame *Frame)

func (f SystemFunc) Execute(frame *Frame) {
	f(frame)
}

// Frame is handed to every system during one scheduler pass.
type Frame struct {
	DeltaTime float64
	Commands  *Commands
	Scene     *scene.Store
}

func newFrame(dt float64, store *scene.Store, commands *Commands) *Frame {
	return &Frame{
		DeltaTime: dt,
		Commands:  commands,
		Scene:     store,
	}
}

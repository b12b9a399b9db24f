// Package debugui draws Dear ImGui panels for inspecting and editing the
// scene while the editor runs.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/posekit/editor"
)

// Panel is one ImGui window. Render runs after every system of the frame,
// between the backend's BeginFrame and EndFrame.
type Panel interface {
	Render(frame *editor.Frame)
}

// PanelFunc adapts a function to Panel.
type PanelFunc func(frame *editor.Frame)

func (f PanelFunc) Render(frame *editor.Frame) {
	f(frame)
}

// InputCapture mirrors whether ImGui wants the mouse or keyboard this frame.
type InputCapture struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System refreshes InputCapture and defers every panel's Render.
type System struct {
	panels  []Panel
	capture InputCapture
	io      func() InputCapture
}

// NewSystem creates a system that renders panels in order.
func NewSystem(panels ...Panel) *System {
	return &System{
		panels: panels,
		io:     imguiCapture,
	}
}

func imguiCapture() InputCapture {
	io := imgui.CurrentIO()
	return InputCapture{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
}

// Add appends a panel.
func (s *System) Add(p Panel) {
	s.panels = append(s.panels, p)
}

// Capture returns the state read during the last Execute. Its shape matches
// the input poller's capture hook.
func (s *System) Capture() (mouse, keyboard bool) {
	return s.capture.WantCaptureMouse, s.capture.WantCaptureKeyboard
}

func (s *System) Execute(frame *editor.Frame) {
	s.capture = s.io()
	for _, p := range s.panels {
		frame.Commands.Defer(func() {
			p.Render(frame)
		})
	}
}

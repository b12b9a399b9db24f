// Package ebiten hosts the debug panels on the cimgui-go ebiten backend.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// Backend wraps the ebiten Dear ImGui backend. Call BeginFrame before the
// scheduler runs, EndFrame after it, and Draw on top of the scene.
type Backend struct {
	*ebitenbackend.EbitenBackend
}

// NewBackend creates the ebiten window and the ImGui context. No imgui.ini
// is written.
func NewBackend(title string, width, height int) *Backend {
	b := ebitenbackend.NewEbitenBackend()
	b.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &Backend{EbitenBackend: b}
}

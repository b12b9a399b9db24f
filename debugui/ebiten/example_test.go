package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/posekit/debugui"
	debugui_ebiten "github.com/plus3/posekit/debugui/ebiten"
	"github.com/plus3/posekit/editor"
	"github.com/plus3/posekit/scene"
)

// Game runs the scheduler inside an ImGui frame.
type Game struct {
	scheduler *editor.Scheduler
	backend   *debugui_ebiten.Backend
}

func (g *Game) Update() error {
	g.backend.BeginFrame()
	g.scheduler.Once(1.0 / 60.0)
	g.backend.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewBackend("posekit panels", 1280, 720)

	store := scene.NewStore()
	store.Create(scene.IdentityPose(), scene.Appearance{Geometry: scene.GeometryBox})

	scheduler := editor.NewScheduler(store)
	scheduler.Register(debugui.NewSystem(
		debugui.PanelFunc(func(frame *editor.Frame) {
			imgui.Begin("Scene")
			imgui.Text("Objects in scene")
			imgui.End()
		}),
		debugui.NewPerformanceStats(scheduler, 120),
	))

	if err := ebiten.RunGame(&Game{scheduler: scheduler, backend: backend}); err != nil {
		panic(err)
	}
}

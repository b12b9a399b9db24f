package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/posekit/editor"
	"github.com/plus3/posekit/scene"
)

// PerformanceStats plots frame times and lists per-system timings.
type PerformanceStats struct {
	scheduler    *editor.Scheduler
	frameHistory []float32
	frameIndex   int
	recorded     int
}

func NewPerformanceStats(scheduler *editor.Scheduler, historyFrames int) *PerformanceStats {
	if historyFrames <= 0 {
		historyFrames = 120
	}
	return &PerformanceStats{
		scheduler:    scheduler,
		frameHistory: make([]float32, historyFrames),
	}
}

// Record adds one frame time in seconds.
func (ps *PerformanceStats) Record(deltaTime float64) {
	ps.frameHistory[ps.frameIndex] = float32(deltaTime * 1000)
	ps.frameIndex = (ps.frameIndex + 1) % len(ps.frameHistory)
	if ps.recorded < len(ps.frameHistory) {
		ps.recorded++
	}
}

// AverageFrameTime returns the mean of recorded frame times in milliseconds.
func (ps *PerformanceStats) AverageFrameTime() float32 {
	if ps.recorded == 0 {
		return 0
	}
	var sum float32
	for _, ft := range ps.frameHistory[:ps.recorded] {
		sum += ft
	}
	return sum / float32(ps.recorded)
}

func (ps *PerformanceStats) Render(frame *editor.Frame) {
	ps.Record(frame.DeltaTime)

	imgui.SetNextWindowPosV(imgui.NewVec2(340, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 300), imgui.CondOnce)
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := ps.AverageFrameTime()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}
	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	renderSceneStats(frame.Scene.CollectStats())

	if imgui.TreeNodeStr("Systems") {
		stats := ps.scheduler.Stats()
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, s := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(s.Name)
				imgui.TableNextColumn()
				imgui.Text(s.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(s.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(s.MaxDuration.String())
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func renderSceneStats(stats scene.Stats) {
	if !imgui.TreeNodeStr("Scene Storage") {
		return
	}
	imgui.BulletText(fmt.Sprintf("Objects: %d", stats.ObjectCount))
	imgui.BulletText(fmt.Sprintf("Slots: %d (%d free)", stats.SlotCount, stats.FreeSlots))
	imgui.BulletText(fmt.Sprintf("Capacity: %d", stats.Capacity))
	imgui.BulletText(fmt.Sprintf("Max Id: %d", stats.MaxId))
	imgui.TreePop()
}

package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/posekit/editor"
	"github.com/plus3/posekit/scene"
	"github.com/plus3/posekit/transform"
)

// TransformInspector shows the engine state and the selected object's pose.
// The pose is editable only while no gesture runs.
type TransformInspector struct {
	engine *transform.Engine
	store  *scene.Store
	status string
}

func NewTransformInspector(engine *transform.Engine, store *scene.Store) *TransformInspector {
	return &TransformInspector{engine: engine, store: store}
}

// Summary returns the read-only lines shown at the top of the panel.
func (ti *TransformInspector) Summary() []string {
	state := ti.engine.State()
	stats := ti.engine.Stats()

	lines := []string{
		fmt.Sprintf("Selection: %s", selectionLabel(state.Selection)),
		fmt.Sprintf("Mode: %s", state.Mode),
		fmt.Sprintf("Axes: %s", state.Axes),
		fmt.Sprintf("Snapshot: %t", state.HasSnapshot),
		fmt.Sprintf("Gestures: %d  Commits: %d  Cancels: %d  Aborts: %d",
			stats.Gestures, stats.Commits, stats.Cancels, stats.Aborts),
	}
	if ti.status != "" {
		lines = append(lines, ti.status)
	}
	return lines
}

func selectionLabel(id scene.ObjectId) string {
	if id == scene.NoObject {
		return "none"
	}
	return fmt.Sprintf("#%d", id)
}

// Duplicate runs the engine's duplicate and records the outcome for display.
func (ti *TransformInspector) Duplicate() {
	id, err := ti.engine.Duplicate()
	ti.setStatus("duplicate", id, err)
}

// Delete runs the engine's delete and records the outcome for display.
func (ti *TransformInspector) Delete() {
	id, err := ti.engine.Delete()
	ti.setStatus("delete", id, err)
}

func (ti *TransformInspector) setStatus(op string, id scene.ObjectId, err error) {
	if err != nil {
		ti.status = fmt.Sprintf("%s: %v", op, err)
		return
	}
	ti.status = fmt.Sprintf("%s: #%d", op, id)
}

// SetComponent writes one pose component of the selection. It refuses while
// a gesture runs so the snapshot stays meaningful.
func (ti *TransformInspector) SetComponent(field string, axis int, value float64) bool {
	state := ti.engine.State()
	if state.Active() || state.Selection == scene.NoObject {
		return false
	}
	return ti.store.UpdatePose(state.Selection, func(p *scene.Pose) {
		switch field {
		case "Position":
			p.Position[axis] = value
		case "Rotation":
			p.Rotation[axis] = value
		case "Scale":
			p.Scale[axis] = value
		}
	})
}

func (ti *TransformInspector) Render(frame *editor.Frame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 330), imgui.CondOnce)
	if !imgui.BeginV("Transform", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	for _, line := range ti.Summary() {
		imgui.Text(line)
	}
	imgui.Separator()

	state := ti.engine.State()
	if obj, ok := ti.store.Get(state.Selection); ok {
		editable := !state.Active()
		ti.renderVec("Position", obj.Pose.Position, editable)
		ti.renderVec("Rotation", obj.Pose.Rotation, editable)
		ti.renderVec("Scale", obj.Pose.Scale, editable)
		imgui.Text(fmt.Sprintf("Geometry: %s  Color: #%02x%02x%02x", obj.Appearance.Geometry,
			obj.Appearance.Color[0], obj.Appearance.Color[1], obj.Appearance.Color[2]))
		imgui.Separator()

		if imgui.Button("Duplicate") {
			ti.Duplicate()
		}
		imgui.SameLine()
		if imgui.Button("Delete") {
			ti.Delete()
		}
	} else {
		imgui.Text("Click an object to select it")
	}

	imgui.Separator()
	if imgui.Button("Spawn Box") {
		frame.Commands.Spawn(scene.IdentityPose(), scene.Appearance{
			Color:    [3]uint8{200, 200, 200},
			Geometry: scene.GeometryBox,
		})
	}

	imgui.End()
}

func (ti *TransformInspector) renderVec(name string, v mgl64.Vec3, editable bool) {
	if !editable {
		imgui.Text(fmt.Sprintf("%s: %.3f %.3f %.3f", name, v[0], v[1], v[2]))
		return
	}
	imgui.Text(name)
	for axis, label := range [...]string{"X", "Y", "Z"} {
		f := float32(v[axis])
		imgui.SameLine()
		imgui.SetNextItemWidth(70)
		if imgui.InputFloat(fmt.Sprintf("%s##%s", label, name), &f) {
			ti.SetComponent(name, axis, float64(f))
		}
	}
}

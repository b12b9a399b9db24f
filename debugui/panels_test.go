package debugui_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/posekit/debugui"
	"github.com/plus3/posekit/editor"
	"github.com/plus3/posekit/input"
	"github.com/plus3/posekit/nav"
	"github.com/plus3/posekit/scene"
	"github.com/plus3/posekit/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store  *scene.Store
	bus    *input.Bus
	engine *transform.Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{store: scene.NewStore(), bus: input.NewBus()}
	f.engine = transform.New(f.store, nav.NewOrbitCamera(5), f.bus)
	t.Cleanup(f.engine.Close)
	return f
}

func (f *fixture) add(x float64, g scene.Geometry) scene.ObjectId {
	p := scene.IdentityPose()
	p.Position = mgl64.Vec3{x, 0, 0}
	return f.store.Create(p, scene.Appearance{Geometry: g})
}

func TestInspectorSummary(t *testing.T) {
	f := newFixture(t)
	id := f.add(0, scene.GeometryBox)
	ti := debugui.NewTransformInspector(f.engine, f.store)

	assert.Equal(t, "Selection: none", ti.Summary()[0])

	require.NoError(t, f.engine.Select(id))
	f.bus.PublishKey(input.KeyEvent{Key: input.KeyS})
	f.bus.PublishKey(input.KeyEvent{Key: input.KeyY, Shift: true})

	assert.Equal(t, []string{
		"Selection: #1",
		"Mode: scale",
		"Axes: {X,Z}",
		"Snapshot: true",
		"Gestures: 1  Commits: 0  Cancels: 0  Aborts: 0",
	}, ti.Summary())
}

func TestInspectorButtons(t *testing.T) {
	f := newFixture(t)
	id := f.add(2, scene.GeometrySphere)
	ti := debugui.NewTransformInspector(f.engine, f.store)

	ti.Duplicate()
	assert.Contains(t, ti.Summary(), "duplicate: transform: no object selected")

	require.NoError(t, f.engine.Select(id))
	ti.Duplicate()
	assert.Contains(t, ti.Summary(), "duplicate: #2")
	assert.Equal(t, 2, f.store.Len())

	ti.Delete()
	assert.Contains(t, ti.Summary(), "delete: #2")
	assert.False(t, f.store.Has(2))
}

func TestInspectorEditsOnlyWhileIdle(t *testing.T) {
	f := newFixture(t)
	id := f.add(0, scene.GeometryBox)
	ti := debugui.NewTransformInspector(f.engine, f.store)

	assert.False(t, ti.SetComponent("Position", 0, 3), "nothing selected")

	require.NoError(t, f.engine.Select(id))
	assert.True(t, ti.SetComponent("Scale", 1, 2))
	pose, _ := f.store.Pose(id)
	assert.Equal(t, mgl64.Vec3{1, 2, 1}, pose.Scale)

	f.bus.PublishKey(input.KeyEvent{Key: input.KeyG})
	assert.False(t, ti.SetComponent("Position", 0, 3))
	f.bus.PublishKey(input.KeyEvent{Key: input.KeyEscape})
	pose, _ = f.store.Pose(id)
	assert.Equal(t, mgl64.Vec3{1, 2, 1}, pose.Scale)
	assert.Equal(t, 0.0, pose.Position.X())
}

func TestSceneBrowser(t *testing.T) {
	f := newFixture(t)
	f.add(1, scene.GeometryBox)
	f.add(2, scene.GeometrySphere)
	f.add(3, scene.GeometryCylinder)

	sb := debugui.NewSceneBrowser(f.engine, f.store, 10)
	defer sb.Close()

	rows := sb.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, debugui.ObjectRow{Id: 1, Geometry: "box", Position: "1.00, 0.00, 0.00"}, rows[0])

	sb.SortBy(1, false)
	assert.Equal(t, []scene.ObjectId{2, 3, 1}, ids(sb.Rows()))

	sb.SetFilter("CYL")
	assert.Equal(t, []scene.ObjectId{3}, ids(sb.Rows()))
	sb.SetFilter("2.00")
	assert.Equal(t, []scene.ObjectId{2}, ids(sb.Rows()))
	sb.SetFilter("")

	f.add(4, scene.GeometryBox)
	assert.Len(t, sb.Rows(), 4, "store changes refresh the rows")

	require.NoError(t, sb.Select(3))
	f.bus.PublishKey(input.KeyEvent{Key: input.KeyR})
	assert.ErrorIs(t, sb.Select(1), transform.ErrGestureActive)
	assert.Equal(t, scene.ObjectId(3), f.engine.State().Selection)
}

func ids(rows []debugui.ObjectRow) []scene.ObjectId {
	out := make([]scene.ObjectId, len(rows))
	for i, r := range rows {
		out[i] = r.Id
	}
	return out
}

func TestPerformanceStats(t *testing.T) {
	ps := debugui.NewPerformanceStats(editor.NewScheduler(scene.NewStore()), 3)
	assert.Zero(t, ps.AverageFrameTime())

	ps.Record(0.010)
	ps.Record(0.020)
	assert.InDelta(t, 15, ps.AverageFrameTime(), 1e-4)

	ps.Record(0.030)
	ps.Record(0.040)
	assert.InDelta(t, 30, ps.AverageFrameTime(), 1e-4, "oldest sample is overwritten")
}

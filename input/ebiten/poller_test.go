package ebiten_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/posekit/input"
	inputebiten "github.com/plus3/posekit/input/ebiten"
	"github.com/plus3/posekit/nav"
	"github.com/plus3/posekit/scene"
	"github.com/plus3/posekit/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDevice holds the state for the next Poll; frame() clears edge events.
type fakeDevice struct {
	keys         []input.Key
	shift, ctrl  bool
	x, y         int
	pressed      map[inputebiten.Button]bool
	justPressed  map[inputebiten.Button]bool
	justReleased map[inputebiten.Button]bool
	wheel        float64
}

func newFakeDevice() *fakeDevice {
	d := &fakeDevice{pressed: map[inputebiten.Button]bool{}}
	d.frame()
	return d
}

func (d *fakeDevice) frame() {
	d.keys = nil
	d.justPressed = map[inputebiten.Button]bool{}
	d.justReleased = map[inputebiten.Button]bool{}
	d.wheel = 0
}

func (d *fakeDevice) press(b inputebiten.Button) {
	d.pressed[b] = true
	d.justPressed[b] = true
}

func (d *fakeDevice) release(b inputebiten.Button) {
	d.pressed[b] = false
	d.justReleased[b] = true
}

func (d *fakeDevice) AppendJustPressedKeys(keys []input.Key) []input.Key {
	return append(keys, d.keys...)
}
func (d *fakeDevice) ShiftPressed() bool { return d.shift }
func (d *fakeDevice) CtrlPressed() bool { return d.ctrl }
func (d *fakeDevice) CursorPosition() (int, int) { return d.x, d.y }
func (d *fakeDevice) Pressed(b inputebiten.Button) bool { return d.pressed[b] }
func (d *fakeDevice) JustPressed(b inputebiten.Button) bool { return d.justPressed[b] }
func (d *fakeDevice) JustReleased(b inputebiten.Button) bool { return d.justReleased[b] }
func (d *fakeDevice) Wheel() (float64, float64) { return 0, d.wheel }

type rig struct {
	device *fakeDevice
	bus    *input.Bus
	store  *scene.Store
	camera *nav.OrbitCamera
	engine *transform.Engine
	poller *inputebiten.Poller
	object scene.ObjectId
}

func newRig(t *testing.T, opts ...inputebiten.Option) *rig {
	t.Helper()
	r := &rig{
		device: newFakeDevice(),
		bus:    input.NewBus(),
		store:  scene.NewStore(),
		camera: nav.NewOrbitCamera(5),
	}
	r.object = r.store.Create(scene.IdentityPose(), scene.Appearance{})
	r.engine = transform.New(r.store, r.camera, r.bus)
	t.Cleanup(r.engine.Close)

	picker := inputebiten.PickerFunc(func(x, y float64) scene.ObjectId {
		if x < 100 {
			return r.object
		}
		return scene.NoObject
	})
	opts = append([]inputebiten.Option{inputebiten.WithPicker(picker), inputebiten.WithCamera(r.camera)}, opts...)
	r.poller = inputebiten.NewPoller(r.device, r.bus, opts...)
	return r
}

func (r *rig) poll() {
	r.poller.Poll()
	r.device.frame()
}

func TestPollerDrivesGesture(t *testing.T) {
	r := newRig(t)
	r.device.x, r.device.y = 50, 50
	r.poll()

	r.device.press(inputebiten.ButtonLeft)
	r.poll()
	require.Equal(t, r.object, r.engine.State().Selection)

	r.device.pressed[inputebiten.ButtonLeft] = false
	r.device.keys = []input.Key{input.KeyG}
	r.poll()
	require.Equal(t, transform.ModeTranslate, r.engine.State().Mode)

	r.device.x = 150
	r.poll()
	pose, _ := r.store.Pose(r.object)
	assert.True(t, mgl64.Vec3{1, 0, 0}.ApproxEqual(pose.Position), "got %v", pose.Position)

	r.device.y = 0
	r.poll()
	pose, _ = r.store.Pose(r.object)
	assert.True(t, mgl64.Vec3{1, 0.5, 0}.ApproxEqual(pose.Position), "screen up moves +Y, got %v", pose.Position)

	r.device.release(inputebiten.ButtonLeft)
	r.poll()
	assert.Equal(t, transform.ModeNone, r.engine.State().Mode)
	assert.Equal(t, 1, r.engine.Stats().Commits)

	stats := r.poller.Stats()
	assert.Equal(t, 1, stats.Keys)
	assert.Equal(t, 1, stats.Consumed)
	assert.Equal(t, 1, stats.Clicks)
	assert.Equal(t, 2, stats.Motion)
	assert.Equal(t, 1, stats.PointerUps)
}

func TestPollerFirstFrameHasNoMotion(t *testing.T) {
	r := newRig(t)
	r.device.x, r.device.y = 300, 200
	r.poll()
	assert.Equal(t, 0, r.poller.Stats().Motion)
}

func TestPollerModifiers(t *testing.T) {
	r := newRig(t)
	var got []input.KeyEvent
	r.bus.OnKey(func(ev input.KeyEvent) bool {
		got = append(got, ev)
		return false
	})

	r.device.ctrl = true
	r.device.keys = []input.Key{input.KeyD}
	r.poll()
	r.device.ctrl = false
	r.device.shift = true
	r.device.keys = []input.Key{input.KeyX, input.KeyUnknown}
	r.poll()

	assert.Equal(t, []input.KeyEvent{
		{Key: input.KeyD, Ctrl: true},
		{Key: input.KeyX, Shift: true},
		{Key: input.KeyUnknown, Shift: true},
	}, got)
	assert.Equal(t, 1, r.poller.Stats().Consumed, "ctrl+d is consumed even with nothing selected")
}

func TestPollerClickOnEmptySpace(t *testing.T) {
	r := newRig(t)
	var clicks []input.Click
	r.bus.OnClick(func(c input.Click) { clicks = append(clicks, c) })

	r.device.x = 500
	r.device.press(inputebiten.ButtonLeft)
	r.poll()

	assert.Equal(t, []input.Click{{Object: scene.NoObject}}, clicks)
	assert.Equal(t, scene.NoObject, r.engine.State().Selection)
}

func TestPollerCameraNavigation(t *testing.T) {
	r := newRig(t)
	r.poll()

	yaw := r.camera.Yaw
	r.device.pressed[inputebiten.ButtonRight] = true
	r.device.x = 20
	r.poll()
	assert.NotEqual(t, yaw, r.camera.Yaw)

	r.device.pressed[inputebiten.ButtonRight] = false
	r.device.pressed[inputebiten.ButtonMiddle] = true
	target := r.camera.Target
	r.device.x = 40
	r.poll()
	assert.NotEqual(t, target, r.camera.Target)

	r.device.wheel = 2
	r.poll()
	assert.Equal(t, 4.0, r.camera.Distance)
}

func TestPollerCameraFrozenDuringGesture(t *testing.T) {
	r := newRig(t)
	require.NoError(t, r.engine.Select(r.object))
	r.device.keys = []input.Key{input.KeyR}
	r.poll()
	require.False(t, r.camera.Enabled())

	yaw, dist := r.camera.Yaw, r.camera.Distance
	r.device.pressed[inputebiten.ButtonRight] = true
	r.device.x = 80
	r.device.wheel = 3
	r.poll()

	assert.Equal(t, yaw, r.camera.Yaw)
	assert.Equal(t, dist, r.camera.Distance)
}

func TestPollerRespectsCapture(t *testing.T) {
	mouse, keyboard := true, true
	r := newRig(t, inputebiten.WithCapture(func() (bool, bool) { return mouse, keyboard }))
	require.NoError(t, r.engine.Select(r.object))

	r.device.keys = []input.Key{input.KeyG}
	r.poll()
	assert.Equal(t, transform.ModeNone, r.engine.State().Mode)

	keyboard = false
	r.device.keys = []input.Key{input.KeyG}
	r.poll()
	require.Equal(t, transform.ModeTranslate, r.engine.State().Mode)

	r.device.x = 100
	r.device.press(inputebiten.ButtonLeft)
	r.poll()
	pose, _ := r.store.Pose(r.object)
	assert.Equal(t, mgl64.Vec3{}, pose.Position, "captured motion is dropped")
	assert.Equal(t, 0, r.poller.Stats().Clicks)

	r.device.release(inputebiten.ButtonLeft)
	r.poll()
	assert.Equal(t, transform.ModeNone, r.engine.State().Mode, "release over the overlay still commits")
}

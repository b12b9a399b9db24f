// Package transform turns key presses and pointer motion into live edits of
// one selected object's pose, with commit and cancel.
//
// The engine is either idle or running a gesture. A gesture starts with G, R
// or S while an object is selected, takes a snapshot of the pose, disables
// camera navigation and listens for pointer motion. Every motion event edits
// the stored pose directly. Enter or a pointer release keeps the edits;
// Escape writes the snapshot back. Either way navigation is re-enabled and
// the motion listener is detached.
package transform

import (
	"errors"

	"github.com/plus3/posekit/input"
	"github.com/plus3/posekit/nav"
	"github.com/plus3/posekit/scene"
	"go.uber.org/zap"
)

var (
	ErrNoSelection   = errors.New("transform: no object selected")
	ErrGestureActive = errors.New("transform: gesture in progress")
	ErrUnknownObject = errors.New("transform: object not in scene")
)

// EventSource delivers input events. *input.Bus implements it.
type EventSource interface {
	OnKey(fn func(input.KeyEvent) bool) (cancel func())
	OnClick(fn func(input.Click)) (cancel func())
	OnMotion(fn func(input.PointerMotion)) (cancel func())
	OnPointerUp(fn func(input.PointerUp)) (cancel func())
}

// State is a read-only view of the engine for renderers and inspectors.
type State struct {
	Selection   scene.ObjectId
	Mode        Mode
	Axes        AxisSet
	HasSnapshot bool
}

// Active reports whether a gesture is running.
func (s State) Active() bool {
	return s.Mode != ModeNone
}

// Stats counts gesture outcomes since the engine was created.
type Stats struct {
	Gestures     int
	Commits      int
	Cancels      int
	Aborts       int
	MotionEvents int
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. No-op transitions are logged at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithSensitivity overrides DefaultSensitivity.
func WithSensitivity(s Sensitivity) Option {
	return func(e *Engine) {
		e.sens = s
	}
}

// Engine is the interactive transform state machine. All methods must be
// called from the goroutine that publishes input events.
type Engine struct {
	store  *scene.Store
	gate   nav.Gate
	source EventSource
	logger *zap.Logger
	sens   Sensitivity

	selection scene.ObjectId
	mode      Mode
	axes      AxisSet
	snapshot  *scene.Pose

	subscriptions []func()
	gestureSubs   []func()
	stats         Stats
}

// New creates an idle engine with nothing selected and subscribes it to key
// and click events from source and to changes in store.
func New(store *scene.Store, gate nav.Gate, source EventSource, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		gate:   gate,
		source: source,
		logger: zap.NewNop(),
		sens:   DefaultSensitivity(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}

	e.subscriptions = append(e.subscriptions,
		source.OnKey(e.HandleKey),
		source.OnClick(e.handleClick),
		store.Subscribe(e.handleSceneChange),
	)
	return e
}

// Close aborts any gesture and detaches the engine from its event source and
// store.
func (e *Engine) Close() {
	if e.mode != ModeNone {
		e.abort("engine closed")
	}
	for _, cancel := range e.subscriptions {
		cancel()
	}
	e.subscriptions = nil
}

// State returns the current selection and gesture state.
func (e *Engine) State() State {
	return State{
		Selection:   e.selection,
		Mode:        e.mode,
		Axes:        e.axes,
		HasSnapshot: e.snapshot != nil,
	}
}

// Stats returns gesture counters.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Sensitivity returns the sensitivity in use.
func (e *Engine) Sensitivity() Sensitivity {
	return e.sens
}

// SetSensitivity replaces the sensitivity. It takes effect on the next
// motion event, including mid-gesture.
func (e *Engine) SetSensitivity(s Sensitivity) {
	e.sens = s
}

// HandleKey applies one key press. It returns true when the key was acted on
// or must not reach the platform's default handler (Ctrl+D always).
func (e *Engine) HandleKey(ev input.KeyEvent) bool {
	if ev.Ctrl {
		if ev.Key == input.KeyD {
			if _, err := e.Duplicate(); err != nil {
				e.ignore("duplicate", ev, err)
			}
			return true
		}
		e.ignore("ctrl shortcut", ev, nil)
		return false
	}

	switch ev.Key {
	case input.KeyG:
		return e.begin(ModeTranslate, ev)
	case input.KeyR:
		return e.begin(ModeRotate, ev)
	case input.KeyS:
		return e.begin(ModeScale, ev)
	case input.KeyX:
		return e.constrain(AxisX, ev)
	case input.KeyY:
		return e.constrain(AxisY, ev)
	case input.KeyZ:
		return e.constrain(AxisZ, ev)
	case input.KeyEnter:
		if e.mode == ModeNone {
			e.ignore("commit while idle", ev, nil)
			return false
		}
		e.commit()
		return true
	case input.KeyEscape:
		if e.mode == ModeNone {
			e.ignore("cancel while idle", ev, nil)
			return false
		}
		e.cancel()
		return true
	case input.KeyDelete:
		if _, err := e.Delete(); err != nil {
			e.ignore("delete", ev, err)
			return false
		}
		return true
	}

	e.logger.Debug("unrecognized key", zap.Stringer("key", ev.Key))
	return false
}

func (e *Engine) begin(mode Mode, ev input.KeyEvent) bool {
	if e.mode != ModeNone {
		e.ignore("mode key during gesture", ev, nil)
		return false
	}
	if e.selection == scene.NoObject {
		e.ignore("mode key", ev, ErrNoSelection)
		return false
	}

	pose, ok := e.store.Pose(e.selection)
	if !ok {
		e.logger.Warn("selected object vanished before gesture start",
			zap.Int64("selection", int64(e.selection)))
		e.selection = scene.NoObject
		return false
	}

	e.snapshot = &pose
	e.mode = mode
	e.axes = 0
	e.gate.SetEnabled(false)
	e.gestureSubs = append(e.gestureSubs,
		e.source.OnMotion(e.handleMotion),
		e.source.OnPointerUp(e.handlePointerUp),
	)
	e.stats.Gestures++

	e.logger.Debug("gesture started",
		zap.Stringer("mode", mode),
		zap.Int64("selection", int64(e.selection)))
	return true
}

func (e *Engine) constrain(axis Axis, ev input.KeyEvent) bool {
	if e.mode == ModeNone {
		e.ignore("axis key while idle", ev, nil)
		return false
	}
	if ev.Shift {
		e.axes = complement(axis)
	} else {
		e.axes = e.axes.toggle(axis)
	}
	e.logger.Debug("axes changed", zap.Stringer("axes", e.axes))
	return true
}

func (e *Engine) commit() {
	e.stats.Commits++
	e.logger.Debug("gesture committed",
		zap.Stringer("mode", e.mode),
		zap.Int64("selection", int64(e.selection)))
	e.end()
}

func (e *Engine) cancel() {
	if !e.store.SetPose(e.selection, *e.snapshot) {
		e.abort("selected object missing on cancel")
		e.selection = scene.NoObject
		return
	}
	e.stats.Cancels++
	e.logger.Debug("gesture cancelled",
		zap.Stringer("mode", e.mode),
		zap.Int64("selection", int64(e.selection)))
	e.end()
}

// abort ends a gesture without touching the store.
func (e *Engine) abort(reason string) {
	e.stats.Aborts++
	e.logger.Warn("gesture aborted",
		zap.String("reason", reason),
		zap.Stringer("mode", e.mode),
		zap.Int64("selection", int64(e.selection)))
	e.end()
}

// end returns to idle: detach motion, drop the snapshot, re-enable navigation.
func (e *Engine) end() {
	for _, cancel := range e.gestureSubs {
		cancel()
	}
	e.gestureSubs = e.gestureSubs[:0]
	e.snapshot = nil
	e.mode = ModeNone
	e.axes = 0
	e.gate.SetEnabled(true)
}

func (e *Engine) handleMotion(m input.PointerMotion) {
	if e.mode == ModeNone {
		return
	}
	e.stats.MotionEvents++

	dx, dy := m.DX, -m.DY
	distance := e.gate.DistanceFromTarget()
	ok := e.store.UpdatePose(e.selection, func(p *scene.Pose) {
		applyMotion(p, e.mode, e.axes, dx, dy, e.sens, distance)
	})
	if !ok {
		e.abort("selected object missing during drag")
		e.selection = scene.NoObject
	}
}

func (e *Engine) handlePointerUp(input.PointerUp) {
	if e.mode == ModeNone {
		return
	}
	e.commit()
}

func (e *Engine) handleClick(c input.Click) {
	if e.mode != ModeNone {
		e.logger.Debug("click ignored during gesture", zap.Int64("object", int64(c.Object)))
		return
	}
	if c.Object == scene.NoObject {
		return
	}
	if err := e.Select(c.Object); err != nil {
		e.logger.Debug("click ignored", zap.Int64("object", int64(c.Object)), zap.Error(err))
	}
}

// handleSceneChange drops the selection when something else deletes it.
func (e *Engine) handleSceneChange(c scene.Change) {
	if c.Kind != scene.Deleted || c.Id != e.selection || e.selection == scene.NoObject {
		return
	}
	if e.mode != ModeNone {
		e.abort("selected object deleted")
	}
	e.selection = scene.NoObject
}

func (e *Engine) ignore(what string, ev input.KeyEvent, err error) {
	fields := []zap.Field{
		zap.Stringer("key", ev.Key),
		zap.Bool("shift", ev.Shift),
		zap.Bool("ctrl", ev.Ctrl),
		zap.Stringer("mode", e.mode),
		zap.Stringer("axes", e.axes),
		zap.Int64("selection", int64(e.selection)),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	e.logger.Debug("ignored "+what, fields...)
}

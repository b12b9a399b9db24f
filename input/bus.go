package input

import "slices"

type subscription[T any] struct {
	fn T
}

// topic is an ordered list of handlers that can be removed while publishing.
type topic[T any] struct {
	subs []*subscription[T]
}

func (t *topic[T]) add(fn T) func() {
	s := &subscription[T]{fn: fn}
	t.subs = append(t.subs, s)
	return func() {
		t.subs = slices.DeleteFunc(t.subs, func(other *subscription[T]) bool {
			return other == s
		})
	}
}

func (t *topic[T]) snapshot() []*subscription[T] {
	return slices.Clone(t.subs)
}

// Bus fans out input events to subscribers. Each event is delivered to
// completion before Publish returns; there is no queueing.
type Bus struct {
	keys     topic[func(KeyEvent) bool]
	clicks   topic[func(Click)]
	motion   topic[func(PointerMotion)]
	pointers topic[func(PointerUp)]
}

// NewBus creates a Bus with no subscribers.
func NewBus() *Bus {
	return &Bus{}
}

// OnKey subscribes to key presses. A handler returns true when it consumed the
// key and the platform's default action for it must be suppressed.
func (b *Bus) OnKey(fn func(KeyEvent) bool) (cancel func()) {
	return b.keys.add(fn)
}

func (b *Bus) OnClick(fn func(Click)) (cancel func()) {
	return b.clicks.add(fn)
}

func (b *Bus) OnMotion(fn func(PointerMotion)) (cancel func()) {
	return b.motion.add(fn)
}

func (b *Bus) OnPointerUp(fn func(PointerUp)) (cancel func()) {
	return b.pointers.add(fn)
}

// PublishKey delivers ev to every key handler and reports whether any of them
// consumed it.
func (b *Bus) PublishKey(ev KeyEvent) (consumed bool) {
	for _, s := range b.keys.snapshot() {
		if s.fn(ev) {
			consumed = true
		}
	}
	return consumed
}

func (b *Bus) PublishClick(ev Click) {
	for _, s := range b.clicks.snapshot() {
		s.fn(ev)
	}
}

func (b *Bus) PublishMotion(ev PointerMotion) {
	for _, s := range b.motion.snapshot() {
		s.fn(ev)
	}
}

func (b *Bus) PublishPointerUp(ev PointerUp) {
	for _, s := range b.pointers.snapshot() {
		s.fn(ev)
	}
}

// MotionSubscribers returns how many motion handlers are attached.
func (b *Bus) MotionSubscribers() int {
	return len(b.motion.subs)
}

// PointerUpSubscribers returns how many pointer-up handlers are attached.
func (b *Bus) PointerUpSubscribers() int {
	return len(b.pointers.subs)
}

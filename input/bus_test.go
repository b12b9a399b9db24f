package input_test

import (
	"testing"

	"github.com/plus3/posekit/input"
	"github.com/plus3/posekit/scene"
	"github.com/stretchr/testify/assert"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want input.Key
	}{
		{"g", input.KeyG},
		{"G", input.KeyG},
		{"r", input.KeyR},
		{"S", input.KeyS},
		{"x", input.KeyX},
		{"Y", input.KeyY},
		{"z", input.KeyZ},
		{"D", input.KeyD},
		{"Escape", input.KeyEscape},
		{"esc", input.KeyEscape},
		{"ENTER", input.KeyEnter},
		{"Return", input.KeyEnter},
		{"Delete", input.KeyDelete},
		{" del ", input.KeyDelete},
		{"F13", input.KeyUnknown},
		{"", input.KeyUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, input.ParseKey(tt.name))
		})
	}
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "G", input.KeyG.String())
	assert.Equal(t, "Escape", input.KeyEscape.String())
	assert.Equal(t, "Unknown", input.Key(999).String())
}

func TestPublishKeyReportsConsumption(t *testing.T) {
	bus := input.NewBus()

	assert.False(t, bus.PublishKey(input.KeyEvent{Key: input.KeyD, Ctrl: true}))

	var seen []input.KeyEvent
	bus.OnKey(func(ev input.KeyEvent) bool {
		seen = append(seen, ev)
		return false
	})
	bus.OnKey(func(ev input.KeyEvent) bool {
		return ev.Ctrl && ev.Key == input.KeyD
	})

	assert.True(t, bus.PublishKey(input.KeyEvent{Key: input.KeyD, Ctrl: true}))
	assert.False(t, bus.PublishKey(input.KeyEvent{Key: input.KeyG}))
	assert.Len(t, seen, 2, "every handler sees every key")
}

func TestMotionSubscriptionLifecycle(t *testing.T) {
	bus := input.NewBus()

	total := 0.0
	cancel := bus.OnMotion(func(m input.PointerMotion) { total += m.DX })
	assert.Equal(t, 1, bus.MotionSubscribers())

	bus.PublishMotion(input.PointerMotion{DX: 3})
	cancel()
	bus.PublishMotion(input.PointerMotion{DX: 4})

	assert.Equal(t, 3.0, total)
	assert.Equal(t, 0, bus.MotionSubscribers())
}

func TestHandlerMayUnsubscribeWhilePublishing(t *testing.T) {
	bus := input.NewBus()

	ups := 0
	var cancel func()
	cancel = bus.OnPointerUp(func(input.PointerUp) {
		ups++
		cancel()
	})
	bus.OnPointerUp(func(input.PointerUp) { ups++ })

	bus.PublishPointerUp(input.PointerUp{})
	bus.PublishPointerUp(input.PointerUp{})

	assert.Equal(t, 3, ups)
	assert.Equal(t, 1, bus.PointerUpSubscribers())
}

func TestClickCarriesObject(t *testing.T) {
	bus := input.NewBus()

	var got scene.ObjectId
	bus.OnClick(func(c input.Click) { got = c.Object })
	bus.PublishClick(input.Click{Object: 12})

	assert.Equal(t, scene.ObjectId(12), got)
}

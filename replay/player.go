package replay

import (
	"github.com/plus3/posekit/editor"
	"github.com/plus3/posekit/input"
	"go.uber.org/zap"
)

// Player publishes one scripted step per frame.
type Player struct {
	script   *Script
	bus      *input.Bus
	logger   *zap.Logger
	next     int
	consumed int
}

// NewPlayer creates a player for script. A nil logger discards output.
func NewPlayer(script *Script, bus *input.Bus, logger *zap.Logger) *Player {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Player{script: script, bus: bus, logger: logger}
}

// Done reports whether every step has been published.
func (p *Player) Done() bool {
	return p.next >= len(p.script.Steps)
}

// Played returns how many steps have been published.
func (p *Player) Played() int {
	return p.next
}

// ConsumedKeys returns how many key steps a subscriber consumed.
func (p *Player) ConsumedKeys() int {
	return p.consumed
}

func (p *Player) Execute(*editor.Frame) {
	if p.Done() {
		return
	}
	step := p.script.Steps[p.next]
	p.next++

	switch step.Kind {
	case StepKey:
		if p.bus.PublishKey(step.Key) {
			p.consumed++
		}
		p.logger.Debug("replay key",
			zap.Int("step", p.next),
			zap.Stringer("key", step.Key.Key),
			zap.Bool("shift", step.Key.Shift),
			zap.Bool("ctrl", step.Key.Ctrl))
	case StepClick:
		p.bus.PublishClick(step.Click)
		p.logger.Debug("replay click", zap.Int("step", p.next), zap.Int64("object", int64(step.Click.Object)))
	case StepMotion:
		p.bus.PublishMotion(step.Motion)
		p.logger.Debug("replay motion", zap.Int("step", p.next),
			zap.Float64("dx", step.Motion.DX), zap.Float64("dy", step.Motion.DY))
	case StepPointerUp:
		p.bus.PublishPointerUp(input.PointerUp{})
		p.logger.Debug("replay pointer up", zap.Int("step", p.next))
	}
}

// Run steps scheduler until p is done and returns the number of frames run.
// It stops early if a frame publishes nothing, which means p is not
// registered with scheduler.
func Run(scheduler *editor.Scheduler, p *Player, dt float64) int {
	frames := 0
	for !p.Done() {
		before := p.Played()
		scheduler.Once(dt)
		frames++
		if p.Played() == before {
			break
		}
	}
	return frames
}

// Package replay drives the transform engine from a scripted event list, one
// event per frame, without a window.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/plus3/posekit/input"
	"github.com/plus3/posekit/scene"
	"gopkg.in/yaml.v3"
)

// StepKind says which input event a step publishes.
type StepKind int

const (
	StepKey StepKind = iota
	StepClick
	StepMotion
	StepPointerUp
)

func (k StepKind) String() string {
	switch k {
	case StepKey:
		return "key"
	case StepClick:
		return "click"
	case StepMotion:
		return "motion"
	case StepPointerUp:
		return "pointer_up"
	}
	return fmt.Sprintf("StepKind(%d)", int(k))
}

// Step is one scripted input event.
type Step struct {
	Kind   StepKind
	Key    input.KeyEvent
	Click  input.Click
	Motion input.PointerMotion
}

// Script is a parsed replay file.
type Script struct {
	CameraDistance float64
	Steps          []Step
}

var ErrInvalidStep = errors.New("replay: invalid step")

type scriptFile struct {
	CameraDistance float64    `yaml:"camera_distance"`
	Steps          []stepFile `yaml:"steps"`
}

type stepFile struct {
	Key       string    `yaml:"key"`
	Shift     bool      `yaml:"shift"`
	Ctrl      bool      `yaml:"ctrl"`
	Click     *int64    `yaml:"click"`
	Motion    []float64 `yaml:"motion"`
	PointerUp bool      `yaml:"pointer_up"`
}

// LoadFile reads a script from path.
func LoadFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("replay: load %s: %w", path, err)
	}
	return s, nil
}

// Load parses a YAML script. Each step names exactly one of key, click,
// motion or pointer_up. Key names are case-insensitive; unknown names are
// kept as input.KeyUnknown so scripts can exercise unbound keys. A missing
// camera_distance defaults to 5.
func Load(r io.Reader) (*Script, error) {
	var file scriptFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("replay: decode: %w", err)
	}

	s := &Script{CameraDistance: file.CameraDistance}
	if s.CameraDistance == 0 {
		s.CameraDistance = 5
	}
	if s.CameraDistance < 0 {
		return nil, fmt.Errorf("replay: camera_distance %v must be positive", s.CameraDistance)
	}

	for i, sf := range file.Steps {
		step, err := sf.step()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		s.Steps = append(s.Steps, step)
	}
	return s, nil
}

func (sf stepFile) step() (Step, error) {
	actions := 0
	var step Step
	if sf.Key != "" {
		actions++
		step = Step{Kind: StepKey, Key: input.KeyEvent{Key: input.ParseKey(sf.Key), Shift: sf.Shift, Ctrl: sf.Ctrl}}
	}
	if sf.Click != nil {
		actions++
		step = Step{Kind: StepClick, Click: input.Click{Object: scene.ObjectId(*sf.Click)}}
	}
	if sf.Motion != nil {
		actions++
		if len(sf.Motion) != 2 {
			return Step{}, fmt.Errorf("%w: motion needs [dx, dy], got %d values", ErrInvalidStep, len(sf.Motion))
		}
		step = Step{Kind: StepMotion, Motion: input.PointerMotion{DX: sf.Motion[0], DY: sf.Motion[1]}}
	}
	if sf.PointerUp {
		actions++
		step = Step{Kind: StepPointerUp}
	}

	switch {
	case actions == 0:
		return Step{}, fmt.Errorf("%w: no action", ErrInvalidStep)
	case actions > 1:
		return Step{}, fmt.Errorf("%w: %d actions in one step", ErrInvalidStep, actions)
	case (sf.Shift || sf.Ctrl) && step.Kind != StepKey:
		return Step{}, fmt.Errorf("%w: modifiers only apply to keys", ErrInvalidStep)
	}
	return step, nil
}

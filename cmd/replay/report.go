package main

import (
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/plus3/posekit/editor"
	"github.com/plus3/posekit/scene"
	"github.com/plus3/posekit/transform"
)

type Report struct {
	// Inputs
	ScenePath  string
	ScriptPath string
	Steps      int
	Objects    int

	// Results
	Frames       int
	ConsumedKeys int
	TotalTime    time.Duration
	Engine       transform.Stats
	Final        transform.State
	FinalObjects int
	Systems      []editor.SystemStats
}

const reportTemplate = `
# Replay Report

## Input
- **Scene:** {{or .ScenePath "(demo)"}}
- **Script:** {{.ScriptPath}}
- **Steps:** {{.Steps}}
- **Objects at start:** {{.Objects}}

## Engine
- **Frames:** {{.Frames}}
- **Keys consumed:** {{.ConsumedKeys}}
- **Gestures:** {{.Engine.Gestures}}
- **Commits:** {{.Engine.Commits}}
- **Cancels:** {{.Engine.Cancels}}
- **Aborts:** {{.Engine.Aborts}}
- **Motion events:** {{.Engine.MotionEvents}}

## Final State
- **Selection:** {{selection .Final.Selection}}
- **Mode:** {{.Final.Mode}}
- **Axes:** {{.Final.Axes}}
- **Objects:** {{.FinalObjects}}

## Systems
{{range .Systems}}- {{.Name}}: {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}- **Total time:** {{.TotalTime}}
`

var reportFuncs = template.FuncMap{
	"selection": func(id scene.ObjectId) string {
		if id == scene.NoObject {
			return "none"
		}
		return fmt.Sprintf("#%d", id)
	},
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}

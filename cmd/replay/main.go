// Command replay runs a scripted input sequence against a scene without a
// window and prints what the transform engine did.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/plus3/posekit/config"
	"github.com/plus3/posekit/editor"
	"github.com/plus3/posekit/input"
	"github.com/plus3/posekit/logging"
	"github.com/plus3/posekit/nav"
	"github.com/plus3/posekit/replay"
	"github.com/plus3/posekit/scene"
	"github.com/plus3/posekit/transform"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "replay:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	scenePath := fs.String("scene", "", "Scene YAML to load. Empty uses the demo scene.")
	scriptPath := fs.String("script", "", "Replay script YAML (required).")
	outPath := fs.String("out", "", "Write the resulting scene YAML here. Empty prints it after the report.")
	logLevel := fs.String("log-level", "warn", "Log level: debug, info, warn or error.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *scriptPath == "" {
		return fmt.Errorf("-script is required")
	}

	logger, _, err := logging.NewWithWriter(config.LogConfig{Level: *logLevel, Format: "console"}, stderr)
	if err != nil {
		return err
	}
	defer logger.Sync()

	store := scene.Demo()
	if *scenePath != "" {
		if store, err = scene.LoadFile(*scenePath); err != nil {
			return err
		}
	}
	script, err := replay.LoadFile(*scriptPath)
	if err != nil {
		return err
	}

	report := &Report{
		ScenePath:  *scenePath,
		ScriptPath: *scriptPath,
		Steps:      len(script.Steps),
		Objects:    store.Len(),
	}

	bus := input.NewBus()
	camera := nav.NewOrbitCamera(script.CameraDistance)
	engine := transform.New(store, camera, bus, transform.WithLogger(logger.Named("transform")))
	defer engine.Close()

	scheduler := editor.NewScheduler(store)
	player := replay.NewPlayer(script, bus, logger.Named("replay"))
	scheduler.Register(player)

	logger.Info("replay starting", zap.String("script", *scriptPath), zap.Int("steps", len(script.Steps)))
	start := time.Now()
	report.Frames = replay.Run(scheduler, player, 1.0/60)
	report.TotalTime = time.Since(start)

	report.ConsumedKeys = player.ConsumedKeys()
	report.Engine = engine.Stats()
	report.Final = engine.State()
	report.FinalObjects = store.Len()
	report.Systems = scheduler.Stats().Systems

	if err := report.Generate(stdout); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}

	if *outPath == "" {
		fmt.Fprintln(stdout, "\n--- Scene ---")
		return store.Save(stdout)
	}
	f, err := os.Create(*outPath)
	if err != nil {
		return err
	}
	if err := store.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Command editor opens a window on a scene and lets the user move, rotate
// and scale its objects with the keyboard and mouse.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/posekit/config"
	"github.com/plus3/posekit/debugui"
	debugui_ebiten "github.com/plus3/posekit/debugui/ebiten"
	"github.com/plus3/posekit/editor"
	"github.com/plus3/posekit/input"
	inputebiten "github.com/plus3/posekit/input/ebiten"
	"github.com/plus3/posekit/logging"
	"github.com/plus3/posekit/render"
	"github.com/plus3/posekit/scene"
	"github.com/plus3/posekit/transform"
	"go.uber.org/zap"
)

type Game struct {
	scheduler *editor.Scheduler
	backend   *debugui_ebiten.Backend
	drawer    *render.Drawer
	engine    *transform.Engine
	reloads   <-chan *config.Config
	apply     func(*config.Config)
}

func (g *Game) Update() error {
	select {
	case cfg := <-g.reloads:
		g.apply(cfg)
	default:
	}

	g.backend.BeginFrame()
	g.scheduler.Once(1.0 / float64(ebiten.TPS()))
	g.backend.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawer.Draw(screen, g.engine.State())
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", "", "Editor configuration YAML. Changes are applied while running.")
	scenePath := flag.String("scene", "", "Scene YAML to open. Overrides scene.path from the configuration.")
	savePath := flag.String("save", "", "Write the scene here when the window closes.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadAndValidate(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, "editor:", err)
			os.Exit(1)
		}
	}
	if *scenePath != "" {
		cfg.Scene.Path = *scenePath
	}

	logger, level, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "editor:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, *configPath, *savePath, logger, level); err != nil {
		logger.Error("editor stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, configPath, savePath string, logger *zap.Logger, level zap.AtomicLevel) error {
	store := scene.Demo()
	if cfg.Scene.Path != "" {
		var err error
		if store, err = scene.LoadFile(cfg.Scene.Path); err != nil {
			return err
		}
	}
	logger.Info("scene loaded", zap.String("path", cfg.Scene.Path), zap.Int("objects", store.Len()))

	backend := debugui_ebiten.NewBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	bus := input.NewBus()
	camera := newCamera(cfg.Camera)
	engine := transform.New(store, camera, bus,
		transform.WithLogger(logger.Named("transform")),
		transform.WithSensitivity(sensitivity(cfg.Transform)))
	defer engine.Close()

	drawer := render.NewDrawer(store, camera)
	defer drawer.Close()

	scheduler := editor.NewScheduler(store)
	browser := debugui.NewSceneBrowser(engine, store, 50)
	defer browser.Close()
	ui := debugui.NewSystem(
		debugui.NewTransformInspector(engine, store),
		browser,
		debugui.NewPerformanceStats(scheduler, 120),
	)

	picker := inputebiten.PickerFunc(func(x, y float64) scene.ObjectId {
		return render.Pick(drawer.Items(), drawer.Viewport(), x, y)
	})
	poller := inputebiten.NewPoller(inputebiten.NewDevice(), bus,
		inputebiten.WithPicker(picker),
		inputebiten.WithCamera(camera),
		inputebiten.WithCapture(ui.Capture),
		inputebiten.WithLogger(logger.Named("input")))

	scheduler.Register(ui)
	scheduler.Register(poller)

	reloads := make(chan *config.Config, 1)
	if configPath != "" {
		watcher, err := config.NewWatcher(configPath, func(c *config.Config) {
			// Keep only the newest pending config.
			select {
			case <-reloads:
			default:
			}
			reloads <- c
		}, config.WithLogger(logger.Named("config")))
		if err != nil {
			return err
		}
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := watcher.Start(ctx); err != nil {
			return err
		}
		defer watcher.Stop()
	}

	game := &Game{
		scheduler: scheduler,
		backend:   backend,
		drawer:    drawer,
		engine:    engine,
		reloads:   reloads,
		apply: func(c *config.Config) {
			applyReload(c, engine, camera, level, logger)
		},
	}
	if err := ebiten.RunGame(game); err != nil {
		return err
	}

	if savePath == "" {
		return nil
	}
	f, err := os.Create(savePath)
	if err != nil {
		return err
	}
	if err := store.Save(f); err != nil {
		f.Close()
		return err
	}
	logger.Info("scene saved", zap.String("path", savePath))
	return f.Close()
}

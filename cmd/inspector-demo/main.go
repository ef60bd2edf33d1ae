// Command inspector-demo opens a window with a small sample world and every
// inspector panel. Click a sprite to select it.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/ooftn-inspector/components"
	"github.com/plus3/ooftn-inspector/ecs"
	"github.com/plus3/ooftn-inspector/ecs/debugui"
	debugui_ebiten "github.com/plus3/ooftn-inspector/ecs/debugui/ebiten"
	"github.com/plus3/ooftn-inspector/inspector"
	"github.com/plus3/ooftn-inspector/inspectors"
	"github.com/plus3/ooftn-inspector/internal/profiling"
	"github.com/plus3/ooftn-inspector/internal/scene"
)

func main() {
	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	prof, err := profiling.Start(cfg.Profile, cfg.ProfilePath)
	if err != nil {
		logger.Error("start profile", "error", err)
		os.Exit(2)
	}
	err = run(cfg, logger)
	prof.Stop()
	if err != nil {
		logger.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg Config, logger *slog.Logger) error {
	registry := scene.NewRegistry()
	ecs.RegisterComponent[debugui.ImguiItem](registry)

	storage := ecs.NewStorage(registry)
	scene.Setup(storage)
	storage.AddSingleton(inspectors.ScreenSize{Width: float32(cfg.Width), Height: float32(cfg.Height)})
	camera := scene.Populate(storage, rand.New(rand.NewSource(cfg.Seed)), cfg.Sprites, float32(cfg.Width), float32(cfg.Height))

	state := ecs.NewSingleton[inspector.State](storage).Get()
	prefabs, err := inspector.ListPrefabs(cfg.PrefabDir)
	if err != nil {
		logger.Warn("no prefabs", "error", err)
	}
	state.Prefabs = prefabs

	ecs.NewSingleton(storage, debugui_ebiten.NewImguiBackend(cfg.Title, cfg.Width, cfg.Height))
	input := ecs.NewSingleton[debugui.ImguiInputState](storage)
	storage.Spawn(components.Named{Name: "help"}, debugui.ImguiItem{Render: help(input)})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&scene.DebugLinesSystem{})
	scheduler.Register(&scene.BlinkSystem{})
	scheduler.Register(&debugui.ImguiSystem{})
	scheduler.Register(inspector.NewSystem(debugui.UI{}, logger,
		inspector.New(inspectors.Defaults()...),
		inspector.NewHierarchyBrowser(),
		inspector.NewEntityBrowser(25),
		inspector.NewStatsPanel(scheduler, 120),
		inspector.NewArchetypePanel(50),
		inspector.NewQueryPanel(),
	))
	scheduler.Register(&scene.RequestSystem{Logger: logger})

	game := &Game{
		scheduler: scheduler,
		storage:   storage,
		camera:    camera,
		backend:   ecs.NewSingleton[debugui_ebiten.ImguiBackend](storage),
		input:     input,
		state:     ecs.NewSingleton[inspector.State](storage),
		lines:     ecs.NewSingleton[components.DebugLines](storage),
		screen:    ecs.NewSingleton[inspectors.ScreenSize](storage),
		sprites:   ecs.NewView[sprite](storage),
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	logger.Info("starting demo", "sprites", cfg.Sprites, "prefabs", len(prefabs))
	return ebiten.RunGame(game)
}

func help(input *ecs.Singleton[debugui.ImguiInputState]) func() {
	ui := debugui.UI{}
	return func() {
		if ui.Begin("Help") {
			ui.Text("Click a sprite to inspect it.")
			ui.Text("Right-click a field to reset it.")
			ui.Text("Drag nodes in the hierarchy to reparent.")
			if state := input.Get(); state != nil && state.WantCaptureMouse {
				ui.Text("(mouse over a window)")
			}
		}
		ui.End()
	}
}

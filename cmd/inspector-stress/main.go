// Command inspector-stress drives the inspector panels headlessly over a
// large world and reports frame timings.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/ooftn-inspector/ecs"
	"github.com/plus3/ooftn-inspector/inspector"
	"github.com/plus3/ooftn-inspector/inspector/fakeui"
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

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Duration)
	defer cancel()

	err = Run(ctx, cfg, os.Stdout, logger)
	prof.Stop()
	if err != nil {
		logger.Error("stress run failed", "error", err)
		os.Exit(1)
	}
}

// Run builds the world, runs frames until ctx is done and writes the report to out.
func Run(ctx context.Context, cfg Config, out io.Writer, logger *slog.Logger) error {
	rng := rand.New(rand.NewSource(cfg.Seed))

	storage := ecs.NewStorage(scene.NewRegistry())
	scene.Setup(storage)
	logger.Info("populating storage", "sprites", cfg.Entities)
	scene.Populate(storage, rng, cfg.Entities, 1920, 1080)

	ui := fakeui.New()
	scheduler := ecs.NewScheduler(storage)
	panels := []inspector.Panel{
		inspector.New(inspectors.Defaults()...),
		inspector.NewHierarchyBrowser(),
		inspector.NewEntityBrowser(50),
		inspector.NewStatsPanel(scheduler, 120),
		inspector.NewArchetypePanel(20),
		inspector.NewQueryPanel(),
	}
	scheduler.Register(&scene.DebugLinesSystem{})
	scheduler.Register(&scene.BlinkSystem{})
	scheduler.Register(inspector.NewSystem(ui, logger, panels...))
	scheduler.Register(&scene.RequestSystem{Logger: logger})

	report := &Report{
		Duration:       cfg.Duration,
		Entities:       cfg.Entities,
		Panels:         len(panels),
		Edit:           cfg.Edit,
		GCPauseMetrics: cfg.GCPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	state := ecs.NewSingleton[inspector.State](storage).Get()
	ids := make([]ecs.EntityId, 0, storage.EntityCount())
	for id := range storage.Entities() {
		ids = append(ids, id)
	}

	logger.Info("running frames", "duration", cfg.Duration)
	start := time.Now()
	last := start
	for ctx.Err() == nil {
		ui.NewFrame()
		if cfg.Edit && len(ids) > 0 {
			state.Select(ids[rng.Intn(len(ids))])
			ui.Drag("Transform/Rotation", rng.Float64()*360-180)
		}

		now := time.Now()
		dt := now.Sub(last)
		last = now

		frameStart := time.Now()
		scheduler.Once(dt.Seconds())
		report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(frameStart))
		report.Frames++

		if cfg.Edit && !ui.Pending() {
			report.Edits++
		}
		if err := ui.Balanced(); err != nil {
			return fmt.Errorf("frame %d: %w", report.Frames, err)
		}
	}

	report.TotalTime = time.Since(start)
	report.FrameTime.Finalize()
	report.Systems = scheduler.GetStats().Systems
	report.FinalEntities = storage.EntityCount()
	report.Archetypes = len(storage.GetArchetypes())
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info("run finished", "frames", report.Frames)
	return report.Generate(out)
}

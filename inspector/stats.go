package inspector

import (
	"fmt"

	"github.com/plus3/ooftn-inspector/ecs"
)

// StatsPanel shows storage counts, a frame time graph and per-system
// timings from the scheduler.
type StatsPanel struct {
	Scheduler *ecs.Scheduler

	frameHistory []float32
	frameIndex   int
}

func NewStatsPanel(scheduler *ecs.Scheduler, historyFrames int) *StatsPanel {
	return &StatsPanel{
		Scheduler:    scheduler,
		frameHistory: make([]float32, max(historyFrames, 1)),
	}
}

// Record adds a frame time in seconds to the history.
func (sp *StatsPanel) Record(deltaTime float64) {
	sp.frameHistory[sp.frameIndex] = float32(deltaTime * 1000)
	sp.frameIndex = (sp.frameIndex + 1) % len(sp.frameHistory)
}

// AverageFrameTime returns the mean of the history in milliseconds.
func (sp *StatsPanel) AverageFrameTime() float32 {
	var total float32
	for _, ft := range sp.frameHistory {
		total += ft
	}
	return total / float32(len(sp.frameHistory))
}

func (sp *StatsPanel) Draw(ctx *Context, _ *State) {
	ui := ctx.UI
	sp.Record(ctx.DeltaTime)

	if !ui.Begin("Performance Stats") {
		ui.End()
		return
	}

	stats := ctx.Storage.CollectStats()
	ui.Text(fmt.Sprintf("Total Entities: %d", stats.TotalEntityCount))
	ui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
	ui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))

	avg := sp.AverageFrameTime()
	if avg > 0 {
		ui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000/avg))
	}

	ui.Separator()
	ui.PlotLines("frame time (ms)", sp.frameHistory)

	if sp.Scheduler != nil && ui.TreeNode("Systems", false, false) {
		for _, system := range sp.Scheduler.GetStats().Systems {
			ui.Text(fmt.Sprintf("%s: last %s, avg %s, max %s",
				system.Name, system.LastDuration, system.AvgDuration, system.MaxDuration))
		}
		ui.TreePop()
	}

	if ui.TreeNode("Archetypes", false, false) {
		for _, arch := range stats.ArchetypeBreakdown {
			ui.Text(fmt.Sprintf("0x%X  %d entities  %v", arch.ID, arch.EntityCount, arch.ComponentTypes))
		}
		ui.TreePop()
	}

	if ui.TreeNode("Singletons", false, false) {
		for _, name := range stats.SingletonTypes {
			ui.Text(name)
		}
		ui.TreePop()
	}

	ui.End()
}

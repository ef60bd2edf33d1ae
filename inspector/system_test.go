package inspector_test

import (
	"testing"

	"github.com/plus3/ooftn-inspector/components"
	"github.com/plus3/ooftn-inspector/ecs"
	"github.com/plus3/ooftn-inspector/inspector"
	"github.com/plus3/ooftn-inspector/inspector/fakeui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPanel struct {
	states []*inspector.State
}

func (p *recordingPanel) Draw(_ *inspector.Context, state *inspector.State) {
	p.states = append(p.states, state)
}

func TestSystemSharesState(t *testing.T) {
	w := newWorld()
	panel := &recordingPanel{}
	scheduler := ecs.NewScheduler(w.storage)
	scheduler.Register(inspector.NewSystem(w.ui, nil, panel))

	scheduler.Once(0.016)
	scheduler.Once(0.016)

	require.Len(t, panel.states, 2)
	assert.Same(t, panel.states[0], panel.states[1])

	var state *inspector.State
	require.True(t, w.storage.ReadSingleton(&state))
	assert.Same(t, state, panel.states[0])
}

func TestSystemAppliesEditsAfterFrame(t *testing.T) {
	w := newWorld()
	e := w.storage.Spawn(components.Named{Name: "old"})
	ecs.NewSingleton(w.storage, inspector.State{Selected: e})

	scheduler := ecs.NewScheduler(w.storage)
	scheduler.Register(inspector.NewSystem(w.ui, nil, inspector.New(inspector.Derive[components.Named]())))

	w.ui.Type("Named/Name", "new")
	scheduler.Once(0.016)

	assert.Equal(t, "new", ecs.ReadComponent[components.Named](w.storage, e).Name)
	assert.False(t, w.ui.Pending())
}

func TestStatsPanel(t *testing.T) {
	w := newWorld()
	w.storage.Spawn(components.Named{})
	w.storage.Spawn(components.NewTransform())
	w.storage.AddSingleton(components.FontList{"sans"})

	scheduler := ecs.NewScheduler(w.storage)
	panel := inspector.NewStatsPanel(scheduler, 4)

	w.ctx.DeltaTime = 0.02
	w.frame(t, func() { panel.Draw(w.ctx, &inspector.State{}) })

	assert.Contains(t, w.ui.Texts(), "Total Entities: 2")
	assert.Contains(t, w.ui.Texts(), "Singletons: 1")
	assert.Contains(t, w.ui.Texts(), "components.FontList")
	assert.InDelta(t, 5.0, panel.AverageFrameTime(), 1e-4)

	plot, ok := w.ui.Find(fakeui.KindPlot, "frame time (ms)")
	require.True(t, ok)
	assert.Equal(t, 4.0, plot.Current)
}

package inspector_test

import (
	"reflect"
	"testing"

	"github.com/plus3/ooftn-inspector/components"
	"github.com/plus3/ooftn-inspector/ecs"
	"github.com/plus3/ooftn-inspector/inspector"
	"github.com/plus3/ooftn-inspector/inspector/fakeui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchetypePanelOrder(t *testing.T) {
	w := newWorld()
	w.storage.Spawn(components.Camera{})
	for range 3 {
		w.storage.Spawn(components.Named{})
	}

	archetypes := inspector.NewArchetypePanel(10).Archetypes(w.storage)
	require.Len(t, archetypes, 2)
	assert.Equal(t, 3, archetypes[0].EntityCount)
	assert.Equal(t, []string{"components.Named"}, archetypes[0].ComponentTypes)
}

func TestArchetypePanelSelect(t *testing.T) {
	w := newWorld()
	for range 3 {
		w.storage.Spawn(components.Named{Name: "n"})
	}
	last := w.storage.Spawn(components.Named{Name: "last"})
	state := &inspector.State{}
	panel := inspector.NewArchetypePanel(2)

	w.frame(t, func() { panel.Draw(w.ctx, state) })
	assert.Contains(t, w.ui.Texts(), "... 2 more")
	assert.False(t, w.ui.Drawn(fakeui.KindSelectable, "last##"+last.String()))

	panel.EntityLimit = 10
	w.ui.Click("last##" + last.String())
	w.frame(t, func() { panel.Draw(w.ctx, state) })
	assert.Equal(t, last, state.Selected)
}

func TestQueryPanel(t *testing.T) {
	w := newWorld()
	both := w.storage.Spawn(components.Named{Name: "both"}, components.Camera{})
	w.storage.Spawn(components.Named{Name: "named"})
	state := &inspector.State{}
	panel := inspector.NewQueryPanel()

	w.frame(t, func() { panel.Draw(w.ctx, state) })
	assert.Contains(t, w.ui.Texts(), "No component types selected")
	assert.Empty(t, panel.Matches(w.storage))

	w.ui.Toggle("components.Named").Toggle("components.Camera")
	w.frame(t, func() { panel.Draw(w.ctx, state) })
	assert.Equal(t, []reflect.Type{reflect.TypeFor[components.Named](), reflect.TypeFor[components.Camera]()}, panel.Types(w.storage.Registry()))
	assert.Equal(t, []ecs.EntityId{both}, panel.Matches(w.storage))
	assert.Contains(t, w.ui.Texts(), "Matching entities: 1")

	w.ui.Click("both##" + both.String())
	w.frame(t, func() { panel.Draw(w.ctx, state) })
	assert.Equal(t, both, state.Selected)

	w.ui.Click("clear all")
	w.frame(t, func() { panel.Draw(w.ctx, state) })
	assert.Empty(t, panel.Checked)
}

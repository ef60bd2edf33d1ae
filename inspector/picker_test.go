package inspector_test

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/plus3/ooftn-inspector/components"
	"github.com/plus3/ooftn-inspector/ecs"
	"github.com/plus3/ooftn-inspector/inspector"
	"github.com/plus3/ooftn-inspector/inspector/fakeui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityPickerCandidates(t *testing.T) {
	w := newWorld()
	cameraType := reflect.TypeFor[components.Camera]()
	transformType := reflect.TypeFor[components.Transform]()

	a := w.storage.Spawn(components.Camera{}, components.Transform{})
	w.storage.Spawn(components.Camera{})
	c := w.storage.Spawn(components.Camera{}, components.Transform{}, components.Named{Name: "c"})
	w.storage.Spawn(components.Transform{})

	var target ecs.EntityId
	picker := inspector.Entity(&target).WithComponent(cameraType, transformType)
	assert.Equal(t, []ecs.EntityId{0, a, c}, picker.Candidates(w.storage))

	all := inspector.Entity(&target).Candidates(w.storage)
	assert.Len(t, all, 5)
	assert.True(t, all[0].IsZero())
}

func TestEntityPickerSelect(t *testing.T) {
	w := newWorld()
	a := w.storage.Spawn(components.Named{Name: "a"})
	b := w.storage.Spawn(components.Named{Name: "b"})

	target := a
	w.ui.Select("follow", 2)
	changed := inspector.Entity(&target).Label("follow").Build(w.ctx)
	assert.True(t, changed)
	assert.Equal(t, b, target)

	combo, ok := w.ui.Find(fakeui.KindCombo, "follow")
	require.True(t, ok)
	assert.Equal(t, []string{"None", "a", "b"}, combo.Items)
	assert.Equal(t, 1.0, combo.Current)

	w.ui.Select("follow", 0)
	assert.True(t, inspector.Entity(&target).Label("follow").Build(w.ctx))
	assert.True(t, target.IsZero())
}

func TestEntityPickerDeadReference(t *testing.T) {
	w := newWorld()
	gone := w.storage.Spawn(components.Named{Name: "gone"})
	w.storage.Delete(gone)

	target := gone
	assert.False(t, inspector.Entity(&target).Build(w.ctx))
	assert.Equal(t, gone, target, "a dead reference is kept until the user picks")
}

func TestStableIDPicker(t *testing.T) {
	w := newWorld()
	first := components.NewStableID()
	second := components.NewStableID()
	a := w.storage.Spawn(first, components.Named{Name: "first"})
	w.storage.Spawn(components.Named{Name: "unmarked"})
	b := w.storage.Spawn(second, components.Camera{})

	var ref uuid.UUID
	entities, ids := inspector.StableID(&ref).Candidates(w.storage)
	assert.Equal(t, []ecs.EntityId{0, a, b}, entities)
	assert.Equal(t, []uuid.UUID{uuid.Nil, first.ID, second.ID}, ids)

	entities, _ = inspector.StableID(&ref).WithComponent(reflect.TypeFor[components.Camera]()).Candidates(w.storage)
	assert.Equal(t, []ecs.EntityId{0, b}, entities)

	w.ui.Select("entity", 1)
	assert.True(t, inspector.StableID(&ref).Build(w.ctx))
	assert.Equal(t, first.ID, ref)
}

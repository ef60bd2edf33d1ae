package inspectors_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/plus3/ooftn-inspector/components"
	"github.com/plus3/ooftn-inspector/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStableIDAdd(t *testing.T) {
	w := newWorld()
	e := w.storage.Spawn(components.Named{})

	w.ui.SetOpen("add component", true).Click(e.String() + "/StableID")
	w.draw(t, e)

	id := ecs.ReadComponent[components.StableID](w.storage, e)
	require.NotNil(t, id)
	assert.NotEqual(t, uuid.Nil, id.ID)

	w.draw(t, e)
	assert.Contains(t, w.ui.Texts(), "id: "+id.String())
}

func TestMarkerAdd(t *testing.T) {
	w := newWorld()
	a := w.storage.Spawn(components.Named{Name: "a"})
	b := w.storage.Spawn(components.Named{Name: "b"})

	w.ui.SetOpen("add component", true).Click(a.String() + "/Marker")
	w.draw(t, a)
	w.ui.Click(b.String() + "/Marker")
	w.draw(t, b)

	assert.Equal(t, components.Marker{ID: 1}, *ecs.ReadComponent[components.Marker](w.storage, a))
	assert.Equal(t, components.Marker{ID: 2}, *ecs.ReadComponent[components.Marker](w.storage, b))

	allocator := ecs.NewSingleton[components.MarkerAllocator](w.storage).Get()
	owner, ok := allocator.Owner(2)
	assert.True(t, ok)
	assert.Equal(t, b, owner)

	w.storage.Delete(b)
	w.draw(t, a)
	assert.Equal(t, 1, allocator.Len(), "markers of deleted entities are released")
}

func TestMarkerRemoveReleasesId(t *testing.T) {
	w := newWorld()
	e := w.storage.Spawn(components.Named{Name: "e"})

	w.ui.SetOpen("add component", true).Click(e.String() + "/Marker")
	w.draw(t, e)
	allocator := ecs.NewSingleton[components.MarkerAllocator](w.storage).Get()
	require.Equal(t, 1, allocator.Len())

	w.ui.Click("Marker/remove")
	w.draw(t, e)

	assert.False(t, ecs.Has[components.Marker](w.storage, e))
	assert.Equal(t, 0, allocator.Len())
	_, ok := allocator.Owner(1)
	assert.False(t, ok)
}

package components_test

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/plus3/ooftn-inspector/components"
	"github.com/plus3/ooftn-inspector/ecs"
	"github.com/stretchr/testify/assert"
)

func TestNewStableID(t *testing.T) {
	a, b := components.NewStableID(), components.NewStableID()
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.NotEqual(t, a, b)
	assert.Equal(t, uuid.Version(4), a.ID.Version())
}

func TestMarkerAllocator(t *testing.T) {
	registry := ecs.NewComponentRegistry()
	components.Register(registry)
	storage := ecs.NewStorage(registry)
	a := storage.Spawn()
	b := storage.Spawn()

	alloc := components.NewMarkerAllocator()
	ma := alloc.Mark(a)
	mb := alloc.Mark(b)
	storage.AddComponent(a, ma)
	storage.AddComponent(b, mb)
	assert.Equal(t, uint64(1), ma.ID)
	assert.Equal(t, uint64(2), mb.ID)
	assert.Equal(t, 2, alloc.Len())

	owner, ok := alloc.Owner(mb.ID)
	assert.True(t, ok)
	assert.Equal(t, b, owner)

	storage.Delete(b)
	assert.Equal(t, 1, alloc.ReleaseStale(storage))
	_, ok = alloc.Owner(mb.ID)
	assert.False(t, ok)

	alloc.Release(ma.ID)
	assert.Equal(t, 0, alloc.Len())

	assert.Equal(t, uint64(3), alloc.Mark(a).ID, "ids are never reused")
	assert.Panics(t, func() { alloc.Mark(0) })
}

func TestMarkerAllocatorZeroValue(t *testing.T) {
	var alloc components.MarkerAllocator
	assert.Equal(t, 0, alloc.Len())

	_, ok := alloc.Owner(1)
	assert.False(t, ok)

	assert.Equal(t, uint64(1), alloc.Mark(ecs.NewEntityId(0, 1)).ID)
}

func TestMarkerAllocatorReleasesRemovedMarkers(t *testing.T) {
	registry := ecs.NewComponentRegistry()
	components.Register(registry)
	storage := ecs.NewStorage(registry)
	kept := storage.Spawn()
	removed := storage.Spawn()
	changed := storage.Spawn()

	alloc := components.NewMarkerAllocator()
	storage.AddComponent(kept, alloc.Mark(kept))
	gone := alloc.Mark(removed)
	storage.AddComponent(removed, gone)
	old := alloc.Mark(changed)
	storage.AddComponent(changed, components.Marker{ID: 99})

	storage.RemoveComponent(removed, reflect.TypeFor[components.Marker]())
	assert.Equal(t, 2, alloc.ReleaseStale(storage))

	_, ok := alloc.Owner(gone.ID)
	assert.False(t, ok)
	_, ok = alloc.Owner(old.ID)
	assert.False(t, ok)
	assert.Equal(t, 1, alloc.Len())
	assert.True(t, storage.Alive(removed))
}

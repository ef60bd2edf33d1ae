package components

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/kamstrup/intmap"
	"github.com/plus3/ooftn-inspector/ecs"
)

// StableID identifies an entity across save and load, where entity ids
// are not preserved.
type StableID struct {
	ID uuid.UUID
}

// NewStableID allocates a random identifier. It panics when no random
// identifier can be produced.
func NewStableID() StableID {
	id, err := uuid.NewRandom()
	if err != nil {
		panic(fmt.Sprintf("allocating stable id: %v", err))
	}
	return StableID{ID: id}
}

func (s StableID) String() string {
	return s.ID.String()
}

// Marker is a compact numeric save marker handed out by a MarkerAllocator.
type Marker struct {
	ID uint64
}

func (m Marker) String() string {
	return fmt.Sprintf("marker %d", m.ID)
}

// MarkerAllocator is a singleton handing out Marker ids and remembering
// which entity owns each one.
type MarkerAllocator struct {
	next   uint64
	owners *intmap.Map[uint64, ecs.EntityId]
}

func NewMarkerAllocator() *MarkerAllocator {
	return &MarkerAllocator{
		next:   1,
		owners: intmap.New[uint64, ecs.EntityId](64),
	}
}

// Mark allocates a fresh marker for entity. It panics if the entity is
// the zero id, since such a marker could never be resolved.
func (a *MarkerAllocator) Mark(entity ecs.EntityId) Marker {
	if entity.IsZero() {
		panic("marking the zero entity")
	}
	if a.owners == nil {
		a.owners = intmap.New[uint64, ecs.EntityId](64)
		a.next = max(a.next, 1)
	}
	id := a.next
	a.next++
	a.owners.Put(id, entity)
	return Marker{ID: id}
}

// Owner resolves a marker id to the entity it was allocated for.
func (a *MarkerAllocator) Owner(id uint64) (ecs.EntityId, bool) {
	if a.owners == nil {
		return 0, false
	}
	return a.owners.Get(id)
}

// Release forgets a marker id.
func (a *MarkerAllocator) Release(id uint64) {
	if a.owners != nil {
		a.owners.Del(id)
	}
}

// Len returns the number of live markers.
func (a *MarkerAllocator) Len() int {
	if a.owners == nil {
		return 0
	}
	return a.owners.Len()
}

// ReleaseStale forgets the markers whose owner no longer exists or no
// longer carries that Marker, and returns how many were released.
func (a *MarkerAllocator) ReleaseStale(storage *ecs.Storage) int {
	if a.owners == nil {
		return 0
	}
	var stale []uint64
	for id, owner := range a.owners.All() {
		marker := ecs.ReadComponent[Marker](storage, owner)
		if marker == nil || marker.ID != id {
			stale = append(stale, id)
		}
	}
	for _, id := range stale {
		a.owners.Del(id)
	}
	return len(stale)
}

package ecs

import "fmt"

// EntityId encodes the entity slot index (lower 32 bits) and the slot
// generation (upper 32 bits). Generations start at 1, so the zero EntityId
// never refers to a live entity and is used as "no entity".
type EntityId uint64

// NewEntityId creates an EntityId from a slot index and generation
func NewEntityId(index uint32, generation uint32) EntityId {
	return EntityId(uint64(generation)<<32 | uint64(index))
}

// Index extracts the slot index from the entity ID
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// Generation extracts the generation counter from the entity ID
func (e EntityId) Generation() uint32 {
	return uint32(e >> 32)
}

// IsZero reports whether the id is the "no entity" sentinel.
func (e EntityId) IsZero() bool {
	return e == 0
}

func (e EntityId) String() string {
	return fmt.Sprintf("%d/%d", e.Index(), e.Generation())
}

// entityRecord tracks where a live entity's components are stored.
type entityRecord struct {
	archetype  *Archetype
	row        uint32
	generation uint32
}

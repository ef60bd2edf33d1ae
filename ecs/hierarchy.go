package ecs

import (
	"cmp"
	"slices"

	"github.com/kamstrup/intmap"
)

// Parent links an entity to its parent entity.
type Parent struct {
	Entity EntityId
}

// Hierarchy is a snapshot of the parent/child graph formed by Parent components.
// Build a fresh one each frame; it does not track later storage changes.
type Hierarchy struct {
	children *intmap.Map[EntityId, []EntityId]
	parents  *intmap.Map[EntityId, EntityId]
	roots    []EntityId
}

// NewHierarchy indexes the Parent components of every live entity. Entities
// without a Parent, or whose parent is dead, are roots. Parent cycles are
// broken at their lowest-index member, which is promoted to a root, so the
// result is always a forest.
func NewHierarchy(storage *Storage) *Hierarchy {
	h := &Hierarchy{
		children: intmap.New[EntityId, []EntityId](64),
		parents:  intmap.New[EntityId, EntityId](64),
	}

	var all []EntityId
	for id := range storage.Entities() {
		all = append(all, id)
		parent := ReadComponent[Parent](storage, id)
		if parent == nil || parent.Entity == id || !storage.Alive(parent.Entity) {
			h.roots = append(h.roots, id)
			continue
		}
		h.parents.Put(id, parent.Entity)
		siblings, _ := h.children.Get(parent.Entity)
		h.children.Put(parent.Entity, append(siblings, id))
	}

	reached := make(map[EntityId]bool, len(all))
	for _, root := range h.roots {
		h.mark(root, reached)
	}

	for _, id := range all {
		if reached[id] {
			continue
		}
		// An unreached entity never reaches a root, so its parent chain ends in a cycle.
		cut := h.lowestInCycle(id)
		parent, _ := h.parents.Get(cut)
		siblings, _ := h.children.Get(parent)
		h.children.Put(parent, slices.DeleteFunc(siblings, func(e EntityId) bool { return e == cut }))
		h.parents.Del(cut)
		h.roots = append(h.roots, cut)
		h.mark(cut, reached)
	}

	slices.SortFunc(h.roots, func(a, b EntityId) int {
		return cmp.Compare(a.Index(), b.Index())
	})
	return h
}

// lowestInCycle follows the parent chain from id to the cycle it ends in and
// returns the cycle member with the lowest index.
func (h *Hierarchy) lowestInCycle(id EntityId) EntityId {
	step := make(map[EntityId]int)
	var path []EntityId
	for {
		if at, ok := step[id]; ok {
			return slices.MinFunc(path[at:], func(a, b EntityId) int {
				return cmp.Compare(a.Index(), b.Index())
			})
		}
		step[id] = len(path)
		path = append(path, id)
		id, _ = h.parents.Get(id)
	}
}

func (h *Hierarchy) mark(id EntityId, reached map[EntityId]bool) {
	if reached[id] {
		return
	}
	reached[id] = true
	children, _ := h.children.Get(id)
	for _, child := range children {
		h.mark(child, reached)
	}
}

// Roots returns the entities at the top of the hierarchy in ascending slot order.
func (h *Hierarchy) Roots() []EntityId {
	return h.roots
}

// Children returns the direct children of an entity.
func (h *Hierarchy) Children(id EntityId) []EntityId {
	children, _ := h.children.Get(id)
	return children
}

// Parent returns the indexed parent of an entity.
func (h *Hierarchy) Parent(id EntityId) (EntityId, bool) {
	return h.parents.Get(id)
}

// IsAncestor reports whether ancestor appears on the parent chain of id.
func (h *Hierarchy) IsAncestor(ancestor, id EntityId) bool {
	for {
		parent, ok := h.parents.Get(id)
		if !ok {
			return false
		}
		if parent == ancestor {
			return true
		}
		id = parent
	}
}

package ecs

import (
	"iter"
	"reflect"
	"slices"
)

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

// Archetype represents a unique combination of component types. Each
// component type is stored in its own column; a row holds one entity.
type Archetype struct {
	id       uint32
	types    []reflect.Type
	storages []iComponentStorage

	// entities maps rows to their owning entity; free rows hold 0.
	entities []EntityId
	freeRows []uint32
	count    int
}

// NewArchetype creates a new archetype with the given ID and sorted component types
func NewArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:       id,
		types:    types,
		storages: make([]iComponentStorage, len(types)),
	}

	for idx, typ := range types {
		factory := registry.getFactory(typ)
		if factory == nil {
			panic("component type " + typ.String() + " not registered")
		}
		a.storages[idx] = factory()
	}

	return a
}

// insert places the entity and its components into a free row and returns it.
// Components must cover exactly the archetype's types.
func (a *Archetype) insert(entity EntityId, components []any) uint32 {
	var row uint32
	if n := len(a.freeRows); n > 0 {
		row = a.freeRows[n-1]
		a.freeRows = a.freeRows[:n-1]
		a.entities[row] = entity
	} else {
		row = uint32(len(a.entities))
		a.entities = append(a.entities, entity)
	}

	for _, comp := range components {
		idx := a.columnOf(componentType(comp))
		if idx < 0 {
			panic("component " + componentType(comp).String() + " does not belong to archetype")
		}
		a.storages[idx].Set(int(row), comp)
	}
	a.count++
	return row
}

// remove frees a row. Rows of other entities are not moved.
func (a *Archetype) remove(row uint32) {
	if int(row) >= len(a.entities) || a.entities[row] == 0 {
		return
	}
	for _, storage := range a.storages {
		storage.Delete(int(row))
	}
	a.entities[row] = 0
	a.freeRows = append(a.freeRows, row)
	a.count--
}

func (a *Archetype) columnOf(compType reflect.Type) int {
	for i, typ := range a.types {
		if typ == compType {
			return i
		}
	}
	return -1
}

// GetComponent returns a pointer to the component of the given type stored in row
func (a *Archetype) GetComponent(row uint32, compType reflect.Type) any {
	idx := a.columnOf(compType)
	if idx == -1 {
		return nil
	}
	return a.storages[idx].Get(int(row))
}

// setComponent replaces the component of the given type stored in row.
func (a *Archetype) setComponent(row uint32, component any) bool {
	idx := a.columnOf(componentType(component))
	if idx == -1 {
		return false
	}
	return a.storages[idx].Set(int(row), component)
}

// HasComponent checks if this archetype has the given component type
func (a *Archetype) HasComponent(compType reflect.Type) bool {
	return slices.Contains(a.types, compType)
}

// ID returns the archetype's unique identifier
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted component types for this archetype
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of live entities stored in this archetype.
func (a *Archetype) Len() int {
	return a.count
}

// Iter returns an iterator over all live entities in this archetype in row order
func (a *Archetype) Iter() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for _, id := range a.entities {
			if id != 0 && !yield(id) {
				return
			}
		}
	}
}

// rows iterates over occupied rows together with their entity.
func (a *Archetype) rows() iter.Seq2[uint32, EntityId] {
	return func(yield func(uint32, EntityId) bool) {
		for row, id := range a.entities {
			if id != 0 && !yield(uint32(row), id) {
				return
			}
		}
	}
}

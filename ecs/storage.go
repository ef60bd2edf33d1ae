package ecs

import (
	"iter"
	"reflect"
	"slices"
	"sort"
	"unsafe"
)

// Storage is the main ECS storage interface. It owns the entity table,
// the archetypes holding component data and the singleton components.
type Storage struct {
	registry   *ComponentRegistry
	archetypes map[uint32]*Archetype
	// archetypeOrder keeps archetypes in creation order so iteration is deterministic.
	archetypeOrder []*Archetype

	entities  []entityRecord
	freeSlots []uint32

	singletons     map[reflect.Type]*singletonEntry
	singletonOrder []reflect.Type
}

// NewStorage creates a new ECS storage system with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		archetypes: make(map[uint32]*Archetype),
		registry:   registry,
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

// Registry returns the component registry the storage was created with.
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// GetArchetype returns an archetype storage (if one exists)
func (s *Storage) GetArchetype(components ...any) *Archetype {
	return s.GetArchetypeByTypes(extractComponentTypes(components))
}

// GetArchetypeByTypes returns an archetype storage (if one exists) based on reflect.Type
func (s *Storage) GetArchetypeByTypes(types []reflect.Type) *Archetype {
	types = slices.Clone(types)
	sort.Sort(byTypeName(types))
	id := hashTypesToUint32(types)
	for {
		archetype, ok := s.archetypes[id]
		if !ok {
			return nil
		}
		if slices.Equal(archetype.types, types) {
			return archetype
		}
		id++
	}
}

// GetArchetypeById returns the archetype with the given id, or nil.
func (s *Storage) GetArchetypeById(id uint32) *Archetype {
	return s.archetypes[id]
}

// GetArchetypes returns every archetype in creation order.
func (s *Storage) GetArchetypes() []*Archetype {
	return s.archetypeOrder
}

// archetypeFor returns the archetype for the sorted types, creating it when needed.
func (s *Storage) archetypeFor(types []reflect.Type) *Archetype {
	if archetype := s.GetArchetypeByTypes(types); archetype != nil {
		return archetype
	}

	id := hashTypesToUint32(types)
	for s.archetypes[id] != nil {
		id++
	}
	archetype := NewArchetype(id, types, s.registry)
	s.archetypes[id] = archetype
	s.archetypeOrder = append(s.archetypeOrder, archetype)
	return archetype
}

// Spawn creates a new entity with the provided components. Spawning without
// components creates an empty entity that components can be added to later.
func (s *Storage) Spawn(components ...any) EntityId {
	types := extractComponentTypes(components)
	archetype := s.archetypeFor(types)

	var index uint32
	if n := len(s.freeSlots); n > 0 {
		index = s.freeSlots[n-1]
		s.freeSlots = s.freeSlots[:n-1]
	} else {
		index = uint32(len(s.entities))
		s.entities = append(s.entities, entityRecord{generation: 1})
	}

	record := &s.entities[index]
	id := NewEntityId(index, record.generation)
	record.archetype = archetype
	record.row = archetype.insert(id, components)
	return id
}

func (s *Storage) record(id EntityId) *entityRecord {
	index := id.Index()
	if id == 0 || int(index) >= len(s.entities) {
		return nil
	}
	record := &s.entities[index]
	if record.archetype == nil || record.generation != id.Generation() {
		return nil
	}
	return record
}

// Alive reports whether the id refers to an entity that has not been deleted.
func (s *Storage) Alive(id EntityId) bool {
	return s.record(id) != nil
}

// Delete removes all data related to the entity ID. It returns false when
// the entity was already gone.
func (s *Storage) Delete(id EntityId) bool {
	record := s.record(id)
	if record == nil {
		return false
	}

	record.archetype.remove(record.row)
	record.archetype = nil
	record.row = 0
	record.generation++
	if record.generation == 0 {
		record.generation = 1
	}
	s.freeSlots = append(s.freeSlots, id.Index())
	return true
}

// AddComponent attaches the component to the entity. When the entity already
// has a component of that type it is replaced in place, as a whole.
func (s *Storage) AddComponent(id EntityId, component any) bool {
	record := s.record(id)
	if record == nil {
		return false
	}

	compType := componentType(component)
	if !s.registry.Registered(compType) {
		panic("component type " + compType.String() + " not registered")
	}

	old := record.archetype
	if old.HasComponent(compType) {
		return old.setComponent(record.row, component)
	}

	newTypes := make([]reflect.Type, 0, len(old.types)+1)
	newTypes = append(newTypes, old.types...)
	newTypes = append(newTypes, compType)
	sort.Sort(byTypeName(newTypes))

	components := make([]any, 0, len(newTypes))
	for _, typ := range old.types {
		components = append(components, old.GetComponent(record.row, typ))
	}
	components = append(components, component)

	s.move(id, record, s.archetypeFor(newTypes), components)
	return true
}

// RemoveComponent detaches a component type from the entity. The entity
// stays alive even when its last component is removed.
func (s *Storage) RemoveComponent(id EntityId, compType reflect.Type) bool {
	record := s.record(id)
	if record == nil || !record.archetype.HasComponent(compType) {
		return false
	}

	old := record.archetype
	newTypes := make([]reflect.Type, 0, len(old.types)-1)
	components := make([]any, 0, len(old.types)-1)
	for _, typ := range old.types {
		if typ == compType {
			continue
		}
		newTypes = append(newTypes, typ)
		components = append(components, old.GetComponent(record.row, typ))
	}

	s.move(id, record, s.archetypeFor(newTypes), components)
	return true
}

// move relocates an entity to another archetype. The components are copied
// into the new row before the old row is released.
func (s *Storage) move(id EntityId, record *entityRecord, to *Archetype, components []any) {
	from, oldRow := record.archetype, record.row
	newRow := to.insert(id, components)
	from.remove(oldRow)
	record.archetype = to
	record.row = newRow
}

// GetComponent returns a pointer to the component for the given entity ID and
// component type, or nil when the entity is dead or lacks the component.
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	record := s.record(id)
	if record == nil {
		return nil
	}
	return record.archetype.GetComponent(record.row, compType)
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	record := s.record(id)
	return record != nil && record.archetype.HasComponent(compType)
}

// ComponentTypes returns the component types of a live entity sorted by name.
func (s *Storage) ComponentTypes(id EntityId) []reflect.Type {
	record := s.record(id)
	if record == nil {
		return nil
	}
	return record.archetype.types
}

// Entities iterates over every live entity in ascending slot order.
func (s *Storage) Entities() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for index, record := range s.entities {
			if record.archetype == nil {
				continue
			}
			if !yield(NewEntityId(uint32(index), record.generation)) {
				return
			}
		}
	}
}

// EntitiesWith iterates, in ascending slot order, over the live entities
// holding every one of the given component types.
func (s *Storage) EntitiesWith(types ...reflect.Type) iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for index, record := range s.entities {
			if record.archetype == nil {
				continue
			}
			matches := true
			for _, typ := range types {
				if !record.archetype.HasComponent(typ) {
					matches = false
					break
				}
			}
			if matches && !yield(NewEntityId(uint32(index), record.generation)) {
				return
			}
		}
	}
}

// EntityCount returns the number of live entities.
func (s *Storage) EntityCount() int {
	return len(s.entities) - len(s.freeSlots)
}

func componentType(component any) reflect.Type {
	compType := reflect.TypeOf(component)
	if compType != nil && compType.Kind() == reflect.Ptr {
		compType = compType.Elem()
	}
	return compType
}

// extractComponentTypes extracts and sorts component types from a slice of components
func extractComponentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		compType := componentType(comp)
		if compType == nil {
			panic("nil component")
		}

		// Components can be structs or primitives (int, string, etc.)
		// But not pointers, maps, channels, or functions (those aren't value types)
		if compType.Kind() == reflect.Ptr || compType.Kind() == reflect.Map ||
			compType.Kind() == reflect.Chan || compType.Kind() == reflect.Func {
			panic("components cannot be pointers, maps, channels, or functions")
		}
		if slices.Contains(types, compType) {
			panic("duplicate component type " + compType.String())
		}

		types = append(types, compType)
	}
	sort.Sort(byTypeName(types))
	return types
}

// hashTypesToUint32 generates a uint32 hash for a sorted slice of types
func hashTypesToUint32(types []reflect.Type) uint32 {
	var h uint32 = 2166136261     // FNV-1a 32-bit offset basis
	const prime uint32 = 16777619 // FNV-1a 32-bit prime

	for _, t := range types {
		// Use the type's pointer as a unique identifier
		ptr := (*iface)(unsafe.Pointer(&t)).data
		val := uint32(uintptr(ptr))

		// Mix in all 4 bytes if on 64-bit system
		if unsafe.Sizeof(uintptr(0)) == 8 {
			val ^= uint32(uintptr(ptr) >> 32)
		}

		h ^= val
		h *= prime
	}

	return h
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns a typed pointer to the entity's component, or nil.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return comp
}

// Has reports whether the entity holds a component of type T.
func Has[T any](s *Storage, entityId EntityId) bool {
	return s.HasComponent(entityId, reflect.TypeFor[T]())
}

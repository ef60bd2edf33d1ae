package ecs

import (
	"iter"
	"reflect"
	"strings"
)

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage instance has its own ComponentRegistry, allowing multiple
// independent ECS systems to coexist without interference.
type ComponentRegistry struct {
	factories map[reflect.Type]func() iComponentStorage
	byName    map[string]reflect.Type
	order     []reflect.Type
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() iComponentStorage),
		byName:    make(map[string]reflect.Type),
	}
}

// RegisterComponent registers a new component type with the given registry.
// This must be called for each component type before it can be used.
// Registering the same type twice is a no-op.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	if _, ok := r.factories[t]; ok {
		return
	}
	switch t.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		panic("component type " + t.String() + " must be a value type")
	}

	r.factories[t] = func() iComponentStorage {
		return &genericComponentStorage[T]{}
	}
	r.order = append(r.order, t)
	r.byName[t.Name()] = t
	r.byName[t.String()] = t
}

// TypeByName resolves a registered component type from either its bare name
// ("Position") or its package qualified name ("game.Position").
func (r *ComponentRegistry) TypeByName(name string) (reflect.Type, bool) {
	t, ok := r.byName[strings.TrimSpace(name)]
	return t, ok
}

// Types returns the registered component types in registration order.
func (r *ComponentRegistry) Types() []reflect.Type {
	return r.order
}

// Registered reports whether the component type has been registered.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

// getFactory returns the factory function for a given component type.
// Returns nil if the type is not registered.
func (r *ComponentRegistry) getFactory(t reflect.Type) func() iComponentStorage {
	return r.factories[t]
}

const (
	genericBlockSize = 64
)

// genericComponentStorage stores components of a specific type `T` in
// fixed-size blocks addressed by archetype row. Rows are assigned by the
// owning archetype so every column of an archetype stays aligned. Blocks are
// never moved once allocated, so component pointers stay valid until the row
// is freed.
type genericComponentStorage[T any] struct {
	blocks []*[genericBlockSize]T
	filled []*[genericBlockSize]bool
	count  int
}

func (cs *genericComponentStorage[T]) convert(item any) (T, bool) {
	if ptr, ok := item.(*T); ok {
		return *ptr, true
	}
	if val, ok := item.(T); ok {
		return val, true
	}
	var zero T
	return zero, false
}

func (cs *genericComponentStorage[T]) grow(row int) {
	for row/genericBlockSize >= len(cs.blocks) {
		cs.blocks = append(cs.blocks, new([genericBlockSize]T))
		cs.filled = append(cs.filled, new([genericBlockSize]bool))
	}
}

// Set writes the component into the given row, replacing any value already there.
func (cs *genericComponentStorage[T]) Set(row int, item any) bool {
	value, ok := cs.convert(item)
	if !ok || row < 0 {
		return false
	}
	cs.grow(row)

	blockIdx := row / genericBlockSize
	slotIdx := row % genericBlockSize

	if !cs.filled[blockIdx][slotIdx] {
		cs.count++
	}
	cs.blocks[blockIdx][slotIdx] = value
	cs.filled[blockIdx][slotIdx] = true
	return true
}

// Get returns a pointer to the component at the given row.
func (cs *genericComponentStorage[T]) Get(row int) any {
	if !cs.Has(row) {
		return nil
	}
	return &cs.blocks[row/genericBlockSize][row%genericBlockSize]
}

// Delete marks a component slot as empty.
func (cs *genericComponentStorage[T]) Delete(row int) {
	if !cs.Has(row) {
		return
	}

	blockIdx := row / genericBlockSize
	slotIdx := row % genericBlockSize

	var zero T
	cs.filled[blockIdx][slotIdx] = false
	cs.blocks[blockIdx][slotIdx] = zero
	cs.count--
}

// Has checks if a component exists at the given row.
func (cs *genericComponentStorage[T]) Has(row int) bool {
	if row < 0 {
		return false
	}

	blockIdx := row / genericBlockSize
	if blockIdx >= len(cs.blocks) {
		return false
	}

	return cs.filled[blockIdx][row%genericBlockSize]
}

// Len returns the number of stored components.
func (cs *genericComponentStorage[T]) Len() int {
	return cs.count
}

// Iter yields the occupied rows in ascending order.
func (cs *genericComponentStorage[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for blockIdx := range cs.filled {
			for slotIdx, filled := range cs.filled[blockIdx] {
				if filled && !yield(blockIdx*genericBlockSize+slotIdx) {
					return
				}
			}
		}
	}
}

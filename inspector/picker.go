package inspector

import (
	"reflect"

	"github.com/google/uuid"
	"github.com/plus3/ooftn-inspector/components"
	"github.com/plus3/ooftn-inspector/ecs"
)

var stableIDType = reflect.TypeFor[components.StableID]()

// EntityPicker selects an entity reference from a dropdown of "None" plus
// every live entity holding the required component types.
type EntityPicker struct {
	value    *ecs.EntityId
	label    string
	required []reflect.Type
	changed  *bool
}

// Entity returns a picker editing an entity reference. The zero id is "None".
func Entity(v *ecs.EntityId) *EntityPicker {
	return &EntityPicker{value: v, label: "entity"}
}

func (p *EntityPicker) Label(label string) *EntityPicker {
	p.label = label
	return p
}

// WithComponent restricts candidates to entities holding all of the types.
func (p *EntityPicker) WithComponent(types ...reflect.Type) *EntityPicker {
	p.required = append(p.required, types...)
	return p
}

func (p *EntityPicker) Changed(dst *bool) *EntityPicker {
	p.changed = dst
	return p
}

// Candidates returns the dropdown entries in display order, "None" first.
func (p *EntityPicker) Candidates(storage *ecs.Storage) []ecs.EntityId {
	candidates := []ecs.EntityId{0}
	for id := range storage.EntitiesWith(p.required...) {
		candidates = append(candidates, id)
	}
	return candidates
}

func (p *EntityPicker) Build(ctx *Context) bool {
	candidates := p.Candidates(ctx.Storage)
	changed := List(p.value, candidates, func(id ecs.EntityId) string {
		return EntityLabel(ctx.Storage, id)
	}).Label(p.label).Build(ctx)
	markChanged(p.changed, changed)
	return changed
}

// StableIDPicker selects an entity by its components.StableID, for
// references that must survive save and load. uuid.Nil is "None".
type StableIDPicker struct {
	value    *uuid.UUID
	label    string
	required []reflect.Type
	changed  *bool
}

func StableID(v *uuid.UUID) *StableIDPicker {
	return &StableIDPicker{value: v, label: "entity"}
}

func (p *StableIDPicker) Label(label string) *StableIDPicker {
	p.label = label
	return p
}

// WithComponent restricts candidates to entities that also hold all of the types.
func (p *StableIDPicker) WithComponent(types ...reflect.Type) *StableIDPicker {
	p.required = append(p.required, types...)
	return p
}

func (p *StableIDPicker) Changed(dst *bool) *StableIDPicker {
	p.changed = dst
	return p
}

// Candidates returns the marked entities in display order, "None" first,
// with the identifier each one carries.
func (p *StableIDPicker) Candidates(storage *ecs.Storage) ([]ecs.EntityId, []uuid.UUID) {
	entities := []ecs.EntityId{0}
	ids := []uuid.UUID{uuid.Nil}
	for id := range storage.EntitiesWith(append([]reflect.Type{stableIDType}, p.required...)...) {
		entities = append(entities, id)
		ids = append(ids, ecs.ReadComponent[components.StableID](storage, id).ID)
	}
	return entities, ids
}

func (p *StableIDPicker) Build(ctx *Context) bool {
	entities, ids := p.Candidates(ctx.Storage)
	labels := make(map[uuid.UUID]string, len(ids))
	for i, id := range ids {
		labels[id] = EntityLabel(ctx.Storage, entities[i])
	}

	changed := List(p.value, ids, func(id uuid.UUID) string {
		return labels[id]
	}).Label(p.label).Build(ctx)
	markChanged(p.changed, changed)
	return changed
}

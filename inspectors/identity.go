package inspectors

import (
	"github.com/plus3/ooftn-inspector/components"
	"github.com/plus3/ooftn-inspector/ecs"
	"github.com/plus3/ooftn-inspector/inspector"
)

// StableID shows the identifier read-only; a new one is random.
func StableID() *inspector.Component[components.StableID] {
	return &inspector.Component[components.StableID]{
		Draw: func(ctx *inspector.Context, _ ecs.EntityId, v *components.StableID) bool {
			ctx.UI.Text("id: " + v.String())
			return false
		},
		New: func(*inspector.Context, ecs.EntityId) components.StableID {
			return components.NewStableID()
		},
	}
}

// Marker ids come from the MarkerAllocator singleton, which is created on
// first use.
func Marker() *inspector.Component[components.Marker] {
	return &inspector.Component[components.Marker]{
		Draw: func(ctx *inspector.Context, _ ecs.EntityId, v *components.Marker) bool {
			ctx.UI.Text("marker: " + v.String())
			return false
		},
		OnAdd: func(ctx *inspector.Context, entity ecs.EntityId) {
			ctx.Commands.Exec(func(storage *ecs.Storage) {
				if !storage.Alive(entity) || ecs.Has[components.Marker](storage, entity) {
					return
				}
				allocator := ecs.NewSingleton(storage, *components.NewMarkerAllocator()).Get()
				storage.AddComponent(entity, allocator.Mark(entity))
			})
		},
		OnSetup: func(ctx *inspector.Context, _ ecs.EntityId) {
			allocator := inspector.Resource[components.MarkerAllocator](ctx)
			if allocator == nil {
				return
			}
			ctx.Commands.Exec(func(storage *ecs.Storage) {
				allocator.ReleaseStale(storage)
			})
		},
	}
}

package inspector

import (
	"reflect"

	"github.com/plus3/ooftn-inspector/ecs"
)

// ComponentInspector is the per-component-type contract the Inspector
// driver works through.
type ComponentInspector interface {
	// Name is the section title and add-button label.
	Name() string
	// Type is the component type handled.
	Type() reflect.Type
	// Setup runs every frame for every registered type, selected or not.
	// selected is zero when nothing is selected.
	Setup(ctx *Context, selected ecs.EntityId)
	// Inspect draws the component of an entity and queues a replacement
	// when it was edited. It does nothing when the component is absent.
	Inspect(ctx *Context, entity ecs.EntityId)
	// CanAdd reports whether an add button is offered for the entity.
	CanAdd(ctx *Context, entity ecs.EntityId) bool
	// CanRemove reports whether a remove button is offered for the entity.
	CanRemove(ctx *Context, entity ecs.EntityId) bool
	// Add queues the insertion of a new component.
	Add(ctx *Context, entity ecs.EntityId)
}

// Component implements ComponentInspector for T from plain functions.
//
// Inspect fetches the stored component, copies it, lets Draw edit the copy
// and, only when Draw reports a change, queues the whole copy as a
// replacement. Draw must never write through pointers into storage.
type Component[T any] struct {
	// Title overrides the name shown in the UI, which defaults to the type name.
	Title string
	// Draw edits value and reports whether anything changed.
	Draw func(ctx *Context, entity ecs.EntityId, value *T) bool
	// New builds the component added by the add button. Without New the
	// component cannot be added from the inspector.
	New func(ctx *Context, entity ecs.EntityId) T
	// Addable further restricts when the add button is shown.
	Addable func(ctx *Context, entity ecs.EntityId) bool
	// Removable restricts when the remove button is shown; nil means always.
	Removable func(ctx *Context, entity ecs.EntityId) bool
	// OnSetup is run by Setup.
	OnSetup func(ctx *Context, selected ecs.EntityId)
	// OnAdd replaces the default add behaviour of queueing New's result.
	OnAdd func(ctx *Context, entity ecs.EntityId)
}

func (c *Component[T]) Name() string {
	if c.Title != "" {
		return c.Title
	}
	return reflect.TypeFor[T]().Name()
}

func (c *Component[T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}

func (c *Component[T]) Setup(ctx *Context, selected ecs.EntityId) {
	if c.OnSetup != nil {
		c.OnSetup(ctx, selected)
	}
}

func (c *Component[T]) Inspect(ctx *Context, entity ecs.EntityId) {
	current := ecs.ReadComponent[T](ctx.Storage, entity)
	if current == nil || c.Draw == nil {
		return
	}
	scratch := *current

	ctx.UI.PushID(c.Name())
	changed := c.Draw(ctx, entity, &scratch)
	ctx.UI.PopID()

	if changed {
		ctx.Commands.AddComponent(entity, scratch)
		ctx.log().Debug("component edited", "entity", entity, "component", c.Name())
	}
}

func (c *Component[T]) CanAdd(ctx *Context, entity ecs.EntityId) bool {
	if c.New == nil && c.OnAdd == nil {
		return false
	}
	return c.Addable == nil || c.Addable(ctx, entity)
}

func (c *Component[T]) CanRemove(ctx *Context, entity ecs.EntityId) bool {
	return c.Removable == nil || c.Removable(ctx, entity)
}

func (c *Component[T]) Add(ctx *Context, entity ecs.EntityId) {
	if c.OnAdd != nil {
		c.OnAdd(ctx, entity)
		return
	}
	if c.New == nil {
		return
	}
	ctx.Commands.AddComponent(entity, c.New(ctx, entity))
	ctx.log().Debug("component added", "entity", entity, "component", c.Name())
}

// Marker returns an inspector for a field-less marker component: nothing to
// draw, always addable.
func Marker[T any]() *Component[T] {
	return &Component[T]{
		New: func(*Context, ecs.EntityId) T {
			var zero T
			return zero
		},
	}
}

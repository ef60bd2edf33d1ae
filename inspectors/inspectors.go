// Package inspectors provides a ready-made inspector for every type in
// the components package.
package inspectors

import (
	"github.com/plus3/ooftn-inspector/components"
	"github.com/plus3/ooftn-inspector/ecs"
	"github.com/plus3/ooftn-inspector/inspector"
)

// Defaults returns the inspectors for all components, in display order.
func Defaults() []inspector.ComponentInspector {
	return []inspector.ComponentInspector{
		Named(),
		Parent(),
		Transform(),
		Tint(),
		Blink(),
		Flipped(),
		inspector.Marker[components.Hidden](),
		inspector.Marker[components.HiddenPropagate](),
		inspector.Marker[components.ScreenSpace](),
		inspector.Marker[components.Transparent](),
		SpriteRender(),
		Texture(),
		UiTransform(),
		UiText(),
		UiTransformDebug(),
		Camera(),
		StableID(),
		Marker(),
	}
}

func Named() *inspector.Component[components.Named] {
	return &inspector.Component[components.Named]{
		Draw: func(ctx *inspector.Context, _ ecs.EntityId, v *components.Named) bool {
			return inspector.Text(&v.Name).Label("name").Build(ctx)
		},
		New: func(_ *inspector.Context, entity ecs.EntityId) components.Named {
			return components.DefaultName(entity)
		},
	}
}

// Parent edits the parent link. Children are created with "make child" or
// by dragging in the hierarchy, so it is not offered as an addition.
func Parent() *inspector.Component[ecs.Parent] {
	c := inspector.Derive[ecs.Parent]()
	c.New = nil
	return c
}

func Transform() *inspector.Component[components.Transform] {
	c := inspector.Derive[components.Transform]()
	draw := c.Draw
	c.Draw = func(ctx *inspector.Context, entity ecs.EntityId, v *components.Transform) bool {
		if !draw(ctx, entity, v) {
			return false
		}
		v.NormalizeRotation()
		return true
	}
	c.New = func(*inspector.Context, ecs.EntityId) components.Transform {
		return components.NewTransform()
	}
	return c
}

func Tint() *inspector.Component[components.Tint] {
	c := inspector.Derive[components.Tint]()
	c.New = func(*inspector.Context, ecs.EntityId) components.Tint {
		return components.White()
	}
	return c
}

func Blink() *inspector.Component[components.Blink] {
	c := inspector.Derive[components.Blink]()
	c.New = func(*inspector.Context, ecs.EntityId) components.Blink {
		return components.NewBlink()
	}
	return c
}

func Flipped() *inspector.Component[components.Flipped] {
	return &inspector.Component[components.Flipped]{
		Draw: func(ctx *inspector.Context, _ ecs.EntityId, v *components.Flipped) bool {
			return inspector.Enum(v, v.Variants()).Label("flip").Build(ctx)
		},
		New: func(*inspector.Context, ecs.EntityId) components.Flipped {
			return components.FlipNone
		},
	}
}

func Camera() *inspector.Component[components.Camera] {
	c := inspector.Derive[components.Camera]()
	c.New = func(*inspector.Context, ecs.EntityId) components.Camera {
		return components.Camera{Zoom: 1}
	}
	return c
}

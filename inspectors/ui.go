package inspectors

import (
	"reflect"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/ooftn-inspector/components"
	"github.com/plus3/ooftn-inspector/ecs"
	"github.com/plus3/ooftn-inspector/inspector"
)

// ScreenSize is the screen UiTransform outlines are laid out on. Without
// the singleton a 1280x720 screen is assumed.
type ScreenSize struct {
	Width, Height float32
}

var defaultScreen = ScreenSize{Width: 1280, Height: 720}

func screen(ctx *inspector.Context) mgl32.Vec2 {
	size := defaultScreen
	if s := inspector.Resource[ScreenSize](ctx); s != nil {
		size = *s
	}
	return mgl32.Vec2{size.Width, size.Height}
}

// UiTransform drags positions in pixels or in fractions of the parent,
// following the current scale mode.
func UiTransform() *inspector.Component[components.UiTransform] {
	return &inspector.Component[components.UiTransform]{
		Draw: func(ctx *inspector.Context, _ ecs.EntityId, v *components.UiTransform) bool {
			speed, size := float32(1), float32(100)
			if v.ScaleMode == components.ScalePercent {
				speed, size = 0.001, 0.1
			}

			changed := false
			inspector.Enum(&v.Anchor, v.Anchor.Variants()).Label("anchor").Changed(&changed).Build(ctx)
			inspector.Enum(&v.ScaleMode, v.ScaleMode.Variants()).Label("scale mode").Changed(&changed).Build(ctx)
			inspector.Vector(v.Local[:]).Label("local").Speed(speed).Changed(&changed).Build(ctx)
			inspector.Vector(v.Size[:]).Label("size").Speed(speed).NullTo(size).Changed(&changed).Build(ctx)
			return changed
		},
		New: func(*inspector.Context, ecs.EntityId) components.UiTransform {
			return components.NewUiTransform()
		},
	}
}

func fonts(ctx *inspector.Context) components.FontList {
	if list := inspector.Resource[components.FontList](ctx); list != nil {
		return *list
	}
	return nil
}

// UiText also adds a UiTransform when the entity has none, since text is
// laid out inside one.
func UiText() *inspector.Component[components.UiText] {
	return &inspector.Component[components.UiText]{
		Draw: func(ctx *inspector.Context, _ ecs.EntityId, v *components.UiText) bool {
			changed := false
			inspector.Text(&v.Text).Label("text").Changed(&changed).Build(ctx)
			if list := fonts(ctx); len(list) > 0 {
				inspector.List(&v.Font, list, identity).Label("font").Changed(&changed).Build(ctx)
			} else {
				inspector.Text(&v.Font).Label("font").Changed(&changed).Build(ctx)
			}
			inspector.Float(&v.FontSize).Label("font size").Speed(0.5).NullTo(30).Range(1, 512).Changed(&changed).Build(ctx)
			inspector.Vector(v.Color[:]).Label("colour").Speed(0.005).NullTo(1).Changed(&changed).Build(ctx)
			inspector.Bool(&v.Password).Label("password").Changed(&changed).Build(ctx)
			inspector.Enum(&v.LineMode, v.LineMode.Variants()).Label("line mode").Changed(&changed).Build(ctx)
			inspector.Enum(&v.Align, v.Align.Variants()).Label("align").Changed(&changed).Build(ctx)
			return changed
		},
		OnAdd: func(ctx *inspector.Context, entity ecs.EntityId) {
			font := "default"
			if list := fonts(ctx); len(list) > 0 {
				font = list[0]
			}
			if !ecs.Has[components.UiTransform](ctx.Storage, entity) {
				ctx.Commands.AddComponent(entity, components.NewUiTransform())
			}
			ctx.Commands.AddComponent(entity, components.NewUiText(font))
		},
	}
}

var (
	cameraType      = reflect.TypeFor[components.Camera]()
	uiTransformType = reflect.TypeFor[components.UiTransform]()
	debugType       = reflect.TypeFor[components.UiTransformDebug]()
)

func firstCamera(storage *ecs.Storage) (ecs.EntityId, bool) {
	for id := range storage.EntitiesWith(cameraType) {
		return id, true
	}
	return 0, false
}

// UiTransformDebug outlines UI elements into the DebugLines singleton. The
// outline is queued from Setup so it appears whether or not the entity is
// the one being inspected.
func UiTransformDebug() *inspector.Component[components.UiTransformDebug] {
	c := inspector.Derive[components.UiTransformDebug]()
	c.New = func(ctx *inspector.Context, _ ecs.EntityId) components.UiTransformDebug {
		camera, _ := firstCamera(ctx.Storage)
		return components.UiTransformDebug{
			Camera: camera,
			Color:  mgl32.Vec4{1, 0, 0, 1},
			Always: true,
		}
	}
	c.Addable = func(ctx *inspector.Context, entity ecs.EntityId) bool {
		_, ok := firstCamera(ctx.Storage)
		return ok && ecs.Has[components.UiTransform](ctx.Storage, entity)
	}
	c.OnSetup = func(ctx *inspector.Context, selected ecs.EntityId) {
		parent := screen(ctx)
		ctx.Commands.Exec(func(storage *ecs.Storage) {
			DrawOutlines(storage, selected, parent)
		})
	}
	return c
}

// DrawOutlines queues the outline of every UiTransform with a
// UiTransformDebug that is either marked Always or selected. With Children
// set the outlines of direct children are drawn too. Outlines are laid out
// on a screen of the given size and projected into the world through the
// debug camera, which must have a Camera and a Transform.
func DrawOutlines(storage *ecs.Storage, selected ecs.EntityId, screen mgl32.Vec2) int {
	lines := ecs.NewSingleton[components.DebugLines](storage).Get()
	var hierarchy *ecs.Hierarchy

	drawn := 0
	for id := range storage.EntitiesWith(debugType, uiTransformType) {
		debug := ecs.ReadComponent[components.UiTransformDebug](storage, id)
		if !debug.Always && id != selected {
			continue
		}
		camera := ecs.ReadComponent[components.Camera](storage, debug.Camera)
		view := ecs.ReadComponent[components.Transform](storage, debug.Camera)
		if camera == nil || view == nil {
			continue
		}

		transform := ecs.ReadComponent[components.UiTransform](storage, id)
		lines.DrawRect(project(transform.Corners(screen), *camera, *view, screen), debug.Color)
		drawn++

		if !debug.Children {
			continue
		}
		if hierarchy == nil {
			hierarchy = ecs.NewHierarchy(storage)
		}
		for _, child := range hierarchy.Children(id) {
			if t := ecs.ReadComponent[components.UiTransform](storage, child); t != nil {
				lines.DrawRect(project(t.Corners(screen), *camera, *view, screen), debug.Color)
				drawn++
			}
		}
	}
	return drawn
}

// project moves screen-centred corners to pixels and then into the world.
func project(corners [4]mgl32.Vec3, camera components.Camera, view components.Transform, screen mgl32.Vec2) [4]mgl32.Vec3 {
	for i, c := range corners {
		pixel := mgl32.Vec3{c.X() + screen.X()/2, c.Y() + screen.Y()/2, c.Z()}
		corners[i] = camera.WorldFromScreen(pixel, view, screen)
	}
	return corners
}

package inspectors

import (
	"github.com/plus3/ooftn-inspector/components"
	"github.com/plus3/ooftn-inspector/ecs"
	"github.com/plus3/ooftn-inspector/inspector"
)

func sprites(ctx *inspector.Context) components.SpriteList {
	if list := inspector.Resource[components.SpriteList](ctx); list != nil {
		return *list
	}
	return nil
}

func textures(ctx *inspector.Context) components.TextureList {
	if list := inspector.Resource[components.TextureList](ctx); list != nil {
		return *list
	}
	return nil
}

// SpriteRender picks a sheet from the SpriteList singleton and a sprite
// number within it. Changing sheet starts again at sprite 0.
func SpriteRender() *inspector.Component[components.SpriteRender] {
	return &inspector.Component[components.SpriteRender]{
		Draw: func(ctx *inspector.Context, _ ecs.EntityId, v *components.SpriteRender) bool {
			list := sprites(ctx)
			names := make([]string, len(list))
			for i, sheet := range list {
				names[i] = sheet.Name
			}

			changed := false
			if inspector.List(&v.Sheet, names, identity).Label("sheet").Changed(&changed).Build(ctx) {
				v.Sprite = 0
			}

			sheet, ok := list.Find(v.Sheet)
			if !ok {
				ctx.UI.Text("sprite: unknown sheet")
				return changed
			}
			inspector.Int(&v.Sprite).
				Label("sprite").
				Speed(0.1).
				Range(0, max(sheet.Sprites-1, 0)).
				Changed(&changed).
				Build(ctx)
			return changed
		},
		New: func(ctx *inspector.Context, _ ecs.EntityId) components.SpriteRender {
			return components.SpriteRender{Sheet: sprites(ctx)[0].Name}
		},
		Addable: func(ctx *inspector.Context, _ ecs.EntityId) bool {
			return len(sprites(ctx)) > 0
		},
	}
}

func Texture() *inspector.Component[components.Texture] {
	return &inspector.Component[components.Texture]{
		Draw: func(ctx *inspector.Context, _ ecs.EntityId, v *components.Texture) bool {
			return inspector.List(&v.Name, textures(ctx), identity).Label("texture").Build(ctx)
		},
		New: func(ctx *inspector.Context, _ ecs.EntityId) components.Texture {
			return components.Texture{Name: textures(ctx)[0]}
		},
		Addable: func(ctx *inspector.Context, _ ecs.EntityId) bool {
			return len(textures(ctx)) > 0
		},
	}
}

func identity(s string) string { return s }

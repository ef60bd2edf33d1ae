package inspectors_test

import (
	"testing"

	"github.com/plus3/ooftn-inspector/components"
	"github.com/plus3/ooftn-inspector/ecs"
	"github.com/plus3/ooftn-inspector/inspector/fakeui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpriteRenderNeedsSheets(t *testing.T) {
	w := newWorld()
	e := w.storage.Spawn(components.Named{Name: "x"})

	w.ui.SetOpen("add component", true)
	w.draw(t, e)
	assert.False(t, w.ui.Drawn(fakeui.KindButton, e.String()+"/SpriteRender"))
	assert.False(t, w.ui.Drawn(fakeui.KindButton, e.String()+"/Texture"))

	w.storage.AddSingleton(components.SpriteList{{Name: "hero", Sprites: 4}})
	w.ui.Click(e.String() + "/SpriteRender")
	w.draw(t, e)

	assert.Equal(t, components.SpriteRender{Sheet: "hero"}, *ecs.ReadComponent[components.SpriteRender](w.storage, e))
}

func TestSpriteRenderSheetChangeResetsSprite(t *testing.T) {
	w := newWorld()
	w.storage.AddSingleton(components.SpriteList{{Name: "hero", Sprites: 4}, {Name: "tiles", Sprites: 64}})
	e := w.storage.Spawn(components.SpriteRender{Sheet: "hero", Sprite: 3})

	w.draw(t, e)
	sheet, ok := w.ui.Find(fakeui.KindCombo, "sheet")
	require.True(t, ok)
	assert.Equal(t, []string{"hero", "tiles"}, sheet.Items)
	sprite, ok := w.ui.Find(fakeui.KindDrag, "sprite")
	require.True(t, ok)
	assert.Equal(t, 3.0, sprite.Max)

	w.ui.Select("sheet", 1)
	w.draw(t, e)
	assert.Equal(t, components.SpriteRender{Sheet: "tiles"}, *ecs.ReadComponent[components.SpriteRender](w.storage, e))
}

func TestSpriteRenderClampsSprite(t *testing.T) {
	w := newWorld()
	w.storage.AddSingleton(components.SpriteList{{Name: "hero", Sprites: 4}})
	e := w.storage.Spawn(components.SpriteRender{Sheet: "hero"})

	w.ui.Drag("sprite", 10)
	w.draw(t, e)
	assert.Equal(t, 3, ecs.ReadComponent[components.SpriteRender](w.storage, e).Sprite)
}

func TestSpriteRenderUnknownSheet(t *testing.T) {
	w := newWorld()
	w.storage.AddSingleton(components.SpriteList{{Name: "hero", Sprites: 4}})
	e := w.storage.Spawn(components.SpriteRender{Sheet: "gone", Sprite: 2})

	w.draw(t, e)
	assert.Contains(t, w.ui.Texts(), "sprite: unknown sheet")
	assert.Equal(t, components.SpriteRender{Sheet: "gone", Sprite: 2}, *ecs.ReadComponent[components.SpriteRender](w.storage, e))
}

func TestTexturePick(t *testing.T) {
	w := newWorld()
	w.storage.AddSingleton(components.TextureList{"grass", "stone"})
	e := w.storage.Spawn(components.Named{})

	w.ui.SetOpen("add component", true).Click(e.String() + "/Texture")
	w.draw(t, e)
	assert.Equal(t, "grass", ecs.ReadComponent[components.Texture](w.storage, e).Name)

	w.ui.Select("texture", 1)
	w.draw(t, e)
	assert.Equal(t, "stone", ecs.ReadComponent[components.Texture](w.storage, e).Name)
}

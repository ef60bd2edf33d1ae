package components_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/ooftn-inspector/components"
	"github.com/plus3/ooftn-inspector/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRotation(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{90, 90},
		{180, 180},
		{-180, 180},
		{190, -170},
		{540, 180},
		{-725, -5},
	}
	for _, tt := range tests {
		tr := components.Transform{Rotation: tt.in}
		tr.NormalizeRotation()
		assert.InDelta(t, tt.want, tr.Rotation, 1e-4, "rotation %v", tt.in)
	}
}

func TestTransformMatrix(t *testing.T) {
	tr := components.Transform{
		Translation: mgl32.Vec3{10, 0, 0},
		Rotation:    90,
		Scale:       mgl32.Vec2{2, 2},
	}
	p := tr.Matrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 10, p.X(), 1e-4)
	assert.InDelta(t, 2, p.Y(), 1e-4)
}

func TestDefaultName(t *testing.T) {
	assert.Equal(t, "Entity 3/2", components.DefaultName(ecs.NewEntityId(3, 2)).Name)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "Vertical", components.FlipVertical.String())
	assert.Equal(t, "Flipped(9)", components.Flipped(9).String())
	assert.Equal(t, "BottomRight", components.AnchorBottomRight.String())
	assert.Len(t, components.AnchorMiddle.Variants(), 9)
	assert.Equal(t, "Percent", components.ScalePercent.String())
	assert.Equal(t, "Wrap", components.LineWrap.String())
}

func TestAnchorOffset(t *testing.T) {
	assert.Equal(t, mgl32.Vec2{-0.5, -0.5}, components.AnchorTopLeft.Offset())
	assert.Equal(t, mgl32.Vec2{0, 0}, components.AnchorMiddle.Offset())
	assert.Equal(t, mgl32.Vec2{0.5, 0.5}, components.AnchorBottomRight.Offset())
}

func TestUiTransformCorners(t *testing.T) {
	parent := mgl32.Vec2{1280, 720}

	corners := components.NewUiTransform().Corners(parent)
	assert.Equal(t, mgl32.Vec3{-50, -50, 0}, corners[0])
	assert.Equal(t, mgl32.Vec3{50, 50, 0}, corners[2])

	topLeft := components.UiTransform{Anchor: components.AnchorTopLeft, Size: mgl32.Vec2{10, 10}}
	assert.Equal(t, mgl32.Vec3{-645, -365, 0}, topLeft.Corners(parent)[0])

	percent := components.UiTransform{
		Anchor:    components.AnchorMiddle,
		ScaleMode: components.ScalePercent,
		Local:     mgl32.Vec3{0.25, 0, 1},
		Size:      mgl32.Vec2{0.5, 0.5},
	}
	corners = percent.Corners(parent)
	assert.Equal(t, mgl32.Vec3{0, -180, 1}, corners[0])
	assert.Equal(t, mgl32.Vec3{640, 180, 1}, corners[2])
}

func TestDebugLines(t *testing.T) {
	var lines components.DebugLines
	red := mgl32.Vec4{1, 0, 0, 1}

	lines.DrawRect(components.NewUiTransform().Corners(mgl32.Vec2{100, 100}), red)
	require.Len(t, lines.Lines, 4)
	assert.Equal(t, lines.Lines[3].To, lines.Lines[0].From, "the outline is closed")

	lines.Clear()
	assert.Empty(t, lines.Lines)
}

func TestSpriteListFind(t *testing.T) {
	list := components.SpriteList{{Name: "hero", Sprites: 8}, {Name: "tiles", Sprites: 64}}

	sheet, ok := list.Find("tiles")
	assert.True(t, ok)
	assert.Equal(t, 64, sheet.Sprites)

	_, ok = list.Find("missing")
	assert.False(t, ok)
}

func TestRegister(t *testing.T) {
	registry := ecs.NewComponentRegistry()
	components.Register(registry)

	for _, name := range []string{"Parent", "Named", "Camera", "components.UiText", "Marker", "ScreenSpace"} {
		_, ok := registry.TypeByName(name)
		assert.True(t, ok, name)
	}
}

func TestCameraViewRoundTrip(t *testing.T) {
	screen := mgl32.Vec2{200, 100}
	camera := components.Camera{Zoom: 2}
	at := components.NewTransform()
	at.Translation = mgl32.Vec3{100, 50, 0}

	center := camera.View(at, screen).Mul4x1(mgl32.Vec4{100, 50, 0, 1})
	assert.InDelta(t, 100, center.X(), 1e-4)
	assert.InDelta(t, 50, center.Y(), 1e-4)

	world := camera.WorldFromScreen(mgl32.Vec3{50, 0, 3}, at, screen)
	assert.InDelta(t, 75, world.X(), 1e-4)
	assert.InDelta(t, 25, world.Y(), 1e-4)
	assert.Equal(t, float32(3), world.Z())
}

func TestCameraZeroZoomIsIdentityScale(t *testing.T) {
	screen := mgl32.Vec2{200, 100}
	at := components.NewTransform()
	at.Translation = mgl32.Vec3{100, 50, 0}

	world := components.Camera{}.WorldFromScreen(mgl32.Vec3{10, 20, 0}, at, screen)
	assert.InDelta(t, 10, world.X(), 1e-4)
	assert.InDelta(t, 20, world.Y(), 1e-4)
}

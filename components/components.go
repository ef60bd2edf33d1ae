// Package components holds the engine components the inspector ships
// support for, and the singletons some of them read.
package components

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/ooftn-inspector/ecs"
)

// Register registers every component type of this package.
func Register(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ecs.Parent](registry)
	ecs.RegisterComponent[Named](registry)
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Tint](registry)
	ecs.RegisterComponent[Blink](registry)
	ecs.RegisterComponent[Flipped](registry)
	ecs.RegisterComponent[Hidden](registry)
	ecs.RegisterComponent[HiddenPropagate](registry)
	ecs.RegisterComponent[ScreenSpace](registry)
	ecs.RegisterComponent[Transparent](registry)
	ecs.RegisterComponent[SpriteRender](registry)
	ecs.RegisterComponent[Texture](registry)
	ecs.RegisterComponent[UiTransform](registry)
	ecs.RegisterComponent[UiText](registry)
	ecs.RegisterComponent[UiTransformDebug](registry)
	ecs.RegisterComponent[Camera](registry)
	ecs.RegisterComponent[StableID](registry)
	ecs.RegisterComponent[Marker](registry)
}

// Named gives an entity a display name.
type Named struct {
	Name string
}

// DefaultName is the name given to an entity without one.
func DefaultName(id ecs.EntityId) Named {
	return Named{Name: fmt.Sprintf("Entity %d/%d", id.Index(), id.Generation())}
}

// Transform places an entity in the world. Rotation is in degrees around
// the z axis.
type Transform struct {
	Translation mgl32.Vec3 `inspect:"speed=0.1"`
	Rotation    float32    `inspect:"speed=0.25"`
	Scale       mgl32.Vec2 `inspect:"speed=0.1,null_to=1"`
}

func NewTransform() Transform {
	return Transform{Scale: mgl32.Vec2{1, 1}}
}

// Matrix returns the local to world matrix: translate * rotate * scale.
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z()).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(t.Rotation))).
		Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), 1))
}

// NormalizeRotation maps the rotation into (-180, 180].
func (t *Transform) NormalizeRotation() {
	r := float32(math.Mod(float64(t.Rotation), 360))
	if r <= -180 {
		r += 360
	} else if r > 180 {
		r -= 360
	}
	t.Rotation = r
}

// Tint multiplies the colour of a sprite. Components are RGBA in [0, 1].
type Tint struct {
	Color mgl32.Vec4 `inspect:"label=colour,speed=0.005,null_to=1"`
}

func White() Tint {
	return Tint{Color: mgl32.Vec4{1, 1, 1, 1}}
}

// Blink hides and shows an entity every Delay seconds.
type Blink struct {
	Delay        float32 `inspect:"speed=0.1"`
	Timer        float32 `inspect:"skip"`
	AbsoluteTime bool    `inspect:"label=absolute time"`
}

func NewBlink() Blink {
	return Blink{Delay: 0.5}
}

// Flipped mirrors a sprite.
type Flipped int

const (
	FlipNone Flipped = iota
	FlipHorizontal
	FlipVertical
	FlipBoth
)

func (Flipped) Variants() []Flipped {
	return []Flipped{FlipNone, FlipHorizontal, FlipVertical, FlipBoth}
}

func (f Flipped) String() string {
	switch f {
	case FlipNone:
		return "None"
	case FlipHorizontal:
		return "Horizontal"
	case FlipVertical:
		return "Vertical"
	case FlipBoth:
		return "Both"
	}
	return fmt.Sprintf("Flipped(%d)", int(f))
}

// Hidden stops an entity from being rendered.
type Hidden struct{}

// HiddenPropagate hides an entity and all of its children.
type HiddenPropagate struct{}

// ScreenSpace draws an entity in screen coordinates, ignoring the camera.
type ScreenSpace struct{}

// Transparent marks an entity for the transparent render pass.
type Transparent struct{}

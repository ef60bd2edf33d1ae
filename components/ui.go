package components

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/ooftn-inspector/ecs"
)

// Anchor is the point of the parent a UI element is positioned from.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTopMiddle
	AnchorTopRight
	AnchorMiddleLeft
	AnchorMiddle
	AnchorMiddleRight
	AnchorBottomLeft
	AnchorBottomMiddle
	AnchorBottomRight
)

var anchorNames = [...]string{
	"TopLeft", "TopMiddle", "TopRight",
	"MiddleLeft", "Middle", "MiddleRight",
	"BottomLeft", "BottomMiddle", "BottomRight",
}

func (Anchor) Variants() []Anchor {
	return []Anchor{
		AnchorTopLeft, AnchorTopMiddle, AnchorTopRight,
		AnchorMiddleLeft, AnchorMiddle, AnchorMiddleRight,
		AnchorBottomLeft, AnchorBottomMiddle, AnchorBottomRight,
	}
}

func (a Anchor) String() string {
	if a >= 0 && int(a) < len(anchorNames) {
		return anchorNames[a]
	}
	return fmt.Sprintf("Anchor(%d)", int(a))
}

// Offset returns the anchor position as a fraction of the parent size,
// with (-0.5, -0.5) the top left corner.
func (a Anchor) Offset() mgl32.Vec2 {
	col := float32(int(a)%3) * 0.5
	row := float32(int(a)/3) * 0.5
	return mgl32.Vec2{col - 0.5, row - 0.5}
}

// ScaleMode decides whether UI positions and sizes are pixels or fractions
// of the parent.
type ScaleMode int

const (
	ScalePixel ScaleMode = iota
	ScalePercent
)

func (ScaleMode) Variants() []ScaleMode {
	return []ScaleMode{ScalePixel, ScalePercent}
}

func (m ScaleMode) String() string {
	if m == ScalePercent {
		return "Percent"
	}
	return "Pixel"
}

// UiTransform positions a UI element.
type UiTransform struct {
	Anchor    Anchor
	ScaleMode ScaleMode
	Local     mgl32.Vec3
	Size      mgl32.Vec2
}

func NewUiTransform() UiTransform {
	return UiTransform{
		Anchor: AnchorMiddle,
		Size:   mgl32.Vec2{100, 100},
	}
}

// Corners returns the rectangle of the element in its parent's space, given
// the parent size in pixels, clockwise from the top left.
func (t UiTransform) Corners(parent mgl32.Vec2) [4]mgl32.Vec3 {
	size := t.Size
	local := t.Local.Vec2()
	if t.ScaleMode == ScalePercent {
		size = mgl32.Vec2{size.X() * parent.X(), size.Y() * parent.Y()}
		local = mgl32.Vec2{local.X() * parent.X(), local.Y() * parent.Y()}
	}

	anchor := t.Anchor.Offset()
	center := mgl32.Vec2{anchor.X() * parent.X(), anchor.Y() * parent.Y()}.Add(local)
	half := size.Mul(0.5)
	z := t.Local.Z()

	return [4]mgl32.Vec3{
		{center.X() - half.X(), center.Y() - half.Y(), z},
		{center.X() + half.X(), center.Y() - half.Y(), z},
		{center.X() + half.X(), center.Y() + half.Y(), z},
		{center.X() - half.X(), center.Y() + half.Y(), z},
	}
}

// LineMode controls text wrapping.
type LineMode int

const (
	LineSingle LineMode = iota
	LineWrap
)

func (LineMode) Variants() []LineMode {
	return []LineMode{LineSingle, LineWrap}
}

func (m LineMode) String() string {
	if m == LineWrap {
		return "Wrap"
	}
	return "Single"
}

// FontList is a singleton listing the font names UiText can use.
type FontList []string

// UiText renders text inside the entity's UiTransform.
type UiText struct {
	Text     string
	Font     string
	FontSize float32
	Color    mgl32.Vec4
	Password bool
	LineMode LineMode
	Align    Anchor
}

func NewUiText(font string) UiText {
	return UiText{
		Text:     "Sample text",
		Font:     font,
		FontSize: 30,
		Color:    mgl32.Vec4{1, 1, 1, 1},
		Align:    AnchorMiddle,
	}
}

// UiTransformDebug outlines the entity's UiTransform through Camera.
// Unless Always is set the outline is only drawn while the entity is
// selected in the inspector.
type UiTransformDebug struct {
	Camera   ecs.EntityId `inspect:"with_component=Camera"`
	Color    mgl32.Vec4   `inspect:"label=colour,speed=0.005"`
	Children bool
	Always   bool
}

// DebugLine is one segment queued for the debug renderer.
type DebugLine struct {
	From, To mgl32.Vec3
	Color    mgl32.Vec4
}

// DebugLines is a singleton collecting the debug segments of a frame, in
// world space.
type DebugLines struct {
	Lines []DebugLine
}

func (d *DebugLines) DrawLine(from, to mgl32.Vec3, color mgl32.Vec4) {
	d.Lines = append(d.Lines, DebugLine{From: from, To: to, Color: color})
}

// DrawRect queues the closed outline through the given corners.
func (d *DebugLines) DrawRect(corners [4]mgl32.Vec3, color mgl32.Vec4) {
	for i := range corners {
		d.DrawLine(corners[i], corners[(i+1)%len(corners)], color)
	}
}

// Clear drops the lines of the previous frame.
func (d *DebugLines) Clear() {
	d.Lines = d.Lines[:0]
}

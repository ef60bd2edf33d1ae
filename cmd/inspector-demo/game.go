package main

import (
	"image/color"
	"reflect"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/ooftn-inspector/components"
	"github.com/plus3/ooftn-inspector/ecs"
	"github.com/plus3/ooftn-inspector/ecs/debugui"
	debugui_ebiten "github.com/plus3/ooftn-inspector/ecs/debugui/ebiten"
	"github.com/plus3/ooftn-inspector/inspector"
	"github.com/plus3/ooftn-inspector/inspectors"
)

const spriteHalfSize = 12

var hiddenType = reflect.TypeFor[components.Hidden]()

var background = color.RGBA{R: 0x20, G: 0x22, B: 0x28, A: 0xff}

type sprite struct {
	Transform *components.Transform
	Tint      *components.Tint `ecs:"optional"`
}

// Game draws the sample world under the inspector windows.
type Game struct {
	scheduler *ecs.Scheduler
	storage   *ecs.Storage
	camera    ecs.EntityId

	backend *ecs.Singleton[debugui_ebiten.ImguiBackend]
	input   *ecs.Singleton[debugui.ImguiInputState]
	state   *ecs.Singleton[inspector.State]
	lines   *ecs.Singleton[components.DebugLines]
	screen  *ecs.Singleton[inspectors.ScreenSize]
	sprites *ecs.View[sprite]
}

func (g *Game) Update() error {
	g.backend.Get().Frame(g.scheduler, 1.0/float64(ebiten.TPS()))

	if input := g.input.Get(); input != nil && input.WantCaptureMouse {
		return nil
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if id, ok := g.pick(float32(x), float32(y)); ok {
			g.state.Get().Select(id)
		}
	}
	return nil
}

// view maps world coordinates to screen coordinates through the camera.
func (g *Game) view(width, height float32) mgl32.Mat4 {
	camera := components.Camera{Zoom: 1}
	if c := ecs.ReadComponent[components.Camera](g.storage, g.camera); c != nil {
		camera = *c
	}
	at := components.NewTransform()
	if t := ecs.ReadComponent[components.Transform](g.storage, g.camera); t != nil {
		at = *t
	}
	return camera.View(at, mgl32.Vec2{width, height})
}

func (g *Game) screenSize() (float32, float32) {
	w, h := ebiten.WindowSize()
	return float32(w), float32(h)
}

func (g *Game) corners(view mgl32.Mat4, t *components.Transform) [4]mgl32.Vec2 {
	m := view.Mul4(t.Matrix())
	local := [4]mgl32.Vec4{
		{-spriteHalfSize, -spriteHalfSize, 0, 1},
		{spriteHalfSize, -spriteHalfSize, 0, 1},
		{spriteHalfSize, spriteHalfSize, 0, 1},
		{-spriteHalfSize, spriteHalfSize, 0, 1},
	}
	var out [4]mgl32.Vec2
	for i, c := range local {
		out[i] = m.Mul4x1(c).Vec2()
	}
	return out
}

// pick returns the last drawn sprite whose bounds contain the point.
func (g *Game) pick(x, y float32) (ecs.EntityId, bool) {
	view := g.view(g.screenSize())

	var picked ecs.EntityId
	for id, s := range g.sprites.Iter() {
		if g.storage.HasComponent(id, hiddenType) {
			continue
		}
		c := g.corners(view, s.Transform)
		minX, minY, maxX, maxY := c[0].X(), c[0].Y(), c[0].X(), c[0].Y()
		for _, p := range c[1:] {
			minX, maxX = min(minX, p.X()), max(maxX, p.X())
			minY, maxY = min(minY, p.Y()), max(maxY, p.Y())
		}
		if x >= minX && x <= maxX && y >= minY && y <= maxY {
			picked = id
		}
	}
	return picked, !picked.IsZero()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	bounds := screen.Bounds()
	view := g.view(float32(bounds.Dx()), float32(bounds.Dy()))
	selected := g.state.Get().Selected

	for id, s := range g.sprites.Iter() {
		if g.storage.HasComponent(id, hiddenType) {
			continue
		}
		clr := components.White().Color
		if s.Tint != nil {
			clr = s.Tint.Color
		}
		width := float32(2)
		if id == selected {
			width = 4
		}
		c := g.corners(view, s.Transform)
		for i := range c {
			from, to := c[i], c[(i+1)%len(c)]
			vector.StrokeLine(screen, from.X(), from.Y(), to.X(), to.Y(), width, rgba(clr), true)
		}
	}

	if lines := g.lines.Get(); lines != nil {
		for _, line := range lines.Lines {
			from := view.Mul4x1(line.From.Vec4(1))
			to := view.Mul4x1(line.To.Vec4(1))
			vector.StrokeLine(screen, from.X(), from.Y(), to.X(), to.Y(), 1, rgba(line.Color), false)
		}
	}

	g.backend.Get().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Get().Layout(outsideWidth, outsideHeight)
	if size := g.screen.Get(); size != nil {
		size.Width, size.Height = float32(outsideWidth), float32(outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func rgba(c mgl32.Vec4) color.RGBA {
	channel := func(v float32) uint8 {
		return uint8(mgl32.Clamp(v, 0, 1) * 255)
	}
	a := mgl32.Clamp(c.W(), 0, 1)
	// ebiten expects premultiplied alpha
	return color.RGBA{
		R: channel(c.X() * a),
		G: channel(c.Y() * a),
		B: channel(c.Z() * a),
		A: channel(a),
	}
}

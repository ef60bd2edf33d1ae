// Package scene builds the sample world shared by the demo and stress
// commands, and the few systems that animate it.
package scene

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/ooftn-inspector/components"
	"github.com/plus3/ooftn-inspector/ecs"
	"github.com/plus3/ooftn-inspector/inspector"
)

// NewRegistry returns a registry holding every inspectable component.
func NewRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	components.Register(registry)
	return registry
}

// Setup adds the singletons the inspectors read their choices from.
func Setup(storage *ecs.Storage) {
	storage.AddSingleton(components.SpriteList{
		{Name: "characters", Sprites: 16},
		{Name: "tiles", Sprites: 64},
		{Name: "effects", Sprites: 8},
	})
	storage.AddSingleton(components.TextureList{"background", "grass", "stone"})
	storage.AddSingleton(components.FontList{"sans", "mono"})
	storage.AddSingleton(components.DebugLines{})
	storage.AddSingleton(components.NewMarkerAllocator())
}

// Populate spawns a camera, a UI label and n sprites scattered over a
// width by height area, every fourth one parented to the one before it.
// The camera, centred on the area, is returned.
func Populate(storage *ecs.Storage, rng *rand.Rand, n int, width, height float32) ecs.EntityId {
	view := components.NewTransform()
	view.Translation = mgl32.Vec3{width / 2, height / 2, 0}
	camera := storage.Spawn(components.Named{Name: "camera"}, components.Camera{Zoom: 1}, view)

	label := components.NewUiTransform()
	label.Anchor = components.AnchorTopLeft
	label.Local = mgl32.Vec3{120, 40, 0}
	label.Size = mgl32.Vec2{200, 40}
	text := components.NewUiText("sans")
	text.Text = "inspector demo"
	storage.Spawn(
		components.Named{Name: "title"},
		label,
		text,
		components.UiTransformDebug{Camera: camera, Color: mgl32.Vec4{0, 1, 0, 1}, Always: true},
	)

	sheets := []string{"characters", "tiles", "effects"}
	var previous ecs.EntityId
	for i := range n {
		transform := components.NewTransform()
		transform.Translation = mgl32.Vec3{rng.Float32() * width, rng.Float32() * height, 0}
		transform.Rotation = rng.Float32()*360 - 180

		tint := components.Tint{Color: mgl32.Vec4{rng.Float32(), rng.Float32(), rng.Float32(), 1}}
		sprite := components.SpriteRender{Sheet: sheets[i%len(sheets)], Sprite: rng.Intn(8)}

		entity := []any{components.Named{Name: fmt.Sprintf("sprite %d", i)}, transform, tint, sprite}
		if i%4 == 3 && !previous.IsZero() {
			entity = append(entity, ecs.Parent{Entity: previous})
		}
		if i%5 == 0 {
			entity = append(entity, components.NewBlink())
		}
		if i%7 == 0 {
			entity = append(entity, components.Flipped(rng.Intn(4)))
		}
		previous = storage.Spawn(entity...)
	}
	return camera
}

type blinking struct {
	ID    ecs.EntityId
	Blink *components.Blink
}

// BlinkSystem toggles Hidden on every Blink entity once per Delay seconds.
type BlinkSystem struct {
	Entities ecs.Query[blinking]
}

func (s *BlinkSystem) Execute(frame *ecs.UpdateFrame) {
	for _, e := range s.Entities.Iter() {
		e.Blink.Timer += float32(frame.DeltaTime)
		if e.Blink.Delay <= 0 || e.Blink.Timer < e.Blink.Delay {
			continue
		}
		e.Blink.Timer = 0
		if frame.Storage.HasComponent(e.ID, hiddenType) {
			frame.Commands.RemoveComponent(e.ID, hiddenType)
		} else {
			frame.Commands.AddComponent(e.ID, components.Hidden{})
		}
	}
}

// DebugLinesSystem clears the DebugLines singleton at the start of a frame.
type DebugLinesSystem struct {
	Lines ecs.Singleton[components.DebugLines]
}

func (s *DebugLinesSystem) Execute(*ecs.UpdateFrame) {
	if lines := s.Lines.Get(); lines != nil {
		lines.Clear()
	}
}

// RequestSystem drains the inspector's save and load requests. Persisting
// prefabs is left to the host game, so requests are only logged.
type RequestSystem struct {
	Logger *slog.Logger
	State  ecs.Singleton[inspector.State]

	Saved  []inspector.SaveRequest
	Loaded []string
}

func (s *RequestSystem) Execute(*ecs.UpdateFrame) {
	state := s.State.Get()
	if state == nil {
		return
	}
	for _, save := range state.DrainSaves() {
		s.Logger.Info("save requested", "entity", save.Entity, "name", save.Name)
		s.Saved = append(s.Saved, save)
	}
	for _, load := range state.DrainLoads() {
		s.Logger.Info("load requested", "prefab", load)
		s.Loaded = append(s.Loaded, load)
	}
}

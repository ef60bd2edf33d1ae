package ecs_test

import (
	"fmt"
	"reflect"

	"github.com/plus3/ooftn-inspector/ecs"
)

// ExampleStorage shows that entity ids survive component changes and become
// stale once the entity is deleted.
func ExampleStorage() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	storage := ecs.NewStorage(registry)

	player := storage.Spawn(Position{X: 10, Y: 20})
	storage.AddComponent(player, Velocity{DX: 1})
	fmt.Println("has velocity:", ecs.Has[Velocity](storage, player))

	storage.RemoveComponent(player, reflect.TypeFor[Velocity]())
	pos := ecs.ReadComponent[Position](storage, player)
	fmt.Printf("position: (%.0f, %.0f)\n", pos.X, pos.Y)

	storage.Delete(player)
	replacement := storage.Spawn(Position{})
	fmt.Println("old id alive:", storage.Alive(player))
	fmt.Println("slot reused:", replacement.Index() == player.Index())

	// Output:
	// has velocity: true
	// position: (10, 20)
	// old id alive: false
	// slot reused: true
}

// ExampleCommands queues a whole-component replacement that only becomes
// visible once the buffer is flushed.
func ExampleCommands() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Health](registry)
	storage := ecs.NewStorage(registry)
	orc := storage.Spawn(Health{Current: 10, Max: 10})

	commands := ecs.NewCommands()
	edited := *ecs.ReadComponent[Health](storage, orc)
	edited.Current = 3
	commands.AddComponent(orc, edited)

	fmt.Println("before flush:", ecs.ReadComponent[Health](storage, orc).Current)
	commands.Flush(storage)
	fmt.Println("after flush:", ecs.ReadComponent[Health](storage, orc).Current)

	// Output:
	// before flush: 10
	// after flush: 3
}

// ExampleNewHierarchy walks a parent/child tree built from Parent components.
func ExampleNewHierarchy() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Name](registry)
	ecs.RegisterComponent[ecs.Parent](registry)
	storage := ecs.NewStorage(registry)

	ship := storage.Spawn(Name{Value: "ship"})
	storage.Spawn(Name{Value: "turret"}, ecs.Parent{Entity: ship})
	storage.Spawn(Name{Value: "engine"}, ecs.Parent{Entity: ship})

	h := ecs.NewHierarchy(storage)
	var walk func(id ecs.EntityId, depth int)
	walk = func(id ecs.EntityId, depth int) {
		fmt.Printf("%*s%s\n", depth*2, "", ecs.ReadComponent[Name](storage, id).Value)
		for _, child := range h.Children(id) {
			walk(child, depth+1)
		}
	}
	for _, root := range h.Roots() {
		walk(root, 0)
	}

	// Output:
	// ship
	//   turret
	//   engine
}

// ExampleScheduler registers a system whose Query field is bound and
// refreshed by the scheduler every frame.
func ExampleScheduler() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	storage := ecs.NewStorage(registry)
	rock := storage.Spawn(Position{}, Velocity{DX: 2, DY: 1})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&MovementSystem{})
	scheduler.Once(1)
	scheduler.Once(1)

	pos := ecs.ReadComponent[Position](storage, rock)
	fmt.Printf("(%.0f, %.0f)\n", pos.X, pos.Y)

	// Output:
	// (4, 2)
}

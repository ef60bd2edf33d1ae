package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/ooftn-inspector/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsDeferUntilFlush(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1})

	commands := ecs.NewCommands()
	commands.AddComponent(id, Velocity{DX: 2})
	commands.Spawn(Name{Value: "spawned"})
	commands.Delete(storage.Spawn(Health{}))
	assert.Equal(t, 3, commands.Len())

	assert.False(t, ecs.Has[Velocity](storage, id))
	assert.Equal(t, 2, storage.EntityCount())

	commands.Flush(storage)
	assert.Equal(t, 0, commands.Len())
	assert.True(t, ecs.Has[Velocity](storage, id))
	assert.Equal(t, 2, storage.EntityCount())
}

func TestCommandsReplaceWhole(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Health{Current: 1, Max: 10})

	staged := *ecs.ReadComponent[Health](storage, id)
	staged.Current = 7

	commands := ecs.NewCommands()
	commands.AddComponent(id, staged)
	assert.Equal(t, 1, ecs.ReadComponent[Health](storage, id).Current)

	commands.Flush(storage)
	assert.Equal(t, Health{Current: 7, Max: 10}, *ecs.ReadComponent[Health](storage, id))
}

func TestCommandsFlushOrder(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{}, Velocity{})

	var order []string
	commands := ecs.NewCommands()
	commands.Defer(func() { order = append(order, "defer") })
	commands.Exec(func(s *ecs.Storage) {
		order = append(order, "exec")
		assert.True(t, ecs.Has[Health](s, id))
		assert.False(t, ecs.Has[Velocity](s, id))
	})
	commands.SpawnThen(func(spawned ecs.EntityId) {
		order = append(order, "spawn")
		assert.True(t, storage.Alive(spawned))
	}, Name{Value: "child"})
	commands.AddComponent(id, Health{Current: 3})
	commands.RemoveComponent(id, reflect.TypeFor[Velocity]())

	commands.Flush(storage)
	assert.Equal(t, []string{"spawn", "exec", "defer"}, order)
}

func TestCommandsDroppedForDeletedEntity(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 7})

	commands := ecs.NewCommands()
	commands.AddComponent(id, Health{Current: 50})
	commands.RemoveComponent(id, reflect.TypeFor[Position]())
	commands.Delete(id)
	commands.Flush(storage)

	assert.False(t, storage.Alive(id))
	assert.Equal(t, 0, storage.EntityCount())
	assert.Nil(t, storage.GetArchetype(Health{}))
}

func TestCommandsRemoveThenAdd(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Position{X: 1}, Velocity{DX: 5})

	commands := ecs.NewCommands()
	commands.RemoveComponent(id, reflect.TypeFor[Velocity]())
	commands.AddComponent(id, Health{Current: 50, Max: 100})
	commands.Flush(storage)

	require.True(t, storage.Alive(id))
	assert.False(t, ecs.Has[Velocity](storage, id))
	assert.Equal(t, Health{Current: 50, Max: 100}, *ecs.ReadComponent[Health](storage, id))
	assert.Equal(t, float32(1), ecs.ReadComponent[Position](storage, id).X)
}

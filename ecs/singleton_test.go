package ecs_test

import (
	"testing"

	"github.com/plus3/ooftn-inspector/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type GameConfig struct {
	Difficulty string
	MaxPlayers int
}

func TestSingletonInitializer(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	config := ecs.NewSingleton(storage, GameConfig{Difficulty: "hard", MaxPlayers: 4})
	require.True(t, config.Exists())
	assert.Equal(t, "hard", config.Get().Difficulty)

	again := ecs.NewSingleton(storage, GameConfig{Difficulty: "easy"})
	assert.Same(t, config.Get(), again.Get(), "initializer is ignored once the singleton exists")
}

func TestSingletonAddReplaces(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var accessor ecs.Singleton[GameConfig]
	accessor.Init(storage)
	assert.False(t, accessor.Exists())
	assert.Nil(t, accessor.Get())

	storage.AddSingleton(GameConfig{MaxPlayers: 2})
	require.True(t, accessor.Exists())
	ptr := accessor.Get()

	storage.AddSingleton(&GameConfig{MaxPlayers: 8})
	assert.Same(t, ptr, accessor.Get())
	assert.Equal(t, 8, accessor.Get().MaxPlayers)
}

func TestReadSingleton(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var config *GameConfig
	assert.False(t, storage.ReadSingleton(&config))
	assert.Nil(t, config)

	storage.AddSingleton(GameConfig{Difficulty: "normal"})
	require.True(t, storage.ReadSingleton(&config))
	config.Difficulty = "changed"

	var again *GameConfig
	storage.ReadSingleton(&again)
	assert.Equal(t, "changed", again.Difficulty)

	assert.Panics(t, func() { storage.ReadSingleton(config) })
}

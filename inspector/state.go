package inspector

import "github.com/plus3/ooftn-inspector/ecs"

// SaveRequest asks an external persistence system to save an entity.
type SaveRequest struct {
	Entity ecs.EntityId
	Name   string
}

// State is the inspector's per-world state, kept as an ECS singleton and
// passed explicitly to every panel.
type State struct {
	// Selected is the entity shown by the Inspector, zero for none.
	Selected ecs.EntityId

	// SaveName is the contents of the save name input.
	SaveName string
	// Prefabs lists the options of the load dropdown.
	Prefabs []string
	// SelectedPrefab indexes Prefabs.
	SelectedPrefab int

	// ToSave and ToLoad collect requests until a persistence system drains them.
	ToSave []SaveRequest
	ToLoad []string
}

// Select makes id the inspected entity.
func (s *State) Select(id ecs.EntityId) {
	s.Selected = id
}

// DrainSaves returns and clears the pending save requests.
func (s *State) DrainSaves() []SaveRequest {
	saves := s.ToSave
	s.ToSave = nil
	return saves
}

// DrainLoads returns and clears the pending load requests.
func (s *State) DrainLoads() []string {
	loads := s.ToLoad
	s.ToLoad = nil
	return loads
}

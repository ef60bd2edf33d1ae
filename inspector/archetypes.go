package inspector

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/plus3/ooftn-inspector/ecs"
)

// ArchetypePanel lists the storage archetypes, largest first. Expanding an
// archetype lists its entities, and clicking one selects it.
type ArchetypePanel struct {
	// EntityLimit caps the entities listed under an expanded archetype.
	EntityLimit int
}

func NewArchetypePanel(entityLimit int) *ArchetypePanel {
	return &ArchetypePanel{EntityLimit: max(entityLimit, 1)}
}

// Archetypes returns the archetype summaries in display order: most
// entities first, ties by id.
func (ap *ArchetypePanel) Archetypes(storage *ecs.Storage) []ecs.ArchetypeStats {
	archetypes := storage.CollectStats().ArchetypeBreakdown
	slices.SortStableFunc(archetypes, func(a, b ecs.ArchetypeStats) int {
		if c := cmp.Compare(b.EntityCount, a.EntityCount); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return archetypes
}

func (ap *ArchetypePanel) Draw(ctx *Context, state *State) {
	ui := ctx.UI
	if !ui.Begin("Archetype Viewer") {
		ui.End()
		return
	}

	for _, arch := range ap.Archetypes(ctx.Storage) {
		label := fmt.Sprintf("0x%08X  %d entities  [%s]", arch.ID, arch.EntityCount, strings.Join(arch.ComponentTypes, ", "))
		if !ui.TreeNode(label, arch.EntityCount == 0, false) {
			continue
		}

		shown := 0
		for id := range ctx.Storage.GetArchetypeById(arch.ID).Iter() {
			if shown == ap.EntityLimit {
				ui.Text(fmt.Sprintf("... %d more", arch.EntityCount-shown))
				break
			}
			if ui.Selectable(EntityLabel(ctx.Storage, id)+"##"+id.String(), state.Selected == id) {
				state.Select(id)
			}
			shown++
		}
		ui.TreePop()
	}

	ui.End()
}

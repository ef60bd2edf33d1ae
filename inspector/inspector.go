package inspector

import (
	"github.com/plus3/ooftn-inspector/ecs"
)

// Inspector draws the selected entity with one section per registered
// component type, in registration order.
type Inspector struct {
	inspectors []ComponentInspector
}

// New creates an Inspector. The order of inspectors is the display order.
func New(inspectors ...ComponentInspector) *Inspector {
	return &Inspector{inspectors: inspectors}
}

// Register appends inspectors to the display order.
func (in *Inspector) Register(inspectors ...ComponentInspector) {
	in.inspectors = append(in.inspectors, inspectors...)
}

// Inspectors returns the registered inspectors in display order.
func (in *Inspector) Inspectors() []ComponentInspector {
	return in.inspectors
}

// Draw renders the inspector window for state.Selected.
func (in *Inspector) Draw(ctx *Context, state *State) {
	ui := ctx.UI
	if !ui.Begin("Inspector") {
		ui.End()
		return
	}

	for _, ci := range in.inspectors {
		ci.Setup(ctx, state.Selected)
	}

	if entity := state.Selected; !entity.IsZero() && ctx.Storage.Alive(entity) {
		ui.PushID(entity.String())
		in.drawEntity(ctx, state, entity)
		ui.PopID()
	}

	if len(state.Prefabs) > 0 {
		in.drawLoad(ctx, state)
	}

	ui.End()
}

func (in *Inspector) drawEntity(ctx *Context, state *State, entity ecs.EntityId) {
	ui := ctx.UI

	ui.Text(EntityLabel(ctx.Storage, entity))
	if ui.Button("make child") {
		ctx.Commands.Spawn(ecs.Parent{Entity: entity})
		ctx.log().Debug("child queued", "parent", entity)
	}
	ui.SameLine()
	if ui.Button("remove") {
		ctx.Commands.Delete(entity)
		ctx.log().Debug("entity delete queued", "entity", entity)
	}

	if ui.CollapsingHeader("add component", false) {
		in.drawAddButtons(ctx, entity)
		ui.Separator()
	}

	for _, ci := range in.inspectors {
		if !ctx.Storage.HasComponent(entity, ci.Type()) {
			continue
		}

		ui.PushID(ci.Name())
		expanded := ui.CollapsingHeader(ci.Name(), true)
		remove := false
		if ci.CanRemove(ctx, entity) {
			ui.SameLine()
			remove = ui.Button("remove")
		}
		ui.PopID()

		if remove {
			ctx.Commands.RemoveComponent(entity, ci.Type())
			ctx.log().Debug("component remove queued", "entity", entity, "component", ci.Name())
		} else if expanded {
			ci.Inspect(ctx, entity)
		}
	}

	ui.Separator()
	ui.InputText("##save name", &state.SaveName)
	ui.SameLine()
	if ui.Button("save") {
		state.ToSave = append(state.ToSave, SaveRequest{Entity: entity, Name: state.SaveName})
		ctx.log().Debug("save requested", "entity", entity, "name", state.SaveName)
	}
}

// drawAddButtons lays the add buttons out in rows that fit the window.
func (in *Inspector) drawAddButtons(ctx *Context, entity ecs.EntityId) {
	ui := ctx.UI
	avail := ui.AvailableWidth()
	var row float32

	for _, ci := range in.inspectors {
		if ctx.Storage.HasComponent(entity, ci.Type()) || !ci.CanAdd(ctx, entity) {
			continue
		}

		width := buttonWidth(ci.Name())
		if row > 0 {
			if row+width < avail {
				ui.SameLine()
			} else {
				row = 0
			}
		}
		row += width

		if ui.Button(ci.Name()) {
			ci.Add(ctx, entity)
		}
	}
}

// buttonWidth estimates the width of a small button with the default font.
func buttonWidth(label string) float32 {
	return float32(len(label))*7 + 8
}

func (in *Inspector) drawLoad(ctx *Context, state *State) {
	ui := ctx.UI
	state.SelectedPrefab = clamp(state.SelectedPrefab, 0, len(state.Prefabs)-1)

	ui.Separator()
	if ui.Combo("##prefab", &state.SelectedPrefab, state.Prefabs) {
		state.SelectedPrefab = clamp(state.SelectedPrefab, 0, len(state.Prefabs)-1)
	}
	ui.SameLine()
	if ui.Button("load") {
		prefab := state.Prefabs[state.SelectedPrefab]
		state.ToLoad = append(state.ToLoad, prefab)
		ctx.log().Debug("load requested", "prefab", prefab)
	}
}

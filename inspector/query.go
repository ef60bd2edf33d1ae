package inspector

import (
	"fmt"
	"reflect"

	"github.com/plus3/ooftn-inspector/ecs"
)

// QueryPanel lists the entities holding every checked component type, to
// check what a system query would match.
type QueryPanel struct {
	Checked map[reflect.Type]bool
}

func NewQueryPanel() *QueryPanel {
	return &QueryPanel{Checked: make(map[reflect.Type]bool)}
}

// Types returns the checked types in registration order.
func (qp *QueryPanel) Types(registry *ecs.ComponentRegistry) []reflect.Type {
	var types []reflect.Type
	for _, t := range registry.Types() {
		if qp.Checked[t] {
			types = append(types, t)
		}
	}
	return types
}

// Matches returns the live entities the checked types select. Nothing is
// matched while no type is checked.
func (qp *QueryPanel) Matches(storage *ecs.Storage) []ecs.EntityId {
	types := qp.Types(storage.Registry())
	if len(types) == 0 {
		return nil
	}
	var matches []ecs.EntityId
	for id := range storage.EntitiesWith(types...) {
		matches = append(matches, id)
	}
	return matches
}

func (qp *QueryPanel) Draw(ctx *Context, state *State) {
	ui := ctx.UI
	if !ui.Begin("Query Debugger") {
		ui.End()
		return
	}

	if ui.Button("clear all") {
		clear(qp.Checked)
	}
	for _, t := range ctx.Storage.Registry().Types() {
		checked := qp.Checked[t]
		if ui.Checkbox(t.String(), &checked) {
			if checked {
				qp.Checked[t] = true
			} else {
				delete(qp.Checked, t)
			}
		}
	}
	ui.Separator()

	matches := qp.Matches(ctx.Storage)
	if len(qp.Checked) == 0 {
		ui.Text("No component types selected")
	} else {
		ui.Text(fmt.Sprintf("Matching entities: %d", len(matches)))
	}
	for _, id := range matches {
		if ui.Selectable(EntityLabel(ctx.Storage, id)+"##"+id.String(), state.Selected == id) {
			state.Select(id)
		}
	}

	ui.End()
}

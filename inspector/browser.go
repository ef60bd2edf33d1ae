package inspector

import (
	"fmt"
	"strings"

	"github.com/plus3/ooftn-inspector/ecs"
)

// EntityInfo is one row of the entity browser.
type EntityInfo struct {
	ID             ecs.EntityId
	Label          string
	ComponentTypes []string
}

// EntityBrowser is a filterable, paged list of every live entity. Clicking
// a row selects the entity for the Inspector.
type EntityBrowser struct {
	FilterText     string
	EntitiesOnPage int

	currentPage int
	rows        []EntityInfo
}

func NewEntityBrowser(entitiesOnPage int) *EntityBrowser {
	return &EntityBrowser{EntitiesOnPage: max(entitiesOnPage, 1)}
}

// Rows lists the entities matching the filter in ascending slot order.
func (eb *EntityBrowser) Rows(storage *ecs.Storage) []EntityInfo {
	eb.rows = eb.rows[:0]
	filter := strings.ToLower(strings.TrimSpace(eb.FilterText))

	for id := range storage.Entities() {
		types := storage.ComponentTypes(id)
		names := make([]string, len(types))
		for i, t := range types {
			names[i] = t.Name()
		}

		info := EntityInfo{
			ID:             id,
			Label:          EntityLabel(storage, id),
			ComponentTypes: names,
		}
		if filter != "" && !info.matches(filter) {
			continue
		}
		eb.rows = append(eb.rows, info)
	}
	return eb.rows
}

func (info EntityInfo) matches(filter string) bool {
	return strings.Contains(info.ID.String(), filter) ||
		strings.Contains(strings.ToLower(info.Label), filter) ||
		strings.Contains(strings.ToLower(strings.Join(info.ComponentTypes, " ")), filter)
}

func (eb *EntityBrowser) Draw(ctx *Context, state *State) {
	ui := ctx.UI
	if !ui.Begin("Entity Browser") {
		ui.End()
		return
	}

	ui.InputText("##search", &eb.FilterText)
	ui.SameLine()
	if ui.Button("clear filter") {
		eb.FilterText = ""
	}
	ui.Separator()

	rows := eb.Rows(ctx.Storage)
	pages := max((len(rows)+eb.EntitiesOnPage-1)/eb.EntitiesOnPage, 1)
	eb.currentPage = clamp(eb.currentPage, 0, pages-1)

	start := eb.currentPage * eb.EntitiesOnPage
	end := min(start+eb.EntitiesOnPage, len(rows))
	for _, row := range rows[start:end] {
		label := fmt.Sprintf("%s  [%s]##%s", row.Label, strings.Join(row.ComponentTypes, ", "), row.ID)
		if ui.Selectable(label, state.Selected == row.ID) {
			state.Select(row.ID)
		}
	}

	ui.Separator()
	if pages > 1 {
		ui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, pages, len(rows)))
		ui.SameLine()
		if ui.Button("prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		ui.SameLine()
		if ui.Button("next") && eb.currentPage < pages-1 {
			eb.currentPage++
		}
	} else {
		ui.Text(fmt.Sprintf("Total: %d entities", len(rows)))
	}

	ui.End()
}

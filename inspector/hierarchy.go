package inspector

import (
	"reflect"

	"github.com/plus3/ooftn-inspector/ecs"
)

var parentType = reflect.TypeFor[ecs.Parent]()

// DropAction is the outcome of a finished drag.
type DropAction int

const (
	// DropCancel means the node was released over itself.
	DropCancel DropAction = iota
	// DropReparent means the node was released over another node.
	DropReparent
	// DropDetach means the node was released over empty space.
	DropDetach
)

func (a DropAction) String() string {
	switch a {
	case DropReparent:
		return "reparent"
	case DropDetach:
		return "detach"
	default:
		return "cancel"
	}
}

// Drop describes a finished drag gesture.
type Drop struct {
	Action DropAction
	Source ecs.EntityId
	Target ecs.EntityId
}

// DragState is the drag-to-reparent gesture of the hierarchy browser.
// It is Idle until the left button goes down over a node, then Dragging
// that node until the button is released.
type DragState struct {
	dragging ecs.EntityId
	hovering ecs.EntityId
}

// Dragging returns the node being dragged, if any.
func (d *DragState) Dragging() (ecs.EntityId, bool) {
	return d.dragging, !d.dragging.IsZero()
}

// BeginFrame forgets the hovered node of the previous frame.
func (d *DragState) BeginFrame() {
	d.hovering = 0
}

// Hover records that the pointer is over node. Pressing the left button
// over a node while Idle starts dragging it.
func (d *DragState) Hover(node ecs.EntityId, leftDown bool) {
	d.hovering = node
	if leftDown && d.dragging.IsZero() {
		d.dragging = node
	}
}

// Release finishes a drag once the left button is neither down nor
// dragging. It returns false while Idle or while the gesture continues.
// The state is Idle again after every returned Drop.
func (d *DragState) Release(leftDown, leftDragging bool) (Drop, bool) {
	if d.dragging.IsZero() || leftDown || leftDragging {
		return Drop{}, false
	}

	drop := Drop{Source: d.dragging, Target: d.hovering}
	switch {
	case d.hovering.IsZero():
		drop.Action = DropDetach
	case d.hovering == d.dragging:
		drop.Action = DropCancel
	default:
		drop.Action = DropReparent
	}
	d.dragging = 0
	return drop, true
}

// Checked cancels a reparent onto one of the source's own descendants,
// which would detach the whole subtree from its root.
func (drop Drop) Checked(h *ecs.Hierarchy) Drop {
	if drop.Action == DropReparent && h.IsAncestor(drop.Source, drop.Target) {
		drop.Action = DropCancel
	}
	return drop
}

// Apply queues the storage change a drop stands for.
func (drop Drop) Apply(commands *ecs.Commands) {
	switch drop.Action {
	case DropReparent:
		commands.AddComponent(drop.Source, ecs.Parent{Entity: drop.Target})
	case DropDetach:
		commands.RemoveComponent(drop.Source, parentType)
	}
}

// HierarchyBrowser draws the parent/child tree of all entities, lets a node
// be selected for the Inspector and reparents nodes by drag and drop.
type HierarchyBrowser struct {
	drag DragState
}

func NewHierarchyBrowser() *HierarchyBrowser {
	return &HierarchyBrowser{}
}

// Drag exposes the drag gesture state.
func (b *HierarchyBrowser) Drag() *DragState {
	return &b.drag
}

func (b *HierarchyBrowser) Draw(ctx *Context, state *State) {
	ui := ctx.UI
	if !ui.Begin("Hierarchy") {
		ui.End()
		return
	}

	b.drag.BeginFrame()

	if ui.Button("new entity") {
		ctx.Commands.Spawn()
	}
	ui.Separator()

	h := ecs.NewHierarchy(ctx.Storage)
	for _, root := range h.Roots() {
		b.drawNode(ctx, state, h, root)
	}

	if drop, ok := b.drag.Release(ui.MouseDown(MouseLeft), ui.MouseDragging(MouseLeft)); ok {
		drop = drop.Checked(h)
		drop.Apply(ctx.Commands)
		ctx.log().Debug("hierarchy drop", "action", drop.Action, "source", drop.Source, "target", drop.Target)
	}

	ui.End()
}

func (b *HierarchyBrowser) drawNode(ctx *Context, state *State, h *ecs.Hierarchy, node ecs.EntityId) {
	ui := ctx.UI
	children := h.Children(node)

	ui.PushID(node.String())
	open := ui.TreeNode(EntityLabel(ctx.Storage, node), len(children) == 0, state.Selected == node)

	if ui.ItemHovered() {
		b.drag.Hover(node, ui.MouseDown(MouseLeft))
	}
	ui.SameLine()
	if ui.Button("inspect") {
		state.Select(node)
	}

	if open {
		for _, child := range children {
			b.drawNode(ctx, state, h, child)
		}
		ui.TreePop()
	}
	ui.PopID()
}

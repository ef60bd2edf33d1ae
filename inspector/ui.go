// Package inspector draws editable views of ECS entities and their
// components through an immediate-mode UI.
//
// Nothing in this package writes to storage while drawing. Edits are made
// against a copy of the component and, when a control reports a change,
// queued on the frame's ecs.Commands as one whole-component replacement.
package inspector

// MouseButton identifies a mouse button in UI input queries.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// UI is the immediate-mode widget surface the inspector draws through.
//
// Widgets follow Dear ImGui conventions: a label may carry a "##suffix" that
// is part of its identity but not displayed, Begin must always be paired with
// End, and a TreeNode that returns true must be closed with TreePop.
// ItemHovered, MouseDown and MouseDragging report on the most recently drawn
// item and the current frame's input snapshot.
type UI interface {
	Begin(title string) bool
	End()

	Text(text string)
	Button(label string) bool
	Selectable(label string, selected bool) bool
	SameLine()
	NewLine()
	Separator()

	PushID(id string)
	PopID()
	SetNextItemWidth(width float32)
	AvailableWidth() float32

	DragInt(label string, v *int64, speed float32, min, max int64) bool
	DragFloat(label string, v *float64, speed float32, min, max float64) bool
	Checkbox(label string, v *bool) bool
	InputText(label string, v *string) bool
	Combo(label string, current *int, items []string) bool

	CollapsingHeader(label string, defaultOpen bool) bool
	TreeNode(label string, leaf, selected bool) bool
	TreePop()
	PlotLines(label string, values []float32)

	ItemHovered() bool
	MouseDown(button MouseButton) bool
	MouseDragging(button MouseButton) bool
}

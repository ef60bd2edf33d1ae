package debugui

import (
	"math"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/ooftn-inspector/inspector"
)

// UI draws the inspector panels with Dear ImGui. It must only be used
// between the backend's BeginFrame and EndFrame.
type UI struct{}

var _ inspector.UI = UI{}

var mouseButtons = [...]imgui.MouseButton{
	inspector.MouseLeft:   imgui.MouseButtonLeft,
	inspector.MouseRight:  imgui.MouseButtonRight,
	inspector.MouseMiddle: imgui.MouseButtonMiddle,
}

func (UI) Begin(title string) bool {
	return imgui.BeginV(title, nil, imgui.WindowFlagsNone)
}

func (UI) End() {
	imgui.End()
}

func (UI) Text(text string) {
	imgui.TextUnformatted(text)
}

func (UI) Button(label string) bool {
	return imgui.SmallButton(label)
}

func (UI) Selectable(label string, selected bool) bool {
	return imgui.SelectableBoolV(label, selected, imgui.SelectableFlagsNone, imgui.NewVec2(0, 0))
}

func (UI) SameLine() {
	imgui.SameLine()
}

func (UI) NewLine() {
	imgui.NewLine()
}

func (UI) Separator() {
	imgui.Separator()
}

func (UI) PushID(id string) {
	imgui.PushIDStr(id)
}

func (UI) PopID() {
	imgui.PopID()
}

func (UI) SetNextItemWidth(width float32) {
	imgui.SetNextItemWidth(width)
}

func (UI) AvailableWidth() float32 {
	return imgui.ContentRegionAvail().X
}

// DragInt edits through a 32-bit widget; the bounds are narrowed to fit.
func (UI) DragInt(label string, v *int64, speed float32, min, max int64) bool {
	lo := clampInt32(min)
	hi := clampInt32(max)
	x := clampInt32(*v)
	if !imgui.DragIntV(label, &x, speed, lo, hi, "%d", imgui.SliderFlagsAlwaysClamp) {
		return false
	}
	*v = int64(x)
	return true
}

// DragFloat edits through a 32-bit widget; the bounds are narrowed to fit.
func (UI) DragFloat(label string, v *float64, speed float32, min, max float64) bool {
	lo := clampFloat32(min)
	hi := clampFloat32(max)
	x := clampFloat32(*v)
	if !imgui.DragFloatV(label, &x, speed, lo, hi, "%.3f", imgui.SliderFlagsAlwaysClamp) {
		return false
	}
	*v = float64(x)
	return true
}

func (UI) Checkbox(label string, v *bool) bool {
	return imgui.Checkbox(label, v)
}

func (UI) InputText(label string, v *string) bool {
	return imgui.InputTextWithHint(label, "", v, imgui.InputTextFlagsNone, nil)
}

func (UI) Combo(label string, current *int, items []string) bool {
	x := int32(*current)
	if !imgui.ComboStrarr(label, &x, items, int32(len(items))) {
		return false
	}
	*current = int(x)
	return true
}

func (UI) CollapsingHeader(label string, defaultOpen bool) bool {
	flags := imgui.TreeNodeFlagsNone
	if defaultOpen {
		flags |= imgui.TreeNodeFlagsDefaultOpen
	}
	return imgui.CollapsingHeaderTreeNodeFlagsV(label, flags)
}

func (UI) TreeNode(label string, leaf, selected bool) bool {
	flags := imgui.TreeNodeFlagsOpenOnArrow | imgui.TreeNodeFlagsDefaultOpen
	if leaf {
		flags |= imgui.TreeNodeFlagsLeaf
	}
	if selected {
		flags |= imgui.TreeNodeFlagsSelected
	}
	return imgui.TreeNodeExStrV(label, flags)
}

func (UI) TreePop() {
	imgui.TreePop()
}

func (UI) PlotLines(label string, values []float32) {
	if len(values) == 0 {
		return
	}
	imgui.PlotLinesFloatPtr(label, &values[0], int32(len(values)))
}

// ItemHovered stays true while another item, such as a dragged tree node,
// holds the mouse.
func (UI) ItemHovered() bool {
	return imgui.IsItemHoveredV(imgui.HoveredFlagsAllowWhenBlockedByActiveItem)
}

func (UI) MouseDown(button inspector.MouseButton) bool {
	return imgui.IsMouseDown(mouseButtons[button])
}

func (UI) MouseDragging(button inspector.MouseButton) bool {
	return imgui.IsMouseDragging(mouseButtons[button])
}

func clampInt32(v int64) int32 {
	return int32(min(max(v, math.MinInt32), math.MaxInt32))
}

func clampFloat32(v float64) float32 {
	return float32(min(max(v, -math.MaxFloat32), math.MaxFloat32))
}

// Package fakeui is a scripted inspector.UI for tests and headless runs.
//
// Every widget is identified by its key: the pushed ID stack and the
// label joined with "/". Scripted input is matched against the key or any
// "/"-separated suffix of it, so "remove" matches every remove button and
// "Transform/remove" only the one in the Transform section. Clicks, drags,
// selections, typed text and toggles are consumed by the first widget that
// matches; hover, open state and mouse buttons persist until changed.
package fakeui

import (
	"fmt"
	"strings"

	"github.com/plus3/ooftn-inspector/inspector"
)

// Kind is the widget kind of a drawn item.
type Kind string

const (
	KindWindow     Kind = "window"
	KindText       Kind = "text"
	KindButton     Kind = "button"
	KindSelectable Kind = "selectable"
	KindDrag       Kind = "drag"
	KindCheckbox   Kind = "checkbox"
	KindInput      Kind = "input"
	KindCombo      Kind = "combo"
	KindHeader     Kind = "header"
	KindTree       Kind = "tree"
	KindPlot       Kind = "plot"
)

// Item records one drawn widget.
type Item struct {
	Kind  Kind
	Key   string
	Label string

	// Items holds the entries of a combo.
	Items []string
	// Speed, Min and Max hold the parameters of a drag.
	Speed    float32
	Min, Max float64
	// Current is the combo index or drag value the widget was drawn with.
	Current float64
}

// UI implements inspector.UI from a script.
type UI struct {
	Width float32

	ids      []string
	windows  int
	trees    int
	lastItem string
	items    []Item

	clicks  map[string]int
	drags   map[string]float64
	selects map[string]int
	typed   map[string]string
	toggles map[string]int
	hovered map[string]bool
	open    map[string]bool

	down     [3]bool
	dragging [3]bool
}

var _ inspector.UI = (*UI)(nil)

func New() *UI {
	return &UI{
		Width:   300,
		clicks:  map[string]int{},
		drags:   map[string]float64{},
		selects: map[string]int{},
		typed:   map[string]string{},
		toggles: map[string]int{},
		hovered: map[string]bool{},
		open:    map[string]bool{},
	}
}

// NewFrame forgets what was drawn in the previous frame.
func (u *UI) NewFrame() {
	u.items = u.items[:0]
	u.lastItem = ""
}

// Click presses the matching button or selectable once.
func (u *UI) Click(pattern string) *UI {
	u.clicks[pattern]++
	return u
}

// Drag makes the matching drag widget report value once.
func (u *UI) Drag(pattern string, value float64) *UI {
	u.drags[pattern] = value
	return u
}

// Select makes the matching combo pick index once.
func (u *UI) Select(pattern string, index int) *UI {
	u.selects[pattern] = index
	return u
}

// Type replaces the contents of the matching text input once.
func (u *UI) Type(pattern, text string) *UI {
	u.typed[pattern] = text
	return u
}

// Toggle flips the matching checkbox once.
func (u *UI) Toggle(pattern string) *UI {
	u.toggles[pattern]++
	return u
}

// Hover marks matching items as hovered until Unhover.
func (u *UI) Hover(pattern string) *UI {
	u.hovered[pattern] = true
	return u
}

func (u *UI) Unhover(pattern string) *UI {
	delete(u.hovered, pattern)
	return u
}

// SetOpen overrides whether matching windows, headers and tree nodes open.
func (u *UI) SetOpen(pattern string, open bool) *UI {
	u.open[pattern] = open
	return u
}

// SetMouse sets the state of a mouse button until changed.
func (u *UI) SetMouse(button inspector.MouseButton, down, dragging bool) *UI {
	u.down[button] = down
	u.dragging[button] = dragging
	return u
}

// Pending reports whether one-shot input is still waiting for a widget.
func (u *UI) Pending() bool {
	return len(u.clicks)+len(u.drags)+len(u.selects)+len(u.typed)+len(u.toggles) > 0
}

// Items returns the widgets drawn since the last NewFrame.
func (u *UI) Items() []Item {
	return u.items
}

// Find returns the first drawn item of kind whose key matches pattern.
func (u *UI) Find(kind Kind, pattern string) (Item, bool) {
	for _, item := range u.items {
		if item.Kind == kind && matches(item.Key, pattern) {
			return item, true
		}
	}
	return Item{}, false
}

// Drawn reports whether any item of kind matching pattern was drawn.
func (u *UI) Drawn(kind Kind, pattern string) bool {
	_, ok := u.Find(kind, pattern)
	return ok
}

// Texts returns the contents of every Text call, in order.
func (u *UI) Texts() []string {
	var texts []string
	for _, item := range u.items {
		if item.Kind == KindText {
			texts = append(texts, item.Label)
		}
	}
	return texts
}

// Balanced returns an error when an ID, window or tree node was left open.
func (u *UI) Balanced() error {
	if len(u.ids) != 0 {
		return fmt.Errorf("id stack not empty: %v", u.ids)
	}
	if u.windows != 0 {
		return fmt.Errorf("%d windows not ended", u.windows)
	}
	if u.trees != 0 {
		return fmt.Errorf("%d tree nodes not popped", u.trees)
	}
	return nil
}

func matches(key, pattern string) bool {
	return key == pattern || strings.HasSuffix(key, "/"+pattern)
}

func take[T any](script map[string]T, key string) (T, bool) {
	for pattern, v := range script {
		if matches(key, pattern) {
			delete(script, pattern)
			return v, true
		}
	}
	var zero T
	return zero, false
}

func (u *UI) takeCount(script map[string]int, key string) bool {
	for pattern, n := range script {
		if !matches(key, pattern) {
			continue
		}
		if n <= 1 {
			delete(script, pattern)
		} else {
			script[pattern] = n - 1
		}
		return true
	}
	return false
}

func (u *UI) isOpen(key string, fallback bool) bool {
	for pattern, open := range u.open {
		if matches(key, pattern) {
			return open
		}
	}
	return fallback
}

func (u *UI) key(label string) string {
	if len(u.ids) == 0 {
		return label
	}
	return strings.Join(u.ids, "/") + "/" + label
}

func (u *UI) record(item Item) string {
	item.Key = u.key(item.Label)
	u.items = append(u.items, item)
	u.lastItem = item.Key
	return item.Key
}

func (u *UI) Begin(title string) bool {
	u.windows++
	key := u.record(Item{Kind: KindWindow, Label: title})
	return u.isOpen(key, true)
}

func (u *UI) End() {
	u.windows--
}

func (u *UI) Text(text string) {
	u.record(Item{Kind: KindText, Label: text})
}

func (u *UI) Button(label string) bool {
	return u.takeCount(u.clicks, u.record(Item{Kind: KindButton, Label: label}))
}

func (u *UI) Selectable(label string, selected bool) bool {
	var current float64
	if selected {
		current = 1
	}
	return u.takeCount(u.clicks, u.record(Item{Kind: KindSelectable, Label: label, Current: current}))
}

func (u *UI) SameLine()                      {}
func (u *UI) NewLine()                       {}
func (u *UI) Separator()                     {}
func (u *UI) SetNextItemWidth(width float32) {}

func (u *UI) AvailableWidth() float32 {
	return u.Width
}

func (u *UI) PushID(id string) {
	u.ids = append(u.ids, id)
}

func (u *UI) PopID() {
	if len(u.ids) == 0 {
		panic("fakeui: PopID without PushID")
	}
	u.ids = u.ids[:len(u.ids)-1]
}

func (u *UI) DragInt(label string, v *int64, speed float32, min, max int64) bool {
	key := u.record(Item{Kind: KindDrag, Label: label, Speed: speed, Min: float64(min), Max: float64(max), Current: float64(*v)})
	value, ok := take(u.drags, key)
	if ok {
		*v = int64(value)
	}
	return ok
}

func (u *UI) DragFloat(label string, v *float64, speed float32, min, max float64) bool {
	key := u.record(Item{Kind: KindDrag, Label: label, Speed: speed, Min: min, Max: max, Current: *v})
	value, ok := take(u.drags, key)
	if ok {
		*v = value
	}
	return ok
}

func (u *UI) Checkbox(label string, v *bool) bool {
	ok := u.takeCount(u.toggles, u.record(Item{Kind: KindCheckbox, Label: label}))
	if ok {
		*v = !*v
	}
	return ok
}

func (u *UI) InputText(label string, v *string) bool {
	text, ok := take(u.typed, u.record(Item{Kind: KindInput, Label: label}))
	if ok {
		*v = text
	}
	return ok
}

func (u *UI) Combo(label string, current *int, items []string) bool {
	key := u.record(Item{Kind: KindCombo, Label: label, Items: append([]string(nil), items...), Current: float64(*current)})
	index, ok := take(u.selects, key)
	if ok {
		*current = index
	}
	return ok
}

func (u *UI) CollapsingHeader(label string, defaultOpen bool) bool {
	return u.isOpen(u.record(Item{Kind: KindHeader, Label: label}), defaultOpen)
}

func (u *UI) TreeNode(label string, leaf, selected bool) bool {
	open := u.isOpen(u.record(Item{Kind: KindTree, Label: label}), true)
	if open {
		u.trees++
	}
	return open
}

func (u *UI) TreePop() {
	u.trees--
}

func (u *UI) PlotLines(label string, values []float32) {
	u.record(Item{Kind: KindPlot, Label: label, Current: float64(len(values))})
}

func (u *UI) ItemHovered() bool {
	if u.lastItem == "" {
		return false
	}
	for pattern := range u.hovered {
		if matches(u.lastItem, pattern) {
			return true
		}
	}
	return false
}

func (u *UI) MouseDown(button inspector.MouseButton) bool {
	return u.down[button]
}

func (u *UI) MouseDragging(button inspector.MouseButton) bool {
	return u.dragging[button]
}

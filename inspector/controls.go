package inspector

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"golang.org/x/exp/constraints"
)

// Number is any type a drag control can edit.
type Number interface {
	constraints.Integer | constraints.Float
}

// wasReset applies the right-click reset gesture to the item drawn last.
func wasReset(ui UI) bool {
	return ui.ItemHovered() && ui.MouseDown(MouseRight)
}

func intBounds(t reflect.Type) (int64, int64) {
	bits := t.Bits()
	switch t.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if bits >= 64 {
			return 0, math.MaxInt64
		}
		return 0, int64(1)<<bits - 1
	default:
		if bits >= 64 {
			return math.MinInt64, math.MaxInt64
		}
		return -(int64(1) << (bits - 1)), int64(1)<<(bits-1) - 1
	}
}

func floatBounds(t reflect.Type) (float64, float64) {
	if t.Bits() == 32 {
		return -math.MaxFloat32, math.MaxFloat32
	}
	return -math.MaxFloat64, math.MaxFloat64
}

// dragNumber draws a drag widget for a numeric value and writes the result
// back clamped to both the widget range and the value's type range.
// lo and hi narrow the range when hasRange is set.
func dragNumber(ui UI, label string, v reflect.Value, speed float32, lo, hi reflect.Value, hasRange bool) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		min, max := intBounds(v.Type())
		if hasRange {
			min, max = lo.Int(), hi.Int()
		}
		x := v.Int()
		if !ui.DragInt(label, &x, speed, min, max) {
			return false
		}
		v.SetInt(clamp(x, min, max))
		return true

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		min, max := intBounds(v.Type())
		if hasRange {
			min, max = int64(min64(lo.Uint())), int64(min64(hi.Uint()))
		}
		x := int64(min64(v.Uint()))
		if !ui.DragInt(label, &x, speed, min, max) {
			return false
		}
		v.SetUint(uint64(clamp(x, min, max)))
		return true

	case reflect.Float32, reflect.Float64:
		min, max := floatBounds(v.Type())
		if hasRange {
			min, max = lo.Float(), hi.Float()
		}
		x := v.Float()
		if !ui.DragFloat(label, &x, speed, min, max) {
			return false
		}
		if math.IsNaN(x) {
			return false
		}
		v.SetFloat(clamp(x, min, max))
		return true
	}
	panic("inspector: " + v.Type().String() + " is not numeric")
}

func min64(u uint64) uint64 {
	if u > math.MaxInt64 {
		return math.MaxInt64
	}
	return u
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func markChanged(dst *bool, changed bool) {
	if dst != nil && changed {
		*dst = true
	}
}

// NumberControl edits a single integer or floating point value.
type NumberControl[T Number] struct {
	value    *T
	label    string
	speed    float32
	nullTo   T
	min, max T
	hasRange bool
	changed  *bool
}

// Int returns a drag control for an integer value.
func Int[T constraints.Integer](v *T) *NumberControl[T] {
	return &NumberControl[T]{value: v, label: "value", speed: 1}
}

// Float returns a drag control for a floating point value.
func Float[T constraints.Float](v *T) *NumberControl[T] {
	return &NumberControl[T]{value: v, label: "value", speed: 1}
}

func (c *NumberControl[T]) Label(label string) *NumberControl[T] {
	c.label = label
	return c
}

func (c *NumberControl[T]) Speed(speed float32) *NumberControl[T] {
	c.speed = speed
	return c
}

// NullTo sets the value the right-click reset gesture writes.
func (c *NumberControl[T]) NullTo(v T) *NumberControl[T] {
	c.nullTo = v
	return c
}

// Range narrows the editable range below the type's own range.
func (c *NumberControl[T]) Range(min, max T) *NumberControl[T] {
	c.min, c.max, c.hasRange = min, max, true
	return c
}

// Changed makes Build OR its result into dst.
func (c *NumberControl[T]) Changed(dst *bool) *NumberControl[T] {
	c.changed = dst
	return c
}

// Build draws the control and reports whether the value changed.
func (c *NumberControl[T]) Build(ctx *Context) bool {
	v := reflect.ValueOf(c.value).Elem()
	changed := dragNumber(ctx.UI, c.label, v, c.speed, reflect.ValueOf(c.min), reflect.ValueOf(c.max), c.hasRange)
	if wasReset(ctx.UI) {
		*c.value = c.nullTo
		changed = true
	}
	markChanged(c.changed, changed)
	return changed
}

// VectorControl edits a fixed run of numbers side by side, such as the
// components of an mgl32.Vec3. Pass the backing array as a slice: v[:].
type VectorControl[T Number] struct {
	values  []T
	label   string
	speed   float32
	nullTo  T
	changed *bool
}

// Vector returns a control editing every element of values in place.
func Vector[T Number](values []T) *VectorControl[T] {
	return &VectorControl[T]{values: values, label: "value", speed: 1}
}

func (c *VectorControl[T]) Label(label string) *VectorControl[T] {
	c.label = label
	return c
}

func (c *VectorControl[T]) Speed(speed float32) *VectorControl[T] {
	c.speed = speed
	return c
}

// NullTo sets the value an element is reset to by the right-click gesture.
func (c *VectorControl[T]) NullTo(v T) *VectorControl[T] {
	c.nullTo = v
	return c
}

func (c *VectorControl[T]) Changed(dst *bool) *VectorControl[T] {
	c.changed = dst
	return c
}

func (c *VectorControl[T]) Build(ctx *Context) bool {
	changed := drawVector(ctx.UI, c.label, reflect.ValueOf(c.values), c.speed, reflect.ValueOf(c.nullTo))
	markChanged(c.changed, changed)
	return changed
}

// drawVector lays out one drag per element followed by the label. values
// may be an addressable array or a slice.
func drawVector(ui UI, label string, values reflect.Value, speed float32, nullTo reflect.Value) bool {
	n := values.Len()
	if n == 0 {
		ui.Text(label + ": []")
		return false
	}

	width := ui.AvailableWidth() * 0.65 / float32(n)
	changed := false

	ui.PushID(label)
	for i := 0; i < n; i++ {
		elem := values.Index(i)
		ui.PushID(fmt.Sprint(i))
		ui.SetNextItemWidth(width)
		if dragNumber(ui, "##v", elem, speed, reflect.Value{}, reflect.Value{}, false) {
			changed = true
		}
		if wasReset(ui) {
			elem.Set(nullTo.Convert(elem.Type()))
			changed = true
		}
		ui.PopID()
		ui.SameLine()
	}
	ui.Text(label)
	ui.PopID()
	return changed
}

// DurationControl edits a time.Duration as whole milliseconds, minimum 0.
type DurationControl struct {
	value   *time.Duration
	label   string
	speed   float32
	nullTo  time.Duration
	changed *bool
}

func Duration(v *time.Duration) *DurationControl {
	return &DurationControl{value: v, label: "value", speed: 1}
}

func (c *DurationControl) Label(label string) *DurationControl {
	c.label = label
	return c
}

func (c *DurationControl) Speed(speed float32) *DurationControl {
	c.speed = speed
	return c
}

func (c *DurationControl) NullTo(v time.Duration) *DurationControl {
	c.nullTo = v
	return c
}

func (c *DurationControl) Changed(dst *bool) *DurationControl {
	c.changed = dst
	return c
}

func (c *DurationControl) Build(ctx *Context) bool {
	ms := c.value.Milliseconds()
	changed := ctx.UI.DragInt(c.label, &ms, c.speed, 0, math.MaxInt64/int64(time.Millisecond))
	if changed {
		*c.value = time.Duration(max(ms, 0)) * time.Millisecond
	}
	if wasReset(ctx.UI) {
		*c.value = c.nullTo
		changed = true
	}
	markChanged(c.changed, changed)
	return changed
}

// BoolControl edits a bool with a checkbox.
type BoolControl struct {
	value   *bool
	label   string
	nullTo  bool
	changed *bool
}

func Bool(v *bool) *BoolControl {
	return &BoolControl{value: v, label: "value"}
}

func (c *BoolControl) Label(label string) *BoolControl {
	c.label = label
	return c
}

func (c *BoolControl) NullTo(v bool) *BoolControl {
	c.nullTo = v
	return c
}

func (c *BoolControl) Changed(dst *bool) *BoolControl {
	c.changed = dst
	return c
}

func (c *BoolControl) Build(ctx *Context) bool {
	changed := ctx.UI.Checkbox(c.label, c.value)
	if wasReset(ctx.UI) {
		*c.value = c.nullTo
		changed = true
	}
	markChanged(c.changed, changed)
	return changed
}

// TextControl edits a string with a single line text input.
type TextControl struct {
	value   *string
	label   string
	nullTo  string
	changed *bool
}

func Text(v *string) *TextControl {
	return &TextControl{value: v, label: "value"}
}

func (c *TextControl) Label(label string) *TextControl {
	c.label = label
	return c
}

func (c *TextControl) NullTo(v string) *TextControl {
	c.nullTo = v
	return c
}

func (c *TextControl) Changed(dst *bool) *TextControl {
	c.changed = dst
	return c
}

func (c *TextControl) Build(ctx *Context) bool {
	before := *c.value
	ctx.UI.InputText(c.label, c.value)
	changed := *c.value != before
	if wasReset(ctx.UI) {
		*c.value = c.nullTo
		changed = true
	}
	markChanged(c.changed, changed)
	return changed
}

// ListControl picks a value out of a fixed list with a dropdown.
//
// The current value is located by an equality scan; when it is not in the
// list the dropdown shows the first entry, but the value is only written
// when the user picks an entry.
type ListControl[T comparable] struct {
	value   *T
	items   []T
	format  func(T) string
	label   string
	changed *bool
}

// List returns a dropdown over items, labelled by format.
func List[T comparable](v *T, items []T, format func(T) string) *ListControl[T] {
	return &ListControl[T]{value: v, items: items, format: format, label: "value"}
}

// Enum returns a dropdown over the declared variants of an enum-like type,
// labelled with fmt.Sprint of each variant.
func Enum[T comparable](v *T, variants []T) *ListControl[T] {
	return List(v, variants, func(x T) string { return fmt.Sprint(x) })
}

func (c *ListControl[T]) Label(label string) *ListControl[T] {
	c.label = label
	return c
}

func (c *ListControl[T]) Changed(dst *bool) *ListControl[T] {
	c.changed = dst
	return c
}

// Index returns the position of the current value, or 0 when absent.
func (c *ListControl[T]) Index() int {
	for i, item := range c.items {
		if item == *c.value {
			return i
		}
	}
	return 0
}

func (c *ListControl[T]) Build(ctx *Context) bool {
	if len(c.items) == 0 {
		return false
	}

	labels := make([]string, len(c.items))
	for i, item := range c.items {
		labels[i] = c.format(item)
	}

	current := c.Index()
	if !ctx.UI.Combo(c.label, &current, labels) || current < 0 || current >= len(c.items) {
		return false
	}

	changed := *c.value != c.items[current]
	*c.value = c.items[current]
	markChanged(c.changed, changed)
	return changed
}

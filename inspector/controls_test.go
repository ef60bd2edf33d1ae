package inspector_test

import (
	"testing"
	"time"

	"github.com/plus3/ooftn-inspector/components"
	"github.com/plus3/ooftn-inspector/inspector"
	"github.com/plus3/ooftn-inspector/inspector/fakeui"
	"github.com/stretchr/testify/assert"
)

func TestIntControlClampsToRange(t *testing.T) {
	w := newWorld()
	x := 3

	w.ui.Drag("count", 9)
	changed := inspector.Int(&x).Label("count").Range(0, 5).Build(w.ctx)

	assert.True(t, changed)
	assert.Equal(t, 5, x)

	item, ok := w.ui.Find(fakeui.KindDrag, "count")
	assert.True(t, ok)
	assert.Equal(t, 0.0, item.Min)
	assert.Equal(t, 5.0, item.Max)
}

func TestIntControlClampsToType(t *testing.T) {
	w := newWorld()
	var x uint8 = 10

	w.ui.Drag("value", -4)
	inspector.Int(&x).Build(w.ctx)
	assert.Equal(t, uint8(0), x)

	w.ui.Drag("value", 1000)
	inspector.Int(&x).Build(w.ctx)
	assert.Equal(t, uint8(255), x)
}

func TestNumberControlUntouched(t *testing.T) {
	w := newWorld()
	x := float32(1.5)

	changed := false
	result := inspector.Float(&x).Changed(&changed).Build(w.ctx)

	assert.False(t, result)
	assert.False(t, changed)
	assert.Equal(t, float32(1.5), x)
}

func TestNumberControlReset(t *testing.T) {
	w := newWorld()
	x := float32(7)

	w.ui.Hover("zoom").SetMouse(inspector.MouseRight, true, false)
	changed := inspector.Float(&x).Label("zoom").NullTo(1).Build(w.ctx)

	assert.True(t, changed)
	assert.Equal(t, float32(1), x)
}

func TestChangedAccumulates(t *testing.T) {
	w := newWorld()
	a, b := 1, 2

	changed := false
	w.ui.Drag("a", 4)
	inspector.Int(&a).Label("a").Changed(&changed).Build(w.ctx)
	inspector.Int(&b).Label("b").Changed(&changed).Build(w.ctx)

	assert.True(t, changed, "an unchanged control must not clear the flag")
	assert.Equal(t, 4, a)
	assert.Equal(t, 2, b)
}

func TestVectorControl(t *testing.T) {
	w := newWorld()
	v := [3]float32{1, 2, 3}

	w.ui.Drag("pos/1/##v", 5)
	changed := inspector.Vector(v[:]).Label("pos").Speed(0.1).Build(w.ctx)
	assert.True(t, changed)
	assert.Equal(t, [3]float32{1, 5, 3}, v)

	w.ui.Hover("pos/2/##v").SetMouse(inspector.MouseRight, true, false)
	changed = inspector.Vector(v[:]).Label("pos").NullTo(9).Build(w.ctx)
	assert.True(t, changed)
	assert.Equal(t, [3]float32{1, 5, 9}, v)
}

func TestDurationControl(t *testing.T) {
	w := newWorld()
	d := 2 * time.Second

	w.ui.Drag("delay", 250)
	assert.True(t, inspector.Duration(&d).Label("delay").Build(w.ctx))
	assert.Equal(t, 250*time.Millisecond, d)

	w.ui.Drag("delay", -30)
	inspector.Duration(&d).Label("delay").Build(w.ctx)
	assert.Equal(t, time.Duration(0), d)
}

func TestBoolAndTextControls(t *testing.T) {
	w := newWorld()
	on := false
	name := "old"

	w.ui.Toggle("on")
	assert.True(t, inspector.Bool(&on).Label("on").Build(w.ctx))
	assert.True(t, on)

	assert.False(t, inspector.Text(&name).Label("name").Build(w.ctx))
	w.ui.Type("name", "old")
	assert.False(t, inspector.Text(&name).Label("name").Build(w.ctx), "retyping the same text is not a change")
	w.ui.Type("name", "new")
	assert.True(t, inspector.Text(&name).Label("name").Build(w.ctx))
	assert.Equal(t, "new", name)
}

func TestEnumNotFoundShowsFirst(t *testing.T) {
	w := newWorld()
	v := components.Flipped(42)

	control := inspector.Enum(&v, v.Variants()).Label("flip")
	assert.Equal(t, 0, control.Index())
	assert.False(t, control.Build(w.ctx))
	assert.Equal(t, components.Flipped(42), v, "an unknown value is only replaced on selection")

	item, ok := w.ui.Find(fakeui.KindCombo, "flip")
	assert.True(t, ok)
	assert.Equal(t, 0.0, item.Current)
	assert.Equal(t, []string{"None", "Horizontal", "Vertical", "Both"}, item.Items)
}

func TestEnumSelection(t *testing.T) {
	w := newWorld()
	v := components.FlipHorizontal

	w.ui.Select("flip", 2)
	assert.True(t, inspector.Enum(&v, v.Variants()).Label("flip").Build(w.ctx))
	assert.Equal(t, components.FlipVertical, v)

	w.ui.Select("flip", 2)
	assert.False(t, inspector.Enum(&v, v.Variants()).Label("flip").Build(w.ctx), "selecting the current value is not a change")
}

func TestListControl(t *testing.T) {
	w := newWorld()
	font := "mono"
	fonts := []string{"sans", "mono", "serif"}

	control := inspector.List(&font, fonts, func(s string) string { return "font " + s }).Label("font")
	assert.Equal(t, 1, control.Index())

	w.ui.Select("font", 2)
	assert.True(t, control.Build(w.ctx))
	assert.Equal(t, "serif", font)

	item, _ := w.ui.Find(fakeui.KindCombo, "font")
	assert.Equal(t, []string{"font sans", "font mono", "font serif"}, item.Items)
}

func TestListControlEmpty(t *testing.T) {
	w := newWorld()
	font := "mono"

	assert.False(t, inspector.List(&font, nil, func(s string) string { return s }).Build(w.ctx))
	assert.Empty(t, w.ui.Items())
}

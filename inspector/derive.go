package inspector

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/ooftn-inspector/ecs"
)

// Inspectable is implemented by field types that draw themselves. The
// method is looked up on a pointer to the field, so it may edit in place.
type Inspectable interface {
	InspectField(ctx *Context, field Field) bool
}

var (
	entityIdType    = reflect.TypeFor[ecs.EntityId]()
	uuidType        = reflect.TypeFor[uuid.UUID]()
	inspectableType = reflect.TypeFor[Inspectable]()
)

// Derive builds an inspector for the struct type T by drawing every
// exported field with the control matching its type. Fields are configured
// with `inspect:"..."` tags, see Field. The added value is the zero T.
//
// Tags are validated here, so an invalid tag panics at construction.
func Derive[T any]() *Component[T] {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		panic("inspector: Derive needs a struct type, got " + t.String())
	}
	fieldInfo.Fields(t)

	return &Component[T]{
		Draw: func(ctx *Context, _ ecs.EntityId, value *T) bool {
			return DrawStruct(ctx, reflect.ValueOf(value).Elem())
		},
		New: func(*Context, ecs.EntityId) T {
			var zero T
			return zero
		},
	}
}

// DrawStruct draws every field of an addressable struct value and reports
// whether any of them changed.
func DrawStruct(ctx *Context, v reflect.Value) bool {
	changed := false
	for _, field := range fieldInfo.Fields(v.Type()) {
		if field.Skip {
			continue
		}
		if DrawField(ctx, field, v.Field(field.Index)) {
			changed = true
		}
	}
	return changed
}

// DrawField draws one field value. v must be addressable for the field to be
// editable; read-only kinds are shown as text.
func DrawField(ctx *Context, field Field, v reflect.Value) bool {
	ui := ctx.UI
	t := v.Type()

	if v.CanAddr() && reflect.PointerTo(t).Implements(inspectableType) {
		return v.Addr().Interface().(Inspectable).InspectField(ctx, field)
	}

	switch t {
	case entityIdType:
		picker := Entity(v.Addr().Interface().(*ecs.EntityId)).Label(field.Label)
		return picker.WithComponent(resolveTypes(ctx, field)...).Build(ctx)
	case uuidType:
		picker := StableID(v.Addr().Interface().(*uuid.UUID)).Label(field.Label)
		return picker.WithComponent(resolveTypes(ctx, field)...).Build(ctx)
	case durationType:
		d := v.Addr().Interface().(*time.Duration)
		return Duration(d).Label(field.Label).Speed(field.Speed).
			NullTo(time.Duration(field.nullValue(t).Int())).
			Build(ctx)
	}

	if variants, ok := enumVariants(v); ok {
		return drawEnum(ctx, field.Label, v, variants)
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		changed := dragNumber(ui, field.Label, v, field.Speed, reflect.Value{}, reflect.Value{}, false)
		if wasReset(ui) {
			v.Set(field.nullValue(t))
			changed = true
		}
		return changed

	case reflect.Bool:
		x := v.Bool()
		changed := Bool(&x).Label(field.Label).NullTo(field.nullValue(t).Bool()).Build(ctx)
		v.SetBool(x)
		return changed

	case reflect.String:
		s := v.String()
		changed := Text(&s).Label(field.Label).NullTo(field.nullValue(t).String()).Build(ctx)
		v.SetString(s)
		return changed

	case reflect.Array:
		if isNumericKind(t.Elem().Kind()) {
			return drawVector(ui, field.Label, v, field.Speed, field.nullValue(t.Elem()))
		}
		ui.Text(fmt.Sprintf("%s: [%d]%s", field.Label, v.Len(), t.Elem()))
		return false

	case reflect.Struct:
		if !ui.TreeNode(field.Label, false, false) {
			return false
		}
		ui.PushID(field.Name)
		changed := DrawStruct(ctx, v)
		ui.PopID()
		ui.TreePop()
		return changed

	case reflect.Slice:
		ui.Text(fmt.Sprintf("%s: [%d items]", field.Label, v.Len()))
	case reflect.Map:
		ui.Text(fmt.Sprintf("%s: map[%d items]", field.Label, v.Len()))
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			ui.Text(field.Label + ": nil")
		} else {
			ui.Text(fmt.Sprintf("%s: %v", field.Label, v.Elem().Interface()))
		}
	default:
		ui.Text(fmt.Sprintf("%s: %v", field.Label, v.Interface()))
	}
	return false
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// resolveTypes maps with_component names to registered component types.
// Unknown names are logged and ignored.
func resolveTypes(ctx *Context, field Field) []reflect.Type {
	if len(field.WithComponent) == 0 {
		return nil
	}
	types := make([]reflect.Type, 0, len(field.WithComponent))
	for _, name := range field.WithComponent {
		t, ok := ctx.Storage.Registry().TypeByName(name)
		if !ok {
			ctx.log().Warn("unknown with_component type", "field", field.Name, "type", name)
			continue
		}
		types = append(types, t)
	}
	return types
}

// enumVariants returns the result of a Variants() []T method declared on
// the field's type T.
func enumVariants(v reflect.Value) (reflect.Value, bool) {
	method := v.MethodByName("Variants")
	if !method.IsValid() {
		return reflect.Value{}, false
	}
	mt := method.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 || mt.Out(0) != reflect.SliceOf(v.Type()) || !v.Type().Comparable() {
		return reflect.Value{}, false
	}
	return method.Call(nil)[0], true
}

// drawEnum is the reflective counterpart of Enum.
func drawEnum(ctx *Context, label string, v reflect.Value, variants reflect.Value) bool {
	n := variants.Len()
	if n == 0 {
		return false
	}

	current, found := 0, false
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		variant := variants.Index(i)
		labels[i] = fmt.Sprint(variant.Interface())
		if !found && variant.Interface() == v.Interface() {
			current, found = i, true
		}
	}

	if !ctx.UI.Combo(label, &current, labels) || current < 0 || current >= n {
		return false
	}
	chosen := variants.Index(current)
	if chosen.Interface() == v.Interface() {
		return false
	}
	v.Set(chosen)
	return true
}

package inspector

import (
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Field describes one exported struct field as configured by its
// `inspect:"..."` tag. Supported options, comma separated:
//
//	skip                     do not draw the field
//	label=<text>             widget label, defaults to the field name
//	speed=<float>            drag speed for numeric fields
//	null_to=<literal>        value written by the right-click reset
//	with_component=<A>[+<B>] restrict entity pickers to entities holding A and B
type Field struct {
	Name          string
	Label         string
	Type          reflect.Type
	Index         int
	Skip          bool
	Speed         float32
	NullTo        string
	WithComponent []string
}

func parseField(sf reflect.StructField, index int) Field {
	field := Field{
		Name:  sf.Name,
		Label: sf.Name,
		Type:  sf.Type,
		Index: index,
		Speed: 1,
	}

	tag, ok := sf.Tag.Lookup("inspect")
	if !ok {
		return field
	}

	for _, opt := range strings.Split(tag, ",") {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}
		key, value, _ := strings.Cut(opt, "=")
		switch key {
		case "skip":
			field.Skip = true
		case "label":
			field.Label = value
		case "speed":
			speed, err := strconv.ParseFloat(value, 32)
			if err != nil {
				panic("inspect tag on " + sf.Name + ": invalid speed " + strconv.Quote(value))
			}
			field.Speed = float32(speed)
		case "null_to":
			if _, err := parseLiteral(value, sf.Type); err != nil {
				panic("inspect tag on " + sf.Name + ": invalid null_to " + strconv.Quote(value) + ": " + err.Error())
			}
			field.NullTo = value
		case "with_component":
			for _, name := range strings.Split(value, "+") {
				if name = strings.TrimSpace(name); name != "" {
					field.WithComponent = append(field.WithComponent, name)
				}
			}
		default:
			panic("inspect tag on " + sf.Name + ": unknown option " + strconv.Quote(key))
		}
	}
	return field
}

// nullValue returns the reset value of the field, or of elem for arrays.
func (f Field) nullValue(t reflect.Type) reflect.Value {
	if f.NullTo == "" {
		return reflect.Zero(t)
	}
	v, err := parseLiteral(f.NullTo, t)
	if err != nil {
		return reflect.Zero(t)
	}
	return v
}

var durationType = reflect.TypeFor[time.Duration]()

// parseLiteral parses a null_to literal for the given type. For arrays the
// literal applies to every element, so the element type is what is parsed.
func parseLiteral(s string, t reflect.Type) (reflect.Value, error) {
	if t.Kind() == reflect.Array {
		t = t.Elem()
	}
	v := reflect.New(t).Elem()

	if t == durationType {
		d, err := time.ParseDuration(s)
		if err != nil {
			return v, err
		}
		v.SetInt(int64(d))
		return v, nil
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, t.Bits())
		if err != nil {
			return v, err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(s, 10, t.Bits())
		if err != nil {
			return v, err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, t.Bits())
		if err != nil {
			return v, err
		}
		v.SetFloat(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return v, err
		}
		v.SetBool(b)
	case reflect.String:
		v.SetString(s)
	default:
		return v, &strconv.NumError{Func: "parseLiteral", Num: s, Err: strconv.ErrSyntax}
	}
	return v, nil
}

type fieldCache struct {
	mu     sync.RWMutex
	fields map[reflect.Type][]Field
}

func newFieldCache() *fieldCache {
	return &fieldCache{
		fields: make(map[reflect.Type][]Field),
	}
}

// Fields returns the exported fields of a struct type, parsed once.
func (fc *fieldCache) Fields(t reflect.Type) []Field {
	fc.mu.RLock()
	cached, ok := fc.fields[t]
	fc.mu.RUnlock()
	if ok {
		return cached
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	if cached, ok := fc.fields[t]; ok {
		return cached
	}

	var fields []Field
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			fields = append(fields, parseField(sf, i))
		}
	}

	fc.fields[t] = fields
	return fields
}

var fieldInfo = newFieldCache()

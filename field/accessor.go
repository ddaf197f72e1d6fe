package field

import (
	"reflect"

	"go.trai.ch/zerr"
)

// Accessor provides named field access for the runtime types it was built or
// registered for. Get reports an absent value as (nil, nil); ErrFieldNotFound
// is reserved for names that do not exist on the type at all.
//
//go:generate mockgen -source=accessor.go -destination=../internal/mocks/mock_accessor.go -package=mocks
type Accessor interface {
	// Get reads the named field from recv.
	Get(recv any, name string) (any, error)

	// Set writes value into the named field of recv.
	Set(recv any, name string, value any) error
}

// Accessible lets a type provide its own named field access. Types
// implementing it are traversed without reflection; implementations should
// return nil for currently absent values and ErrFieldNotFound (or an error
// wrapping it) for names they do not carry.
type Accessible interface {
	Field(name string) (any, error)
	SetField(name string, value any) error
}

// accessibleAccessor adapts the Accessible interface to Accessor.
type accessibleAccessor struct{}

func (accessibleAccessor) Get(recv any, name string) (any, error) {
	return recv.(Accessible).Field(name)
}

func (accessibleAccessor) Set(recv any, name string, value any) error {
	return recv.(Accessible).SetField(name, value)
}

// buildAccessor constructs a reflection-backed accessor for the given type.
// Supported shapes are struct, pointer to struct, and string-keyed maps;
// anything else cannot carry named fields and reports ErrFieldNotFound.
func buildAccessor(t reflect.Type) (Accessor, error) {
	switch {
	case t.Kind() == reflect.Struct:
		return newStructAccessor(t, t, false), nil
	case t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct:
		return newStructAccessor(t, t.Elem(), true), nil
	case t.Kind() == reflect.Map && t.Key().Kind() == reflect.String:
		return mapAccessor{typ: t}, nil
	default:
		return nil, zerr.With(zerr.Wrap(ErrFieldNotFound, "type carries no named fields"), "type", t.String())
	}
}

// structAccessor reads and writes struct fields through a field index table
// computed once per type.
type structAccessor struct {
	typ      reflect.Type
	fields   map[string][]int
	settable bool
}

func newStructAccessor(typ, elem reflect.Type, settable bool) structAccessor {
	fields := make(map[string][]int)
	for _, f := range reflect.VisibleFields(elem) {
		if !f.IsExported() {
			continue
		}
		fields[f.Name] = f.Index
	}
	return structAccessor{typ: typ, fields: fields, settable: settable}
}

func (a structAccessor) Get(recv any, name string) (any, error) {
	idx, ok := a.fields[name]
	if !ok {
		return nil, notFound(a.typ, name)
	}

	rv := reflect.ValueOf(recv)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}

	fv, err := rv.FieldByIndexErr(idx)
	if err != nil {
		// A nil embedded pointer on the way to the field: the value is absent.
		return nil, nil
	}
	if !fv.CanInterface() {
		return nil, notFound(a.typ, name)
	}
	return fv.Interface(), nil
}

func (a structAccessor) Set(recv any, name string, value any) error {
	idx, ok := a.fields[name]
	if !ok {
		return notFound(a.typ, name)
	}
	if !a.settable {
		return notWritable(a.typ, name)
	}

	rv := reflect.ValueOf(recv)
	if rv.IsNil() {
		return zerr.With(zerr.Wrap(ErrNotResolvable, "set through nil receiver"), "type", a.typ.String())
	}

	fv, err := rv.Elem().FieldByIndexErr(idx)
	if err != nil {
		return notWritable(a.typ, name)
	}
	if !fv.CanSet() {
		return notWritable(a.typ, name)
	}
	return assign(fv, value, a.typ, name)
}

// mapAccessor treats string-keyed maps as open-shaped objects: a missing key
// reads as an absent value, never as a shape error.
type mapAccessor struct {
	typ reflect.Type
}

func (a mapAccessor) Get(recv any, name string) (any, error) {
	rv := reflect.ValueOf(recv)
	if rv.IsNil() {
		return nil, nil
	}
	mv := rv.MapIndex(reflect.ValueOf(name))
	if !mv.IsValid() {
		return nil, nil
	}
	return mv.Interface(), nil
}

func (a mapAccessor) Set(recv any, name string, value any) error {
	rv := reflect.ValueOf(recv)
	if rv.IsNil() {
		// Writes through a nil map are skipped, matching an absent link.
		return zerr.With(zerr.Wrap(ErrNotResolvable, "set through nil map"), "type", a.typ.String())
	}

	elem := a.typ.Elem()
	if value == nil {
		rv.SetMapIndex(reflect.ValueOf(name), reflect.Zero(elem))
		return nil
	}
	vv := reflect.ValueOf(value)
	if !vv.Type().AssignableTo(elem) {
		return zerr.With(notWritable(a.typ, name), "value_type", vv.Type().String())
	}
	rv.SetMapIndex(reflect.ValueOf(name), vv)
	return nil
}

// assign stores value into the settable field fv, requiring assignability.
func assign(fv reflect.Value, value any, typ reflect.Type, name string) error {
	if value == nil {
		switch fv.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			fv.SetZero()
			return nil
		default:
			return zerr.With(notWritable(typ, name), "value_type", "nil")
		}
	}
	vv := reflect.ValueOf(value)
	if !vv.Type().AssignableTo(fv.Type()) {
		return zerr.With(notWritable(typ, name), "value_type", vv.Type().String())
	}
	fv.Set(vv)
	return nil
}

// notFound and notWritable wrap the sentinel first so the chain survives the
// metadata copy and errors.Is keeps classifying correctly.
func notFound(t reflect.Type, name string) error {
	return zerr.With(zerr.With(zerr.Wrap(ErrFieldNotFound, "field access"), "type", t.String()), "field", name)
}

func notWritable(t reflect.Type, name string) error {
	return zerr.With(zerr.With(zerr.Wrap(ErrFieldNotWritable, "field write"), "type", t.String()), "field", name)
}

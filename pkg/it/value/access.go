package value

import (
	"math"
	"reflect"
	"strconv"
)

// LengthKey reads the length of a slice, array, string, map or channel.
// Strings are measured in runes. A map entry stored under the key wins over
// the map's length.
const LengthKey = "length"

func indirect(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return rv
		}
		rv = rv.Elem()
	}
	return rv
}

func subject(op string, v any, key any) reflect.Value {
	if IsNil(v) {
		Raisef(op, ErrNilSubject, "cannot read %v of %v", key, v)
	}
	rv := indirect(reflect.ValueOf(v))
	if rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		Raisef(op, ErrNilSubject, "cannot read %v of nil %s", key, rv.Type())
	}
	return rv
}

// Get returns v[key]. Missing map keys and out of range indexes read as nil;
// an unknown struct member is a fault. Strings are indexed by rune.
func Get(v any, key any) any {
	const op = "get"
	rv := subject(op, v, key)

	switch rv.Kind() {
	case reflect.Map:
		if k, ok := Convert(key, rv.Type().Key()); ok {
			if e := rv.MapIndex(k); e.IsValid() {
				return e.Interface()
			}
		}
		if key == LengthKey {
			return rv.Len()
		}
		return nil
	case reflect.String:
		r := []rune(rv.String())
		if key == LengthKey {
			return len(r)
		}
		i, ok := index(key)
		if !ok || i < 0 || i >= len(r) {
			return nil
		}
		return string(r[i])
	case reflect.Slice, reflect.Array, reflect.Chan:
		if key == LengthKey {
			return rv.Len()
		}
		if rv.Kind() == reflect.Chan {
			break
		}
		i, ok := index(key)
		if !ok || i < 0 || i >= rv.Len() {
			return nil
		}
		return rv.Index(i).Interface()
	case reflect.Struct:
		name, _ := key.(string)
		if f, ok := field(rv, name); ok {
			return f.Interface()
		}
	}

	if name, ok := key.(string); ok {
		if m, ok := Method(v, name); ok {
			return m.Interface()
		}
	}
	Raisef(op, ErrNoSuchMember, "%T has no member %v", v, key)
	return nil
}

// Set assigns v[key] = val and returns v itself. Struct and array subjects
// must be reached through a pointer.
func Set(v any, key any, val any) any {
	const op = "set"
	rv := subject(op, v, key)

	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			Raisef(op, ErrNilSubject, "assignment of %v to nil map", key)
		}
		k, ok := Convert(key, rv.Type().Key())
		if !ok {
			Raisef(op, ErrUnsupportedOperand, "cannot use %T as key of %s", key, rv.Type())
		}
		rv.SetMapIndex(k, assign(op, val, rv.Type().Elem()))
		return v
	case reflect.Slice, reflect.Array:
		i, ok := index(key)
		if !ok || i < 0 || i >= rv.Len() {
			Raisef(op, ErrNoSuchMember, "index %v out of range [0:%d]", key, rv.Len())
		}
		e := rv.Index(i)
		if !e.CanSet() {
			Raisef(op, ErrNotAddressable, "%T", v)
		}
		e.Set(assign(op, val, e.Type()))
		return v
	case reflect.Struct:
		if !rv.CanSet() {
			Raisef(op, ErrNotAddressable, "%T must be passed by pointer", v)
		}
		name, _ := key.(string)
		f, ok := field(rv, name)
		if !ok {
			Raisef(op, ErrNoSuchMember, "%T has no field %v", v, key)
		}
		f.Set(assign(op, val, f.Type()))
		return v
	}

	Raisef(op, ErrNoSuchMember, "cannot set %v on %T", key, v)
	return nil
}

// Delete removes key from a map subject, or resets a struct field or
// sequence element to its zero value. It returns v itself.
func Delete(v any, key any) any {
	const op = "delete"
	rv := subject(op, v, key)

	switch rv.Kind() {
	case reflect.Map:
		if k, ok := Convert(key, rv.Type().Key()); ok && !rv.IsNil() {
			rv.SetMapIndex(k, reflect.Value{})
		}
		return v
	case reflect.Slice, reflect.Array:
		i, ok := index(key)
		if !ok || i < 0 || i >= rv.Len() {
			return v
		}
		e := rv.Index(i)
		if !e.CanSet() {
			Raisef(op, ErrNotAddressable, "%T", v)
		}
		e.Set(reflect.Zero(e.Type()))
		return v
	case reflect.Struct:
		if !rv.CanSet() {
			Raisef(op, ErrNotAddressable, "%T must be passed by pointer", v)
		}
		name, _ := key.(string)
		f, ok := field(rv, name)
		if !ok {
			Raisef(op, ErrNoSuchMember, "%T has no field %v", v, key)
		}
		f.Set(reflect.Zero(f.Type()))
		return v
	}

	Raisef(op, ErrNoSuchMember, "cannot delete %v from %T", key, v)
	return nil
}

// Convert returns x as a value of type t. Numbers convert between numeric
// kinds; nil becomes the zero value of nillable types.
func Convert(x any, t reflect.Type) (reflect.Value, bool) {
	if x == nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}

	xv := reflect.ValueOf(x)
	if xv.Type().AssignableTo(t) {
		return xv, true
	}
	if isNumberKind(xv.Kind()) && isNumberKind(t.Kind()) {
		return xv.Convert(t), true
	}
	if xv.Kind() == t.Kind() && xv.Type().ConvertibleTo(t) {
		return xv.Convert(t), true
	}
	return reflect.Value{}, false
}

func assign(op string, val any, t reflect.Type) reflect.Value {
	if val == nil {
		return reflect.Zero(t)
	}
	cv, ok := Convert(val, t)
	if !ok {
		Raisef(op, ErrUnsupportedOperand, "cannot use %T as %s", val, t)
	}
	return cv
}

func field(rv reflect.Value, name string) (reflect.Value, bool) {
	if name == "" {
		return reflect.Value{}, false
	}
	sf, ok := rv.Type().FieldByName(name)
	if !ok || !sf.IsExported() {
		return reflect.Value{}, false
	}
	f, err := rv.FieldByIndexErr(sf.Index)
	if err != nil {
		return reflect.Value{}, false
	}
	return f, true
}

func index(key any) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, true
	case string:
		i, err := strconv.Atoi(k)
		return i, err == nil
	}

	kv := reflect.ValueOf(key)
	switch kv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(kv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(kv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := kv.Float()
		if f == math.Trunc(f) {
			return int(f), true
		}
	}
	return 0, false
}

package value

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

func isNumberKind(k reflect.Kind) bool {
	return isIntKind(k) || isUintKind(k) || k == reflect.Float32 || k == reflect.Float64
}

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUintKind(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isIntegral(rv reflect.Value) bool {
	return isIntKind(rv.Kind()) || isUintKind(rv.Kind())
}

func asInt(rv reflect.Value) int64 {
	if isUintKind(rv.Kind()) {
		return int64(rv.Uint())
	}
	return rv.Int()
}

func asFloat(rv reflect.Value) float64 {
	switch {
	case isIntKind(rv.Kind()):
		return float64(rv.Int())
	case isUintKind(rv.Kind()):
		return float64(rv.Uint())
	}
	return rv.Float()
}

// Number returns v as a float64 when v has a numeric kind.
func Number(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	if !isNumberKind(rv.Kind()) {
		return 0, false
	}
	return asFloat(rv), true
}

// Add concatenates when either side is a string and the other a string or
// number; otherwise it adds numerically like Sub.
func Add(a, b any) any {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Kind() == reflect.String || bv.Kind() == reflect.String {
		if (av.Kind() == reflect.String || isNumberKind(av.Kind())) &&
			(bv.Kind() == reflect.String || isNumberKind(bv.Kind())) {
			return text(av) + text(bv)
		}
	}
	return arith("add", a, b,
		func(x, y int64) (int64, bool) {
			r := x + y
			return r, (y >= 0) == (r >= x)
		},
		func(x, y float64) float64 { return x + y })
}

// Sub computes a - b. Integer results keep the type of a when they fit it,
// widen to int64 when they do not, and fall back to float64 when they
// overflow int64.
func Sub(a, b any) any {
	return arith("sub", a, b,
		func(x, y int64) (int64, bool) {
			r := x - y
			return r, (y >= 0) == (r <= x)
		},
		func(x, y float64) float64 { return x - y })
}

func Mul(a, b any) any {
	return arith("mul", a, b,
		func(x, y int64) (int64, bool) {
			if x == 0 || y == 0 {
				return 0, true
			}
			r := x * y
			return r, r/y == x && !(x == -1 && y == math.MinInt64) && !(y == -1 && x == math.MinInt64)
		},
		func(x, y float64) float64 { return x * y })
}

// Div divides a by b. Integer operands use truncating division and fault on
// a zero divisor; float division follows IEEE 754.
func Div(a, b any) any {
	return arith("div", a, b,
		func(x, y int64) (int64, bool) {
			if y == 0 {
				Raisef("div", ErrDivideByZero, "%d / 0", x)
			}
			if x == math.MinInt64 && y == -1 {
				return 0, false
			}
			return x / y, true
		},
		func(x, y float64) float64 { return x / y })
}

func arith(op string, a, b any, ints func(x, y int64) (int64, bool), floats func(x, y float64) float64) any {
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case isIntegral(av) && isIntegral(bv) && fitsInt64(av) && fitsInt64(bv):
		r, ok := ints(asInt(av), asInt(bv))
		if !ok {
			return floats(asFloat(av), asFloat(bv))
		}
		if fits(r, av.Type()) {
			return reflect.ValueOf(r).Convert(av.Type()).Interface()
		}
		return r
	case isNumberKind(av.Kind()) && isNumberKind(bv.Kind()):
		return floats(asFloat(av), asFloat(bv))
	}
	Raisef(op, ErrUnsupportedOperand, "%T %s %T", a, op, b)
	return nil
}

func fitsInt64(rv reflect.Value) bool {
	return !isUintKind(rv.Kind()) || rv.Uint() <= math.MaxInt64
}

// fits reports whether r converts to t and back without change.
func fits(r int64, t reflect.Type) bool {
	c := reflect.ValueOf(r).Convert(t)
	if isUintKind(t.Kind()) {
		return r >= 0 && c.Uint() == uint64(r)
	}
	return c.Int() == r
}

func text(rv reflect.Value) string {
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	if isIntegral(rv) {
		return fmt.Sprint(rv.Interface())
	}
	return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
}

// LooseEqual compares numbers by value across numeric kinds, numbers with
// numeric strings and booleans as 0 or 1, and treats all nil values as
// equal. Other values fall back to StrictEqual.
func LooseEqual(a, b any) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}

	af, aok := looseNumber(a)
	bf, bok := looseNumber(b)
	if aok && bok {
		_, aNum := Number(a)
		_, bNum := Number(b)
		_, aBool := a.(bool)
		_, bBool := b.(bool)
		if aNum || bNum || aBool || bBool {
			return af == bf
		}
	}
	return StrictEqual(a, b)
}

func looseNumber(v any) (float64, bool) {
	if f, ok := Number(v); ok {
		return f, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			return 1, true
		}
		return 0, true
	case reflect.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
		return f, err == nil
	}
	return 0, false
}

// StrictEqual reports whether a and b have the same dynamic type and are
// equal. Slices, maps and funcs are equal only when they share storage.
func StrictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	at, bt := reflect.TypeOf(a), reflect.TypeOf(b)
	if at != bt {
		return false
	}
	if at.Comparable() {
		return a == b
	}

	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	switch av.Kind() {
	case reflect.Slice:
		return av.Pointer() == bv.Pointer() && av.Len() == bv.Len()
	case reflect.Map, reflect.Func:
		return av.Pointer() == bv.Pointer()
	}
	return false
}

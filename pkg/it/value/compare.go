package value

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"
)

// Order compares a and b for the relational operators. ok is false when the
// operands have no order between them, including when either side is NaN.
func Order(a, b any) (c int, ok bool) {
	if at, aok := a.(time.Time); aok {
		if bt, bok := b.(time.Time); bok {
			return at.Compare(bt), true
		}
		return 0, false
	}

	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Kind() == reflect.String && bv.Kind() == reflect.String {
		return strings.Compare(av.String(), bv.String()), true
	}
	if isIntegral(av) && isIntegral(bv) && !(isUintKind(av.Kind()) || isUintKind(bv.Kind())) {
		return cmp.Compare(av.Int(), bv.Int()), true
	}

	af, aok := looseNumber(a)
	bf, bok := looseNumber(b)
	if !aok || !bok || math.IsNaN(af) || math.IsNaN(bf) {
		return 0, false
	}
	return cmp.Compare(af, bf), true
}

// rank groups values for Compare: nil, bools, numbers, strings, times, rest.
func rank(v any) int {
	if IsNil(v) {
		return 0
	}
	if _, ok := v.(time.Time); ok {
		return 4
	}
	k := reflect.ValueOf(v).Kind()
	switch {
	case k == reflect.Bool:
		return 1
	case isNumberKind(k):
		return 2
	case k == reflect.String:
		return 3
	}
	return 5
}

// Compare is a total order over arbitrary values, returning -1, 0 or 1.
// Values of different groups order nil < bool < number < string < time <
// other; NaN sorts before every other number.
func Compare(a, b any) int {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}

	switch ra {
	case 0:
		return 0
	case 1:
		x, y := reflect.ValueOf(a).Bool(), reflect.ValueOf(b).Bool()
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		}
		return 1
	case 2:
		av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
		if isIntKind(av.Kind()) && isIntKind(bv.Kind()) {
			return cmp.Compare(av.Int(), bv.Int())
		}
		return cmp.Compare(asFloat(av), asFloat(bv))
	case 3:
		return strings.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
	case 4:
		return a.(time.Time).Compare(b.(time.Time))
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

package value

import (
	"reflect"

	"github.com/ghetzel/go-stockutil/sliceutil"
)

// Items returns the elements of a slice or array subject as a fresh []any.
func Items(op string, v any) []any {
	if IsNil(v) {
		Raisef(op, ErrNilSubject, "cannot iterate %v", v)
	}
	rv := indirect(reflect.ValueOf(v))
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			return []any{}
		}
		return sliceutil.Sliceify(rv.Interface())
	}
	Raisef(op, ErrNotSequence, "%T", v)
	return nil
}

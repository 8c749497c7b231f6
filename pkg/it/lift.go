package it

import (
	"reflect"

	"github.com/ib-77/itx/pkg/it/value"
)

func identityStep(_, v any) any {
	return v
}

// lift resolves a selector into a Step. nil is the identity, a string reads
// that property, pipelines and steps keep the receiver, and other funcs are
// called with the subject as their only argument.
func lift(op string, fn any) Step {
	switch f := fn.(type) {
	case nil:
		return identityStep
	case Step:
		if f == nil {
			return identityStep
		}
		return f
	case func(recv, v any) any:
		return f
	case Pipeline:
		return f.Step()
	case string:
		return getStep(f)
	case func(any) any:
		return func(_, v any) any { return f(v) }
	case func(any) bool:
		return func(_, v any) any { return f(v) }
	}

	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		value.Raisef(op, value.ErrInvalidSelector, "cannot use %T as a step", fn)
	}
	return func(_, v any) any {
		return value.Call(rv, v)
	}
}

// optional picks the selector of an operation whose argument may be omitted.
func optional(op string, fns []any) any {
	switch len(fns) {
	case 0:
		return nil
	case 1:
		return fns[0]
	}
	value.Raisef(op, value.ErrArity, "takes at most one selector, got %d", len(fns))
	return nil
}

package it

import (
	"reflect"

	"github.com/ib-77/itx/pkg/it/value"
)

// DefaultTo returns the subject when it is truthy and fallback otherwise.
func (p Pipeline) DefaultTo(fallback any) Pipeline {
	return p.then(func(_, v any) any {
		if value.Truthy(v) {
			return v
		}
		return fallback
	})
}

// RunIfTruthy applies fn to truthy subjects and passes falsy ones through
// without calling fn.
func (p Pipeline) RunIfTruthy(fn any) Pipeline {
	f := lift("runIfTruthy", fn)
	return p.then(func(recv, v any) any {
		if !value.Truthy(v) {
			return v
		}
		return f(recv, v)
	})
}

// Negate returns the boolean negation of fn applied to the subject, or of the
// subject itself when fn is omitted.
func (p Pipeline) Negate(fn ...any) Pipeline {
	f := lift("negate", optional("negate", fn))
	return p.then(func(recv, v any) any {
		return !value.Truthy(f(recv, v))
	})
}

// SideEffect calls fn with the subject, drops its result and returns the
// subject.
func (p Pipeline) SideEffect(fn any) Pipeline {
	f := lift("sideEffect", fn)
	return p.then(func(recv, v any) any {
		f(recv, v)
		return v
	})
}

// InstantiateAs builds a new value by calling the one-argument constructor
// ctor with the subject.
func (p Pipeline) InstantiateAs(ctor any) Pipeline {
	fn := reflect.ValueOf(ctor)
	if fn.Kind() != reflect.Func || fn.IsNil() {
		value.Raisef("instantiateAs", value.ErrInvalidSelector, "%T is not a constructor", ctor)
	}
	return p.then(func(_, v any) any {
		return value.Call(fn, v)
	})
}

func DefaultTo(fallback any) Pipeline { return Identity().DefaultTo(fallback) }
func RunIfTruthy(fn any) Pipeline     { return Identity().RunIfTruthy(fn) }
func Negate(fn ...any) Pipeline       { return Identity().Negate(fn...) }
func SideEffect(fn any) Pipeline      { return Identity().SideEffect(fn) }
func InstantiateAs(ctor any) Pipeline { return Identity().InstantiateAs(ctor) }

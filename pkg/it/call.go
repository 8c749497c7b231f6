package it

import (
	"reflect"
	"slices"

	"github.com/ib-77/itx/pkg/it/value"
)

// Invoke calls a method on the subject. sel is either a method name or a
// function; a function is called as fn(subject, args...). A Pipeline or Step
// selector runs with the subject as receiver and args[0] (or, without args,
// the subject) as its argument.
func (p Pipeline) Invoke(sel any, args ...any) Pipeline {
	return p.then(invokeStep(sel, slices.Clone(args)))
}

// Post is Invoke with the arguments given as a slice.
func (p Pipeline) Post(sel any, args []any) Pipeline {
	return p.Invoke(sel, args...)
}

func invokeStep(sel any, args []any) Step {
	switch s := sel.(type) {
	case string:
		return func(_, v any) any {
			return value.Send(v, s, args...)
		}
	case Pipeline:
		return receiverStep(s.Step(), args)
	case Step:
		return receiverStep(lift("invoke", s), args)
	case func(recv, v any) any:
		return receiverStep(s, args)
	}

	fn := reflect.ValueOf(sel)
	if fn.Kind() != reflect.Func || fn.IsNil() {
		value.Raisef("invoke", value.ErrInvalidSelector, "cannot invoke %T", sel)
	}

	switch len(args) {
	case 0:
		return func(_, v any) any {
			return value.Call(fn, v)
		}
	case 1:
		arg := args[0]
		return func(_, v any) any {
			return value.Call(fn, v, arg)
		}
	}
	return func(_, v any) any {
		return value.Call(fn, append([]any{v}, args...)...)
	}
}

func receiverStep(s Step, args []any) Step {
	if len(args) == 0 {
		return func(_, v any) any {
			return s(v, v)
		}
	}
	arg := args[0]
	return func(_, v any) any {
		return s(v, arg)
	}
}

// ApplyArgs calls the subject, which must be a func, Pipeline or Step, with
// args.
func (p Pipeline) ApplyArgs(args []any) Pipeline {
	args = slices.Clone(args)
	return p.then(func(_, v any) any {
		return apply(v, args)
	})
}

// CallWithArgs is ApplyArgs with variadic arguments.
func (p Pipeline) CallWithArgs(args ...any) Pipeline {
	return p.ApplyArgs(args)
}

func apply(v any, args []any) any {
	var first any
	if len(args) > 0 {
		first = args[0]
	}
	switch f := v.(type) {
	case Pipeline:
		return f.Call(first)
	case Step:
		return f(nil, first)
	}
	return value.Call(reflect.ValueOf(v), args...)
}

func Invoke(sel any, args ...any) Pipeline { return Identity().Invoke(sel, args...) }
func Post(sel any, args []any) Pipeline    { return Identity().Post(sel, args) }
func ApplyArgs(args []any) Pipeline        { return Identity().ApplyArgs(args) }
func CallWithArgs(args ...any) Pipeline    { return Identity().CallWithArgs(args...) }

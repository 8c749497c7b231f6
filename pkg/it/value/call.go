package value

import (
	"reflect"

	"github.com/pkg/errors"
)

var errorType = reflect.TypeFor[error]()

// Method looks up the method name on v. Methods with pointer receivers are
// found on addressable copies of non-pointer subjects.
func Method(v any, name string) (reflect.Value, bool) {
	if v == nil || name == "" {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	if m := rv.MethodByName(name); m.IsValid() {
		return m, true
	}
	if rv.Kind() != reflect.Pointer {
		p := reflect.New(rv.Type())
		p.Elem().Set(rv)
		if m := p.MethodByName(name); m.IsValid() {
			return m, true
		}
	}
	return reflect.Value{}, false
}

// Send calls the method name on v with args. Map subjects may hold the
// function under that key, and string subjects fall back to the string
// methods table.
func Send(v any, name string, args ...any) any {
	const op = "invoke"
	rv := subject(op, v, name)

	if m, ok := Method(v, name); ok {
		return call(op, m, args)
	}

	switch rv.Kind() {
	case reflect.Map:
		if fn := Get(v, name); fn != nil {
			return call(op, reflect.ValueOf(fn), args)
		}
	case reflect.String:
		if fn, ok := stringMethods[name]; ok {
			return call(op, reflect.ValueOf(fn), append([]any{rv.String()}, args...))
		}
	}

	Raisef(op, ErrNoSuchMember, "%T has no method %s", v, name)
	return nil
}

// Call invokes fn with args, converting each argument to the parameter type.
// A trailing non-nil error result is raised as ErrCallFailed; the remaining
// results are returned as nil, a single value, or a []any.
func Call(fn reflect.Value, args ...any) any {
	return call("call", fn, args)
}

// Callable reports whether v can be used with Call.
func Callable(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

func call(op string, fn reflect.Value, args []any) any {
	if fn.Kind() != reflect.Func || fn.IsNil() {
		Raisef(op, ErrNotCallable, "%s", fn.Kind())
	}

	t := fn.Type()
	n := t.NumIn()
	if t.IsVariadic() {
		if len(args) < n-1 {
			Raisef(op, ErrArity, "%s wants at least %d, got %d", t, n-1, len(args))
		}
	} else if len(args) != n {
		Raisef(op, ErrArity, "%s wants %d, got %d", t, n, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		pt := paramType(t, i)
		av, ok := Convert(a, pt)
		if !ok {
			Raisef(op, ErrUnsupportedOperand, "argument %d: cannot use %T as %s", i, a, pt)
		}
		in[i] = av
	}

	return results(op, fn.Call(in))
}

func paramType(t reflect.Type, i int) reflect.Type {
	if t.IsVariadic() && i >= t.NumIn()-1 {
		return t.In(t.NumIn() - 1).Elem()
	}
	return t.In(i)
}

func results(op string, out []reflect.Value) any {
	if n := len(out); n > 0 && out[n-1].Type() == errorType {
		if !out[n-1].IsNil() {
			err := out[n-1].Interface().(error)
			Raise(op, errors.Wrapf(ErrCallFailed, "%v", err))
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0].Interface()
	}
	vals := make([]any, len(out))
	for i, o := range out {
		vals[i] = o.Interface()
	}
	return vals
}

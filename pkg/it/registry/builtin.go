package registry

import (
	"github.com/pkg/errors"

	"github.com/ib-77/itx/pkg/it"
)

// Builtin returns a registry holding every operation of package it together
// with its aliases.
func Builtin(opts ...Option) *Registry {
	r := New(opts...)
	for _, b := range builtins(r) {
		r.mustRegister(b.name, b.arity, b.factory)
	}
	for alias, target := range builtinAliases {
		if err := r.Alias(alias, target); err != nil {
			panic(err)
		}
	}
	return r
}

var builtinAliases = map[string]string{
	"put":         "set",
	"send":        "invoke",
	"del":         "delete",
	"or":          "defaultTo",
	"maybe":       "runIfTruthy",
	"not":         "negate",
	"tap":         "sideEffect",
	"splat":       "mapOver",
	"instantiate": "instantiateAs",
	"fapply":      "applyArgs",
	"fcall":       "callWithArgs",
}

var operators = map[string]it.Operator{
	"eq":        it.Eq,
	"neq":       it.Neq,
	"strictEq":  it.StrictEq,
	"strictNeq": it.StrictNeq,
	"gt":        it.Gt,
	"gte":       it.Gte,
	"lt":        it.Lt,
	"lte":       it.Lte,
	"add":       it.Add,
	"sub":       it.Sub,
	"mul":       it.Mul,
	"div":       it.Div,
}

type builtin struct {
	name    string
	arity   Arity
	factory Factory
}

func builtins(r *Registry) []builtin {
	out := []builtin{
		{"identity", Exactly(0), pipeline(func(...any) it.Pipeline { return it.Identity() })},
		{"self", Exactly(0), pipeline(func(...any) it.Pipeline { return it.Self() })},
		{"get", Exactly(1), pipeline(func(a ...any) it.Pipeline { return it.Get(a[0]) })},
		{"set", Exactly(2), pipeline(func(a ...any) it.Pipeline { return it.Set(a[0], a[1]) })},
		{"delete", Exactly(1), pipeline(func(a ...any) it.Pipeline { return it.Delete(a[0]) })},
		{"invoke", AtLeast(1), pipeline(func(a ...any) it.Pipeline { return it.Invoke(a[0], a[1:]...) })},
		{"post", Between(1, 2), postFactory},
		{"applyArgs", Between(0, 1), applyArgsFactory},
		{"callWithArgs", AtLeast(0), pipeline(func(a ...any) it.Pipeline { return it.CallWithArgs(a...) })},
		{"defaultTo", Exactly(1), pipeline(func(a ...any) it.Pipeline { return it.DefaultTo(a[0]) })},
		{"runIfTruthy", Exactly(1), pipeline(func(a ...any) it.Pipeline { return it.RunIfTruthy(a[0]) })},
		{"negate", Between(0, 1), pipeline(func(a ...any) it.Pipeline { return it.Negate(a...) })},
		{"sideEffect", Exactly(1), pipeline(func(a ...any) it.Pipeline { return it.SideEffect(a[0]) })},
		{"instantiateAs", Exactly(1), pipeline(func(a ...any) it.Pipeline { return it.InstantiateAs(a[0]) })},
		{"mapOver", Between(0, 1), pipeline(func(a ...any) it.Pipeline { return it.MapOver(a...) })},
		{"pluck", Exactly(1), pipeline(func(a ...any) it.Pipeline { return it.Pluck(a[0]) })},
		{"selectWhere", Between(0, 1), pipeline(func(a ...any) it.Pipeline { return it.SelectWhere(a...) })},
		{"reduceWith", Exactly(1), reduceFactory},
		{"sortBy", Between(0, 1), pipeline(func(a ...any) it.Pipeline { return it.SortBy(a...) })},
		{"trace", Between(0, 1), func(a ...any) (it.Step, error) {
			msg := "trace"
			if len(a) == 1 {
				s, ok := a[0].(string)
				if !ok {
					return nil, errors.Wrapf(ErrInvalidArgument, "trace message must be a string, got %T", a[0])
				}
				msg = s
			}
			return it.Trace(r.log, msg).Step(), nil
		}},
	}
	for name, o := range operators {
		out = append(out, builtin{name, Exactly(1), pipeline(func(a ...any) it.Pipeline { return o.With(a[0]) })})
	}
	return out
}

func (r *Registry) mustRegister(name string, arity Arity, factory Factory) {
	if _, err := r.Register(name, arity, factory); err != nil {
		panic(err)
	}
}

func pipeline(build func(args ...any) it.Pipeline) Factory {
	return func(args ...any) (it.Step, error) {
		return build(args...).Step(), nil
	}
}

func postFactory(args ...any) (it.Step, error) {
	if len(args) == 1 {
		return it.Post(args[0], nil).Step(), nil
	}
	list, ok := args[1].([]any)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidArgument, "post arguments must be a list, got %T", args[1])
	}
	return it.Post(args[0], list).Step(), nil
}

func applyArgsFactory(args ...any) (it.Step, error) {
	if len(args) == 0 {
		return it.ApplyArgs(nil).Step(), nil
	}
	list, ok := args[0].([]any)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidArgument, "applyArgs argument must be a list, got %T", args[0])
	}
	return it.ApplyArgs(list).Step(), nil
}

// reduceFactory accepts an operator name in place of a function, so that
// "reduceWith add" works from text.
func reduceFactory(args ...any) (it.Step, error) {
	fn := args[0]
	if name, ok := fn.(string); ok {
		if o, ok := operators[name]; ok {
			fn = o
		}
	}
	return it.ReduceWith(fn).Step(), nil
}

package it

import (
	"reflect"
	"slices"

	"github.com/ib-77/itx/pkg/it/value"
)

// MapOver returns a new []any with fn applied to every element of the
// subject. The subject is left untouched.
func (p Pipeline) MapOver(fn ...any) Pipeline {
	f := lift("mapOver", optional("mapOver", fn))
	return p.then(func(recv, v any) any {
		items := value.Items("mapOver", v)
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = f(recv, item)
		}
		return out
	})
}

// Pluck maps every element of the subject to its key property.
func (p Pipeline) Pluck(key any) Pipeline {
	return p.MapOver(Get(key))
}

// SelectWhere returns a new []any with the elements for which fn is truthy.
func (p Pipeline) SelectWhere(fn ...any) Pipeline {
	f := lift("selectWhere", optional("selectWhere", fn))
	return p.then(func(recv, v any) any {
		items := value.Items("selectWhere", v)
		out := make([]any, 0, len(items))
		for _, item := range items {
			if value.Truthy(f(recv, item)) {
				out = append(out, item)
			}
		}
		return out
	})
}

// ReduceWith folds the subject from the left with fn, seeded by the first
// element. fn is a two-argument function or Operator; a string names a
// method called on the accumulator with the next element. An empty subject
// faults.
func (p Pipeline) ReduceWith(fn any) Pipeline {
	f := reducer(fn)
	return p.then(func(_, v any) any {
		items := value.Items("reduceWith", v)
		if len(items) == 0 {
			value.Raise("reduceWith", value.ErrEmptyReduce)
		}
		acc := items[0]
		for _, item := range items[1:] {
			acc = f(acc, item)
		}
		return acc
	})
}

func reducer(fn any) func(acc, item any) any {
	switch f := fn.(type) {
	case string:
		return func(acc, item any) any { return value.Send(acc, f, item) }
	case Operator:
		return f
	case func(a, b any) any:
		return f
	}

	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		value.Raisef("reduceWith", value.ErrInvalidSelector, "cannot reduce with %T", fn)
	}
	return func(acc, item any) any {
		return value.Call(rv, acc, item)
	}
}

// SortBy returns a sorted copy of the subject ordered by CompareBy(fn).
// The key selector sees the pipeline's receiver. The sort is stable.
func (p Pipeline) SortBy(fn ...any) Pipeline {
	key := lift("sortBy", optional("sortBy", fn))
	return p.then(func(recv, v any) any {
		out := slices.Clone(value.Items("sortBy", v))
		slices.SortStableFunc(out, keyed(key, recv))
		return out
	})
}

func MapOver(fn ...any) Pipeline     { return Identity().MapOver(fn...) }
func Pluck(key any) Pipeline         { return Identity().Pluck(key) }
func SelectWhere(fn ...any) Pipeline { return Identity().SelectWhere(fn...) }
func ReduceWith(fn any) Pipeline     { return Identity().ReduceWith(fn) }
func SortBy(fn ...any) Pipeline      { return Identity().SortBy(fn...) }

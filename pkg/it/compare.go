package it

import (
	"github.com/ib-77/itx/pkg/it/value"
)

// Comparator orders two values, returning -1, 0 or 1. It is a two-argument
// function for sort helpers, not a Pipeline.
type Comparator func(a, b any) int

// CompareBy orders values by the key fn extracts from them, using the total
// order of value.Compare. Omitting fn compares the values themselves. The key
// runs without a receiver; use CompareByOn for keys built on Self.
func CompareBy(fn ...any) Comparator {
	return CompareByOn(nil, fn...)
}

// CompareByOn is CompareBy with recv as the receiver of the key selector.
func CompareByOn(recv any, fn ...any) Comparator {
	return keyed(lift("compareBy", optional("compareBy", fn)), recv)
}

func keyed(key Step, recv any) Comparator {
	return func(a, b any) int {
		return value.Compare(key(recv, a), key(recv, b))
	}
}

// Reverse returns c with the order flipped.
func (c Comparator) Reverse() Comparator {
	return func(a, b any) int {
		return -c(a, b)
	}
}

// Less adapts c to sort.Slice style callers.
func (c Comparator) Less(a, b any) bool {
	return c(a, b) < 0
}

// SortFunc adapts c to slices.SortFunc on a typed slice.
func SortFunc[T any](c Comparator) func(a, b T) int {
	return func(a, b T) int {
		return c(a, b)
	}
}

package it

import (
	"github.com/ib-77/itx/pkg/it/value"
)

// Get reads key from the subject: a map entry, an exported struct field or
// method, or a sequence index. "length" reads the length of sequences, strings
// and maps. A nil subject faults.
func (p Pipeline) Get(key any) Pipeline {
	return p.then(getStep(key))
}

func getStep(key any) Step {
	return func(_, v any) any {
		return value.Get(v, key)
	}
}

// Set assigns val to key on the subject and returns the subject itself.
func (p Pipeline) Set(key, val any) Pipeline {
	return p.then(func(_, v any) any {
		return value.Set(v, key, val)
	})
}

// Delete removes key from the subject and returns the subject itself.
func (p Pipeline) Delete(key any) Pipeline {
	return p.then(func(_, v any) any {
		return value.Delete(v, key)
	})
}

func Get(key any) Pipeline      { return Identity().Get(key) }
func Set(key, val any) Pipeline { return Identity().Set(key, val) }
func Delete(key any) Pipeline   { return Identity().Delete(key) }

// Package value contains the reflective plumbing behind it pipelines: how a
// dynamic subject is tested for truthiness, read and written by key, called by
// method name, compared and combined with an operand.
//
// Nothing here recovers from a bad subject. Operations that cannot proceed
// panic with a *Fault, which callers may turn back into an error with Catch.
//
// Key operations:
// - Truthy: boolean coercion (nil, false, zero numbers, NaN and "" are falsy)
// - Get/Set/Delete: keyed access on maps, structs, slices, arrays and strings
// - Send/Call: method-by-name and reflective function calls
// - Items: sequence normalisation for map/filter/reduce
// - LooseEqual/StrictEqual/Order/Compare: equality and ordering
// - Add/Sub/Mul/Div: arithmetic with the left operand's type preserved
package value
